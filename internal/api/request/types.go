package request

// CredentialsRequest is the request body for registering and logging in.
// Empty fields are left to the account rules so they report INVALID_INPUT.
// Passwords are capped at bcrypt's 72-byte input limit.
type CredentialsRequest struct {
	Username string `json:"username" validate:"max=64"`
	Password string `json:"password" validate:"max=72"`
}

// SetCellRequest is the request body for writing a cell. A value of 0 clears it.
type SetCellRequest struct {
	Row   *int `json:"row" validate:"required,min=0,max=2"`
	Col   *int `json:"col" validate:"required,min=0,max=2"`
	Value *int `json:"value" validate:"required,min=0,max=3"`
}
