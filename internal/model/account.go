package model

// UserAccount is a registered player with their credentials and lifetime stats.
// JSON field names follow the persisted accounts collection layout.
type UserAccount struct {
	Username    string `json:"username"`    // unique, case-sensitive
	Password    string `json:"password"`    // opaque, compared by a credentials.Verifier
	BestTime    *int64 `json:"bestTime"`    // milliseconds; nil until a game is completed
	GamesPlayed int    `json:"gamesPlayed"` // completed + abandoned
	GamesWon    int    `json:"gamesWon"`
	TotalTime   int64  `json:"totalTime"` // cumulative milliseconds across played games
}

// HasBestTime returns true if the account has completed at least one game
func (u *UserAccount) HasBestTime() bool {
	return u.BestTime != nil
}
