package credentials

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/minisudoku-go/internal/model"
)

// MaxPasswordBytes is the longest password bcrypt can hash
const MaxPasswordBytes = 72

// Verifier turns passwords into their stored form and checks them
type Verifier interface {
	// Hash returns the stored form of password
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored form
	Verify(stored, password string) bool
}

// Verifier kinds accepted by New
const (
	KindPlain  = "plain"
	KindBcrypt = "bcrypt"
)

// New returns the verifier named by kind ("plain" or "bcrypt")
func New(kind string) (Verifier, error) {
	switch kind {
	case "", KindPlain:
		return Plain{}, nil
	case KindBcrypt:
		return Bcrypt{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("invalid credentials kind %q: must be 'plain' or 'bcrypt'", kind)
	}
}

// Plain stores passwords as-is and compares with equality.
// Accounts written by earlier clients hold cleartext passwords and load unchanged.
type Plain struct{}

func (Plain) Hash(password string) (string, error) {
	return password, nil
}

func (Plain) Verify(stored, password string) bool {
	return stored == password
}

// Bcrypt stores bcrypt hashes
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("password longer than %d bytes: %w", MaxPasswordBytes, model.ErrInvalidInput)
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (Bcrypt) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
