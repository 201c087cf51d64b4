package service

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PasswordPolicy decides how passwords are stored and compared.
type PasswordPolicy interface {
	Hash(password string) (string, error)
	Matches(stored, password string) bool
}

// PlaintextPasswords stores passwords as given and compares them exactly. It keeps
// accounts created by earlier releases usable; it is not safe for real deployments.
type PlaintextPasswords struct{}

func (PlaintextPasswords) Hash(password string) (string, error) { return password, nil }

func (PlaintextPasswords) Matches(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// BcryptPasswords stores bcrypt hashes.
type BcryptPasswords struct {
	Cost int
}

func (p BcryptPasswords) Hash(password string) (string, error) {
	cost := p.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (BcryptPasswords) Matches(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// NewPasswordPolicy returns bcrypt hashing when hash is set, plaintext otherwise.
func NewPasswordPolicy(hash bool) PasswordPolicy {
	if hash {
		return BcryptPasswords{}
	}
	return PlaintextPasswords{}
}
