// Package models defines the account entity shared by the store, the
// storage backends and the presentation layer.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is a single (username, password, admin flag) record.
//
// ID is the identity used for deletion; two accounts never share an ID even
// if one is deleted and the username is later reused. Password is stored
// verbatim.
type Account struct {
	ID        uuid.UUID
	Username  string
	Password  string
	IsAdmin   bool
	CreatedAt time.Time
}

// NewAccount returns an account with a fresh ID and a UTC creation time.
func NewAccount(username, password string, isAdmin bool) Account {
	return Account{
		ID:        uuid.New(),
		Username:  username,
		Password:  password,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now().UTC(),
	}
}

// VerifyCredentials reports whether username and password match exactly.
func (a Account) VerifyCredentials(username, password string) bool {
	return a.Username == username && a.Password == password
}

// Role returns a printable role name.
func (a Account) Role() string {
	if a.IsAdmin {
		return "admin"
	}
	return "user"
}

func (a Account) String() string {
	return a.Username + " (" + a.Role() + ")"
}
