package user

import "errors"

// User is a usuario row from the login table. Read-only for this service;
// it is distinct from Employee and only exists to mint session tokens.
type User struct {
	ID           int    `json:"id"`
	Correo       string `json:"correo"`
	PasswordHash string `json:"-"` // never expose hash in JSON
	Rol          string `json:"rol"`
}

var ErrNotFound = errors.New("usuario not found")
