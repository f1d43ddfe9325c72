// Package user defines the user entity and its domain errors.
package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmailTaken is returned when registration hits an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when no user matches the given
	// email and password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned when a user cannot be found in the store.
	ErrUserNotFound = errors.New("user not found")
)

// User represents a registered customer. The password is stored as entered;
// this demo keeps the whole record in a local key-value store and has no
// hashing step.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	IDNumber  string    `json:"idNumber"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// New creates a non-admin User with a fresh id and current timestamp.
func New(email, password, fullName, phone, address, idNumber string) (*User, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty")
	}
	if password == "" {
		return nil, errors.New("password cannot be empty")
	}
	return &User{
		ID:        uuid.New(),
		Email:     email,
		Password:  password,
		FullName:  fullName,
		Phone:     phone,
		Address:   address,
		IDNumber:  idNumber,
		CreatedAt: time.Now().UTC(),
	}, nil
}
