// Package dto holds data transfer shapes returned by services to surfaces.
package dto

import (
	"time"

	"github.com/dolarasia/dolarasia/pkg/domain/user"
	"github.com/google/uuid"
)

// UserRead is the session-visible view of a user: the stored record with the
// password stripped.
type UserRead struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	IDNumber  string    `json:"idNumber"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserRead strips the credential from a stored user record.
func NewUserRead(u *user.User) *UserRead {
	return &UserRead{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Address:   u.Address,
		IDNumber:  u.IDNumber,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
