package model

import (
	"time"

	"github.com/standup-lab/standup/pkg/domain/types"
)

// User represents a registered team member. PasswordHash never leaves the
// server: it is excluded from JSON and masked in logs.
type User struct {
	ID           types.UserID `json:"id" firestore:"id"`
	Name         string       `json:"name" firestore:"name"`
	Email        string       `json:"email" firestore:"email"`
	PasswordHash string       `json:"-" firestore:"password_hash" masq:"secret"`
	Role         types.Role   `json:"role" firestore:"role"`
	CreatedAt    time.Time    `json:"createdAt" firestore:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" firestore:"updated_at"`
}

// Profile is the public view of a user attached to logs and comments
type Profile struct {
	ID    types.UserID `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
}

// Sanitize returns a copy of the user with credential material stripped
func (x *User) Sanitize() *User {
	sanitized := *x
	sanitized.PasswordHash = ""
	return &sanitized
}

// Profile returns the public profile of the user
func (x *User) Profile() *Profile {
	return &Profile{
		ID:    x.ID,
		Name:  x.Name,
		Email: x.Email,
	}
}
