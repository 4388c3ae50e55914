// Package models defines server-side data models persisted in the database.
package models

import (
	"regexp"
	"time"

	"github.com/dmitrijs2005/reportvault/internal/common"
)

var emailRe = regexp.MustCompile(`^[\w\-.]+@([\w\-]+\.)+[\w\-]+$`)

// User is a persisted account record. Password holds the plaintext
// only between decoding and persistence; the repository replaces it
// with a bcrypt digest before the row is written.
type User struct {
	ID          string
	FullName    string
	Email       string
	PhoneNumber int64
	Password    string

	// ConfirmPassword is transient: checked during validation,
	// never persisted.
	ConfirmPassword string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicUser is the redacted profile view returned to clients. The
// password digest has no field here, so it can never leak through
// serialization.
type PublicUser struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	PhoneNumber int64     `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Redacted returns the public view of the user.
func (u *User) Redacted() *PublicUser {
	return &PublicUser{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// ValidateNew checks the schema rules for a user about to be created
// and collects every violated rule into a single ValidationError.
func (u *User) ValidateNew() error {
	v := &common.ValidationError{}

	if u.FullName == "" {
		v.Add("Full name is required")
	}
	if u.Email == "" {
		v.Add("Email is required")
	} else if !emailRe.MatchString(u.Email) {
		v.Add("Please enter a valid email")
	}
	if u.Password == "" {
		v.Add("Password is required")
	} else if len(u.Password) < 8 {
		v.Add("Password must be 8 characters or longer")
	}
	if u.Password != u.ConfirmPassword {
		v.Add("Password must match confirm password")
	}

	return v.OrNil()
}
