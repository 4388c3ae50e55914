// Package users persists account records. Schema validation and
// password hashing happen here, on the way into storage, so no caller
// can persist an unvalidated or plaintext-password user.
package users

import (
	"context"

	"github.com/dmitrijs2005/reportvault/internal/server/models"
)

type Repository interface {
	// Create validates the user, hashes the password and inserts the
	// row. A unique-constraint violation on email maps to
	// common.ErrorDuplicateEmail.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
