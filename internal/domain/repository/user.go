package repository

import (
	"context"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	// GetByContact matches either the email or the phone column.
	GetByContact(ctx context.Context, emailOrPhone string) (*model.User, error)
	// GetAdmin returns the single admin account or ErrNotFound.
	GetAdmin(ctx context.Context) (*model.User, error)
	// SetRole changes the role of a user; an empty passwordHash keeps the current one.
	SetRole(ctx context.Context, id string, role model.Role, passwordHash string) error
	Count(ctx context.Context) (int, error)
}
