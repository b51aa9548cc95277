package repositories

import (
	"context"

	"mealkit/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create returns ErrConflict when the name or email is taken.
	Create(ctx context.Context, user *models.User) error
	GetByName(ctx context.Context, name string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
