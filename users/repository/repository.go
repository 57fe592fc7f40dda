package repository

import (
	"context"

	"github.com/gethelpdesk/helpdesk/users/models"
)

// UserRepository defines the interface for end-user database operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, userID int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindOrCreateByEmail matches an existing user by email or inserts a
	// new row; ticket creation goes through this.
	FindOrCreateByEmail(ctx context.Context, email, name string) (*models.User, error)

	List(ctx context.Context, limit, offset int) ([]models.User, error)
	Update(ctx context.Context, userID int64, params *models.UpsertUserParams) (*models.User, error)
	Delete(ctx context.Context, userID int64) error
}
