package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gethelpdesk/helpdesk/internal/database/postgres"
	userErrors "github.com/gethelpdesk/helpdesk/users/errors"
	"github.com/gethelpdesk/helpdesk/users/models"
)

type postgresUserRepository struct {
	client *postgres.Client
}

// NewPostgresUserRepository creates a new PostgreSQL user repository.
func NewPostgresUserRepository(client *postgres.Client) UserRepository {
	return &postgresUserRepository{client: client}
}

func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, name)
		VALUES ($1, $2)
		RETURNING user_id, updated, created`
	err := r.client.Executor(ctx).QueryRowxContext(ctx, query, user.Email, user.Name).
		Scan(&user.UserID, &user.Updated, &user.Created)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *postgresUserRepository) FindByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	query := `SELECT user_id, email, name, updated, created FROM users WHERE user_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &user, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%d", userErrors.ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `SELECT user_id, email, name, updated, created FROM users WHERE email = $1 ORDER BY user_id LIMIT 1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: email=%s", userErrors.ErrUserNotFound, email)
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

func (r *postgresUserRepository) FindOrCreateByEmail(ctx context.Context, email, name string) (*models.User, error) {
	user, err := r.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, userErrors.ErrUserNotFound) {
		return nil, err
	}

	created := &models.User{Email: email, Name: name}
	if err := r.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *postgresUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	users := []models.User{}
	query := `SELECT user_id, email, name, updated, created FROM users ORDER BY user_id LIMIT $1 OFFSET $2`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &users, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *postgresUserRepository) Update(ctx context.Context, userID int64, params *models.UpsertUserParams) (*models.User, error) {
	var user models.User
	query := `
		UPDATE users SET email = $1, name = $2, updated = NOW()
		WHERE user_id = $3
		RETURNING user_id, email, name, updated, created`
	err := r.client.Executor(ctx).QueryRowxContext(ctx, query, params.Email, params.Name, userID).
		StructScan(&user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%d", userErrors.ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

func (r *postgresUserRepository) Delete(ctx context.Context, userID int64) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", userErrors.ErrUserNotFound, userID)
	}
	return nil
}
