package services

import (
	"context"
	"fmt"
	"strings"

	userErrors "github.com/gethelpdesk/helpdesk/users/errors"
	"github.com/gethelpdesk/helpdesk/users/models"
	"github.com/gethelpdesk/helpdesk/users/repository"
)

// UserService defines the interface for end-user operations.
type UserService interface {
	Create(ctx context.Context, params *models.UpsertUserParams) (*models.User, error)
	Get(ctx context.Context, userID int64) (*models.User, error)
	List(ctx context.Context, page, size int) ([]models.User, error)
	Update(ctx context.Context, userID int64, params *models.UpsertUserParams) (*models.User, error)
	Delete(ctx context.Context, userID int64) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new instance of the user service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, params *models.UpsertUserParams) (*models.User, error) {
	if err := validate(params); err != nil {
		return nil, err
	}
	user := &models.User{Email: strings.ToLower(params.Email), Name: params.Name}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, userID int64) (*models.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *userService) List(ctx context.Context, page, size int) ([]models.User, error) {
	if size <= 0 || size > 100 {
		size = 25
	}
	if page < 1 {
		page = 1
	}
	return s.repo.List(ctx, size, (page-1)*size)
}

func (s *userService) Update(ctx context.Context, userID int64, params *models.UpsertUserParams) (*models.User, error) {
	if err := validate(params); err != nil {
		return nil, err
	}
	params.Email = strings.ToLower(params.Email)
	return s.repo.Update(ctx, userID, params)
}

func (s *userService) Delete(ctx context.Context, userID int64) error {
	return s.repo.Delete(ctx, userID)
}

func validate(params *models.UpsertUserParams) error {
	if params == nil || params.Email == "" || !strings.Contains(params.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", userErrors.ErrInvalidUserData)
	}
	if params.Name == "" {
		return fmt.Errorf("%w: name is required", userErrors.ErrInvalidUserData)
	}
	return nil
}
