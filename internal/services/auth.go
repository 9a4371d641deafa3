package services

import (
	"context"
	"errors"
	"strings"

	"github.com/taskhub-dev/taskhub/internal/models"
	"github.com/taskhub-dev/taskhub/internal/repositories"
	"github.com/taskhub-dev/taskhub/internal/types"
)

// RegisterUser persists a new user with a trimmed name and email. Name and
// email must both be unique; the duplicate checks are case-sensitive.
func (s *Service) RegisterUser(ctx context.Context, name, email string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" {
		return validationError("Name and email are required")
	}

	nameTaken, err := s.users.ExistsByName(ctx, name)

	if err != nil {
		return err
	}

	if nameTaken {
		return conflictError("User name already exists")
	}

	emailTaken, err := s.users.ExistsByEmail(ctx, email)

	if err != nil {
		return err
	}

	if emailTaken {
		return conflictError("Email already exists")
	}

	user := models.User{
		Name:  name,
		Email: email,
	}

	return s.users.Create(ctx, &user)
}

// LoginUser is a weak identity check, not real authentication: the name is
// looked up case-insensitively and the stored email must match the supplied
// one, also case-insensitively.
func (s *Service) LoginUser(ctx context.Context, name, email string) (types.UserResponse, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" {
		return types.UserResponse{}, validationError("Name and email are required")
	}

	user, err := s.users.FindByNameIgnoreCase(ctx, name)

	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return types.UserResponse{}, notFoundError("User not found")
		}
		return types.UserResponse{}, err
	}

	if !strings.EqualFold(user.Email, email) {
		return types.UserResponse{}, unauthorizedError("Invalid email")
	}

	return types.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
