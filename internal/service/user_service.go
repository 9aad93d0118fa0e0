package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	errs "indoormap/internal/errors"
	"indoormap/internal/model"
	"indoormap/internal/repository"
)

// UserUpdate carries the optional fields of a partial user update.
type UserUpdate struct {
	Name             *string
	Email            *string
	Password         *string
	Image            *string
	Role             *string
	AccessibilityLvl *int
	Active           *bool
}

// UserService exposes user management operations.
type UserService interface {
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uuid.UUID, upd UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	users repository.UserRepository
}

// NewUserService builds a UserService over the user repository.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Update applies a partial field merge. A password in the update is
// re-hashed before it is stored.
func (s *userService) Update(ctx context.Context, id uuid.UUID, upd UserUpdate) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = string(hashed)
	}
	if upd.Image != nil {
		user.Image = *upd.Image
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	if upd.AccessibilityLvl != nil {
		user.AccessibilityLvl = *upd.AccessibilityLvl
	}
	if upd.Active != nil {
		user.Active = *upd.Active
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}
