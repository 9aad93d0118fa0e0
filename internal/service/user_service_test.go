package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	errs "indoormap/internal/errors"
	"indoormap/internal/model"
)

func TestUserService_Update_PartialMerge(t *testing.T) {
	id := uuid.New()
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, id).Return(&model.User{
		ID:               id,
		Name:             "Ana",
		Email:            "ana@b.com",
		Role:             model.RoleUser,
		AccessibilityLvl: 0,
		Active:           true,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewUserService(repo)
	name := "Ana Maria"
	lvl := 2
	updated, err := svc.Update(context.Background(), id, UserUpdate{Name: &name, AccessibilityLvl: &lvl})

	assert.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, 2, updated.AccessibilityLvl)
	assert.Equal(t, "ana@b.com", updated.Email)
	assert.Equal(t, model.RoleUser, updated.Role)
	repo.AssertExpectations(t)
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	id := uuid.New()
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, id).Return(&model.User{ID: id, Password: "old-hash"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewUserService(repo)
	password := "new-secret"
	updated, err := svc.Update(context.Background(), id, UserUpdate{Password: &password})

	assert.NoError(t, err)
	assert.NotEqual(t, "new-secret", updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("new-secret")))
}

func TestUserService_Update_DuplicateEmail(t *testing.T) {
	id := uuid.New()
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, id).Return(&model.User{ID: id, Email: "ana@b.com"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	svc := NewUserService(repo)
	email := "taken@b.com"
	_, err := svc.Update(context.Background(), id, UserUpdate{Email: &email})

	assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
}

func TestUserService_Update_NotFound(t *testing.T) {
	id := uuid.New()
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(repo)
	name := "Ana"
	_, err := svc.Update(context.Background(), id, UserUpdate{Name: &name})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	repo.AssertNotCalled(t, "Update")
}
