package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"indoormap/internal/model"
)

// UserInputRepository defines persistence operations for feedback records.
type UserInputRepository interface {
	Create(ctx context.Context, input *model.UserInput) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserInput, error)
	List(ctx context.Context) ([]model.UserInput, error)
	Update(ctx context.Context, input *model.UserInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userInputRepository struct {
	db *gorm.DB
}

// NewUserInputRepository builds a GORM-backed repository.
func NewUserInputRepository(db *gorm.DB) UserInputRepository {
	return &userInputRepository{db: db}
}

func (r *userInputRepository) Create(ctx context.Context, input *model.UserInput) error {
	return r.db.WithContext(ctx).Create(input).Error
}

func (r *userInputRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserInput, error) {
	var input model.UserInput
	if err := r.db.WithContext(ctx).First(&input, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &input, nil
}

func (r *userInputRepository) List(ctx context.Context) ([]model.UserInput, error) {
	var inputs []model.UserInput
	if err := r.db.WithContext(ctx).Find(&inputs).Error; err != nil {
		return nil, err
	}
	return inputs, nil
}

func (r *userInputRepository) Update(ctx context.Context, input *model.UserInput) error {
	return r.db.WithContext(ctx).Save(input).Error
}

func (r *userInputRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.UserInput{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
