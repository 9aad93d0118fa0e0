package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"indoormap/internal/model"
	"indoormap/internal/repository"
)

// UserInputUpdate carries the optional fields of a partial feedback
// update. Answers, when present, replaces the stored list.
type UserInputUpdate struct {
	Comment         *string
	SatisfactionLvl *string
	Answers         *[]string
	Type            *string
	Resolved        *bool
}

// UserInputService exposes feedback record operations.
type UserInputService interface {
	Create(ctx context.Context, input *model.UserInput) (*model.UserInput, error)
	Get(ctx context.Context, id uuid.UUID) (*model.UserInput, error)
	List(ctx context.Context) ([]model.UserInput, error)
	Update(ctx context.Context, id uuid.UUID, upd UserInputUpdate) (*model.UserInput, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userInputService struct {
	inputs repository.UserInputRepository
}

// NewUserInputService builds a UserInputService over the repository.
func NewUserInputService(inputs repository.UserInputRepository) UserInputService {
	return &userInputService{inputs: inputs}
}

// Create persists a new feedback record. The submission date, the empty
// answer list and the unresolved state are set server-side.
func (s *userInputService) Create(ctx context.Context, input *model.UserInput) (*model.UserInput, error) {
	input.Date = time.Now().Format(time.RFC3339)
	input.Answers = model.StringList{}
	input.Resolved = false
	if input.SatisfactionLvl == "" {
		input.SatisfactionLvl = model.SatisfactionNeutral
	}
	if err := s.inputs.Create(ctx, input); err != nil {
		return nil, err
	}
	return input, nil
}

func (s *userInputService) Get(ctx context.Context, id uuid.UUID) (*model.UserInput, error) {
	return s.inputs.FindByID(ctx, id)
}

func (s *userInputService) List(ctx context.Context) ([]model.UserInput, error) {
	return s.inputs.List(ctx)
}

func (s *userInputService) Update(ctx context.Context, id uuid.UUID, upd UserInputUpdate) (*model.UserInput, error) {
	input, err := s.inputs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Comment != nil {
		input.Comment = *upd.Comment
	}
	if upd.SatisfactionLvl != nil {
		input.SatisfactionLvl = *upd.SatisfactionLvl
	}
	if upd.Answers != nil {
		input.Answers = model.StringList(*upd.Answers)
	}
	if upd.Type != nil {
		input.Type = *upd.Type
	}
	if upd.Resolved != nil {
		input.Resolved = *upd.Resolved
	}

	if err := s.inputs.Update(ctx, input); err != nil {
		return nil, err
	}
	return input, nil
}

func (s *userInputService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.inputs.Delete(ctx, id)
}
