package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"indoormap/internal/model"
	"indoormap/internal/service"
)

// MockUserInputService is a mock implementation of service.UserInputService.
type MockUserInputService struct {
	mock.Mock
}

func (m *MockUserInputService) Create(ctx context.Context, input *model.UserInput) (*model.UserInput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserInput), args.Error(1)
}

func (m *MockUserInputService) Get(ctx context.Context, id uuid.UUID) (*model.UserInput, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserInput), args.Error(1)
}

func (m *MockUserInputService) List(ctx context.Context) ([]model.UserInput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserInput), args.Error(1)
}

func (m *MockUserInputService) Update(ctx context.Context, id uuid.UUID, upd service.UserInputUpdate) (*model.UserInput, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserInput), args.Error(1)
}

func (m *MockUserInputService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestUserInputHandler_Create_Success(t *testing.T) {
	userID := uuid.New()
	inputID := uuid.New()
	svc := new(MockUserInputService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in *model.UserInput) bool {
		return in.UserID == userID && in.Comment == "The elevator is broken" && in.Type == model.InputTypeProblem
	})).Return(&model.UserInput{ID: inputID}, nil)

	h := NewUserInputHandler(svc)
	c, rec := newJSONContext(http.MethodPost, "/userInput",
		fmt.Sprintf(`{"userId":%q,"comment":"The elevator is broken","type":"Problem"}`, userID))

	assert.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "/userInput/"+inputID.String(), body["URL"])
	svc.AssertExpectations(t)
}

func TestUserInputHandler_Create_MissingFields(t *testing.T) {
	userID := uuid.New()
	tests := []struct {
		name        string
		body        string
		expectedMsg string
	}{
		{
			name:        "missing user id",
			body:        `{"comment":"Broken lift","type":"Problem"}`,
			expectedMsg: "User ID is missing",
		},
		{
			name:        "missing comment",
			body:        fmt.Sprintf(`{"userId":%q,"type":"Problem"}`, userID),
			expectedMsg: "Your comment is missing!",
		},
		{
			name:        "missing type",
			body:        fmt.Sprintf(`{"userId":%q,"comment":"Broken lift"}`, userID),
			expectedMsg: "The input type is missing!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUserInputHandler(new(MockUserInputService))
			c, _ := newJSONContext(http.MethodPost, "/userInput", tt.body)

			code, resp := httpFailure(t, h.Create(c))
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Contains(t, resp.Msgs, tt.expectedMsg)
		})
	}
}

func TestUserInputHandler_Create_UnsupportedValues(t *testing.T) {
	userID := uuid.New()

	t.Run("satisfaction level outside the enum", func(t *testing.T) {
		h := NewUserInputHandler(new(MockUserInputService))
		c, _ := newJSONContext(http.MethodPost, "/userInput",
			fmt.Sprintf(`{"userId":%q,"comment":"ok","satisfactionLvl":"Happy","type":"Feedback"}`, userID))

		code, resp := httpFailure(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, resp.Msgs, "Happy is not supported")
	})

	t.Run("type outside the enum", func(t *testing.T) {
		h := NewUserInputHandler(new(MockUserInputService))
		c, _ := newJSONContext(http.MethodPost, "/userInput",
			fmt.Sprintf(`{"userId":%q,"comment":"ok","type":"Complaint"}`, userID))

		code, resp := httpFailure(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, resp.Msgs, "Complaint is not supported")
	})
}

func TestUserInputHandler_Update_NotFound(t *testing.T) {
	missingID := uuid.New()
	svc := new(MockUserInputService)
	svc.On("Update", mock.Anything, missingID, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	h := NewUserInputHandler(svc)
	c, _ := newJSONContext(http.MethodPut, "/", `{"resolved":true}`)
	c.SetPath("/userInput/:id")
	c.SetParamNames("id")
	c.SetParamValues(missingID.String())

	code, _ := httpFailure(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, code)
}

func TestUserInputHandler_Delete_NotFound(t *testing.T) {
	missingID := uuid.New()
	svc := new(MockUserInputService)
	svc.On("Delete", mock.Anything, missingID).Return(gorm.ErrRecordNotFound)

	h := NewUserInputHandler(svc)
	c, _ := newJSONContext(http.MethodDelete, "/", "")
	c.SetPath("/userInput/:id")
	c.SetParamNames("id")
	c.SetParamValues(missingID.String())

	code, _ := httpFailure(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, code)
}
