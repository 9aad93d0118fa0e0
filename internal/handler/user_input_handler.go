package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	errs "indoormap/internal/errors"
	"indoormap/internal/model"
	"indoormap/internal/service"
	"indoormap/internal/validation"
)

// UserInputHandler bundles feedback endpoints.
type UserInputHandler struct {
	inputService service.UserInputService
}

// NewUserInputHandler creates the feedback handler layer.
func NewUserInputHandler(inputService service.UserInputService) *UserInputHandler {
	return &UserInputHandler{inputService: inputService}
}

// CreateUserInputRequest represents a feedback submission.
type CreateUserInputRequest struct {
	UserID          uuid.UUID `json:"userId" validate:"required"`
	Comment         string    `json:"comment" validate:"required"`
	SatisfactionLvl string    `json:"satisfactionLvl" validate:"omitempty,oneof=Neutral 'Not satisfied' Satisfied"`
	Type            string    `json:"type" validate:"required,oneof=Problem Feedback"`
}

// UpdateUserInputRequest represents a partial feedback update.
type UpdateUserInputRequest struct {
	Comment         *string   `json:"comment"`
	SatisfactionLvl *string   `json:"satisfactionLvl" validate:"omitempty,oneof=Neutral 'Not satisfied' Satisfied"`
	Answers         *[]string `json:"answers"`
	Type            *string   `json:"type" validate:"omitempty,oneof=Problem Feedback"`
	Resolved        *bool     `json:"resolved"`
}

var userInputMessages = map[string]string{
	"UserID":  "User ID is missing",
	"Comment": "Your comment is missing!",
	"Type":    "The input type is missing!",
}

// Create godoc
// @Summary Submit feedback or a problem report
// @Tags userInput
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserInputRequest true "Feedback data"
// @Success 201 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /userInput [post]
func (h *UserInputHandler) Create(c echo.Context) error {
	var req CreateUserInputRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.FailAll(validation.Messages(err, userInputMessages)))
	}

	input := &model.UserInput{
		UserID:          req.UserID,
		Comment:         validation.Sanitize(req.Comment),
		SatisfactionLvl: req.SatisfactionLvl,
		Type:            req.Type,
	}
	created, err := h.inputService.Create(c.Request().Context(), input)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail("An error occurred while creating the user input."))
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"msg":     "User input was added successfully.",
		"URL":     fmt.Sprintf("/userInput/%s", created.ID),
	})
}

// List godoc
// @Summary List all feedback records (admin only)
// @Tags userInput
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UserInput
// @Failure 401 {object} errors.Response
// @Router /userInput [get]
func (h *UserInputHandler) List(c echo.Context) error {
	inputs, err := h.inputService.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail("An error occurred while retrieving user inputs."))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "userInput": inputs})
}

// Get godoc
// @Summary Get a feedback record by id
// @Tags userInput
// @Produce json
// @Security BearerAuth
// @Param id path string true "User input ID"
// @Success 200 {object} model.UserInput
// @Failure 404 {object} errors.Response
// @Router /userInput/{id} [get]
func (h *UserInputHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("Invalid user input ID"))
	}

	input, err := h.inputService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, errs.Fail(fmt.Sprintf("Could not find any user input with the ID %s.", id)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail(fmt.Sprintf("Error retrieving user input ID %s.", id)))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "userInput": input})
}

// Update godoc
// @Summary Update a feedback record
// @Tags userInput
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User input ID"
// @Param request body UpdateUserInputRequest true "Fields to change"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /userInput/{id} [put]
func (h *UserInputHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("Invalid user input ID"))
	}

	var req UpdateUserInputRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.FailAll(validation.Messages(err, userInputMessages)))
	}

	upd := service.UserInputUpdate{
		SatisfactionLvl: req.SatisfactionLvl,
		Answers:         req.Answers,
		Type:            req.Type,
		Resolved:        req.Resolved,
	}
	if req.Comment != nil {
		comment := validation.Sanitize(*req.Comment)
		upd.Comment = &comment
	}

	if _, err := h.inputService.Update(c.Request().Context(), id, upd); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, errs.Fail(fmt.Sprintf("Cannot update user input with id=%s. Check if user input exists!", id)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail(fmt.Sprintf("Error when changing user input with the ID %s.", id)))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "msg": fmt.Sprintf("User input id=%s has been updated successfully!", id)})
}

// Delete godoc
// @Summary Delete a feedback record (admin only)
// @Tags userInput
// @Produce json
// @Security BearerAuth
// @Param id path string true "User input ID"
// @Success 200 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /userInput/{id} [delete]
func (h *UserInputHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("Invalid user input ID"))
	}

	if err := h.inputService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, errs.Fail(fmt.Sprintf("It is not possible to delete the user input with id=%s. Perhaps the user input was not found!", id)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail(fmt.Sprintf("Error deleting user input with ID %s.", id)))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "msg": fmt.Sprintf("User input with id=%s was successfully deleted", id)})
}
