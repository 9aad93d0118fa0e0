package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"indoormap/internal/auth"
	errs "indoormap/internal/errors"
	"indoormap/internal/model"
	"indoormap/internal/service"
	"indoormap/internal/validation"
)

// UserHandler bundles user endpoints.
type UserHandler struct {
	authService service.AuthService
	userService service.UserService
}

// NewUserHandler creates the user handler layer.
func NewUserHandler(authService service.AuthService, userService service.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
	AccessibilityLvl *int   `json:"accessibilityLvl" validate:"required,oneof=0 1 2"`
}

var registerMessages = map[string]string{
	"Name":             "The name is missing!",
	"Email":            "Your email is missing!",
	"Password":         "A password is missing!",
	"AccessibilityLvl": "Your level of accessibility is lacking",
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest represents a partial user update.
type UpdateUserRequest struct {
	Name             *string `json:"name"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Password         *string `json:"password"`
	Image            *string `json:"image"`
	Role             *string `json:"role" validate:"omitempty,oneof=user admin"`
	AccessibilityLvl *int    `json:"accessibilityLvl" validate:"omitempty,oneof=0 1 2"`
	Active           *bool   `json:"active"`
}

// ChangePasswordRequest represents a password change by email.
type ChangePasswordRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PublicUser is the projection returned by the user listing: no email,
// no password hash.
type PublicUser struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	Image            string    `json:"image"`
	AccessibilityLvl int       `json:"accessibilityLvl"`
	Active           bool      `json:"active"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.FailAll(validation.Messages(err, registerMessages)))
	}

	user, err := h.authService.Register(
		c.Request().Context(),
		validation.Sanitize(req.Name),
		req.Email,
		req.Password,
		*req.AccessibilityLvl,
	)
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateEmail) {
			return echo.NewHTTPError(http.StatusBadRequest, errs.FailAll([]string{"The email is already registered!"}))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail("An error occurred while creating the user."))
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"msg":     "User was registered successfully.",
		"URL":     fmt.Sprintf("/users/%s", user.ID),
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.FailAll(validation.Messages(err, registerMessages)))
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidEmail):
			return echo.NewHTTPError(http.StatusNotFound, errs.Fail("Invalid email"))
		case errors.Is(err, errs.ErrIncorrectPassword):
			return echo.NewHTTPError(http.StatusUnauthorized, errs.Fail("Password is incorrect"))
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail("An error occurred while logging in."))
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   token,
		"id":      user.ID,
		"role":    user.Role,
	})
}

// List godoc
// @Summary List all users (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} PublicUser
// @Failure 401 {object} errors.Response
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail("An error occurred while retrieving users."))
	}

	public := make([]PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, PublicUser{
			ID:               u.ID,
			Name:             u.Name,
			Role:             u.Role,
			Image:            u.Image,
			AccessibilityLvl: u.AccessibilityLvl,
			Active:           u.Active,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "users": public})
}

// Get godoc
// @Summary Get a user by id (self or admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 403 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("Invalid user ID"))
	}

	callerID, _ := c.Get(auth.ContextUserID).(uuid.UUID)
	callerRole, _ := c.Get(auth.ContextUserRole).(string)
	if callerID != id && callerRole != model.RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, errs.Fail("User without permission!"))
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, errs.Fail(fmt.Sprintf("Could not find any user with the ID %s.", id)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail(fmt.Sprintf("Error retrieving user ID %s.", id)))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
}

// Update godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("Invalid user ID"))
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.FailAll(validation.Messages(err, registerMessages)))
	}

	upd := service.UserUpdate{
		Email:            req.Email,
		Password:         req.Password,
		Image:            req.Image,
		Role:             req.Role,
		AccessibilityLvl: req.AccessibilityLvl,
		Active:           req.Active,
	}
	if req.Name != nil {
		name := validation.Sanitize(*req.Name)
		upd.Name = &name
	}

	if _, err := h.userService.Update(c.Request().Context(), id, upd); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return echo.NewHTTPError(http.StatusNotFound, errs.Fail(fmt.Sprintf("Cannot update user with id=%s. Check if user exists!", id)))
		case errors.Is(err, errs.ErrDuplicateEmail):
			return echo.NewHTTPError(http.StatusBadRequest, errs.FailAll([]string{"The email is already registered!"}))
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail(fmt.Sprintf("Error when changing user ID %s.", id)))
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "msg": fmt.Sprintf("User id=%s has been updated successfully!", id)})
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("Invalid user ID"))
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, errs.Fail(fmt.Sprintf("It is not possible to delete the user with id=%s. Perhaps the user was not found!", id)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail(fmt.Sprintf("Error deleting user with ID %s.", id)))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "msg": fmt.Sprintf("User with id=%s was successfully deleted", id)})
}

// ChangePassword godoc
// @Summary Change a user's password by email
// @Tags users
// @Accept json
// @Produce json
// @Param email query string true "User email"
// @Param request body ChangePasswordRequest true "New name and password"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /users [patch]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	emailQuery := struct {
		Email string `validate:"required,email"`
	}{Email: c.QueryParam("email")}
	if err := c.Validate(&emailQuery); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.FailAll(validation.Messages(err, registerMessages)))
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.FailAll(validation.Messages(err, registerMessages)))
	}

	err := h.authService.ChangePassword(c.Request().Context(), emailQuery.Email, validation.Sanitize(req.Name), req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, errs.Fail(fmt.Sprintf("Could not find any user with the email %s.", emailQuery.Email)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail("An error occurred while changing the password."))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "msg": "Password was changed successfully."})
}
