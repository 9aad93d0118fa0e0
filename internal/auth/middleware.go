package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	errs "indoormap/internal/errors"
	"indoormap/internal/model"
	"indoormap/internal/repository"
)

// HeaderAccessToken is the custom credential header, checked before the
// standard Authorization header. Both carry "<scheme> <token>".
const HeaderAccessToken = "x-access-token"

// Context keys for the resolved identity.
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// Authenticate verifies the request credential and re-resolves the
// caller's current role from the store by the embedded id. The role
// carried inside the token is never trusted for authorization, so role
// changes and revocations take effect without invalidating issued
// tokens. The resolved id and role are attached to the echo context.
func Authenticate(tokens *TokenService, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(HeaderAccessToken)
			if header == "" {
				header = c.Request().Header.Get(echo.HeaderAuthorization)
			}
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, errs.Fail("No tokens provided!"))
			}

			_, raw, found := strings.Cut(header, " ")
			if !found || raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, errs.Fail("Malformed token"))
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				switch {
				case errors.Is(err, ErrTokenExpired):
					return echo.NewHTTPError(http.StatusUnauthorized, errs.Fail("token has expired"))
				case errors.Is(err, ErrTokenMalformed):
					return echo.NewHTTPError(http.StatusUnauthorized, errs.Fail("Malformed token"))
				default:
					return echo.NewHTTPError(http.StatusUnauthorized, errs.Fail("Not authorized!"))
				}
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusNotFound, errs.Fail("Invalid user"))
				}
				return echo.NewHTTPError(http.StatusUnauthorized, errs.Fail("Not authorized!"))
			}

			c.Set(ContextUserID, user.ID)
			c.Set(ContextUserRole, user.Role)
			return next(c)
		}
	}
}

// RequireAdmin gates a route on the role resolved by Authenticate.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get(ContextUserRole).(string)
		if role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusUnauthorized, errs.Fail("User without permission!"))
		}
		return next(c)
	}
}
