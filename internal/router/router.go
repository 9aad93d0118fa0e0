package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"indoormap/internal/auth"
	"indoormap/internal/config"
	errs "indoormap/internal/errors"
	"indoormap/internal/handler"
	"indoormap/internal/repository"
	"indoormap/internal/validation"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	users repository.UserRepository,
	userHandler *handler.UserHandler,
	beaconHandler *handler.BeaconHandler,
	userInputHandler *handler.UserInputHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.AllowOrigin},
	}))

	e.Validator = validation.New()

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Welcome Indoor Mapping-API"})
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authenticated := auth.Authenticate(tokens, users)

	// User routes
	u := e.Group("/users")
	u.POST("/register", userHandler.Register)
	u.POST("/login", userHandler.Login)
	u.PATCH("", userHandler.ChangePassword)
	u.GET("", userHandler.List, authenticated, auth.RequireAdmin)
	u.GET("/:id", userHandler.Get, authenticated)
	u.PUT("/:id", userHandler.Update, authenticated)
	u.DELETE("/:id", userHandler.Delete, authenticated)

	// Beacon routes: reads for any authenticated user, mutation admin only
	b := e.Group("/beacons", authenticated)
	b.GET("", beaconHandler.List)
	b.GET("/:id", beaconHandler.Get)
	b.POST("", beaconHandler.Create, auth.RequireAdmin)
	b.PUT("/:id", beaconHandler.Update, auth.RequireAdmin)
	b.DELETE("/:id", beaconHandler.Delete, auth.RequireAdmin)

	// User input routes: listing and deletion admin only
	i := e.Group("/userInput", authenticated)
	i.GET("", userInputHandler.List, auth.RequireAdmin)
	i.POST("", userInputHandler.Create)
	i.GET("/:id", userInputHandler.Get)
	i.PUT("/:id", userInputHandler.Update)
	i.DELETE("/:id", userInputHandler.Delete, auth.RequireAdmin)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, errs.Fail("Route not found"))
	})
}
