package main

import (
	"log"
	"net/http"

	_ "indoormap/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"indoormap/internal/auth"
	"indoormap/internal/cache"
	"indoormap/internal/config"
	"indoormap/internal/db"
	"indoormap/internal/handler"
	"indoormap/internal/model"
	"indoormap/internal/repository"
	"indoormap/internal/router"
	"indoormap/internal/service"
)

// @title Indoor Mapping API
// @version 1.0
// @description REST backend for the indoor-mapping application: users, beacons and user feedback with JWT authentication.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token, also accepted in the x-access-token header. Value format: "<scheme> <token>".
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Beacon{},
		&model.UserInput{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	beaconRepo := repository.NewBeaconRepository(gormDB)
	inputRepo := repository.NewUserInputRepository(gormDB)

	// Auth
	tokenService := auth.NewTokenService(cfg.JWTSecret)

	// Services
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo)
	beaconService := service.NewBeaconService(beaconRepo, cacheClient)
	inputService := service.NewUserInputService(inputRepo)

	// Handlers
	userHandler := handler.NewUserHandler(authService, userService)
	beaconHandler := handler.NewBeaconHandler(beaconService)
	inputHandler := handler.NewUserInputHandler(inputService)

	router.Register(e, cfg, tokenService, userRepo, userHandler, beaconHandler, inputHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
