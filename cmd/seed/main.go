package main

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"indoormap/internal/config"
	"indoormap/internal/db"
	"indoormap/internal/model"
	"indoormap/internal/repository"
)

const (
	adminEmail    = "admin@indoormap.local"
	adminPassword = "change-me-too"
)

var demoBeacons = []model.Beacon{
	{PositionX: decimal.NewFromInt(0), PositionY: decimal.NewFromInt(0), Floor: 0, LocationType: "entrance", InDoor: false},
	{PositionX: decimal.NewFromFloat(12.5), PositionY: decimal.NewFromFloat(4.25), Floor: 1, LocationType: "elevator", InDoor: true},
	{PositionX: decimal.NewFromFloat(3.75), PositionY: decimal.NewFromFloat(18.5), Floor: 1, LocationType: "stairs", InDoor: true},
	{PositionX: decimal.NewFromFloat(22.0), PositionY: decimal.NewFromFloat(9.0), Floor: 2, LocationType: "restroom", InDoor: true},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Beacon{}, &model.UserInput{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	beacons := repository.NewBeaconRepository(gormDB)

	if err := seedAdmin(ctx, users); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if err := seedBeacons(ctx, gormDB, beacons); err != nil {
		log.Fatalf("Failed to seed beacons: %v", err)
	}

	log.Println("Seed completed")
}

func seedAdmin(ctx context.Context, users repository.UserRepository) error {
	_, err := users.FindByEmail(ctx, adminEmail)
	if err == nil {
		log.Printf("Admin %s already present, skipping", adminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &model.User{
		Name:             "admin",
		Email:            adminEmail,
		Password:         string(hashed),
		Role:             model.RoleAdmin,
		Active:           true,
		AccessibilityLvl: model.AccessibilityNone,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Seeded admin %s (id=%s)", adminEmail, admin.ID)
	return nil
}

func seedBeacons(ctx context.Context, gormDB *gorm.DB, beacons repository.BeaconRepository) error {
	var count int64
	if err := gormDB.WithContext(ctx).Model(&model.Beacon{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Beacons already present (%d), skipping", count)
		return nil
	}

	for i := range demoBeacons {
		b := demoBeacons[i]
		if err := beacons.Create(ctx, &b); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d demo beacons", len(demoBeacons))
	return nil
}
