package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"indoormap/internal/model"
)

// BeaconRepository defines persistence operations for beacons.
type BeaconRepository interface {
	Create(ctx context.Context, beacon *model.Beacon) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Beacon, error)
	List(ctx context.Context) ([]model.Beacon, error)
	Update(ctx context.Context, beacon *model.Beacon) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type beaconRepository struct {
	db *gorm.DB
}

// NewBeaconRepository builds a GORM-backed repository.
func NewBeaconRepository(db *gorm.DB) BeaconRepository {
	return &beaconRepository{db: db}
}

func (r *beaconRepository) Create(ctx context.Context, beacon *model.Beacon) error {
	return r.db.WithContext(ctx).Create(beacon).Error
}

func (r *beaconRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Beacon, error) {
	var beacon model.Beacon
	if err := r.db.WithContext(ctx).First(&beacon, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &beacon, nil
}

func (r *beaconRepository) List(ctx context.Context) ([]model.Beacon, error) {
	var beacons []model.Beacon
	if err := r.db.WithContext(ctx).Find(&beacons).Error; err != nil {
		return nil, err
	}
	return beacons, nil
}

func (r *beaconRepository) Update(ctx context.Context, beacon *model.Beacon) error {
	return r.db.WithContext(ctx).Save(beacon).Error
}

func (r *beaconRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Beacon{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
