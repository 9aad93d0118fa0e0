package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"indoormap/internal/cache"
	"indoormap/internal/model"
	"indoormap/internal/repository"
)

const (
	beaconCacheTTL     = 5 * time.Minute
	beaconListCacheKey = "beacons:all"
)

// BeaconUpdate carries the optional fields of a partial beacon update.
// Position, when present, must be a full [x, y] pair.
type BeaconUpdate struct {
	Position     []decimal.Decimal
	Floor        *int
	LocationType *string
	InDoor       *bool
}

// BeaconService exposes beacon catalogue operations backed by the store
// with a Redis read cache.
type BeaconService interface {
	Create(ctx context.Context, beacon *model.Beacon) (*model.Beacon, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Beacon, error)
	List(ctx context.Context) ([]model.Beacon, error)
	Update(ctx context.Context, id uuid.UUID, upd BeaconUpdate) (*model.Beacon, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type beaconService struct {
	beacons repository.BeaconRepository
	cache   *cache.Client
}

// NewBeaconService builds a BeaconService with repository and cache.
func NewBeaconService(beacons repository.BeaconRepository, cache *cache.Client) BeaconService {
	return &beaconService{beacons: beacons, cache: cache}
}

func beaconCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("beacon:%s", id)
}

func (s *beaconService) Create(ctx context.Context, beacon *model.Beacon) (*model.Beacon, error) {
	if err := s.beacons.Create(ctx, beacon); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, beaconListCacheKey)
	return beacon, nil
}

func (s *beaconService) Get(ctx context.Context, id uuid.UUID) (*model.Beacon, error) {
	if data, _ := s.cache.Get(ctx, beaconCacheKey(id)); data != nil {
		var cached model.Beacon
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	beacon, err := s.beacons.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(beacon); err == nil {
		_ = s.cache.Set(ctx, beaconCacheKey(id), payload, beaconCacheTTL)
	}
	return beacon, nil
}

func (s *beaconService) List(ctx context.Context) ([]model.Beacon, error) {
	if data, _ := s.cache.Get(ctx, beaconListCacheKey); data != nil {
		var cached []model.Beacon
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	beacons, err := s.beacons.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(beacons); err == nil {
		_ = s.cache.Set(ctx, beaconListCacheKey, payload, beaconCacheTTL)
	}
	return beacons, nil
}

func (s *beaconService) Update(ctx context.Context, id uuid.UUID, upd BeaconUpdate) (*model.Beacon, error) {
	beacon, err := s.beacons.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(upd.Position) == 2 {
		beacon.PositionX = upd.Position[0]
		beacon.PositionY = upd.Position[1]
	}
	if upd.Floor != nil {
		beacon.Floor = *upd.Floor
	}
	if upd.LocationType != nil {
		beacon.LocationType = *upd.LocationType
	}
	if upd.InDoor != nil {
		beacon.InDoor = *upd.InDoor
	}

	if err := s.beacons.Update(ctx, beacon); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, beaconListCacheKey, beaconCacheKey(id))
	return beacon, nil
}

func (s *beaconService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.beacons.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, beaconListCacheKey, beaconCacheKey(id))
	return nil
}
