package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/constants"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/go-redis/redis/v8"
)

// RideCache stores ride search results in Redis under a generation number
type RideCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRideCache(client *redis.Client, ttl time.Duration) *RideCache {
	return &RideCache{client: client, ttl: ttl}
}

func searchKey(version int64, destination string) string {
	return fmt.Sprintf(constants.KeyRideSearch, version, strings.ToLower(strings.TrimSpace(destination)))
}

// Version returns the current generation, zero before the first ride write
func (c *RideCache) Version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, constants.KeyRideSearchVersion).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read search cache version: %w", err)
	}
	return v, nil
}

func (c *RideCache) GetSearch(ctx context.Context, version int64, destination string) ([]*models.Ride, bool, error) {
	data, err := c.client.Get(ctx, searchKey(version, destination)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read search cache: %w", err)
	}

	var rides []*models.Ride
	if err := json.Unmarshal(data, &rides); err != nil {
		return nil, false, fmt.Errorf("failed to decode search cache: %w", err)
	}
	return rides, true, nil
}

func (c *RideCache) SetSearch(ctx context.Context, version int64, destination string, rides []*models.Ride) error {
	data, err := json.Marshal(rides)
	if err != nil {
		return fmt.Errorf("failed to encode search cache: %w", err)
	}
	if err := c.client.Set(ctx, searchKey(version, destination), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write search cache: %w", err)
	}
	return nil
}

// Invalidate bumps the generation; entries of older generations expire on their own
func (c *RideCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, constants.KeyRideSearchVersion).Err(); err != nil {
		return fmt.Errorf("failed to invalidate search cache: %w", err)
	}
	return nil
}
