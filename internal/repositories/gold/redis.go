package gold

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/cardastika-api/internal/errors"
	redisclient "github.com/KirkDiggler/cardastika-api/internal/redis"
)

const (
	goldKeyPrefix = "gold:owner:"

	errOwnerIDEmpty = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis gold repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed gold repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.OwnerID)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return &GetOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get gold for owner %s", input.OwnerID)
	}

	return &GetOutput{Gold: parseGold(result)}, nil
}

// Format clamps a balance at 0 and renders it the way it is stored
func Format(gold int64) (int64, string) {
	value := max(0, gold)
	return value, strconv.FormatInt(value, 10)
}

// parseGold reads a stored balance leniently: fractional values are rounded and
// anything that is not a finite number is 0.
func parseGold(raw string) int64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return max(0, int64(math.Floor(f+0.5)))
}

// GetKey returns the Redis key for an owner's gold
func GetKey(ownerID string) string {
	return fmt.Sprintf("%s%s", goldKeyPrefix, ownerID)
}
