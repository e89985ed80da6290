// Package account mirrors gold balances into the external account aggregate
package account

//go:generate mockgen -destination=mock/mock_client.go -package=accountmock github.com/KirkDiggler/cardastika-api/internal/clients/account Client

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/cardastika-api/internal/errors"
	redisclient "github.com/KirkDiggler/cardastika-api/internal/redis"
)

const (
	accountKeyPrefix = "account:"

	// GoldField is the hash field holding the account's gold
	GoldField = "gold"
)

// Client defines the interface for the account aggregate
type Client interface {
	// UpdateGold overwrites the account's gold.
	// Returns errors.NotFound when the owner has no account aggregate.
	UpdateGold(ctx context.Context, ownerID string, gold int64) error
}

// updateGoldScript writes the field only when the hash already exists
var updateGoldScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
	return 1
end
return 0
`)

// Config contains configuration for the Redis account client
type Config struct {
	Client redisclient.Client
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisClient struct {
	client redisclient.Client
}

// NewRedis creates an account client over the shared Redis
func NewRedis(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisClient{client: cfg.Client}, nil
}

func (c *redisClient) UpdateGold(ctx context.Context, ownerID string, gold int64) error {
	if ownerID == "" {
		return errors.InvalidArgument("owner ID cannot be empty")
	}

	written, err := updateGoldScript.Run(ctx, c.client, []string{GetKey(ownerID)}, GoldField, gold).Int()
	if err != nil {
		return errors.Wrapf(err, "failed to update account gold for owner %s", ownerID)
	}
	if written == 0 {
		return errors.NotFoundf("account for owner %s not found", ownerID)
	}
	return nil
}

// GetKey returns the Redis key of an owner's account hash
func GetKey(ownerID string) string {
	return fmt.Sprintf("%s%s", accountKeyPrefix, ownerID)
}
