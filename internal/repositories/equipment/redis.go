package equipment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/errors"
	redisclient "github.com/KirkDiggler/cardastika-api/internal/redis"
	goldrepo "github.com/KirkDiggler/cardastika-api/internal/repositories/gold"
)

const (
	equipmentKeyPrefix = "equipment:owner:"

	// Error messages
	errOwnerIDEmpty = "owner ID cannot be empty"
)

type redisRepository struct {
	client     redisclient.Client
	normalizer *equipment.Normalizer
}

// RedisConfig contains configuration for the Redis equipment repository.
type RedisConfig struct {
	Client     redisclient.Client
	Normalizer *equipment.Normalizer
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.Normalizer == nil {
		vb.RequiredField("Normalizer")
	}
	return vb.Build()
}

// NewRedis creates a new Redis-backed equipment repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client:     cfg.Client,
		normalizer: cfg.Normalizer,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.OwnerID)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("equipment for owner %s not found", input.OwnerID)
		}
		return nil, errors.Wrapf(err, "failed to get equipment for owner %s", input.OwnerID)
	}

	if !json.Valid(result) {
		return nil, errors.DataLossf("equipment for owner %s is not valid JSON", input.OwnerID).
			WithMeta("owner_id", input.OwnerID).
			WithMeta("size", len(result))
	}

	return &GetOutput{State: r.normalizer.DecodeState(result)}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.State == nil {
		return nil, errors.InvalidArgument("state cannot be nil")
	}

	jsonData, err := json.Marshal(input.State)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal equipment state")
	}

	if err := r.client.Set(ctx, GetKey(input.OwnerID), jsonData, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update equipment for owner %s", input.OwnerID)
	}

	return &UpdateOutput{State: input.State}, nil
}

func (r *redisRepository) Commit(ctx context.Context, input CommitInput) (*CommitOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.State == nil {
		return nil, errors.InvalidArgument("state cannot be nil")
	}

	jsonData, err := json.Marshal(input.State)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal equipment state")
	}
	gold, rawGold := goldrepo.Format(input.Gold)

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, GetKey(input.OwnerID), jsonData, 0)
	pipe.Set(ctx, goldrepo.GetKey(input.OwnerID), rawGold, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to commit equipment and gold for owner %s", input.OwnerID)
	}

	return &CommitOutput{State: input.State, Gold: gold}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	removed, err := r.client.Del(ctx, GetKey(input.OwnerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete equipment for owner %s", input.OwnerID)
	}
	if removed == 0 {
		return nil, errors.NotFoundf("equipment for owner %s not found", input.OwnerID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListOwners(ctx context.Context, _ ListOwnersInput) (*ListOwnersOutput, error) {
	var ownerIDs []string

	iter := r.client.Scan(ctx, 0, equipmentKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ownerIDs = append(ownerIDs, strings.TrimPrefix(iter.Val(), equipmentKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan equipment keys")
	}

	return &ListOwnersOutput{OwnerIDs: ownerIDs}, nil
}

// GetKey returns the Redis key for an owner's equipment state
// Exposed for testing purposes
func GetKey(ownerID string) string {
	return fmt.Sprintf("%s%s", equipmentKeyPrefix, ownerID)
}
