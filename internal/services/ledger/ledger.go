package ledger

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/cardastika-api/internal/clients/account"
	"github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/errors"
	"github.com/KirkDiggler/cardastika-api/internal/pkg/clock"
	"github.com/KirkDiggler/cardastika-api/internal/pkg/lockreg"
	equipmentrepo "github.com/KirkDiggler/cardastika-api/internal/repositories/equipment"
	goldrepo "github.com/KirkDiggler/cardastika-api/internal/repositories/gold"
)

// Config holds the dependencies for the ledger. AccountClient is optional.
type Config struct {
	EquipmentRepo equipmentrepo.Repository
	GoldRepo      goldrepo.Repository
	AccountClient account.Client
	Normalizer    *equipment.Normalizer
	Clock         clock.Clock
	Locks         *lockreg.Registry
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()

	if c.EquipmentRepo == nil {
		vb.RequiredField("EquipmentRepo")
	}
	if c.GoldRepo == nil {
		vb.RequiredField("GoldRepo")
	}
	if c.Normalizer == nil {
		vb.RequiredField("Normalizer")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Locks == nil {
		vb.RequiredField("Locks")
	}

	return vb.Build()
}

type ledger struct {
	equipmentRepo equipmentrepo.Repository
	goldRepo      goldrepo.Repository
	accountClient account.Client
	normalizer    *equipment.Normalizer
	clock         clock.Clock
	locks         *lockreg.Registry
}

// New creates a ledger
func New(cfg *Config) (Ledger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &ledger{
		equipmentRepo: cfg.EquipmentRepo,
		goldRepo:      cfg.GoldRepo,
		accountClient: cfg.AccountClient,
		normalizer:    cfg.Normalizer,
		clock:         cfg.Clock,
		locks:         cfg.Locks,
	}, nil
}

func (l *ledger) Lock(ownerID string) func() {
	return l.locks.Lock(ownerID)
}

func (l *ledger) LoadState(ctx context.Context, ownerID string) (*equipment.State, error) {
	out, err := l.equipmentRepo.Get(ctx, equipmentrepo.GetInput{OwnerID: ownerID})
	switch {
	case err == nil:
		return out.State, nil
	case errors.IsNotFound(err):
		return l.normalizer.EmptyState(), nil
	case errors.IsDataLoss(err):
		slog.Warn("discarding corrupt equipment state", "owner_id", ownerID, "error", err)
		return l.normalizer.EmptyState(), nil
	default:
		return nil, errors.Wrapf(err, "failed to load equipment state for owner %s", ownerID)
	}
}

func (l *ledger) SaveState(ctx context.Context, ownerID string, state *equipment.State) (*equipment.State, error) {
	out, err := l.equipmentRepo.Update(ctx, equipmentrepo.UpdateInput{OwnerID: ownerID, State: l.stamp(state)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save equipment state for owner %s", ownerID)
	}
	return out.State, nil
}

func (l *ledger) Commit(
	ctx context.Context,
	ownerID string,
	state *equipment.State,
	gold int64,
) (*equipment.State, int64, error) {
	out, err := l.equipmentRepo.Commit(ctx, equipmentrepo.CommitInput{
		OwnerID: ownerID,
		State:   l.stamp(state),
		Gold:    gold,
	})
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to commit equipment and gold for owner %s", ownerID)
	}

	l.mirrorGold(ctx, ownerID, out.Gold)
	return out.State, out.Gold, nil
}

func (l *ledger) stamp(state *equipment.State) *equipment.State {
	normalized := l.normalizer.State(state)
	normalized.UpdatedAt = clock.UnixMilli(l.clock)
	return normalized
}

func (l *ledger) ReadGold(ctx context.Context, ownerID string) (int64, error) {
	out, err := l.goldRepo.Get(ctx, goldrepo.GetInput{OwnerID: ownerID})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read gold for owner %s", ownerID)
	}
	return out.Gold, nil
}

// mirrorGold copies the balance into the account aggregate. Failures are not fatal.
func (l *ledger) mirrorGold(ctx context.Context, ownerID string, gold int64) {
	if l.accountClient == nil {
		return
	}
	if err := l.accountClient.UpdateGold(ctx, ownerID, gold); err != nil {
		slog.Debug("account gold not mirrored", "owner_id", ownerID, "gold", gold, "error", err)
	}
}
