// Package ledger owns the load and save policy for an owner's equipment state and gold
// balance. Every orchestrator that mutates either goes through it.
package ledger

//go:generate mockgen -destination=mock/mock_ledger.go -package=ledgermock github.com/KirkDiggler/cardastika-api/internal/services/ledger Ledger

import (
	"context"

	"github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
)

// Ledger reads and writes an owner's state and gold
type Ledger interface {
	// Lock serializes read-modify-write cycles for an owner. Call the returned func to
	// release.
	Lock(ownerID string) func()

	// LoadState returns the owner's normalized state. Missing and corrupt documents read
	// as an empty state.
	LoadState(ctx context.Context, ownerID string) (*equipment.State, error)

	// SaveState normalizes, stamps updatedAt and persists the state, returning what was
	// stored.
	SaveState(ctx context.Context, ownerID string, state *equipment.State) (*equipment.State, error)

	// Commit saves the state like SaveState together with the balance, clamped at 0,
	// in one storage transaction. On error neither was written. The stored balance is
	// mirrored into the account aggregate when one exists.
	Commit(ctx context.Context, ownerID string, state *equipment.State, gold int64) (*equipment.State, int64, error)

	// ReadGold returns the owner's balance
	ReadGold(ctx context.Context, ownerID string) (int64, error)
}
