// Package gold reads each owner's gold balance, stored as a plain integer. Balances
// are written together with the equipment state by the equipment repository.
package gold

//go:generate mockgen -destination=mock/mock_repository.go -package=goldmock github.com/KirkDiggler/cardastika-api/internal/repositories/gold Repository

import (
	"context"
)

// Repository defines the interface for gold persistence
type Repository interface {
	// Get reads an owner's balance. A missing or unreadable balance is 0.
	// Returns errors.InvalidArgument for an empty owner ID
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// GetInput defines the input for reading a balance
type GetInput struct {
	OwnerID string
}

// GetOutput defines the output for reading a balance
type GetOutput struct {
	Gold int64
}
