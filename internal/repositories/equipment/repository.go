// Package equipment persists one equipment state document per owner
package equipment

//go:generate mockgen -destination=mock/mock_repository.go -package=equipmentmock github.com/KirkDiggler/cardastika-api/internal/repositories/equipment Repository

import (
	"context"

	"github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
)

// Repository defines the interface for equipment state persistence
type Repository interface {
	// Get loads and normalizes an owner's state
	// Returns errors.InvalidArgument for an empty owner ID
	// Returns errors.NotFound if the owner has no stored state
	// Returns errors.DataLoss if the stored document is not JSON
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an owner's state, creating it if needed
	// Returns errors.InvalidArgument for an empty owner ID or a nil state
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Commit replaces an owner's state and gold balance in one MULTI/EXEC transaction.
	// The balance is clamped at 0.
	// Returns errors.InvalidArgument for an empty owner ID or a nil state
	// Returns errors.Internal for storage failures, in which case neither key changed
	Commit(ctx context.Context, input CommitInput) (*CommitOutput, error)

	// Delete removes an owner's state
	// Returns errors.NotFound if the owner has no stored state
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListOwners returns every owner with a stored document, in no particular order
	// Returns errors.Internal for storage failures
	ListOwners(ctx context.Context, input ListOwnersInput) (*ListOwnersOutput, error)
}

// GetInput defines the input for getting a state
type GetInput struct {
	OwnerID string
}

// GetOutput defines the output for getting a state
type GetOutput struct {
	State *equipment.State
}

// UpdateInput defines the input for updating a state
type UpdateInput struct {
	OwnerID string
	State   *equipment.State
}

// UpdateOutput defines the output for updating a state
type UpdateOutput struct {
	State *equipment.State
}

// CommitInput defines the input for committing a state together with a balance
type CommitInput struct {
	OwnerID string
	State   *equipment.State
	Gold    int64
}

// CommitOutput defines the output for a commit
type CommitOutput struct {
	State *equipment.State
	Gold  int64
}

// DeleteInput defines the input for deleting a state
type DeleteInput struct {
	OwnerID string
}

// DeleteOutput defines the output for deleting a state
type DeleteOutput struct{}

// ListOwnersInput defines the input for listing owners
type ListOwnersInput struct{}

// ListOwnersOutput defines the output for listing owners
type ListOwnersOutput struct {
	OwnerIDs []string
}
