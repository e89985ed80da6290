// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"

	"github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
)

// StateBuilder provides a fluent interface for building test equipment states
type StateBuilder struct {
	state *equipment.State
	seq   int
}

// NewStateBuilder creates a builder over an empty state stamped at createdAt
func NewStateBuilder(createdAt int64) *StateBuilder {
	return &StateBuilder{state: equipment.NewEmptyState(createdAt)}
}

func (b *StateBuilder) nextID(prefix string) string {
	b.seq++
	return fmt.Sprintf("%s-%d", prefix, b.seq)
}

// WithItem appends an item with a generated id
func (b *StateBuilder) WithItem(slot equipment.Slot, element equipment.Element, rarity equipment.Rarity) *StateBuilder {
	return b.WithItemID(b.nextID("seed-item"), slot, element, rarity)
}

// WithItemID appends an item with the given id
func (b *StateBuilder) WithItemID(
	id string,
	slot equipment.Slot,
	element equipment.Element,
	rarity equipment.Rarity,
) *StateBuilder {
	b.state.Items = append(b.state.Items, &equipment.Item{
		ID:        id,
		Kind:      equipment.KindItem,
		Slot:      slot,
		Element:   element,
		Rarity:    rarity,
		CreatedAt: b.state.UpdatedAt,
	})
	return b
}

// WithItems appends n identical items
func (b *StateBuilder) WithItems(
	n int,
	slot equipment.Slot,
	element equipment.Element,
	rarity equipment.Rarity,
) *StateBuilder {
	for range n {
		b.WithItem(slot, element, rarity)
	}
	return b
}

// WithArtifact appends an artifact with a generated id
func (b *StateBuilder) WithArtifact(t equipment.ArtifactType, rarity equipment.Rarity) *StateBuilder {
	return b.WithArtifactID(b.nextID("seed-art"), t, rarity)
}

// WithArtifactID appends an artifact with the given id
func (b *StateBuilder) WithArtifactID(id string, t equipment.ArtifactType, rarity equipment.Rarity) *StateBuilder {
	b.state.Artifacts = append(b.state.Artifacts, &equipment.Artifact{
		ID:           id,
		Kind:         equipment.KindArtifact,
		ArtifactType: t,
		Rarity:       rarity,
		CreatedAt:    b.state.UpdatedAt,
	})
	return b
}

// WithArtifacts appends n identical artifacts
func (b *StateBuilder) WithArtifacts(n int, t equipment.ArtifactType, rarity equipment.Rarity) *StateBuilder {
	for range n {
		b.WithArtifact(t, rarity)
	}
	return b
}

// EquipLast equips the most recently added item in its own slot
func (b *StateBuilder) EquipLast() *StateBuilder {
	if len(b.state.Items) == 0 {
		return b
	}
	item := b.state.Items[len(b.state.Items)-1]
	b.state.Equipped.Items[item.Slot] = item.ID
	return b
}

// EquipLastArtifact equips the most recently added artifact under its own type
func (b *StateBuilder) EquipLastArtifact() *StateBuilder {
	if len(b.state.Artifacts) == 0 {
		return b
	}
	artifact := b.state.Artifacts[len(b.state.Artifacts)-1]
	b.state.Equipped.Artifacts[artifact.ArtifactType] = artifact.ID
	return b
}

// Build returns the built state
func (b *StateBuilder) Build() *equipment.State {
	return b.state
}
