package equipment

import (
	"github.com/KirkDiggler/cardastika-api/internal/engine/bonus"
	"github.com/KirkDiggler/cardastika-api/internal/engine/combat"
	entities "github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
)

// Every input addresses one owner; an empty OwnerID means the configured default owner.

// GetStateInput defines the request for reading a state
type GetStateInput struct {
	OwnerID string `json:"ownerId,omitempty"`
}

// GetStateOutput defines the response for reading a state
type GetStateOutput struct {
	State *entities.State `json:"state"`
}

// SaveStateInput defines the request for replacing a state
type SaveStateInput struct {
	OwnerID string          `json:"ownerId,omitempty"`
	State   *entities.State `json:"state"`
}

// SaveStateOutput defines the response for replacing a state
type SaveStateOutput struct {
	State *entities.State `json:"state"`
}

// EnsureStateInput defines the request for writing back a normalized state
type EnsureStateInput struct {
	OwnerID string `json:"ownerId,omitempty"`
}

// EnsureStateOutput defines the response for writing back a normalized state
type EnsureStateOutput struct {
	State *entities.State `json:"state"`
}

// AddItemInput defines the request for adding an item. Source "daily_reward" may
// overflow storage by one.
type AddItemInput struct {
	OwnerID string             `json:"ownerId,omitempty"`
	Item    entities.ItemInput `json:"item"`
	Source  string             `json:"source,omitempty"`
}

// AddItemOutput defines the response for adding an item
type AddItemOutput struct {
	entities.Result
	Item  *entities.Item  `json:"item,omitempty"`
	State *entities.State `json:"state"`
}

// AddArtifactInput defines the request for adding an artifact
type AddArtifactInput struct {
	OwnerID  string                 `json:"ownerId,omitempty"`
	Artifact entities.ArtifactInput `json:"artifact"`
	Source   string                 `json:"source,omitempty"`
}

// AddArtifactOutput defines the response for adding an artifact
type AddArtifactOutput struct {
	entities.Result
	Artifact *entities.Artifact `json:"artifact,omitempty"`
	State    *entities.State    `json:"state"`
}

// EquipItemInput defines the request for equipping an item. ForcedSlot, when set, must
// name the item's own slot.
type EquipItemInput struct {
	OwnerID    string `json:"ownerId,omitempty"`
	ItemID     string `json:"itemId"`
	ForcedSlot string `json:"forcedSlot,omitempty"`
}

// EquipItemOutput defines the response for equipping an item
type EquipItemOutput struct {
	entities.Result
	Slot  entities.Slot   `json:"slot,omitempty"`
	Item  *entities.Item  `json:"item,omitempty"`
	State *entities.State `json:"state"`
}

// UnequipItemInput defines the request for clearing a slot
type UnequipItemInput struct {
	OwnerID string `json:"ownerId,omitempty"`
	Slot    string `json:"slot"`
}

// UnequipItemOutput defines the response for clearing a slot
type UnequipItemOutput struct {
	entities.Result
	State *entities.State `json:"state"`
}

// EquipArtifactInput defines the request for equipping an artifact
type EquipArtifactInput struct {
	OwnerID    string `json:"ownerId,omitempty"`
	ArtifactID string `json:"artifactId"`
}

// EquipArtifactOutput defines the response for equipping an artifact
type EquipArtifactOutput struct {
	entities.Result
	Artifact *entities.Artifact `json:"artifact,omitempty"`
	State    *entities.State    `json:"state"`
}

// UnequipArtifactInput defines the request for clearing an artifact type
type UnequipArtifactInput struct {
	OwnerID      string `json:"ownerId,omitempty"`
	ArtifactType string `json:"artifactType"`
}

// UnequipArtifactOutput defines the response for clearing an artifact type
type UnequipArtifactOutput struct {
	entities.Result
	State *entities.State `json:"state"`
}

// EquipBestInput defines the request for equipping the strongest entries
type EquipBestInput struct {
	OwnerID string `json:"ownerId,omitempty"`
}

// EquipBestOutput lists the ids that were newly equipped
type EquipBestOutput struct {
	entities.Result
	EquippedItems     []string        `json:"equippedItems"`
	EquippedArtifacts []string        `json:"equippedArtifacts"`
	State             *entities.State `json:"state"`
}

// SeedDemoInput defines the request for seeding a demo loadout
type SeedDemoInput struct {
	OwnerID string `json:"ownerId,omitempty"`
}

// SeedDemoOutput reports whether the inventory was empty and got seeded
type SeedDemoOutput struct {
	Seeded bool            `json:"seeded"`
	State  *entities.State `json:"state"`
}

// GetStoredCountsInput defines the request for inventory counts
type GetStoredCountsInput struct {
	OwnerID string `json:"ownerId,omitempty"`
}

// GetStoredCountsOutput holds the non-equipped counts
type GetStoredCountsOutput struct {
	Counts entities.Counts `json:"counts"`
}

// GetEquippedItemsInput defines the request for the equipped items
type GetEquippedItemsInput struct {
	OwnerID string `json:"ownerId,omitempty"`
}

// GetEquippedItemsOutput holds the equipped items in slot order
type GetEquippedItemsOutput struct {
	Items []*entities.Item `json:"items"`
}

// GetEquippedArtifactsInput defines the request for the equipped artifacts
type GetEquippedArtifactsInput struct {
	OwnerID string `json:"ownerId,omitempty"`
}

// GetEquippedArtifactsOutput holds the equipped artifacts in type order
type GetEquippedArtifactsOutput struct {
	Artifacts []*entities.Artifact `json:"artifacts"`
}

// ComputeItemBonusProfileInput defines the request for a bonus profile. When Items is
// nil the owner's equipped items are used. Explicit items are normalized first and
// invalid ones ignored.
type ComputeItemBonusProfileInput struct {
	OwnerID string               `json:"ownerId,omitempty"`
	Items   []entities.ItemInput `json:"items,omitempty"`
}

// ComputeItemBonusProfileOutput holds the profile
type ComputeItemBonusProfileOutput struct {
	Profile *bonus.Profile `json:"profile"`
}

// ApplyItemsToDeckAndHPInput defines the request for bonusing a deck with the owner's
// equipped items. A nil BaseHP defaults to the bonused deck's total power.
type ApplyItemsToDeckAndHPInput struct {
	OwnerID string        `json:"ownerId,omitempty"`
	Deck    []*bonus.Card `json:"deck"`
	BaseHP  *float64      `json:"baseHp,omitempty"`
}

// ApplyItemsToDeckAndHPOutput holds the bonused deck and HP
type ApplyItemsToDeckAndHPOutput struct {
	Deck    []*bonus.Card  `json:"deck"`
	HP      int            `json:"hp"`
	Profile *bonus.Profile `json:"profile"`
}

// CreateArtifactRuntimeInput defines the request for a battle runtime. When Artifacts
// is nil the owner's equipped artifacts are used. Explicit artifacts are normalized
// first and invalid ones ignored.
type CreateArtifactRuntimeInput struct {
	OwnerID   string                   `json:"ownerId,omitempty"`
	Mode      string                   `json:"mode"`
	Artifacts []entities.ArtifactInput `json:"artifacts,omitempty"`
}

// CreateArtifactRuntimeOutput holds the fresh runtime
type CreateArtifactRuntimeOutput struct {
	Runtime *combat.Runtime `json:"runtime"`
}

// GetSummaryInput defines the request for the read model
type GetSummaryInput struct {
	OwnerID string `json:"ownerId,omitempty"`
}

// GetSummaryOutput is everything a client needs to render the equipment screen
type GetSummaryOutput struct {
	Counts            entities.Counts      `json:"counts"`
	Limits            entities.Limits      `json:"limits"`
	EquippedItems     []*entities.Item     `json:"equippedItems"`
	EquippedArtifacts []*entities.Artifact `json:"equippedArtifacts"`
	ItemBonus         *bonus.Profile       `json:"itemBonus"`
	ArtifactRates     combat.Rates         `json:"artifactRates"`
	Gold              int64                `json:"gold"`
}
