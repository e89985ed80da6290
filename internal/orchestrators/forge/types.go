package forge

import (
	entities "github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
)

// Quick forge modes
const (
	ModeItems     = "items"
	ModeArtifacts = "artifacts"
	ModeBoth      = "both"
)

// ForgeSelectionInput defines the request for forging hand-picked entries
type ForgeSelectionInput struct {
	OwnerID  string   `json:"ownerId,omitempty"`
	Kind     string   `json:"kind"`
	InputIDs []string `json:"inputIds"`
}

// ForgeSelectionOutput holds the forged entry; exactly one of Item and Artifact is set
// on success.
type ForgeSelectionOutput struct {
	entities.Result
	Item      *entities.Item     `json:"item,omitempty"`
	Artifact  *entities.Artifact `json:"artifact,omitempty"`
	SpentGold int64              `json:"spentGold"`
	Gold      int64              `json:"gold"`
	State     *entities.State    `json:"state"`
}

// QuickForgeInput defines the request for forging every affordable group
type QuickForgeInput struct {
	OwnerID string `json:"ownerId,omitempty"`
	Mode    string `json:"mode,omitempty"`
}

// Produced describes the crafts made from one group
type Produced struct {
	Kind   entities.Kind   `json:"kind"`
	From   entities.Rarity `json:"from"`
	To     entities.Rarity `json:"to"`
	Amount int             `json:"amount"`
	Key    string          `json:"key"`
	Cost   int64           `json:"cost"`
}

// QuickForgeOutput is always OK; an empty Produced list means nothing was affordable
type QuickForgeOutput struct {
	entities.Result
	Produced         []Produced           `json:"produced"`
	CreatedItems     []*entities.Item     `json:"createdItems"`
	CreatedArtifacts []*entities.Artifact `json:"createdArtifacts"`
	SpentGold        int64                `json:"spentGold"`
	GoldLeft         int64                `json:"goldLeft"`
	State            *entities.State      `json:"state"`
}

// ChangeItemElementInput defines the atelier request. CostGold can raise the price
// above the configured atelier cost but never lower it.
type ChangeItemElementInput struct {
	OwnerID  string `json:"ownerId,omitempty"`
	ItemID   string `json:"itemId"`
	Element  string `json:"element"`
	CostGold *int64 `json:"costGold,omitempty"`
}

// ChangeItemElementOutput holds the re-rolled item
type ChangeItemElementOutput struct {
	entities.Result
	Item      *entities.Item  `json:"item,omitempty"`
	SpentGold int64           `json:"spentGold"`
	Gold      int64           `json:"gold"`
	State     *entities.State `json:"state"`
}
