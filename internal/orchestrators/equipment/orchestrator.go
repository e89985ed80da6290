// Package equipment implements the equipment orchestrator: inventory, equip slots and
// the derived bonus and battle read models of one owner.
package equipment

//go:generate mockgen -destination=mock/mock_service.go -package=equipmentmock github.com/KirkDiggler/cardastika-api/internal/orchestrators/equipment Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/cardastika-api/internal/engine/bonus"
	"github.com/KirkDiggler/cardastika-api/internal/engine/combat"
	entities "github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/errors"
	"github.com/KirkDiggler/cardastika-api/internal/services/ledger"
)

// DefaultOwnerID addresses the single local player when a request names no owner
const DefaultOwnerID = "local"

// Service defines the interface for equipment operations.
// Refusals are reported through the output's Result; the error return is reserved for
// storage failures.
type Service interface {
	// State lifecycle
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)
	SaveState(ctx context.Context, input *SaveStateInput) (*SaveStateOutput, error)
	EnsureState(ctx context.Context, input *EnsureStateInput) (*EnsureStateOutput, error)

	// Inventory
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	AddArtifact(ctx context.Context, input *AddArtifactInput) (*AddArtifactOutput, error)
	SeedDemo(ctx context.Context, input *SeedDemoInput) (*SeedDemoOutput, error)

	// Slots
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)
	EquipArtifact(ctx context.Context, input *EquipArtifactInput) (*EquipArtifactOutput, error)
	UnequipArtifact(ctx context.Context, input *UnequipArtifactInput) (*UnequipArtifactOutput, error)
	EquipBest(ctx context.Context, input *EquipBestInput) (*EquipBestOutput, error)

	// Read models
	GetStoredCounts(ctx context.Context, input *GetStoredCountsInput) (*GetStoredCountsOutput, error)
	GetEquippedItems(ctx context.Context, input *GetEquippedItemsInput) (*GetEquippedItemsOutput, error)
	GetEquippedArtifacts(
		ctx context.Context,
		input *GetEquippedArtifactsInput,
	) (*GetEquippedArtifactsOutput, error)
	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)

	// Bonuses and battle
	ComputeItemBonusProfile(
		ctx context.Context,
		input *ComputeItemBonusProfileInput,
	) (*ComputeItemBonusProfileOutput, error)
	ApplyItemsToDeckAndHP(
		ctx context.Context,
		input *ApplyItemsToDeckAndHPInput,
	) (*ApplyItemsToDeckAndHPOutput, error)
	CreateArtifactRuntime(
		ctx context.Context,
		input *CreateArtifactRuntimeInput,
	) (*CreateArtifactRuntimeOutput, error)
}

// Config holds the dependencies for the equipment orchestrator
type Config struct {
	Ledger         ledger.Ledger
	Normalizer     *entities.Normalizer
	Balance        *entities.Balance
	BonusEngine    *bonus.Engine
	CombatEngine   *combat.Engine
	DefaultOwnerID string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Ledger == nil {
		vb.RequiredField("Ledger")
	}
	if c.Normalizer == nil {
		vb.RequiredField("Normalizer")
	}
	if c.Balance == nil {
		vb.RequiredField("Balance")
	}
	if c.BonusEngine == nil {
		vb.RequiredField("BonusEngine")
	}
	if c.CombatEngine == nil {
		vb.RequiredField("CombatEngine")
	}

	return vb.Build()
}

type orchestrator struct {
	ledger         ledger.Ledger
	normalizer     *entities.Normalizer
	balance        *entities.Balance
	bonusEngine    *bonus.Engine
	combatEngine   *combat.Engine
	defaultOwnerID string
}

// NewOrchestrator creates a new equipment orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	defaultOwner := cfg.DefaultOwnerID
	if defaultOwner == "" {
		defaultOwner = DefaultOwnerID
	}

	return &orchestrator{
		ledger:         cfg.Ledger,
		normalizer:     cfg.Normalizer,
		balance:        cfg.Balance,
		bonusEngine:    cfg.BonusEngine,
		combatEngine:   cfg.CombatEngine,
		defaultOwnerID: defaultOwner,
	}, nil
}

func (o *orchestrator) owner(ownerID string) string {
	if ownerID == "" {
		return o.defaultOwnerID
	}
	return ownerID
}

// mutate runs fn over the owner's state under the owner's lock. fn returns false to
// leave storage untouched; otherwise the state is saved and the stored copy returned.
func (o *orchestrator) mutate(
	ctx context.Context,
	ownerID string,
	fn func(state *entities.State) bool,
) (*entities.State, error) {
	unlock := o.ledger.Lock(ownerID)
	defer unlock()

	state, err := o.ledger.LoadState(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !fn(state) {
		return state, nil
	}
	return o.ledger.SaveState(ctx, ownerID, state)
}

func (o *orchestrator) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.ledger.LoadState(ctx, o.owner(input.OwnerID))
	if err != nil {
		return nil, err
	}
	return &GetStateOutput{State: state}, nil
}

func (o *orchestrator) SaveState(ctx context.Context, input *SaveStateInput) (*SaveStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ownerID := o.owner(input.OwnerID)

	unlock := o.ledger.Lock(ownerID)
	defer unlock()

	state, err := o.ledger.SaveState(ctx, ownerID, input.State)
	if err != nil {
		return nil, err
	}
	return &SaveStateOutput{State: state}, nil
}

func (o *orchestrator) EnsureState(ctx context.Context, input *EnsureStateInput) (*EnsureStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.mutate(ctx, o.owner(input.OwnerID), func(*entities.State) bool { return true })
	if err != nil {
		return nil, err
	}
	return &EnsureStateOutput{State: state}, nil
}

func (o *orchestrator) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ownerID := o.owner(input.OwnerID)
	out := &AddItemOutput{}

	state, err := o.mutate(ctx, ownerID, func(state *entities.State) bool {
		item, ok := o.normalizer.Item(input.Item)
		if !ok || state.ItemByID(item.ID) != nil {
			out.Result = entities.Refused(entities.ReasonInvalidItem)
			return false
		}
		capacity := o.balance.Limits.Capacity(entities.KindItem, input.Source)
		if state.StoredCounts().Items >= capacity {
			out.Result = entities.Refused(entities.ReasonItemsLimit)
			return false
		}

		state.Items = append(state.Items, item)
		out.Result = entities.Succeeded()
		out.Item = item
		return true
	})
	if err != nil {
		return nil, err
	}

	out.State = state
	if out.OK {
		slog.Info("item added",
			"owner_id", ownerID,
			"item_id", out.Item.ID,
			"slot", out.Item.Slot,
			"rarity", out.Item.Rarity,
			"source", input.Source)
	}
	return out, nil
}

func (o *orchestrator) AddArtifact(ctx context.Context, input *AddArtifactInput) (*AddArtifactOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ownerID := o.owner(input.OwnerID)
	out := &AddArtifactOutput{}

	state, err := o.mutate(ctx, ownerID, func(state *entities.State) bool {
		artifact, ok := o.normalizer.Artifact(input.Artifact)
		if !ok || state.ArtifactByID(artifact.ID) != nil {
			out.Result = entities.Refused(entities.ReasonInvalidArtifact)
			return false
		}
		capacity := o.balance.Limits.Capacity(entities.KindArtifact, input.Source)
		if state.StoredCounts().Artifacts >= capacity {
			out.Result = entities.Refused(entities.ReasonArtifactsLimit)
			return false
		}

		state.Artifacts = append(state.Artifacts, artifact)
		out.Result = entities.Succeeded()
		out.Artifact = artifact
		return true
	})
	if err != nil {
		return nil, err
	}

	out.State = state
	if out.OK {
		slog.Info("artifact added",
			"owner_id", ownerID,
			"artifact_id", out.Artifact.ID,
			"artifact_type", out.Artifact.ArtifactType,
			"rarity", out.Artifact.Rarity,
			"source", input.Source)
	}
	return out, nil
}

func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ownerID := o.owner(input.OwnerID)
	out := &EquipItemOutput{}

	state, err := o.mutate(ctx, ownerID, func(state *entities.State) bool {
		item := state.ItemByID(input.ItemID)
		if item == nil {
			out.Result = entities.Refused(entities.ReasonItemNotFound)
			return false
		}

		slot := item.Slot
		if input.ForcedSlot != "" {
			slot = entities.NormalizeSlot(input.ForcedSlot)
		}
		if slot != item.Slot {
			out.Result = entities.Refused(entities.ReasonInvalidSlot)
			return false
		}

		for s, id := range state.Equipped.Items {
			if id == item.ID {
				state.Equipped.Items[s] = ""
			}
		}
		state.Equipped.Items[slot] = item.ID

		out.Result = entities.Succeeded()
		out.Slot = slot
		out.Item = item
		return true
	})
	if err != nil {
		return nil, err
	}

	out.State = state
	if out.OK {
		slog.Info("item equipped", "owner_id", ownerID, "item_id", out.Item.ID, "slot", out.Slot)
	}
	return out, nil
}

func (o *orchestrator) UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out := &UnequipItemOutput{}

	state, err := o.mutate(ctx, o.owner(input.OwnerID), func(state *entities.State) bool {
		slot := entities.NormalizeSlot(input.Slot)
		if slot == "" {
			out.Result = entities.Refused(entities.ReasonInvalidSlot)
			return false
		}
		state.Equipped.Items[slot] = ""
		out.Result = entities.Succeeded()
		return true
	})
	if err != nil {
		return nil, err
	}

	out.State = state
	return out, nil
}

func (o *orchestrator) EquipArtifact(ctx context.Context, input *EquipArtifactInput) (*EquipArtifactOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ownerID := o.owner(input.OwnerID)
	out := &EquipArtifactOutput{}

	state, err := o.mutate(ctx, ownerID, func(state *entities.State) bool {
		artifact := state.ArtifactByID(input.ArtifactID)
		if artifact == nil {
			out.Result = entities.Refused(entities.ReasonArtifactNotFound)
			return false
		}

		for t, id := range state.Equipped.Artifacts {
			if id == artifact.ID {
				state.Equipped.Artifacts[t] = ""
			}
		}
		state.Equipped.Artifacts[artifact.ArtifactType] = artifact.ID

		out.Result = entities.Succeeded()
		out.Artifact = artifact
		return true
	})
	if err != nil {
		return nil, err
	}

	out.State = state
	if out.OK {
		slog.Info("artifact equipped",
			"owner_id", ownerID,
			"artifact_id", out.Artifact.ID,
			"artifact_type", out.Artifact.ArtifactType)
	}
	return out, nil
}

func (o *orchestrator) UnequipArtifact(
	ctx context.Context,
	input *UnequipArtifactInput,
) (*UnequipArtifactOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out := &UnequipArtifactOutput{}

	state, err := o.mutate(ctx, o.owner(input.OwnerID), func(state *entities.State) bool {
		artifactType := entities.NormalizeArtifactType(input.ArtifactType)
		if artifactType == "" {
			out.Result = entities.Refused(entities.ReasonInvalidArtifactType)
			return false
		}
		state.Equipped.Artifacts[artifactType] = ""
		out.Result = entities.Succeeded()
		return true
	})
	if err != nil {
		return nil, err
	}

	out.State = state
	return out, nil
}

// EquipBest puts the highest-rarity entry into every slot and artifact type where it
// beats what is equipped. Ties keep the current entry, then the earliest one.
func (o *orchestrator) EquipBest(ctx context.Context, input *EquipBestInput) (*EquipBestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ownerID := o.owner(input.OwnerID)
	out := &EquipBestOutput{
		Result:            entities.Succeeded(),
		EquippedItems:     []string{},
		EquippedArtifacts: []string{},
	}

	state, err := o.mutate(ctx, ownerID, func(state *entities.State) bool {
		for _, slot := range entities.AllSlots() {
			var best *entities.Item
			if current := state.ItemByID(state.Equipped.Items[slot]); current != nil {
				best = current
			}
			for _, item := range state.Items {
				if item.Slot == slot && (best == nil || item.Rarity.Rank() > best.Rarity.Rank()) {
					best = item
				}
			}
			if best != nil && state.Equipped.Items[slot] != best.ID {
				state.Equipped.Items[slot] = best.ID
				out.EquippedItems = append(out.EquippedItems, best.ID)
			}
		}

		for _, t := range entities.AllArtifactTypes() {
			var best *entities.Artifact
			if current := state.ArtifactByID(state.Equipped.Artifacts[t]); current != nil {
				best = current
			}
			for _, artifact := range state.Artifacts {
				if artifact.ArtifactType == t && (best == nil || artifact.Rarity.Rank() > best.Rarity.Rank()) {
					best = artifact
				}
			}
			if best != nil && state.Equipped.Artifacts[t] != best.ID {
				state.Equipped.Artifacts[t] = best.ID
				out.EquippedArtifacts = append(out.EquippedArtifacts, best.ID)
			}
		}

		return len(out.EquippedItems)+len(out.EquippedArtifacts) > 0
	})
	if err != nil {
		return nil, err
	}

	out.State = state
	slog.Info("best equipment equipped",
		"owner_id", ownerID,
		"items", len(out.EquippedItems),
		"artifacts", len(out.EquippedArtifacts))
	return out, nil
}

// SeedDemo gives an empty inventory one item per slot and one artifact per type, all
// equipped. A non-empty inventory is left alone.
func (o *orchestrator) SeedDemo(ctx context.Context, input *SeedDemoInput) (*SeedDemoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ownerID := o.owner(input.OwnerID)
	out := &SeedDemoOutput{}

	state, err := o.mutate(ctx, ownerID, func(state *entities.State) bool {
		if len(state.Items) > 0 || len(state.Artifacts) > 0 {
			return false
		}

		for _, in := range demoItems {
			if item, ok := o.normalizer.Item(in); ok {
				state.Items = append(state.Items, item)
				state.Equipped.Items[item.Slot] = item.ID
			}
		}
		for _, in := range demoArtifacts {
			if artifact, ok := o.normalizer.Artifact(in); ok {
				state.Artifacts = append(state.Artifacts, artifact)
				state.Equipped.Artifacts[artifact.ArtifactType] = artifact.ID
			}
		}

		out.Seeded = true
		return true
	})
	if err != nil {
		return nil, err
	}

	out.State = state
	if out.Seeded {
		slog.Info("demo equipment seeded", "owner_id", ownerID)
	}
	return out, nil
}

var demoItems = []entities.ItemInput{
	{Slot: "hat", Element: "earth", Rarity: "common"},
	{Slot: "armor", Element: "fire", Rarity: "epic"},
	{Slot: "weapon", Element: "air", Rarity: "rare"},
	{Slot: "boots", Element: "water", Rarity: "legendary"},
}

var demoArtifacts = []entities.ArtifactInput{
	{ArtifactType: "spear", Rarity: "uncommon"},
	{ArtifactType: "shield", Rarity: "rare"},
	{ArtifactType: "mirror", Rarity: "epic"},
	{ArtifactType: "amulet", Rarity: "legendary"},
	{ArtifactType: "voodoo", Rarity: "common"},
}

func (o *orchestrator) GetStoredCounts(
	ctx context.Context,
	input *GetStoredCountsInput,
) (*GetStoredCountsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.ledger.LoadState(ctx, o.owner(input.OwnerID))
	if err != nil {
		return nil, err
	}
	return &GetStoredCountsOutput{Counts: state.StoredCounts()}, nil
}

func (o *orchestrator) GetEquippedItems(
	ctx context.Context,
	input *GetEquippedItemsInput,
) (*GetEquippedItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.ledger.LoadState(ctx, o.owner(input.OwnerID))
	if err != nil {
		return nil, err
	}
	return &GetEquippedItemsOutput{Items: state.EquippedItems()}, nil
}

func (o *orchestrator) GetEquippedArtifacts(
	ctx context.Context,
	input *GetEquippedArtifactsInput,
) (*GetEquippedArtifactsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.ledger.LoadState(ctx, o.owner(input.OwnerID))
	if err != nil {
		return nil, err
	}
	return &GetEquippedArtifactsOutput{Artifacts: state.EquippedArtifacts()}, nil
}

func (o *orchestrator) GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ownerID := o.owner(input.OwnerID)

	state, err := o.ledger.LoadState(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	gold, err := o.ledger.ReadGold(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	items := state.EquippedItems()
	artifacts := state.EquippedArtifacts()
	return &GetSummaryOutput{
		Counts:            state.StoredCounts(),
		Limits:            o.balance.Limits,
		EquippedItems:     items,
		EquippedArtifacts: artifacts,
		ItemBonus:         o.bonusEngine.ComputeItemBonusProfile(items),
		ArtifactRates:     o.combatEngine.Rates(artifacts),
		Gold:              gold,
	}, nil
}

func (o *orchestrator) ComputeItemBonusProfile(
	ctx context.Context,
	input *ComputeItemBonusProfileInput,
) (*ComputeItemBonusProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	items := o.normalizeItems(input.Items)
	if input.Items == nil {
		state, err := o.ledger.LoadState(ctx, o.owner(input.OwnerID))
		if err != nil {
			return nil, err
		}
		items = state.EquippedItems()
	}
	return &ComputeItemBonusProfileOutput{Profile: o.bonusEngine.ComputeItemBonusProfile(items)}, nil
}

func (o *orchestrator) ApplyItemsToDeckAndHP(
	ctx context.Context,
	input *ApplyItemsToDeckAndHPInput,
) (*ApplyItemsToDeckAndHPOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.ledger.LoadState(ctx, o.owner(input.OwnerID))
	if err != nil {
		return nil, err
	}

	profile := o.bonusEngine.ComputeItemBonusProfile(state.EquippedItems())
	result := o.bonusEngine.ApplyItemsToDeckAndHP(input.Deck, input.BaseHP, profile)
	return &ApplyItemsToDeckAndHPOutput{
		Deck:    result.Deck,
		HP:      result.HP,
		Profile: result.Profile,
	}, nil
}

func (o *orchestrator) CreateArtifactRuntime(
	ctx context.Context,
	input *CreateArtifactRuntimeInput,
) (*CreateArtifactRuntimeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	artifacts := o.normalizeArtifacts(input.Artifacts)
	if input.Artifacts == nil {
		state, err := o.ledger.LoadState(ctx, o.owner(input.OwnerID))
		if err != nil {
			return nil, err
		}
		artifacts = state.EquippedArtifacts()
	}
	return &CreateArtifactRuntimeOutput{Runtime: o.combatEngine.NewRuntime(input.Mode, artifacts)}, nil
}

// normalizeItems runs caller-supplied items through the normalizer, dropping the
// invalid ones
func (o *orchestrator) normalizeItems(raw []entities.ItemInput) []*entities.Item {
	items := make([]*entities.Item, 0, len(raw))
	for _, in := range raw {
		if item, ok := o.normalizer.Item(in); ok {
			items = append(items, item)
		}
	}
	return items
}

func (o *orchestrator) normalizeArtifacts(raw []entities.ArtifactInput) []*entities.Artifact {
	artifacts := make([]*entities.Artifact, 0, len(raw))
	for _, in := range raw {
		if artifact, ok := o.normalizer.Artifact(in); ok {
			artifacts = append(artifacts, artifact)
		}
	}
	return artifacts
}
