// Package forge implements crafting: manual selection forge, the quick forge batch and
// the atelier element re-roll. Every path spends gold through the ledger.
package forge

//go:generate mockgen -destination=mock/mock_service.go -package=forgemock github.com/KirkDiggler/cardastika-api/internal/orchestrators/forge Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	entities "github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/errors"
	"github.com/KirkDiggler/cardastika-api/internal/services/ledger"
)

// DefaultOwnerID addresses the single local player when a request names no owner
const DefaultOwnerID = "local"

// Service defines the interface for forge operations
type Service interface {
	ForgeSelection(ctx context.Context, input *ForgeSelectionInput) (*ForgeSelectionOutput, error)
	QuickForgeAllPossible(ctx context.Context, input *QuickForgeInput) (*QuickForgeOutput, error)
	ChangeItemElement(ctx context.Context, input *ChangeItemElementInput) (*ChangeItemElementOutput, error)
}

// Config holds the dependencies for the forge orchestrator
type Config struct {
	Ledger         ledger.Ledger
	Normalizer     *entities.Normalizer
	Balance        *entities.Balance
	Roller         dice.Roller
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
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	ledger         ledger.Ledger
	normalizer     *entities.Normalizer
	balance        *entities.Balance
	roller         dice.Roller
	defaultOwnerID string
}

// NewOrchestrator creates a new forge orchestrator with the provided dependencies
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
		roller:         cfg.Roller,
		defaultOwnerID: defaultOwner,
	}, nil
}

func (o *orchestrator) owner(ownerID string) string {
	if ownerID == "" {
		return o.defaultOwnerID
	}
	return ownerID
}

// load reads state and gold together; callers hold the owner's lock
func (o *orchestrator) load(ctx context.Context, ownerID string) (*entities.State, int64, error) {
	state, err := o.ledger.LoadState(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}
	gold, err := o.ledger.ReadGold(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}
	return state, gold, nil
}

// commit persists the state and the new balance together
func (o *orchestrator) commit(
	ctx context.Context,
	ownerID string,
	state *entities.State,
	gold int64,
) (*entities.State, int64, error) {
	return o.ledger.Commit(ctx, ownerID, state, gold)
}

// ForgeSelection turns exactly one recipe's worth of hand-picked entries into a single
// entry of the next rarity.
func (o *orchestrator) ForgeSelection(ctx context.Context, input *ForgeSelectionInput) (*ForgeSelectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ownerID := o.owner(input.OwnerID)

	unlock := o.ledger.Lock(ownerID)
	defer unlock()

	state, gold, err := o.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := &ForgeSelectionOutput{Gold: gold, State: state}

	kind := entities.Kind(strings.ToLower(strings.TrimSpace(input.Kind)))
	if kind != entities.KindItem && kind != entities.KindArtifact {
		out.Result = entities.Refused(entities.ReasonInvalidKind)
		return out, nil
	}

	ids := make([]string, 0, len(input.InputIDs))
	for _, id := range input.InputIDs {
		if id != "" {
			ids = append(ids, id)
		}
	}

	picked, reason := pick(state, kind, ids)
	if reason != "" {
		out.Result = entities.Refused(reason)
		return out, nil
	}

	recipe, ok := o.balance.RecipeFrom(picked.rarity)
	if !ok {
		out.Result = entities.Refused(entities.ReasonMaxRarity)
		return out, nil
	}
	if len(ids) != recipe.Need {
		out.Result = entities.RefusedNeeding(entities.ReasonWrongAmount, int64(recipe.Need))
		return out, nil
	}
	if gold < recipe.Gold {
		out.Result = entities.RefusedNeeding(entities.ReasonNotEnoughGold, recipe.Gold)
		return out, nil
	}

	drawn, err := o.draw(picked.keys)
	if err != nil {
		return nil, err
	}

	remove := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		remove[id] = struct{}{}
	}

	var outputID string
	if kind == entities.KindItem {
		item, ok := o.normalizer.Item(entities.ItemInput{
			Slot:    string(picked.slot),
			Element: drawn,
			Rarity:  string(recipe.To),
		})
		if !ok {
			out.Result = entities.Refused(entities.ReasonForgeFailed)
			return out, nil
		}
		state.RemoveItems(remove)
		state.Items = append(state.Items, item)
		outputID = item.ID
	} else {
		artifact, ok := o.normalizer.Artifact(entities.ArtifactInput{
			ArtifactType: drawn,
			Rarity:       string(recipe.To),
		})
		if !ok {
			out.Result = entities.Refused(entities.ReasonForgeFailed)
			return out, nil
		}
		state.RemoveArtifacts(remove)
		state.Artifacts = append(state.Artifacts, artifact)
		outputID = artifact.ID
	}

	saved, left, err := o.commit(ctx, ownerID, state, gold-recipe.Gold)
	if err != nil {
		return nil, err
	}

	out.Result = entities.Succeeded()
	out.State = saved
	out.Gold = left
	out.SpentGold = recipe.Gold
	out.Item = saved.ItemByID(outputID)
	out.Artifact = saved.ArtifactByID(outputID)

	slog.Info("forge completed",
		"owner_id", ownerID,
		"kind", kind,
		"from", recipe.From,
		"to", recipe.To,
		"output_id", outputID,
		"spent_gold", recipe.Gold,
		"gold", left)
	return out, nil
}

// selection is what the picked entries have in common, plus the draw keys
type selection struct {
	rarity entities.Rarity
	slot   entities.Slot
	// keys holds each entry's element or artifact type in pick order
	keys []string
}

func pick(state *entities.State, kind entities.Kind, ids []string) (*selection, entities.Reason) {
	if len(ids) == 0 {
		return nil, entities.ReasonMissingInputs
	}

	sel := &selection{keys: make([]string, 0, len(ids))}
	rarities := make(map[entities.Rarity]struct{})
	slots := make(map[entities.Slot]struct{})

	for _, id := range ids {
		if kind == entities.KindItem {
			item := state.ItemByID(id)
			if item == nil {
				return nil, entities.ReasonMissingInputs
			}
			rarities[item.Rarity] = struct{}{}
			slots[item.Slot] = struct{}{}
			sel.rarity, sel.slot = item.Rarity, item.Slot
			sel.keys = append(sel.keys, string(item.Element))
			continue
		}

		artifact := state.ArtifactByID(id)
		if artifact == nil {
			return nil, entities.ReasonMissingInputs
		}
		rarities[artifact.Rarity] = struct{}{}
		sel.rarity = artifact.Rarity
		sel.keys = append(sel.keys, string(artifact.ArtifactType))
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, entities.ReasonDuplicateInputs
		}
		seen[id] = struct{}{}
	}

	if len(rarities) != 1 {
		return nil, entities.ReasonRarityMismatch
	}
	if kind == entities.KindItem && len(slots) != 1 {
		return nil, entities.ReasonItemSlotMismatch
	}
	return sel, ""
}

// draw picks one key with probability proportional to how often it occurs. Keys are
// weighed in first-seen order against a roll in [1, len(keys)].
func (o *orchestrator) draw(keys []string) (string, error) {
	if len(keys) == 0 {
		return "", nil
	}

	order := make([]string, 0, len(keys))
	weights := make(map[string]int, len(keys))
	for _, k := range keys {
		if _, ok := weights[k]; !ok {
			order = append(order, k)
		}
		weights[k]++
	}

	roll, err := o.roller.Roll(len(keys))
	if err != nil {
		return "", errors.Wrap(err, "failed to roll forge output")
	}

	for _, k := range order {
		roll -= weights[k]
		if roll <= 0 {
			return k, nil
		}
	}
	return order[len(order)-1], nil
}

// group is a set of interchangeable entries of one rarity
type group struct {
	kind         entities.Kind
	slot         entities.Slot
	element      entities.Element
	artifactType entities.ArtifactType
	ids          []string
}

func parseMode(mode string) (items, artifacts bool) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeItems, "item":
		return true, false
	case ModeArtifacts, "artifact":
		return false, true
	default:
		return true, true
	}
}

// QuickForgeAllPossible crafts every affordable batch, lowest rarity first. Groups are
// visited in first-seen order and share the gold budget, so earlier groups win when
// gold is scarce. Outputs of one tier can feed the next within the same call.
func (o *orchestrator) QuickForgeAllPossible(ctx context.Context, input *QuickForgeInput) (*QuickForgeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ownerID := o.owner(input.OwnerID)
	allowItems, allowArtifacts := parseMode(input.Mode)

	unlock := o.ledger.Lock(ownerID)
	defer unlock()

	state, gold, err := o.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := &QuickForgeOutput{
		Result:           entities.Succeeded(),
		Produced:         []Produced{},
		CreatedItems:     []*entities.Item{},
		CreatedArtifacts: []*entities.Artifact{},
	}
	startGold := gold

	for _, from := range entities.AllRarities() {
		recipe, ok := o.balance.RecipeFrom(from)
		if !ok {
			continue
		}

		keys, groups := groupCandidates(state, from, allowItems, allowArtifacts)
		for _, key := range keys {
			g := groups[key]
			crafts := len(g.ids) / recipe.Need
			if recipe.Gold > 0 {
				crafts = min(crafts, int(gold/recipe.Gold))
			}
			if crafts <= 0 {
				continue
			}

			consume := make(map[string]struct{}, crafts*recipe.Need)
			for _, id := range g.ids[:crafts*recipe.Need] {
				consume[id] = struct{}{}
			}

			if g.kind == entities.KindItem {
				state.RemoveItems(consume)
				for range crafts {
					item, ok := o.normalizer.Item(entities.ItemInput{
						Slot:    string(g.slot),
						Element: string(g.element),
						Rarity:  string(recipe.To),
					})
					if ok {
						state.Items = append(state.Items, item)
						out.CreatedItems = append(out.CreatedItems, item)
					}
				}
			} else {
				state.RemoveArtifacts(consume)
				for range crafts {
					artifact, ok := o.normalizer.Artifact(entities.ArtifactInput{
						ArtifactType: string(g.artifactType),
						Rarity:       string(recipe.To),
					})
					if ok {
						state.Artifacts = append(state.Artifacts, artifact)
						out.CreatedArtifacts = append(out.CreatedArtifacts, artifact)
					}
				}
			}

			cost := int64(crafts) * recipe.Gold
			gold -= cost
			out.SpentGold += cost
			out.Produced = append(out.Produced, Produced{
				Kind:   g.kind,
				From:   from,
				To:     recipe.To,
				Amount: crafts,
				Key:    key,
				Cost:   cost,
			})
		}
	}

	if len(out.Produced) == 0 {
		out.State = state
		out.GoldLeft = startGold
		return out, nil
	}

	saved, left, err := o.commit(ctx, ownerID, state, gold)
	if err != nil {
		return nil, err
	}
	out.State = saved
	out.GoldLeft = left

	slog.Info("quick forge completed",
		"owner_id", ownerID,
		"mode", input.Mode,
		"groups", len(out.Produced),
		"spent_gold", out.SpentGold,
		"gold", left)
	return out, nil
}

// groupCandidates buckets entries of one rarity by group key, items before artifacts,
// returning the keys in first-seen order.
func groupCandidates(
	state *entities.State,
	rarity entities.Rarity,
	items, artifacts bool,
) ([]string, map[string]*group) {
	var keys []string
	groups := make(map[string]*group)

	add := func(key string, g *group, id string) {
		existing, ok := groups[key]
		if !ok {
			keys = append(keys, key)
			groups[key] = g
			existing = g
		}
		existing.ids = append(existing.ids, id)
	}

	if items {
		for _, item := range state.Items {
			if item.Rarity != rarity {
				continue
			}
			key := strings.Join([]string{string(entities.KindItem), string(rarity), string(item.Slot), string(item.Element)}, ":")
			add(key, &group{kind: entities.KindItem, slot: item.Slot, element: item.Element}, item.ID)
		}
	}
	if artifacts {
		for _, artifact := range state.Artifacts {
			if artifact.Rarity != rarity {
				continue
			}
			key := strings.Join([]string{string(entities.KindArtifact), string(rarity), string(artifact.ArtifactType)}, ":")
			add(key, &group{kind: entities.KindArtifact, artifactType: artifact.ArtifactType}, artifact.ID)
		}
	}
	return keys, groups
}

// ChangeItemElement re-rolls a legendary or mythic item's element for gold
func (o *orchestrator) ChangeItemElement(
	ctx context.Context,
	input *ChangeItemElementInput,
) (*ChangeItemElementOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ownerID := o.owner(input.OwnerID)

	unlock := o.ledger.Lock(ownerID)
	defer unlock()

	state, gold, err := o.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := &ChangeItemElementOutput{Gold: gold, State: state}

	element := entities.NormalizeElement(input.Element)
	if element == "" {
		out.Result = entities.Refused(entities.ReasonInvalidElement)
		return out, nil
	}
	item := state.ItemByID(input.ItemID)
	if item == nil {
		out.Result = entities.Refused(entities.ReasonItemNotFound)
		return out, nil
	}
	if item.Rarity != entities.RarityLegendary && item.Rarity != entities.RarityMythic {
		out.Result = entities.Refused(entities.ReasonAtelierOnlyHighRarities)
		return out, nil
	}

	cost := o.balance.AtelierCost
	if input.CostGold != nil {
		cost = max(cost, *input.CostGold)
	}
	if gold < cost {
		out.Result = entities.RefusedNeeding(entities.ReasonNotEnoughGold, cost)
		return out, nil
	}

	item.Element = element
	saved, left, err := o.commit(ctx, ownerID, state, gold-cost)
	if err != nil {
		return nil, err
	}

	out.Result = entities.Succeeded()
	out.Item = saved.ItemByID(input.ItemID)
	out.SpentGold = cost
	out.Gold = left
	out.State = saved

	slog.Info("item element changed",
		"owner_id", ownerID,
		"item_id", input.ItemID,
		"element", element,
		"spent_gold", cost,
		"gold", left)
	return out, nil
}
