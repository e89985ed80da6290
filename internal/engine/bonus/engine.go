// Package bonus derives deck power and HP bonuses from equipped items
package bonus

import (
	"math"

	"github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/errors"
)

const (
	// setSize is the number of equipped items a set bonus looks at
	setSize = 4

	// UnifiedRarityMultiplier scales every item when all four share a rarity
	UnifiedRarityMultiplier = 1.25

	// ScopeAll marks a contribution routed to every card
	ScopeAll = "all"
)

// Config holds the dependencies for the bonus engine
type Config struct {
	Balance *equipment.Balance
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Balance == nil {
		vb.RequiredField("Balance")
	}

	return vb.Build()
}

// Engine computes bonus profiles and applies them to decks and HP
type Engine struct {
	balance *equipment.Balance
}

// NewEngine creates a bonus engine
func NewEngine(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Engine{balance: cfg.Balance}, nil
}

// ComputeItemBonusProfile builds the profile for a loadout. Invalid items are ignored.
func (e *Engine) ComputeItemBonusProfile(items []*equipment.Item) *Profile {
	valid := make([]*equipment.Item, 0, len(items))
	for _, item := range items {
		if item.IsValid() {
			valid = append(valid, item)
		}
	}

	rarities := make(map[equipment.Rarity]struct{})
	elements := make(map[equipment.Element]struct{})
	for _, item := range valid {
		rarities[item.Rarity] = struct{}{}
		elements[item.Element] = struct{}{}
	}

	sets := Sets{
		UnifiedRarity:    len(valid) == setSize && len(rarities) == 1,
		SchoolOfElements: len(valid) == setSize && len(elements) == setSize,
	}
	multiplier := 1.0
	if sets.UnifiedRarity {
		multiplier = UnifiedRarityMultiplier
	}

	var allCards, hp float64
	perElement := make(map[equipment.Element]float64, len(equipment.AllElements()))
	perItem := make([]ItemBonus, 0, len(valid))

	for _, item := range valid {
		effective := float64(e.balance.ItemPower[item.Rarity]) * multiplier
		hp += effective

		scope := item.Element.String()
		if sets.SchoolOfElements {
			allCards += effective
			scope = ScopeAll
		} else {
			perElement[item.Element] += effective
		}
		perItem = append(perItem, ItemBonus{
			ID:    item.ID,
			Slot:  item.Slot,
			Bonus: effective,
			Scope: scope,
		})
	}

	elementBonus := make(map[equipment.Element]int, len(equipment.AllElements()))
	for _, element := range equipment.AllElements() {
		elementBonus[element] = round(perElement[element])
	}

	return &Profile{
		ItemCount:        len(valid),
		Sets:             sets,
		RarityMultiplier: multiplier,
		PerItem:          perItem,
		AllCardsBonus:    round(allCards),
		ElementBonus:     elementBonus,
		HPBonus:          round(hp),
	}
}

// ApplyItemBonusesToDeck returns copies of the cards with the profile's bonus added.
// Nil cards stay nil. The input deck is not modified.
func (e *Engine) ApplyItemBonusesToDeck(deck []*Card, profile *Profile) []*Card {
	if profile == nil {
		profile = &Profile{}
	}

	out := make([]*Card, len(deck))
	for i, card := range deck {
		if card == nil {
			continue
		}

		element := card.ResolvedElement()
		elementAdd := 0
		if element != "" {
			elementAdd = profile.ElementBonus[element]
		}
		bonus := elementAdd + profile.AllCardsBonus

		next := *card
		power := float64(max(1, card.ResolvedPower()+bonus))
		next.Power = &power
		next.EquipmentBonus = bonus
		next.EquipmentBonusElement = element
		out[i] = &next
	}
	return out
}

// ApplyItemBonusesToHP adds the profile's HP bonus to baseHP; both the base and the
// result are at least 1.
func (e *Engine) ApplyItemBonusesToHP(baseHP float64, profile *Profile) int {
	base := 1
	if !math.IsNaN(baseHP) && !math.IsInf(baseHP, 0) {
		base = max(1, round(baseHP))
	}
	add := 0
	if profile != nil {
		add = profile.HPBonus
	}
	return max(1, base+add)
}

// ApplyItemsToDeckAndHP applies the profile to a deck and to HP. A nil baseHP means
// "sum of the bonused deck's power".
func (e *Engine) ApplyItemsToDeckAndHP(deck []*Card, baseHP *float64, profile *Profile) *DeckAndHP {
	bonused := e.ApplyItemBonusesToDeck(deck, profile)

	var hpBase float64
	if baseHP != nil {
		hpBase = *baseHP
	} else {
		for _, card := range bonused {
			if card != nil {
				hpBase += float64(card.ResolvedPower())
			}
		}
	}

	return &DeckAndHP{
		Deck:    bonused,
		HP:      e.ApplyItemBonusesToHP(hpBase, profile),
		Profile: profile,
	}
}

func round(x float64) int {
	return int(equipment.RoundHalfUp(x))
}
