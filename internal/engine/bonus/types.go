package bonus

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
)

// Sets reports which set bonuses are active
type Sets struct {
	UnifiedRarity    bool `json:"unifiedRarity"`
	SchoolOfElements bool `json:"schoolOfElements"`
}

// ItemBonus is one item's contribution. Scope is an element or ScopeAll.
type ItemBonus struct {
	ID    string         `json:"id"`
	Slot  equipment.Slot `json:"slot"`
	Bonus float64        `json:"bonus"`
	Scope string         `json:"scope"`
}

// Profile is the derived bonus snapshot of a loadout. Totals are rounded once.
type Profile struct {
	ItemCount        int                       `json:"itemCount"`
	Sets             Sets                      `json:"sets"`
	RarityMultiplier float64                   `json:"rarityMultiplier"`
	PerItem          []ItemBonus               `json:"perItem"`
	AllCardsBonus    int                       `json:"allCardsBonus"`
	ElementBonus     map[equipment.Element]int `json:"elementBonus"`
	HPBonus          int                       `json:"hpBonus"`
}

// Card is a deck card as handed over by the deck owner. Its base power is the first
// present of Power, BasePower, Str, Attack and Value. Its element is the first
// non-empty of Element, Elem and Type.
type Card struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name,omitempty"`
	Element   string   `json:"element,omitempty"`
	Elem      string   `json:"elem,omitempty"`
	Type      string   `json:"type,omitempty"`
	Power     *float64 `json:"power,omitempty"`
	BasePower *float64 `json:"basePower,omitempty"`
	Str       *float64 `json:"str,omitempty"`
	Attack    *float64 `json:"attack,omitempty"`
	Value     *float64 `json:"value,omitempty"`

	EquipmentBonus        int               `json:"equipmentBonus,omitempty"`
	EquipmentBonusElement equipment.Element `json:"equipmentBonusElement,omitempty"`
}

type rawCard struct {
	ID        equipment.FlexString  `json:"id"`
	Name      equipment.FlexString  `json:"name"`
	Element   equipment.FlexString  `json:"element"`
	Elem      equipment.FlexString  `json:"elem"`
	Type      equipment.FlexString  `json:"type"`
	Power     *equipment.FlexNumber `json:"power"`
	BasePower *equipment.FlexNumber `json:"basePower"`
	Str       *equipment.FlexNumber `json:"str"`
	Attack    *equipment.FlexNumber `json:"attack"`
	Value     *equipment.FlexNumber `json:"value"`

	EquipmentBonus        equipment.FlexNumber `json:"equipmentBonus"`
	EquipmentBonusElement equipment.FlexString `json:"equipmentBonusElement"`
}

// UnmarshalJSON accepts numeric strings for the power fields and never fails.
// A card that is not an object decodes to the zero card.
func (c *Card) UnmarshalJSON(b []byte) error {
	*c = Card{}
	if trimmed := bytes.TrimSpace(b); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var raw rawCard
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	*c = Card{
		ID:                    string(raw.ID),
		Name:                  string(raw.Name),
		Element:               string(raw.Element),
		Elem:                  string(raw.Elem),
		Type:                  string(raw.Type),
		Power:                 flexPtr(raw.Power),
		BasePower:             flexPtr(raw.BasePower),
		Str:                   flexPtr(raw.Str),
		Attack:                flexPtr(raw.Attack),
		Value:                 flexPtr(raw.Value),
		EquipmentBonus:        round(float64(raw.EquipmentBonus)),
		EquipmentBonusElement: equipment.NormalizeElement(string(raw.EquipmentBonusElement)),
	}
	return nil
}

func flexPtr(n *equipment.FlexNumber) *float64 {
	if n == nil {
		return nil
	}
	v := float64(*n)
	return &v
}

// ResolvedPower returns the card's rounded power, at least 1
func (c *Card) ResolvedPower() int {
	var n float64
	for _, candidate := range []*float64{c.Power, c.BasePower, c.Str, c.Attack, c.Value} {
		if candidate != nil {
			n = *candidate
			break
		}
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 1
	}
	return max(1, round(n))
}

// ResolvedElement returns the card's normalized element, "" when it has none
func (c *Card) ResolvedElement() equipment.Element {
	for _, raw := range []string{c.Element, c.Elem, c.Type} {
		if raw != "" {
			return equipment.NormalizeElement(raw)
		}
	}
	return ""
}

// DeckAndHP is a bonused deck together with the bonused HP
type DeckAndHP struct {
	Deck    []*Card  `json:"deck"`
	HP      int      `json:"hp"`
	Profile *Profile `json:"profile,omitempty"`
}
