// Package equipment holds the equipment and artifact vocabulary, the persisted state
// aggregate and the rules that keep raw input inside that vocabulary.
package equipment

// Rarity is the six-level quality tier shared by items and artifacts
type Rarity string

// Rarities in ascending order
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

var rarityOrder = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
}

// AllRarities returns every rarity, lowest first
func AllRarities() []Rarity {
	out := make([]Rarity, len(rarityOrder))
	copy(out, rarityOrder)
	return out
}

// String returns the string representation of the rarity
func (r Rarity) String() string {
	return string(r)
}

// Rank returns the 1-based position of the rarity, or 0 when it is not valid
func (r Rarity) Rank() int {
	for i, candidate := range rarityOrder {
		if candidate == r {
			return i + 1
		}
	}
	return 0
}

// IsValid checks if the rarity is one of the known tiers
func (r Rarity) IsValid() bool {
	return r.Rank() > 0
}

// Next returns the tier above r. The top tier and invalid rarities have none.
func (r Rarity) Next() (Rarity, bool) {
	rank := r.Rank()
	if rank == 0 || rank >= len(rarityOrder) {
		return "", false
	}
	return rarityOrder[rank], true
}

// Slot is one of the four item positions
type Slot string

// Item slots in their fixed iteration order
const (
	SlotHat    Slot = "hat"
	SlotArmor  Slot = "armor"
	SlotWeapon Slot = "weapon"
	SlotBoots  Slot = "boots"
)

// AllSlots returns the item slots in iteration order
func AllSlots() []Slot {
	return []Slot{SlotHat, SlotArmor, SlotWeapon, SlotBoots}
}

// String returns the string representation of the slot
func (s Slot) String() string {
	return string(s)
}

// IsValid checks if the slot is valid
func (s Slot) IsValid() bool {
	switch s {
	case SlotHat, SlotArmor, SlotWeapon, SlotBoots:
		return true
	default:
		return false
	}
}

// Element is the elemental affinity of an item or a card
type Element string

// Elements
const (
	ElementFire  Element = "fire"
	ElementWater Element = "water"
	ElementAir   Element = "air"
	ElementEarth Element = "earth"
)

// AllElements returns the four elements
func AllElements() []Element {
	return []Element{ElementFire, ElementWater, ElementAir, ElementEarth}
}

// String returns the string representation of the element
func (e Element) String() string {
	return string(e)
}

// IsValid checks if the element is valid
func (e Element) IsValid() bool {
	switch e {
	case ElementFire, ElementWater, ElementAir, ElementEarth:
		return true
	default:
		return false
	}
}

// ArtifactType is one of the five artifact categories
type ArtifactType string

// Artifact types in their fixed iteration order
const (
	ArtifactSpear  ArtifactType = "spear"
	ArtifactShield ArtifactType = "shield"
	ArtifactMirror ArtifactType = "mirror"
	ArtifactAmulet ArtifactType = "amulet"
	ArtifactVoodoo ArtifactType = "voodoo"
)

// AllArtifactTypes returns the artifact types in iteration order
func AllArtifactTypes() []ArtifactType {
	return []ArtifactType{ArtifactSpear, ArtifactShield, ArtifactMirror, ArtifactAmulet, ArtifactVoodoo}
}

// String returns the string representation of the artifact type
func (t ArtifactType) String() string {
	return string(t)
}

// IsValid checks if the artifact type is valid
func (t ArtifactType) IsValid() bool {
	switch t {
	case ArtifactSpear, ArtifactShield, ArtifactMirror, ArtifactAmulet, ArtifactVoodoo:
		return true
	default:
		return false
	}
}

// Kind distinguishes items from artifacts
type Kind string

// Entry kinds
const (
	KindItem     Kind = "item"
	KindArtifact Kind = "artifact"
)

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}
