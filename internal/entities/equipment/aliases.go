package equipment

import (
	"encoding/json"
	"math"
	"strings"
)

var rarityAliases = map[string]Rarity{
	"common":      RarityCommon,
	"normal":      RarityCommon,
	"ordinary":    RarityCommon,
	"uncommon":    RarityUncommon,
	"rare":        RarityRare,
	"epic":        RarityEpic,
	"legendary":   RarityLegendary,
	"mythic":      RarityMythic,
	"mythiccal":   RarityMythic,
	"обычная":     RarityCommon,
	"звичайна":    RarityCommon,
	"необычная":   RarityUncommon,
	"незвичайна":  RarityUncommon,
	"редкая":      RarityRare,
	"рідкісна":    RarityRare,
	"эпическая":   RarityEpic,
	"епічна":      RarityEpic,
	"легендарная": RarityLegendary,
	"легендарна":  RarityLegendary,
	"мифическая":  RarityMythic,
	"міфічна":     RarityMythic,
}

var slotAliases = map[string]Slot{
	"hat":    SlotHat,
	"helmet": SlotHat,
	"шапка":  SlotHat,
	"шляпа":  SlotHat,
	"шолом":  SlotHat,
	"armor":  SlotArmor,
	"cloak":  SlotArmor,
	"chest":  SlotArmor,
	"плащ":   SlotArmor,
	"броня":  SlotArmor,
	"weapon": SlotWeapon,
	"staff":  SlotWeapon,
	"sword":  SlotWeapon,
	"зброя":  SlotWeapon,
	"меч":    SlotWeapon,
	"boots":  SlotBoots,
	"boot":   SlotBoots,
	"сапоги": SlotBoots,
	"чоботи": SlotBoots,
}

var artifactTypeAliases = map[string]ArtifactType{
	"spear":          ArtifactSpear,
	"копье":          ArtifactSpear,
	"копьё":          ArtifactSpear,
	"копье мага":     ArtifactSpear,
	"спис":           ArtifactSpear,
	"спис мага":      ArtifactSpear,
	"shield":         ArtifactShield,
	"щит":            ArtifactShield,
	"щит мага":       ArtifactShield,
	"mirror":         ArtifactMirror,
	"зеркало":        ArtifactMirror,
	"зеркало магии":  ArtifactMirror,
	"дзеркало":       ArtifactMirror,
	"дзеркало магії": ArtifactMirror,
	"amulet":         ArtifactAmulet,
	"амулет":         ArtifactAmulet,
	"амулет жизни":   ArtifactAmulet,
	"амулет життя":   ArtifactAmulet,
	"voodoo":         ArtifactVoodoo,
	"кукла вуду":     ArtifactVoodoo,
	"лялька вуду":    ArtifactVoodoo,
}

func token(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeRarity maps a rank or an alias onto a Rarity.
// Numbers are 1-based ranks, rounded half up and clamped to the known tiers.
// Strings are matched case-insensitively against the alias table; numeric strings are
// not ranks. Anything else yields "".
func NormalizeRarity(v any) Rarity {
	switch val := v.(type) {
	case Rarity:
		return rarityAliases[token(string(val))]
	case string:
		return rarityAliases[token(val)]
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return ""
		}
		return rarityFromRank(f)
	case int:
		return rarityFromRank(float64(val))
	case int32:
		return rarityFromRank(float64(val))
	case int64:
		return rarityFromRank(float64(val))
	case float32:
		return rarityFromRank(float64(val))
	case float64:
		return rarityFromRank(val)
	default:
		return ""
	}
}

func rarityFromRank(n float64) Rarity {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return ""
	}
	idx := int(RoundHalfUp(n))
	if idx < 1 {
		idx = 1
	}
	if idx > len(rarityOrder) {
		idx = len(rarityOrder)
	}
	return rarityOrder[idx-1]
}

// NormalizeElement accepts the four elements and the legacy "wind" for air
func NormalizeElement(s string) Element {
	e := Element(token(s))
	if e == "wind" {
		return ElementAir
	}
	if e.IsValid() {
		return e
	}
	return ""
}

// NormalizeSlot resolves slot aliases, "" when unknown
func NormalizeSlot(s string) Slot {
	return slotAliases[token(s)]
}

// NormalizeArtifactType resolves artifact type aliases, "" when unknown
func NormalizeArtifactType(s string) ArtifactType {
	return artifactTypeAliases[token(s)]
}

// RoundHalfUp rounds to the nearest integer with halves going towards +Inf
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
