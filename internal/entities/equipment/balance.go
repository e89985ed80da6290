package equipment

import (
	"fmt"

	"github.com/KirkDiggler/cardastika-api/internal/errors"
)

// SourceDailyReward is the acquisition source allowed to overflow storage by one
const SourceDailyReward = "daily_reward"

// Limits bounds the number of stored (non-equipped) entries
type Limits struct {
	Items                 int `json:"items" yaml:"items"`
	Artifacts             int `json:"artifacts" yaml:"artifacts"`
	OverflowByDailyReward int `json:"overflowByDailyReward" yaml:"overflow_by_daily_reward"`
}

// Capacity returns the storage cap for kind, including the overflow allowance when the
// entry comes from the daily reward.
func (l Limits) Capacity(kind Kind, source string) int {
	base := l.Items
	if kind == KindArtifact {
		base = l.Artifacts
	}
	if source == SourceDailyReward {
		base += l.OverflowByDailyReward
	}
	return base
}

// Recipe turns Need entries of rarity From into one entry of rarity To for Gold
type Recipe struct {
	From Rarity `json:"from" yaml:"from"`
	To   Rarity `json:"to" yaml:"-"`
	Need int    `json:"need" yaml:"need"`
	Gold int64  `json:"gold" yaml:"gold"`
}

// Balance is the full set of numeric tables behind bonuses, artifact rates, recipes and
// limits.
type Balance struct {
	Limits      Limits             `yaml:"limits"`
	ItemPower   map[Rarity]int     `yaml:"item_power"`
	SpearPct    map[Rarity]float64 `yaml:"spear_pct"`
	ShieldPct   map[Rarity]float64 `yaml:"shield_pct"`
	MirrorPct   map[Rarity]float64 `yaml:"mirror_pct"`
	AmuletPct   map[Rarity]float64 `yaml:"amulet_pct"`
	VoodooPct   map[Rarity]float64 `yaml:"voodoo_pct"`
	Recipes     map[Rarity]Recipe  `yaml:"recipes"`
	AtelierCost int64              `yaml:"atelier_cost"`
}

// DefaultBalance returns the shipped tables. Every call returns fresh maps.
func DefaultBalance() *Balance {
	return &Balance{
		Limits: Limits{
			Items:                 888,
			Artifacts:             888,
			OverflowByDailyReward: 1,
		},
		ItemPower: map[Rarity]int{
			RarityCommon:    25,
			RarityUncommon:  50,
			RarityRare:      100,
			RarityEpic:      200,
			RarityLegendary: 400,
			RarityMythic:    1000,
		},
		SpearPct: map[Rarity]float64{
			RarityCommon:    0.02,
			RarityUncommon:  0.04,
			RarityRare:      0.08,
			RarityEpic:      0.12,
			RarityLegendary: 0.2,
			RarityMythic:    0.3,
		},
		ShieldPct: map[Rarity]float64{
			RarityCommon:    0.02,
			RarityUncommon:  0.03,
			RarityRare:      0.07,
			RarityEpic:      0.11,
			RarityLegendary: 0.18,
			RarityMythic:    0.24,
		},
		MirrorPct: map[Rarity]float64{
			RarityCommon:    0.01,
			RarityUncommon:  0.02,
			RarityRare:      0.04,
			RarityEpic:      0.06,
			RarityLegendary: 0.09,
			RarityMythic:    0.12,
		},
		AmuletPct: map[Rarity]float64{
			RarityCommon:    0.02,
			RarityUncommon:  0.04,
			RarityRare:      0.08,
			RarityEpic:      0.12,
			RarityLegendary: 0.2,
			RarityMythic:    0.3,
		},
		VoodooPct: map[Rarity]float64{
			RarityCommon:    0.01,
			RarityUncommon:  0.02,
			RarityRare:      0.04,
			RarityEpic:      0.06,
			RarityLegendary: 0.09,
			RarityMythic:    0.12,
		},
		Recipes: map[Rarity]Recipe{
			RarityUncommon:  {From: RarityCommon, Need: 4, Gold: 5},
			RarityRare:      {From: RarityUncommon, Need: 5, Gold: 50},
			RarityEpic:      {From: RarityRare, Need: 6, Gold: 500},
			RarityLegendary: {From: RarityEpic, Need: 7, Gold: 5000},
			RarityMythic:    {From: RarityLegendary, Need: 8, Gold: 50000},
		},
		AtelierCost: 50000,
	}
}

// RecipeFrom returns the recipe consuming entries of rarity from.
// There is none for the top tier, or when the recipe for the next tier starts elsewhere.
func (b *Balance) RecipeFrom(from Rarity) (Recipe, bool) {
	next, ok := from.Next()
	if !ok {
		return Recipe{}, false
	}
	recipe, ok := b.Recipes[next]
	if !ok || recipe.From != from {
		return Recipe{}, false
	}
	recipe.To = next
	return recipe, true
}

// Validate checks that the tables are usable
func (b *Balance) Validate() error {
	vb := errors.NewValidationBuilder()

	if b.Limits.Items < 0 {
		vb.Field("limits.items", "must not be negative")
	}
	if b.Limits.Artifacts < 0 {
		vb.Field("limits.artifacts", "must not be negative")
	}
	if b.Limits.OverflowByDailyReward < 0 {
		vb.Field("limits.overflow_by_daily_reward", "must not be negative")
	}
	if b.AtelierCost < 0 {
		vb.Field("atelier_cost", "must not be negative")
	}

	for rarity, power := range b.ItemPower {
		if !rarity.IsValid() {
			vb.Fieldf("item_power", "unknown rarity %q", rarity)
		}
		if power < 0 {
			vb.Field(fmt.Sprintf("item_power.%s", rarity), "must not be negative")
		}
	}

	pctTables := map[string]map[Rarity]float64{
		"spear_pct":  b.SpearPct,
		"shield_pct": b.ShieldPct,
		"mirror_pct": b.MirrorPct,
		"amulet_pct": b.AmuletPct,
		"voodoo_pct": b.VoodooPct,
	}
	for name, table := range pctTables {
		for rarity, pct := range table {
			if !rarity.IsValid() {
				vb.Fieldf(name, "unknown rarity %q", rarity)
			}
			errors.ValidateRange(fmt.Sprintf("%s.%s", name, rarity), pct, 0, 1, vb)
		}
	}

	for to, recipe := range b.Recipes {
		field := fmt.Sprintf("recipes.%s", to)
		if !to.IsValid() || to == RarityCommon {
			vb.Fieldf(field, "cannot produce %q", to)
			continue
		}
		if next, _ := recipe.From.Next(); next != to {
			vb.Fieldf(field, "must consume the tier directly below, got %q", recipe.From)
		}
		if recipe.Need <= 0 {
			vb.Fieldf(field+".need", "must be positive, got %d", recipe.Need)
		}
		if recipe.Gold < 0 {
			vb.Field(field+".gold", "must not be negative")
		}
	}

	return vb.Build()
}
