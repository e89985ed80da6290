package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/errors"
)

func TestDefaultBalanceIsValid(t *testing.T) {
	require.NoError(t, equipment.DefaultBalance().Validate())
}

func TestRecipeFrom(t *testing.T) {
	balance := equipment.DefaultBalance()

	recipe, ok := balance.RecipeFrom(equipment.RarityCommon)
	require.True(t, ok)
	assert.Equal(t, equipment.Recipe{
		From: equipment.RarityCommon,
		To:   equipment.RarityUncommon,
		Need: 4,
		Gold: 5,
	}, recipe)

	recipe, ok = balance.RecipeFrom(equipment.RarityLegendary)
	require.True(t, ok)
	assert.Equal(t, equipment.RarityMythic, recipe.To)
	assert.Equal(t, 8, recipe.Need)
	assert.Equal(t, int64(50000), recipe.Gold)

	_, ok = balance.RecipeFrom(equipment.RarityMythic)
	assert.False(t, ok)

	delete(balance.Recipes, equipment.RarityRare)
	_, ok = balance.RecipeFrom(equipment.RarityUncommon)
	assert.False(t, ok)
}

func TestBalanceValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(b *equipment.Balance)
		field  string
	}{
		{
			name:   "negative limit",
			mutate: func(b *equipment.Balance) { b.Limits.Items = -1 },
			field:  "limits.items",
		},
		{
			name:   "percentage above one",
			mutate: func(b *equipment.Balance) { b.ShieldPct[equipment.RarityRare] = 1.5 },
			field:  "shield_pct.rare",
		},
		{
			name: "recipe skips a tier",
			mutate: func(b *equipment.Balance) {
				b.Recipes[equipment.RarityEpic] = equipment.Recipe{From: equipment.RarityCommon, Need: 2, Gold: 1}
			},
			field: "recipes.epic",
		},
		{
			name: "recipe needs nothing",
			mutate: func(b *equipment.Balance) {
				b.Recipes[equipment.RarityRare] = equipment.Recipe{From: equipment.RarityUncommon, Need: 0, Gold: 1}
			},
			field: "recipes.rare.need",
		},
		{
			name:   "negative atelier cost",
			mutate: func(b *equipment.Balance) { b.AtelierCost = -5 },
			field:  "atelier_cost",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			balance := equipment.DefaultBalance()
			tc.mutate(balance)

			err := balance.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}
