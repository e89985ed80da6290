package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
)

func buildState() *equipment.State {
	state := equipment.NewEmptyState(1)
	state.Items = []*equipment.Item{
		{ID: "hat1", Kind: equipment.KindItem, Slot: equipment.SlotHat, Element: equipment.ElementFire, Rarity: equipment.RarityCommon},
		{ID: "hat2", Kind: equipment.KindItem, Slot: equipment.SlotHat, Element: equipment.ElementWater, Rarity: equipment.RarityCommon},
		{ID: "boots1", Kind: equipment.KindItem, Slot: equipment.SlotBoots, Element: equipment.ElementAir, Rarity: equipment.RarityRare},
	}
	state.Artifacts = []*equipment.Artifact{
		{ID: "spear1", Kind: equipment.KindArtifact, ArtifactType: equipment.ArtifactSpear, Rarity: equipment.RarityEpic},
		{ID: "shield1", Kind: equipment.KindArtifact, ArtifactType: equipment.ArtifactShield, Rarity: equipment.RarityRare},
	}
	state.Equipped.Items[equipment.SlotBoots] = "boots1"
	state.Equipped.Items[equipment.SlotHat] = "hat2"
	state.Equipped.Artifacts[equipment.ArtifactShield] = "shield1"
	state.Equipped.Artifacts[equipment.ArtifactMirror] = "gone"
	return state
}

func TestStoredCountsExcludeEquipped(t *testing.T) {
	state := buildState()
	assert.Equal(t, equipment.Counts{Items: 1, Artifacts: 1}, state.StoredCounts())
}

func TestEquippedInFixedOrder(t *testing.T) {
	state := buildState()

	items := state.EquippedItems()
	if assert.Len(t, items, 2) {
		assert.Equal(t, "hat2", items[0].ID)
		assert.Equal(t, "boots1", items[1].ID)
	}

	artifacts := state.EquippedArtifacts()
	if assert.Len(t, artifacts, 1) {
		assert.Equal(t, "shield1", artifacts[0].ID)
	}
}

func TestRemoveClearsReferences(t *testing.T) {
	state := buildState()

	state.RemoveItems(map[string]struct{}{"hat2": {}, "hat1": {}})
	state.RemoveArtifacts(map[string]struct{}{"shield1": {}})

	assert.Len(t, state.Items, 1)
	assert.Equal(t, "boots1", state.Items[0].ID)
	assert.Equal(t, "", state.Equipped.Items[equipment.SlotHat])
	assert.Equal(t, "boots1", state.Equipped.Items[equipment.SlotBoots])

	assert.Len(t, state.Artifacts, 1)
	assert.Equal(t, "", state.Equipped.Artifacts[equipment.ArtifactShield])
	assert.Nil(t, state.ArtifactByID("shield1"))
	assert.NotNil(t, state.ArtifactByID("spear1"))
}

func TestLimitsCapacity(t *testing.T) {
	limits := equipment.DefaultBalance().Limits
	assert.Equal(t, 888, limits.Capacity(equipment.KindItem, ""))
	assert.Equal(t, 889, limits.Capacity(equipment.KindArtifact, equipment.SourceDailyReward))
}

func TestRarityNext(t *testing.T) {
	next, ok := equipment.RarityEpic.Next()
	assert.True(t, ok)
	assert.Equal(t, equipment.RarityLegendary, next)

	_, ok = equipment.RarityMythic.Next()
	assert.False(t, ok)

	_, ok = equipment.Rarity("golden").Next()
	assert.False(t, ok)
}

func TestLookupByID(t *testing.T) {
	state := buildState()

	testCases := []struct {
		name string
		id   string
		item bool
		art  bool
	}{
		{name: "item", id: "boots1", item: true},
		{name: "artifact", id: "spear1", art: true},
		{name: "dangling reference", id: "gone"},
		{name: "empty id", id: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := state.ItemByID(tc.id)
			artifact := state.ArtifactByID(tc.id)
			assert.Equal(t, tc.item, item != nil)
			assert.Equal(t, tc.art, artifact != nil)
			if item != nil {
				assert.Equal(t, tc.id, item.GetID())
				assert.Equal(t, string(equipment.KindItem), item.GetType())
			}
			if artifact != nil {
				assert.Equal(t, tc.id, artifact.GetID())
				assert.Equal(t, string(equipment.KindArtifact), artifact.GetType())
			}
		})
	}
}
