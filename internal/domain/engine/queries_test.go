package engine

import (
	"testing"

	"shopkeep/internal/domain/catalog"
	"shopkeep/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeIDs(recipes []entity.Recipe) []entity.RecipeID {
	ids := make([]entity.RecipeID, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}

	return ids
}

func entryIDs(entries []entity.InventoryEntry) []entity.RecipeID {
	ids := make([]entity.RecipeID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.Recipe.ID)
	}

	return ids
}

func mustRecipe(t *testing.T, c *catalog.Catalog, id entity.RecipeID) entity.Recipe {
	t.Helper()

	r, ok := c.Recipe(id)
	require.True(t, ok, id)

	return r
}

func TestSortRecipesByRarityAndCraftability(t *testing.T) {
	c := catalog.MustNew(catalog.DefaultBase())
	recipes := c.Recipes()
	original := recipeIDs(recipes)

	state := entity.NewGameState(0)
	state.Materials = map[entity.MaterialID]int{catalog.Iron: 1, catalog.Wood: 1}

	sorted := SortRecipesByRarityAndCraftability(recipes, state)

	require.Len(t, sorted, len(recipes))
	assert.Equal(t, catalog.IronDagger, sorted[0].ID)
	// Rare recipes keep their catalog order among themselves.
	assert.Equal(t, entity.RecipeID("mithril_blade"), sorted[1].ID)
	assert.Equal(t, entity.RecipeID("dragonbone_bow"), sorted[2].ID)
	assert.Equal(t, entity.RarityCommon, sorted[len(sorted)-1].Rarity)

	assert.Equal(t, original, recipeIDs(recipes), "input must not be reordered")
}

func TestSortInventoryByRarity(t *testing.T) {
	c := catalog.MustNew(catalog.DefaultBase())
	entries := []entity.InventoryEntry{
		{Recipe: mustRecipe(t, c, catalog.IronDagger), Count: 1},
		{Recipe: mustRecipe(t, c, "mithril_blade"), Count: 1},
		{Recipe: mustRecipe(t, c, catalog.HealingPotion), Count: 2},
		{Recipe: mustRecipe(t, c, catalog.IronSword), Count: 1},
	}

	sorted := SortInventoryByRarity(entries)

	assert.Equal(t, []entity.RecipeID{"mithril_blade", catalog.IronSword, catalog.IronDagger, catalog.HealingPotion}, entryIDs(sorted))
	assert.Equal(t, catalog.IronDagger, entries[0].Recipe.ID)
}

func TestMatchQuality(t *testing.T) {
	c := catalog.MustNew(catalog.DefaultBase())
	customer := entity.Customer{RequestType: entity.ItemTypeWeapon, RequestRarity: entity.RarityUncommon}

	assert.Equal(t, MatchExact, MatchQuality(mustRecipe(t, c, catalog.IronSword), customer))
	assert.Equal(t, MatchTypeUpgrade, MatchQuality(mustRecipe(t, c, "mithril_blade"), customer))
	assert.Equal(t, MatchType, MatchQuality(mustRecipe(t, c, catalog.IronDagger), customer))
	assert.Equal(t, MatchNone, MatchQuality(mustRecipe(t, c, "cloth_robe"), customer))

	customer.Flexible = true
	assert.Equal(t, MatchFlexible, MatchQuality(mustRecipe(t, c, "cloth_robe"), customer))
}

func TestSortByMatchQualityAndRarity(t *testing.T) {
	c := catalog.MustNew(catalog.DefaultBase())
	entries := []entity.InventoryEntry{
		{Recipe: mustRecipe(t, c, "cloth_robe"), Count: 1},
		{Recipe: mustRecipe(t, c, catalog.IronSword), Count: 1},
		{Recipe: mustRecipe(t, c, catalog.IronDagger), Count: 1},
		{Recipe: mustRecipe(t, c, "hunting_bow"), Count: 1},
		{Recipe: mustRecipe(t, c, "mithril_blade"), Count: 1},
	}
	original := entryIDs(entries)
	customer := entity.Customer{RequestType: entity.ItemTypeWeapon, RequestRarity: entity.RarityCommon}

	sorted := SortByMatchQualityAndRarity(entries, customer)

	assert.Equal(t, []entity.RecipeID{
		catalog.IronDagger, // exact, first of the tie
		"hunting_bow",      // exact
		"mithril_blade",    // upgrade, rare
		catalog.IronSword,  // upgrade, uncommon
		"cloth_robe",       // no match
	}, entryIDs(sorted))
	assert.Equal(t, original, entryIDs(entries))
}

func TestFilterRecipesByType(t *testing.T) {
	c := catalog.MustNew(catalog.DefaultBase())

	potions := FilterRecipesByType(c.Recipes(), entity.ItemTypePotion)
	require.NotEmpty(t, potions)
	for _, r := range potions {
		assert.Equal(t, entity.ItemTypePotion, r.Type)
	}

	assert.Len(t, FilterRecipesByType(c.Recipes(), ""), len(c.Recipes()))
}

func TestEngine_InventoryAndFilter(t *testing.T) {
	e := createTestEngine(t, constantRandom(0))
	state := entity.NewGameState(0)
	state.Inventory = map[entity.RecipeID]int{
		catalog.IronDagger:    2,
		catalog.HealingPotion: 1,
		catalog.IronSword:     0,
	}

	entries := e.Inventory(state)
	assert.Equal(t, []entity.RecipeID{catalog.IronDagger, catalog.HealingPotion}, entryIDs(entries))
	assert.Equal(t, 2, entries[0].Count)

	weapons := FilterInventoryByType(entries, entity.ItemTypeWeapon)
	assert.Equal(t, []entity.RecipeID{catalog.IronDagger}, entryIDs(weapons))

	assert.Empty(t, e.Inventory(entity.NewGameState(0)))
}

func TestTopMaterials(t *testing.T) {
	state := entity.NewGameState(0)
	state.Materials = map[entity.MaterialID]int{
		catalog.Iron:  5,
		catalog.Wood:  5,
		catalog.Herbs: 1,
		catalog.Stone: 3,
		catalog.Cloth: 2,
		catalog.Bone:  0,
	}

	top := TopMaterials(state)

	assert.Equal(t, []entity.MaterialStack{
		{MaterialID: catalog.Iron, Count: 5},
		{MaterialID: catalog.Wood, Count: 5},
		{MaterialID: catalog.Stone, Count: 3},
		{MaterialID: catalog.Cloth, Count: 2},
	}, top)

	assert.Empty(t, TopMaterials(entity.NewGameState(0)))
}
