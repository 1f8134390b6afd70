package catalog

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"shopkeep/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellPrice_DefaultRecipes(t *testing.T) {
	base := DefaultBase()
	c := MustNew(base)

	tests := []struct {
		id       entity.RecipeID
		expected int
	}{
		{id: IronDagger, expected: 8},     // (3 + 3) * 1.25 = 7.5
		{id: IronSword, expected: 15},     // 9 + 3 + 3
		{id: HealingPotion, expected: 11}, // (6 + 3) * 1.25 = 11.25
		{id: CopperRing, expected: 8},     // 6 * 1.25 = 7.5
		{id: "silver_ring", expected: 18}, // 9 + 9
		{id: "mithril_blade", expected: 63},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			recipe, ok := c.Recipe(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.expected, recipe.SellPrice)
		})
	}
}

func TestSellPrice_Idempotent(t *testing.T) {
	base := DefaultBase()
	c := MustNew(base)

	for _, recipe := range base.Recipes {
		first := SellPrice(base, recipe)
		second := SellPrice(base, recipe)
		assert.Equal(t, first, second, recipe.ID)

		priced, ok := c.Recipe(recipe.ID)
		require.True(t, ok)
		assert.Equal(t, first, priced.SellPrice, recipe.ID)
	}
}

func TestSellPrice_BaseTableUntouched(t *testing.T) {
	base := DefaultBase()
	_ = MustNew(base)

	for _, recipe := range base.Recipes {
		assert.Zero(t, recipe.SellPrice, recipe.ID)
	}
}

func TestNew_DefaultTables(t *testing.T) {
	c, err := New(DefaultBase())
	require.NoError(t, err)

	bronze, ok := c.Box(BronzeBox)
	require.True(t, ok)
	assert.Equal(t, 30, bronze.Cost)

	dagger, ok := c.Recipe(IronDagger)
	require.True(t, ok)
	assert.Equal(t, map[entity.MaterialID]int{Iron: 1, Wood: 1}, dagger.Ingredients)
	assert.Equal(t, entity.ItemTypeWeapon, dagger.Type)
	assert.Equal(t, entity.RarityCommon, dagger.Rarity)

	sword, ok := c.Recipe(IronSword)
	require.True(t, ok)
	assert.Equal(t, entity.RarityUncommon, sword.Rarity)

	assert.Len(t, c.Professions(), 6)
	assert.NotEmpty(t, c.Reports())
	assert.Equal(t, []entity.BoxID{BronzeBox, SilverBox, GoldBox}, boxIDs(c.Boxes()))

	for _, r := range []entity.Rarity{entity.RarityCommon, entity.RarityUncommon, entity.RarityRare} {
		ids := c.MaterialsOfRarity(r)
		assert.NotEmpty(t, ids, r)
		assert.True(t, slices.IsSorted(ids), r)
	}
	assert.Empty(t, c.MaterialsOfRarity(entity.RarityLegendary))
}

func TestNew_ForcedBudgetTiers(t *testing.T) {
	c := MustNew(DefaultBase())

	noble, ok := c.Profession(entity.ProfessionNoble)
	require.True(t, ok)
	assert.Equal(t, entity.BudgetTierWealthy, noble.BudgetTier)

	guard, ok := c.Profession(entity.ProfessionGuard)
	require.True(t, ok)
	assert.Equal(t, entity.BudgetTierBudget, guard.BudgetTier)
}

func TestNew_InvalidBase(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *Base)
		errMsg string
	}{
		{
			name: "unknown ingredient",
			mutate: func(b *Base) {
				b.Recipes = append(b.Recipes, entity.Recipe{
					ID: "ghost_blade", Type: entity.ItemTypeWeapon, Rarity: entity.RarityRare,
					Ingredients: map[entity.MaterialID]int{"ectoplasm": 1},
				})
			},
			errMsg: `unknown ingredient "ectoplasm"`,
		},
		{
			name: "non-positive ingredient count",
			mutate: func(b *Base) {
				b.Recipes[0].Ingredients = map[entity.MaterialID]int{Iron: 0}
			},
			errMsg: "needs a positive count",
		},
		{
			name: "empty box weights",
			mutate: func(b *Base) {
				b.Boxes[0].RarityWeights = map[entity.Rarity]float64{}
			},
			errMsg: "rarity weights are empty",
		},
		{
			name: "duplicate material",
			mutate: func(b *Base) {
				b.Materials = append(b.Materials, b.Materials[0])
			},
			errMsg: "defined twice",
		},
		{
			name: "unknown preferred material",
			mutate: func(b *Base) {
				b.Professions[0].PreferredMaterials = []entity.MaterialID{"unobtainium"}
			},
			errMsg: `unknown preferred material "unobtainium"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := DefaultBase()
			tt.mutate(&base)

			c, err := New(base)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCatalog_Suggest(t *testing.T) {
	c := MustNew(DefaultBase())

	suggestions := c.Suggest("iron_dager")
	require.NotEmpty(t, suggestions)
	assert.Equal(t, string(IronDagger), suggestions[0])
	assert.LessOrEqual(t, len(suggestions), maxSuggestions)

	assert.Nil(t, c.Suggest("qqqqqqqqqq"))
}

func TestMerge_OverridesAndExtends(t *testing.T) {
	doc := []byte(`
boxes:
  - id: bronze
    name: Cheap Box
    cost: 10
    materialCount: {min: 1, max: 1}
    rarityWeights: {common: 1}
recipes:
  - id: wooden_club
    name: Wooden Club
    ingredients: {wood: 2}
    type: weapon
    subcategory: club
    rarity: common
economy:
  commonRecipeMargin: 2
`)

	base, err := Merge(DefaultBase(), doc)
	require.NoError(t, err)

	c, err := New(base)
	require.NoError(t, err)

	bronze, ok := c.Box(BronzeBox)
	require.True(t, ok)
	assert.Equal(t, 10, bronze.Cost)
	assert.Len(t, c.Boxes(), 3)

	club, ok := c.Recipe("wooden_club")
	require.True(t, ok)
	assert.Equal(t, 12, club.SellPrice) // 2 * 3 * 2

	// Economy fields absent from the document keep their defaults.
	assert.Equal(t, 15, c.Economy().RequestBasePrices[entity.RarityCommon])
}

func TestMerge_DoesNotModifyInput(t *testing.T) {
	base := DefaultBase()
	doc := []byte("boxes:\n  - id: bronze\n    cost: 1\n    materialCount: {min: 1, max: 1}\n    rarityWeights: {common: 1}\n")

	_, err := Merge(base, doc)
	require.NoError(t, err)
	assert.Equal(t, 30, base.Boxes[0].Cost)
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		base, err := LoadFile("")
		require.NoError(t, err)
		assert.Equal(t, DefaultBase(), base)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read catalog file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("boxes: [unterminated"), 0o600))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse catalog file")
	})

	t.Run("override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("economy:\n  offerSpread: 0.2\n"), 0o600))

		base, err := LoadFile(path)
		require.NoError(t, err)
		assert.InDelta(t, 0.2, base.Economy.OfferSpread, 1e-9)
		assert.InDelta(t, 1.25, base.Economy.CommonRecipeMargin, 1e-9)
	})
}

func TestEconomy_RarityWeightsForDay(t *testing.T) {
	eco := DefaultEconomy()

	tests := []struct {
		day  int
		rare float64
	}{
		{day: 1, rare: 0},
		{day: 3, rare: 0},
		{day: 4, rare: 0.1},
		{day: 6, rare: 0.1},
		{day: 7, rare: 0.25},
		{day: 30, rare: 0.25},
	}

	for _, tt := range tests {
		weights := eco.RarityWeightsForDay(tt.day)
		assert.InDelta(t, tt.rare, weights[entity.RarityRare], 1e-9, "day %d", tt.day)
	}
}

func boxIDs(boxes []entity.BoxType) []entity.BoxID {
	ids := make([]entity.BoxID, 0, len(boxes))
	for _, b := range boxes {
		ids = append(ids, b.ID)
	}

	return ids
}
