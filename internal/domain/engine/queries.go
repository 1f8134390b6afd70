package engine

import (
	"cmp"
	"slices"

	"shopkeep/internal/domain/entity"
)

const topMaterialsCount = 4

// Match quality scores, used only to order sale candidates.
const (
	MatchNone        = 0
	MatchFlexible    = 1
	MatchType        = 2
	MatchTypeUpgrade = 3
	MatchExact       = 4
)

// FilterRecipesByType returns the recipes of one item type. An empty type keeps every recipe.
func FilterRecipesByType(recipes []entity.Recipe, itemType entity.ItemType) []entity.Recipe {
	if itemType == "" {
		return slices.Clone(recipes)
	}

	out := make([]entity.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.Type == itemType {
			out = append(out, r)
		}
	}

	return out
}

// FilterInventoryByType returns the inventory entries of one item type. An empty type keeps every entry.
func FilterInventoryByType(entries []entity.InventoryEntry, itemType entity.ItemType) []entity.InventoryEntry {
	if itemType == "" {
		return slices.Clone(entries)
	}

	out := make([]entity.InventoryEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Recipe.Type == itemType {
			out = append(out, entry)
		}
	}

	return out
}

// Inventory lists the crafted items in stock, in catalog order.
func (e *Engine) Inventory(state entity.GameState) []entity.InventoryEntry {
	out := []entity.InventoryEntry{}
	for _, r := range e.catalog.Recipes() {
		if n := state.Inventory[r.ID]; n > 0 {
			out = append(out, entity.InventoryEntry{Recipe: r, Count: n})
		}
	}

	return out
}

// SortRecipesByRarityAndCraftability orders craftable recipes first, then by descending rarity.
// The sort is stable and returns a new slice.
func SortRecipesByRarityAndCraftability(recipes []entity.Recipe, state entity.GameState) []entity.Recipe {
	out := slices.Clone(recipes)
	slices.SortStableFunc(out, func(a, b entity.Recipe) int {
		ca, cb := CanCraft(state, a), CanCraft(state, b)
		if ca != cb {
			if ca {
				return -1
			}

			return 1
		}

		return entity.CompareRarity(b.Rarity, a.Rarity)
	})

	return out
}

// SortInventoryByRarity orders entries by descending rarity. The sort is stable and returns a new slice.
func SortInventoryByRarity(entries []entity.InventoryEntry) []entity.InventoryEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b entity.InventoryEntry) int {
		return entity.CompareRarity(b.Recipe.Rarity, a.Recipe.Rarity)
	})

	return out
}

// MatchQuality scores how well an item fits a customer's request.
func MatchQuality(recipe entity.Recipe, customer entity.Customer) int {
	switch {
	case recipe.Type == customer.RequestType && recipe.Rarity == customer.RequestRarity:
		return MatchExact
	case recipe.Type == customer.RequestType && recipe.Rarity.Rank() > customer.RequestRarity.Rank():
		return MatchTypeUpgrade
	case recipe.Type == customer.RequestType:
		return MatchType
	case customer.Flexible:
		return MatchFlexible
	default:
		return MatchNone
	}
}

// SortByMatchQualityAndRarity orders entries by descending match quality for customer, then
// by descending rarity. The sort is stable and returns a new slice.
func SortByMatchQualityAndRarity(entries []entity.InventoryEntry, customer entity.Customer) []entity.InventoryEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b entity.InventoryEntry) int {
		return cmp.Or(
			cmp.Compare(MatchQuality(b.Recipe, customer), MatchQuality(a.Recipe, customer)),
			entity.CompareRarity(b.Recipe.Rarity, a.Recipe.Rarity),
		)
	})

	return out
}

// TopMaterials returns the materials with the highest stock, by descending count then id.
func TopMaterials(state entity.GameState) []entity.MaterialStack {
	stacks := make([]entity.MaterialStack, 0, len(state.Materials))
	for id, n := range state.Materials {
		if n > 0 {
			stacks = append(stacks, entity.MaterialStack{MaterialID: id, Count: n})
		}
	}
	slices.SortFunc(stacks, func(a, b entity.MaterialStack) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.MaterialID, b.MaterialID))
	})

	return stacks[:min(len(stacks), topMaterialsCount)]
}
