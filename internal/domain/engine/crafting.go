package engine

import (
	"fmt"
	"slices"
	"strings"

	"shopkeep/internal/domain/entity"
	domainerrors "shopkeep/internal/domain/errors"
)

// OpenBox buys a supply box and adds the materials it yields to stock.
func (e *Engine) OpenBox(state entity.GameState, boxID entity.BoxID) (Result, error) {
	if err := e.requirePhase(state, entity.PhaseMorning, entity.PhaseCrafting); err != nil {
		return Result{}, err
	}

	box, ok := e.catalog.Box(boxID)
	if !ok {
		return Result{}, domainerrors.ErrBoxNotFound.WithDetails(e.suggestion(string(boxID)))
	}
	if state.Gold < box.Cost {
		return Result{}, domainerrors.ErrNotEnoughGold.WithDetails(
			fmt.Sprintf("%s costs %d gold, you have %d", box.Name, box.Cost, state.Gold))
	}

	next := state.Clone()
	next.Gold -= box.Cost

	found := make(map[entity.MaterialID]int)
	count := e.rangeInclusive(box.MaterialCount.Min, box.MaterialCount.Max)
	for range count {
		id := e.drawMaterial(box)
		found[id]++
		next.Materials[id]++
	}

	var fx Effects
	summary := fmt.Sprintf("Opened %s: %s", box.Name, e.describeMaterials(found))
	fx.event(next.Day, entity.KindSuccess, summary)
	fx.notify(entity.KindSuccess, summary)

	return Result{State: next, Effects: fx}, nil
}

// drawMaterial samples a rarity tier from the box weights in rank order, then a material
// uniformly among the catalog materials of that tier.
func (e *Engine) drawMaterial(box entity.BoxType) entity.MaterialID {
	weights := make([]float64, len(entity.Rarities))
	for i, r := range entity.Rarities {
		weights[i] = box.RarityWeights[r]
	}

	var pool []entity.MaterialID
	if i := e.weightedIndex(weights); i >= 0 {
		pool = e.catalog.MaterialsOfRarity(entity.Rarities[i])
	}
	if len(pool) == 0 {
		for _, m := range e.catalog.Materials() {
			pool = append(pool, m.ID)
		}
	}

	return pick(e, pool)
}

func (e *Engine) describeMaterials(found map[entity.MaterialID]int) string {
	if len(found) == 0 {
		return "nothing"
	}

	ids := make([]entity.MaterialID, 0, len(found))
	for id := range found {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%dx %s", found[id], e.catalog.MaterialName(id)))
	}

	return strings.Join(parts, ", ")
}

// CraftItem consumes a recipe's ingredients and adds one crafted item to inventory.
// Every ingredient is checked before any is consumed.
func (e *Engine) CraftItem(state entity.GameState, recipeID entity.RecipeID) (Result, error) {
	if err := e.requirePhase(state, entity.PhaseMorning, entity.PhaseCrafting); err != nil {
		return Result{}, err
	}

	recipe, ok := e.catalog.Recipe(recipeID)
	if !ok {
		return Result{}, domainerrors.ErrRecipeNotFound.WithDetails(e.suggestion(string(recipeID)))
	}

	if missing, ok := firstMissingIngredient(state, recipe); ok {
		have, need := state.Materials[missing], recipe.Ingredients[missing]

		return Result{}, domainerrors.ErrInsufficientMaterials.
			WithMessage("Need more " + e.catalog.MaterialName(missing)).
			WithDetails(fmt.Sprintf("have %d, need %d", have, need))
	}

	next := state.Clone()
	for id, count := range recipe.Ingredients {
		next.Materials[id] -= count
	}
	next.Inventory[recipe.ID]++

	var fx Effects
	fx.event(next.Day, entity.KindSuccess, "Crafted "+recipe.Name)
	fx.notify(entity.KindSuccess, "Crafted "+recipe.Name)

	return Result{State: next, Effects: fx}, nil
}

// CanCraft reports whether the stock covers every ingredient of recipe.
func CanCraft(state entity.GameState, recipe entity.Recipe) bool {
	_, missing := firstMissingIngredient(state, recipe)

	return !missing
}

// firstMissingIngredient returns the understocked ingredient with the smallest id, if any.
func firstMissingIngredient(state entity.GameState, recipe entity.Recipe) (entity.MaterialID, bool) {
	ids := make([]entity.MaterialID, 0, len(recipe.Ingredients))
	for id := range recipe.Ingredients {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		if state.Materials[id] < recipe.Ingredients[id] {
			return id, true
		}
	}

	return "", false
}
