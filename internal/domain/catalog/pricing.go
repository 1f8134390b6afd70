package catalog

import (
	"shopkeep/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// SellPrice derives the catalog price of a recipe from its ingredients: each ingredient
// contributes the top of its rarity value range, scaled by the rarity multiplier and the
// required count. Common recipes get the common margin on top. The result is rounded
// half away from zero. Ingredients missing from base contribute nothing.
func SellPrice(base Base, recipe entity.Recipe) int {
	rarities := make(map[entity.MaterialID]entity.Rarity, len(base.Materials))
	for _, m := range base.Materials {
		rarities[m.ID] = m.Rarity
	}

	return sellPrice(base.Economy, rarities, recipe)
}

func sellPrice(eco Economy, rarities map[entity.MaterialID]entity.Rarity, recipe entity.Recipe) int {
	total := decimal.Zero
	for id, count := range recipe.Ingredients {
		rarity, ok := rarities[id]
		if !ok {
			continue
		}
		value := decimal.NewFromInt(int64(eco.MaterialValues[rarity].Max))
		multiplier := decimal.NewFromFloat(eco.RarityMultipliers[rarity])
		total = total.Add(value.Mul(multiplier).Mul(decimal.NewFromInt(int64(count))))
	}

	if recipe.Rarity == entity.RarityCommon {
		total = total.Mul(decimal.NewFromFloat(eco.CommonRecipeMargin))
	}

	return int(total.Round(0).IntPart())
}
