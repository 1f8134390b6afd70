package engine

import (
	"slices"

	"shopkeep/internal/domain/catalog"
	"shopkeep/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// GenerateCustomers produces the day's roster from the state's day and market bias.
// Every item type with positive bias is requested by at least one customer.
func (e *Engine) GenerateCustomers(state entity.GameState) []entity.Customer {
	eco := e.catalog.Economy()
	professions := e.catalog.Professions()

	count := e.rangeInclusive(eco.CustomersPerDay.Min, eco.CustomersPerDay.Max)
	customers := make([]entity.Customer, 0, count)
	for range count {
		customers = append(customers, e.generateCustomer(state, eco, pick(e, professions)))
	}

	e.ensureBiasedDemand(customers, state.MarketBias)

	return customers
}

func (e *Engine) generateCustomer(state entity.GameState, eco catalog.Economy, profession entity.Profession) entity.Customer {
	requestType := e.rollRequestType(state.MarketBias)
	requestRarity := e.rollRequestRarity(eco, state.Day, state.MarketBias)
	tier := profession.BudgetTier
	if tier == "" {
		tier = e.rollBudgetTier(eco)
	}

	base := decimal.NewFromInt(int64(eco.RequestBasePrices[requestRarity]))
	rule := eco.BudgetTiers[tier]
	spread := 1 - eco.OfferSpread + 2*eco.OfferSpread*e.rng.Next()
	offer := base.Mul(decimal.NewFromFloat(rule.OfferMultiplier)).Mul(decimal.NewFromFloat(spread)).Round(0)
	maxBudget := base.Mul(decimal.NewFromFloat(rule.BudgetMultiplier)).Round(0)

	return entity.Customer{
		ID:            e.newID(),
		Name:          pick(e, profession.NamePool),
		Profession:    profession.ID,
		RequestType:   requestType,
		RequestRarity: requestRarity,
		OfferPrice:    int(offer.IntPart()),
		BudgetTier:    tier,
		MaxBudget:     int(maxBudget.IntPart()),
		Flexible:      e.chance(eco.FlexibleChance),
		Materials:     e.rollBarterMaterials(eco, profession),
	}
}

// rollRequestType weighs each item type by 1 + bias[type].
func (e *Engine) rollRequestType(bias map[entity.BiasKey]float64) entity.ItemType {
	weights := make([]float64, len(entity.ItemTypes))
	for i, t := range entity.ItemTypes {
		weights[i] = max(0, 1+bias[entity.BiasKeyFor(t)])
	}

	if i := e.weightedIndex(weights); i >= 0 {
		return entity.ItemTypes[i]
	}

	return pick(e, entity.ItemTypes)
}

// rollRequestRarity uses the day's rarity table with the rare bias added to the rare weight.
func (e *Engine) rollRequestRarity(eco catalog.Economy, day int, bias map[entity.BiasKey]float64) entity.Rarity {
	table := eco.RarityWeightsForDay(day)
	weights := make([]float64, len(entity.Rarities))
	for i, r := range entity.Rarities {
		weights[i] = table[r]
		if r == entity.RarityRare {
			weights[i] += bias[entity.BiasRare]
		}
	}

	if i := e.weightedIndex(weights); i >= 0 {
		return entity.Rarities[i]
	}

	return entity.RarityCommon
}

func (e *Engine) rollBudgetTier(eco catalog.Economy) entity.BudgetTier {
	weights := make([]float64, len(catalog.BudgetTierOrder))
	for i, tier := range catalog.BudgetTierOrder {
		weights[i] = eco.BudgetTiers[tier].Odds
	}

	if i := e.weightedIndex(weights); i >= 0 {
		return catalog.BudgetTierOrder[i]
	}

	return entity.BudgetTierMiddle
}

// rollBarterMaterials draws materials from the profession's preferred pool, each appraised
// uniformly within its rarity value range.
func (e *Engine) rollBarterMaterials(eco catalog.Economy, profession entity.Profession) []entity.BarterMaterial {
	out := []entity.BarterMaterial{}
	if len(profession.PreferredMaterials) == 0 {
		return out
	}

	n := e.rangeInclusive(eco.BarterMaterials.Min, eco.BarterMaterials.Max)
	for range n {
		id := pick(e, profession.PreferredMaterials)
		material, _ := e.catalog.Material(id)
		values := eco.MaterialValues[material.Rarity]
		out = append(out, entity.BarterMaterial{
			MaterialID: id,
			Value:      e.rangeInclusive(values.Min, values.Max),
		})
	}

	return out
}

// ensureBiasedDemand reassigns customers so that each positively biased item type is requested
// at least once. A customer holding the only request for a biased type is never taken while
// another customer is available.
func (e *Engine) ensureBiasedDemand(customers []entity.Customer, bias map[entity.BiasKey]float64) {
	if len(customers) == 0 {
		return
	}

	biased := func(t entity.ItemType) bool { return bias[entity.BiasKeyFor(t)] > 0 }

	var missing []entity.ItemType
	for _, t := range entity.ItemTypes {
		if !biased(t) {
			continue
		}
		if !slices.ContainsFunc(customers, func(c entity.Customer) bool { return c.RequestType == t }) {
			missing = append(missing, t)
		}
	}

	for _, t := range missing {
		requests := make(map[entity.ItemType]int, len(entity.ItemTypes))
		for _, c := range customers {
			requests[c.RequestType]++
		}

		var candidates []int
		for i, c := range customers {
			if !biased(c.RequestType) || requests[c.RequestType] > 1 {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			for i := range customers {
				candidates = append(candidates, i)
			}
		}

		customers[pick(e, candidates)].RequestType = t
	}
}
