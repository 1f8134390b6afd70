package catalog

import "shopkeep/internal/domain/entity"

// ValueRange is the inclusive gold value range of a material rarity tier.
type ValueRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// DayRarityTable gives the request rarity weights that apply from FromDay onward.
type DayRarityTable struct {
	FromDay int                       `json:"from_day" yaml:"fromDay"`
	Weights map[entity.Rarity]float64 `json:"weights" yaml:"weights"`
}

// TierRule holds the odds and price multipliers of a budget tier.
type TierRule struct {
	Odds             float64 `json:"odds" yaml:"odds"`
	OfferMultiplier  float64 `json:"offer_multiplier" yaml:"offerMultiplier"`
	BudgetMultiplier float64 `json:"budget_multiplier" yaml:"budgetMultiplier"`
}

// Economy is the set of tuning tables consulted by pricing and generation.
type Economy struct {
	MaterialValues     map[entity.Rarity]ValueRange   `json:"material_values" yaml:"materialValues"`
	RarityMultipliers  map[entity.Rarity]float64      `json:"rarity_multipliers" yaml:"rarityMultipliers"`
	CommonRecipeMargin float64                        `json:"common_recipe_margin" yaml:"commonRecipeMargin"`
	RequestBasePrices  map[entity.Rarity]int          `json:"request_base_prices" yaml:"requestBasePrices"`
	RequestRarityByDay []DayRarityTable               `json:"request_rarity_by_day" yaml:"requestRarityByDay"`
	BudgetTiers        map[entity.BudgetTier]TierRule `json:"budget_tiers" yaml:"budgetTiers"`
	OfferSpread        float64                        `json:"offer_spread" yaml:"offerSpread"`
	FlexibleChance     float64                        `json:"flexible_chance" yaml:"flexibleChance"`
	CustomersPerDay    entity.CountRange              `json:"customers_per_day" yaml:"customersPerDay"`
	BarterMaterials    entity.CountRange              `json:"barter_materials" yaml:"barterMaterials"`
	MaxMarketReports   int                            `json:"max_market_reports" yaml:"maxMarketReports"`
}

// BudgetTierOrder is the order in which the budget tier roll walks the odds.
var BudgetTierOrder = []entity.BudgetTier{
	entity.BudgetTierWealthy,
	entity.BudgetTierMiddle,
	entity.BudgetTierBudget,
}

// DefaultEconomy returns the standard tuning tables.
func DefaultEconomy() Economy {
	return Economy{
		MaterialValues: map[entity.Rarity]ValueRange{
			entity.RarityCommon:   {Min: 1, Max: 3},
			entity.RarityUncommon: {Min: 4, Max: 6},
			entity.RarityRare:     {Min: 8, Max: 12},
		},
		RarityMultipliers: map[entity.Rarity]float64{
			entity.RarityCommon:   1,
			entity.RarityUncommon: 1.5,
			entity.RarityRare:     2.5,
		},
		CommonRecipeMargin: 1.25,
		RequestBasePrices: map[entity.Rarity]int{
			entity.RarityCommon:   15,
			entity.RarityUncommon: 25,
			entity.RarityRare:     50,
		},
		RequestRarityByDay: []DayRarityTable{
			{FromDay: 1, Weights: map[entity.Rarity]float64{entity.RarityCommon: 0.7, entity.RarityUncommon: 0.3, entity.RarityRare: 0}},
			{FromDay: 4, Weights: map[entity.Rarity]float64{entity.RarityCommon: 0.5, entity.RarityUncommon: 0.4, entity.RarityRare: 0.1}},
			{FromDay: 7, Weights: map[entity.Rarity]float64{entity.RarityCommon: 0.3, entity.RarityUncommon: 0.45, entity.RarityRare: 0.25}},
		},
		BudgetTiers: map[entity.BudgetTier]TierRule{
			entity.BudgetTierWealthy: {Odds: 0.20, OfferMultiplier: 2.5, BudgetMultiplier: 2.5},
			entity.BudgetTierMiddle:  {Odds: 0.65, OfferMultiplier: 1.3, BudgetMultiplier: 1.5},
			entity.BudgetTierBudget:  {Odds: 0.15, OfferMultiplier: 0.6, BudgetMultiplier: 1.1},
		},
		OfferSpread:      0.15,
		FlexibleChance:   0.25,
		CustomersPerDay:  entity.CountRange{Min: 3, Max: 6},
		BarterMaterials:  entity.CountRange{Min: 2, Max: 4},
		MaxMarketReports: 2,
	}
}

// RarityWeightsForDay returns the request rarity weights for the given day:
// the last table whose FromDay is not after day.
func (e Economy) RarityWeightsForDay(day int) map[entity.Rarity]float64 {
	var weights map[entity.Rarity]float64
	for _, table := range e.RequestRarityByDay {
		if table.FromDay <= day {
			weights = table.Weights
		}
	}
	if weights == nil && len(e.RequestRarityByDay) > 0 {
		weights = e.RequestRarityByDay[0].Weights
	}

	return weights
}
