package catalog

import "shopkeep/internal/domain/entity"

func defaultReports() []entity.MarketReport {
	return []entity.MarketReport{
		{
			Message: "Goblin raids on the east road. Weapon demand is up.",
			Bias:    map[entity.BiasKey]float64{entity.BiasKeyFor(entity.ItemTypeWeapon): 0.3},
		},
		{
			Message: "A harsh winter is forecast. Townsfolk want sturdy armor.",
			Bias:    map[entity.BiasKey]float64{entity.BiasKeyFor(entity.ItemTypeArmor): 0.3},
		},
		{
			Message: "A coughing sickness spreads through the lower town.",
			Bias:    map[entity.BiasKey]float64{entity.BiasKeyFor(entity.ItemTypePotion): 0.4},
		},
		{
			Message: "The royal wedding draws nobles looking for fine jewelry.",
			Bias: map[entity.BiasKey]float64{
				entity.BiasKeyFor(entity.ItemTypeTrinket): 0.3,
				entity.BiasRare: 0.1,
			},
		},
		{
			Message: "Miners struck a new vein in the hills.",
			Bias:    map[entity.BiasKey]float64{entity.BiasKeyFor(entity.ItemTypeTool): 0.3},
		},
		{
			Message: "A treasure hunters' guild has arrived in town.",
			Bias:    map[entity.BiasKey]float64{entity.BiasRare: 0.15},
		},
		{
			Message: "Peace talks succeeded. Soldiers are heading home.",
			Bias:    map[entity.BiasKey]float64{entity.BiasKeyFor(entity.ItemTypeWeapon): -0.2},
		},
	}
}
