package catalog

import "shopkeep/internal/domain/entity"

// Supply box ids.
const (
	BronzeBox entity.BoxID = "bronze"
	SilverBox entity.BoxID = "silver"
	GoldBox   entity.BoxID = "gold"
)

func defaultBoxes() []entity.BoxType {
	return []entity.BoxType{
		{
			ID:            BronzeBox,
			Name:          "Bronze Supply Box",
			Cost:          30,
			MaterialCount: entity.CountRange{Min: 2, Max: 4},
			RarityWeights: map[entity.Rarity]float64{
				entity.RarityCommon:   80,
				entity.RarityUncommon: 18,
				entity.RarityRare:     2,
			},
		},
		{
			ID:            SilverBox,
			Name:          "Silver Supply Box",
			Cost:          75,
			MaterialCount: entity.CountRange{Min: 3, Max: 5},
			RarityWeights: map[entity.Rarity]float64{
				entity.RarityCommon:   50,
				entity.RarityUncommon: 40,
				entity.RarityRare:     10,
			},
		},
		{
			ID:            GoldBox,
			Name:          "Gold Supply Box",
			Cost:          150,
			MaterialCount: entity.CountRange{Min: 4, Max: 6},
			RarityWeights: map[entity.Rarity]float64{
				entity.RarityCommon:   25,
				entity.RarityUncommon: 45,
				entity.RarityRare:     30,
			},
		},
	}
}
