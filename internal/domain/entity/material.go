package entity

// MaterialID identifies a raw material in the catalog.
type MaterialID string

// MaterialCategory groups materials by origin.
type MaterialCategory string

const (
	CategoryMetal     MaterialCategory = "metal"
	CategoryWood      MaterialCategory = "wood"
	CategoryBeast     MaterialCategory = "beast"
	CategoryFabric    MaterialCategory = "fabric"
	CategoryStone     MaterialCategory = "stone"
	CategoryOrganic   MaterialCategory = "organic"
	CategoryGem       MaterialCategory = "gem"
	CategoryMagical   MaterialCategory = "magical"
	CategoryContainer MaterialCategory = "container"
	CategoryUtility   MaterialCategory = "utility"
)

// Material is a static catalog entry for a raw material.
type Material struct {
	ID       MaterialID       `json:"id" yaml:"id"`
	Name     string           `json:"name" yaml:"name"`
	Rarity   Rarity           `json:"rarity" yaml:"rarity"`
	Icon     string           `json:"icon" yaml:"icon"`
	Category MaterialCategory `json:"category" yaml:"category"`
}

// MaterialStack is a material id paired with a count, used for ordered views of stock.
type MaterialStack struct {
	MaterialID MaterialID `json:"material_id"`
	Count      int        `json:"count"`
}

// BarterMaterial is a material a customer is willing to hand over in a barter,
// together with its appraised value in gold.
type BarterMaterial struct {
	MaterialID MaterialID `json:"material_id"`
	Value      int        `json:"value"`
}
