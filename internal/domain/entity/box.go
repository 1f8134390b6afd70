package entity

// BoxID identifies a supply box type.
type BoxID string

// CountRange is an inclusive integer range.
type CountRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// BoxType is a purchasable supply box that yields random materials.
// RarityWeights are arbitrary non-negative numbers treated as proportions of their sum.
type BoxType struct {
	ID            BoxID              `json:"id" yaml:"id"`
	Name          string             `json:"name" yaml:"name"`
	Cost          int                `json:"cost" yaml:"cost"`
	MaterialCount CountRange         `json:"material_count" yaml:"materialCount"`
	RarityWeights map[Rarity]float64 `json:"rarity_weights" yaml:"rarityWeights"`
}
