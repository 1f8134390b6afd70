// Package catalog holds the static game tables and the price list derived from them.
package catalog

import "shopkeep/internal/domain/entity"

// Base is the hand-authored part of the catalog. Recipe sell prices are not part of
// the base tables; they are derived when a Catalog is built.
type Base struct {
	Materials   []entity.Material     `json:"materials" yaml:"materials"`
	Recipes     []entity.Recipe       `json:"recipes" yaml:"recipes"`
	Boxes       []entity.BoxType      `json:"boxes" yaml:"boxes"`
	Professions []entity.Profession   `json:"professions" yaml:"professions"`
	Reports     []entity.MarketReport `json:"reports" yaml:"reports"`
	Economy     Economy               `json:"economy" yaml:"economy"`
}

// DefaultBase returns a fresh copy of the built-in tables.
func DefaultBase() Base {
	return Base{
		Materials:   defaultMaterials(),
		Recipes:     defaultRecipes(),
		Boxes:       defaultBoxes(),
		Professions: defaultProfessions(),
		Reports:     defaultReports(),
		Economy:     DefaultEconomy(),
	}
}
