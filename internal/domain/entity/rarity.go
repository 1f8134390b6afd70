// Package entity contains the core business objects of the project.
package entity

import "slices"

// Rarity represents how scarce a material or crafted item is.
type Rarity string

const (
	// RarityCommon is the most plentiful tier.
	RarityCommon Rarity = "common"
	// RarityUncommon sits between common and rare.
	RarityUncommon Rarity = "uncommon"
	// RarityRare is the scarcest tier used by the current catalog.
	RarityRare Rarity = "rare"
	// RarityLegendary is reserved; no catalog entry uses it yet.
	RarityLegendary Rarity = "legendary"
)

// Rarities lists the tiers in ascending rank order.
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityLegendary}

// String returns the string representation of the Rarity.
func (r Rarity) String() string {
	return string(r)
}

// IsValid checks if the Rarity is a known tier.
func (r Rarity) IsValid() bool {
	return slices.Contains(Rarities, r)
}

// Rank returns the position of the tier in the total order
// common=1 < uncommon=2 < rare=3 < legendary=4. Unknown tiers rank 0.
func (r Rarity) Rank() int {
	return slices.Index(Rarities, r) + 1
}

// CompareRarity orders two tiers by rank; it is suitable for slices.SortFunc.
func CompareRarity(a, b Rarity) int {
	return a.Rank() - b.Rank()
}
