package entity

import "slices"

// ItemType is the broad kind of a crafted item and of a customer request.
type ItemType string

const (
	ItemTypeWeapon  ItemType = "weapon"
	ItemTypeArmor   ItemType = "armor"
	ItemTypeTrinket ItemType = "trinket"
	ItemTypePotion  ItemType = "potion"
	ItemTypeTool    ItemType = "tool"
)

// ItemTypes lists every item type in display order.
var ItemTypes = []ItemType{ItemTypeWeapon, ItemTypeArmor, ItemTypeTrinket, ItemTypePotion, ItemTypeTool}

// String returns the string representation of the ItemType.
func (t ItemType) String() string {
	return string(t)
}

// IsValid checks if the ItemType is a known type.
func (t ItemType) IsValid() bool {
	return slices.Contains(ItemTypes, t)
}

// BiasKey identifies an entry of the daily market bias: an item type or BiasRare.
type BiasKey string

// BiasRare shifts customer requests toward rare items instead of a type.
const BiasRare BiasKey = "rare"

// BiasKeyFor returns the bias key of an item type.
func BiasKeyFor(t ItemType) BiasKey {
	return BiasKey(t)
}
