package entity

// RecipeID identifies a recipe and, once crafted, the resulting item in inventory.
type RecipeID string

// Recipe is a static catalog entry describing how to craft an item.
// SellPrice is derived once when the catalog is built and is zero in the base tables.
type Recipe struct {
	ID          RecipeID           `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Ingredients map[MaterialID]int `json:"ingredients" yaml:"ingredients"`
	Type        ItemType           `json:"type" yaml:"type"`
	Subcategory string             `json:"subcategory" yaml:"subcategory"`
	Rarity      Rarity             `json:"rarity" yaml:"rarity"`
	Icon        string             `json:"icon" yaml:"icon"`
	SellPrice   int                `json:"sell_price" yaml:"-"`
}

// InventoryEntry is one crafted-item slot of the merchant's stock.
type InventoryEntry struct {
	Recipe Recipe `json:"recipe"`
	Count  int    `json:"count"`
}
