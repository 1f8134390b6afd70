package usecase

import (
	"context"

	"shopkeep/internal/domain/catalog"
	"shopkeep/internal/domain/engine"
	"shopkeep/internal/domain/entity"
)

// ShopUsecase defines the read-only views of the workshop and the shop floor.
type ShopUsecase interface {
	ListRecipes(ctx context.Context, input *ListRecipesInput) ([]*RecipeListing, error)
	ListInventory(ctx context.Context, input *ListInventoryInput) ([]*InventoryListing, error)
	TopMaterials(ctx context.Context) ([]entity.MaterialStack, error)
	Catalog(ctx context.Context) (*CatalogView, error)
	QuoteSale(ctx context.Context, input *ServeCustomerInput) (*engine.Quote, error)
}

// RecipeSort selects the order of a recipe listing.
type RecipeSort string

const (
	// RecipeSortCatalog keeps catalog order.
	RecipeSortCatalog RecipeSort = "catalog"
	// RecipeSortRarity puts craftable recipes first, then orders by descending rarity.
	RecipeSortRarity RecipeSort = "rarity"
)

// IsValid checks if the RecipeSort is known. The empty sort means catalog order.
func (s RecipeSort) IsValid() bool {
	return s == "" || s == RecipeSortCatalog || s == RecipeSortRarity
}

// --- Input DTOs ---

// ListRecipesInput filters and orders the recipe book. An empty type lists every recipe.
type ListRecipesInput struct {
	Type entity.ItemType
	Sort RecipeSort
}

// ListInventoryInput filters the crafted stock. With a customer the entries are ordered
// by how well they match that customer's request.
type ListInventoryInput struct {
	Type       entity.ItemType
	CustomerID string
}

// --- Output DTOs ---

// RecipeListing is a recipe with its craftability against the current stock.
type RecipeListing struct {
	entity.Recipe
	Craftable bool `json:"craftable"`
}

// InventoryListing is a stock entry, scored against a customer when one was given.
type InventoryListing struct {
	entity.InventoryEntry
	MatchQuality *int `json:"match_quality,omitempty"`
}

// CatalogView is the static game data.
type CatalogView struct {
	Materials   []entity.Material   `json:"materials"`
	Recipes     []entity.Recipe     `json:"recipes"`
	Boxes       []entity.BoxType    `json:"boxes"`
	Professions []entity.Profession `json:"professions"`
	Economy     catalog.Economy     `json:"economy"`
}
