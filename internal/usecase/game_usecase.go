// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"shopkeep/internal/domain/engine"
	"shopkeep/internal/domain/entity"
)

// GameUsecase defines the player operations of the merchant day cycle.
// Every mutation returns the resulting view; rejected operations return a domain error
// and leave the saved game untouched.
type GameUsecase interface {
	NewGame(ctx context.Context) (*GameView, error)
	GetState(ctx context.Context) (*GameView, error)
	BeginCrafting(ctx context.Context) (*GameView, error)
	OpenBox(ctx context.Context, boxID entity.BoxID) (*GameView, error)
	CraftItem(ctx context.Context, recipeID entity.RecipeID) (*GameView, error)
	OpenShop(ctx context.Context) (*GameView, error)
	SelectCustomer(ctx context.Context, customerID string) (*GameView, error)
	ServeCustomer(ctx context.Context, input *ServeCustomerInput) (*GameView, error)
	EndDay(ctx context.Context) (*GameView, error)
	StartNewDay(ctx context.Context) (*GameView, error)
	RecentEvents(ctx context.Context, limit int) ([]*entity.GameEvent, error)
	Seed(ctx context.Context, seed *int64) (*GameView, error)
}

// GameView is the game as presented to a client.
type GameView struct {
	State              entity.GameState `json:"state"`
	SelectedCustomerID string           `json:"selected_customer_id,omitempty"`
	Seeded             bool             `json:"seeded"`
}

// --- Input DTOs ---

// ServeCustomerInput defines a sale of one inventory item to a waiting customer.
type ServeCustomerInput struct {
	CustomerID string
	ItemID     entity.RecipeID
	Action     engine.SaleAction
}
