package handler

import (
	"log/slog"
	"net/http"

	"shopkeep/internal/delivery/http/response"
	"shopkeep/internal/domain/engine"
	"shopkeep/internal/domain/entity"
	"shopkeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler exposes the read-only views of the workshop and the shop floor
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// ListRecipesRequest represents the query of the recipe book endpoint
type ListRecipesRequest struct {
	Type string `query:"type" validate:"omitempty,oneof=weapon armor trinket potion tool"`
	Sort string `query:"sort" validate:"omitempty,oneof=catalog rarity"`
}

// ListInventoryRequest represents the query of the inventory endpoint
type ListInventoryRequest struct {
	Type       string `query:"type" validate:"omitempty,oneof=weapon armor trinket potion tool"`
	CustomerID string `query:"customerId"`
}

// QuoteRequest represents the query of the sale quote endpoint
type QuoteRequest struct {
	CustomerID string `param:"id"`
	ItemID     string `query:"itemId" validate:"required"`
	Action     string `query:"action" validate:"omitempty,oneof=sell accept_lower barter"`
}

// ListRecipes handles listing the recipe book
func (h *ShopHandler) ListRecipes(c echo.Context) error {
	var req ListRecipesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	recipes, err := h.shopUC.ListRecipes(c.Request().Context(), &usecase.ListRecipesInput{
		Type: entity.ItemType(req.Type),
		Sort: usecase.RecipeSort(req.Sort),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "Recipes retrieved successfully")
}

// ListInventory handles listing the crafted stock
func (h *ShopHandler) ListInventory(c echo.Context) error {
	var req ListInventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	inventory, err := h.shopUC.ListInventory(c.Request().Context(), &usecase.ListInventoryInput{
		Type:       entity.ItemType(req.Type),
		CustomerID: req.CustomerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inventory, "Inventory retrieved successfully")
}

// TopMaterials handles listing the best-stocked materials
func (h *ShopHandler) TopMaterials(c echo.Context) error {
	stacks, err := h.shopUC.TopMaterials(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stacks, "Top materials retrieved successfully")
}

// Catalog handles retrieving the static game data
func (h *ShopHandler) Catalog(c echo.Context) error {
	view, err := h.shopUC.Catalog(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Catalog retrieved successfully")
}

// QuoteSale handles pricing a sale without making it. The action defaults to a plain sale.
func (h *ShopHandler) QuoteSale(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	action := engine.SaleAction(req.Action)
	if action == "" {
		action = engine.ActionSell
	}

	quote, err := h.shopUC.QuoteSale(c.Request().Context(), &usecase.ServeCustomerInput{
		CustomerID: req.CustomerID,
		ItemID:     entity.RecipeID(req.ItemID),
		Action:     action,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "Quote calculated")
}
