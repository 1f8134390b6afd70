// Package handler contains the echo handlers of the HTTP delivery.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"shopkeep/internal/delivery/http/response"
	"shopkeep/internal/domain/engine"
	"shopkeep/internal/domain/entity"
	"shopkeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GameHandlerParams holds dependencies for GameHandler, injected by Fx.
type GameHandlerParams struct {
	fx.In

	GameUC usecase.GameUsecase
	Logger *slog.Logger
}

// GameHandler exposes the player operations of the day cycle
type GameHandler struct {
	gameUC usecase.GameUsecase
	logger *slog.Logger
}

// NewGameHandler is the constructor for GameHandler
func NewGameHandler(params GameHandlerParams) *GameHandler {
	return &GameHandler{
		gameUC: params.GameUC,
		logger: params.Logger,
	}
}

// ServeCustomerRequest represents the request body for serving a customer
type ServeCustomerRequest struct {
	CustomerID string `param:"id" json:"-"`
	ItemID     string `json:"itemId" validate:"required"`
	Action     string `json:"action" validate:"required,oneof=sell accept_lower barter"`
}

// ListEventsRequest represents the query of the event log endpoint
type ListEventsRequest struct {
	Limit int `query:"limit" validate:"min=0"`
}

// GetState handles retrieving the current game
func (h *GameHandler) GetState(c echo.Context) error {
	view, err := h.gameUC.GetState(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Game state retrieved successfully")
}

// NewGame handles starting over with a fresh game
func (h *GameHandler) NewGame(c echo.Context) error {
	view, err := h.gameUC.NewGame(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "New game started")
}

// BeginCrafting handles moving from the morning to the workshop
func (h *GameHandler) BeginCrafting(c echo.Context) error {
	view, err := h.gameUC.BeginCrafting(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Crafting started")
}

// OpenBox handles buying and opening a supply box
func (h *GameHandler) OpenBox(c echo.Context) error {
	boxID, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid box ID")
	}

	view, err := h.gameUC.OpenBox(c.Request().Context(), entity.BoxID(boxID))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Box opened")
}

// CraftItem handles crafting one item from a recipe
func (h *GameHandler) CraftItem(c echo.Context) error {
	recipeID, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	view, err := h.gameUC.CraftItem(c.Request().Context(), entity.RecipeID(recipeID))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item crafted")
}

// OpenShop handles opening the shop to the day's customers
func (h *GameHandler) OpenShop(c echo.Context) error {
	view, err := h.gameUC.OpenShop(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Shop opened")
}

// SelectCustomer handles focusing a waiting customer
func (h *GameHandler) SelectCustomer(c echo.Context) error {
	customerID, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	view, err := h.gameUC.SelectCustomer(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Customer selected")
}

// ServeCustomer handles selling an item to a customer
func (h *GameHandler) ServeCustomer(c echo.Context) error {
	var req ServeCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.gameUC.ServeCustomer(c.Request().Context(), &usecase.ServeCustomerInput{
		CustomerID: req.CustomerID,
		ItemID:     entity.RecipeID(req.ItemID),
		Action:     engine.SaleAction(req.Action),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Customer served")
}

// EndDay handles closing the shop
func (h *GameHandler) EndDay(c echo.Context) error {
	view, err := h.gameUC.EndDay(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Shop closed")
}

// StartNewDay handles moving on to the next morning
func (h *GameHandler) StartNewDay(c echo.Context) error {
	view, err := h.gameUC.StartNewDay(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "New day started")
}

// ListEvents handles retrieving the most recent game events
func (h *GameHandler) ListEvents(c echo.Context) error {
	var req ListEventsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	events, err := h.gameUC.RecentEvents(c.Request().Context(), req.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "Events retrieved successfully")
}

func pathID(c echo.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))

	return id, id != ""
}
