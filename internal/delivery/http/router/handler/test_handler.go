package handler

import (
	"net/http"

	"shopkeep/internal/delivery/http/response"
	"shopkeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	GameUC usecase.GameUsecase
}

// TestHandler handles endpoints that only exist for automated tests
type TestHandler struct {
	gameUC usecase.GameUsecase
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{
		gameUC: params.GameUC,
	}
}

// SeedRequest represents the request body for seeding the random source.
// A missing or null seed switches back to unseeded randomness.
type SeedRequest struct {
	Seed *int64 `json:"seed"`
}

// Seed makes the following rolls reproducible
func (h *TestHandler) Seed(c echo.Context) error {
	var req SeedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seed input")
	}

	view, err := h.gameUC.Seed(c.Request().Context(), req.Seed)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Random source seeded")
}
