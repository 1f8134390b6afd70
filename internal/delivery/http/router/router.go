// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shopkeep/config"
	"shopkeep/internal/delivery/http/router/handler"
	"shopkeep/internal/delivery/http/ws"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GameHandler *handler.GameHandler
	ShopHandler *handler.ShopHandler
	TestHandler *handler.TestHandler
	Hub         *ws.Hub
	Config      *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	gameHandler *handler.GameHandler
	shopHandler *handler.ShopHandler
	testHandler *handler.TestHandler
	hub         *ws.Hub
	config      *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		gameHandler: params.GameHandler,
		shopHandler: params.ShopHandler,
		testHandler: params.TestHandler,
		hub:         params.Hub,
		config:      params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Live event stream
	e.GET("/ws", r.hub.ServeWS)

	api := e.Group("/api")

	// Day cycle
	gameGroup := api.Group("/game")
	{
		gameGroup.GET("", r.gameHandler.GetState)
		gameGroup.POST("", r.gameHandler.NewGame)
		gameGroup.POST("/crafting", r.gameHandler.BeginCrafting)
	}
	api.POST("/shop/open", r.gameHandler.OpenShop)
	api.POST("/shop/close", r.gameHandler.EndDay)
	api.POST("/day/next", r.gameHandler.StartNewDay)
	api.GET("/events", r.gameHandler.ListEvents)

	// Workshop
	api.POST("/boxes/:id/open", r.gameHandler.OpenBox)
	recipesGroup := api.Group("/recipes")
	{
		recipesGroup.GET("", r.shopHandler.ListRecipes)
		recipesGroup.POST("/:id/craft", r.gameHandler.CraftItem)
	}
	api.GET("/materials/top", r.shopHandler.TopMaterials)
	api.GET("/catalog", r.shopHandler.Catalog)

	// Shop floor
	api.GET("/inventory", r.shopHandler.ListInventory)
	customersGroup := api.Group("/customers/:id")
	{
		customersGroup.POST("/select", r.gameHandler.SelectCustomer)
		customersGroup.POST("/serve", r.gameHandler.ServeCustomer)
		customersGroup.GET("/quote", r.shopHandler.QuoteSale)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.POST("/seed", r.testHandler.Seed)
	}
}
