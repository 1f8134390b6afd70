package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"shopkeep/internal/domain/catalog"
	"shopkeep/internal/domain/engine"
	"shopkeep/internal/domain/entity"
	domainerrors "shopkeep/internal/domain/errors"
	mockUC "shopkeep/internal/mocks/usecase"
	"shopkeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shopHandlerFixtures holds all test dependencies for shop handler tests.
type shopHandlerFixtures struct {
	echo   *echo.Echo
	shopUC *mockUC.MockShopUsecase
}

func createTestShopHandler(t *testing.T) shopHandlerFixtures {
	shopUC := mockUC.NewMockShopUsecase(t)
	h := NewShopHandler(ShopHandlerParams{
		ShopUC: shopUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := newTestEcho()
	e.GET("/api/recipes", h.ListRecipes)
	e.GET("/api/inventory", h.ListInventory)
	e.GET("/api/materials/top", h.TopMaterials)
	e.GET("/api/catalog", h.Catalog)
	e.GET("/api/customers/:id/quote", h.QuoteSale)

	return shopHandlerFixtures{echo: e, shopUC: shopUC}
}

func TestShopHandler_ListRecipes_Success(t *testing.T) {
	fx := createTestShopHandler(t)
	fx.shopUC.EXPECT().
		ListRecipes(mock.Anything, &usecase.ListRecipesInput{Type: entity.ItemTypeWeapon, Sort: usecase.RecipeSortRarity}).
		Return([]*usecase.RecipeListing{
			{Recipe: entity.Recipe{ID: catalog.IronDagger, Name: "Iron Dagger"}, Craftable: true},
		}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/api/recipes?type=weapon&sort=rarity", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var listings []usecase.RecipeListing
	require.NoError(t, json.Unmarshal(env.Data, &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, catalog.IronDagger, listings[0].ID)
	assert.True(t, listings[0].Craftable)
}

func TestShopHandler_ListRecipes_InvalidQuery(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		message string
	}{
		{name: "unknown type", target: "/api/recipes?type=spaceship", message: "type must be one of [weapon armor trinket potion tool]"},
		{name: "unknown sort", target: "/api/recipes?sort=price", message: "sort must be one of [catalog rarity]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShopHandler(t)

			rec, env := doRequest(t, fx.echo, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
			assert.Equal(t, tt.message, env.Message)
		})
	}
}

func TestShopHandler_ListInventory_ForCustomer(t *testing.T) {
	fx := createTestShopHandler(t)
	exact := engine.MatchExact
	fx.shopUC.EXPECT().
		ListInventory(mock.Anything, &usecase.ListInventoryInput{CustomerID: "c1"}).
		Return([]*usecase.InventoryListing{
			{
				InventoryEntry: entity.InventoryEntry{Recipe: entity.Recipe{ID: catalog.IronDagger}, Count: 1},
				MatchQuality:   &exact,
			},
		}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/api/inventory?customerId=c1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var listings []usecase.InventoryListing
	require.NoError(t, json.Unmarshal(env.Data, &listings))
	require.Len(t, listings, 1)
	require.NotNil(t, listings[0].MatchQuality)
	assert.Equal(t, engine.MatchExact, *listings[0].MatchQuality)
}

func TestShopHandler_ListInventory_UnknownCustomer(t *testing.T) {
	fx := createTestShopHandler(t)
	fx.shopUC.EXPECT().
		ListInventory(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrCustomerNotFound.WithDetails("customer nobody"))

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/api/inventory?customerId=nobody", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "customer nobody", env.Error.Details)
}

func TestShopHandler_TopMaterials(t *testing.T) {
	fx := createTestShopHandler(t)
	fx.shopUC.EXPECT().TopMaterials(mock.Anything).Return([]entity.MaterialStack{
		{MaterialID: catalog.Wood, Count: 5},
		{MaterialID: catalog.Iron, Count: 3},
	}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/api/materials/top", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var stacks []entity.MaterialStack
	require.NoError(t, json.Unmarshal(env.Data, &stacks))
	assert.Equal(t, catalog.Wood, stacks[0].MaterialID)
}

func TestShopHandler_Catalog(t *testing.T) {
	fx := createTestShopHandler(t)
	fx.shopUC.EXPECT().Catalog(mock.Anything).Return(&usecase.CatalogView{
		Boxes: []entity.BoxType{{ID: catalog.BronzeBox, Name: "Bronze Box", Cost: 30}},
	}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/api/catalog", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var view usecase.CatalogView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.Len(t, view.Boxes, 1)
	assert.Equal(t, 30, view.Boxes[0].Cost)
}

func TestShopHandler_QuoteSale(t *testing.T) {
	tests := []struct {
		name   string
		target string
		action engine.SaleAction
	}{
		{name: "defaults to sell", target: "/api/customers/c1/quote?itemId=iron_sword", action: engine.ActionSell},
		{name: "explicit action", target: "/api/customers/c1/quote?itemId=iron_sword&action=accept_lower", action: engine.ActionAcceptLower},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShopHandler(t)
			fx.shopUC.EXPECT().
				QuoteSale(mock.Anything, &usecase.ServeCustomerInput{
					CustomerID: "c1",
					ItemID:     catalog.IronSword,
					Action:     tt.action,
				}).
				Return(&engine.Quote{Computed: 13, Payment: 13, Satisfaction: entity.SatisfactionDelightedUpgrade}, nil)

			rec, env := doRequest(t, fx.echo, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			var quote engine.Quote
			require.NoError(t, json.Unmarshal(env.Data, &quote))
			assert.Equal(t, 13, quote.Payment)
		})
	}
}

func TestShopHandler_QuoteSale_MissingItem(t *testing.T) {
	fx := createTestShopHandler(t)

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/api/customers/c1/quote", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "itemId is required", env.Message)
}
