package impl

import (
	"context"
	"fmt"
	"log/slog"

	"shopkeep/config"
	"shopkeep/internal/domain/engine"
	"shopkeep/internal/domain/entity"
	domainerrors "shopkeep/internal/domain/errors"
	"shopkeep/internal/domain/repository"
	"shopkeep/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shopService implements the ShopUsecase interface.
// It only reads the saved game and never touches the random source.
type shopService struct {
	engine *engine.Engine
	loader stateLoader
	logger *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	Engine    *engine.Engine
	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		engine: params.Engine,
		loader: newStateLoader(params.TxManager, params.Config),
		logger: params.Logger,
	}
}

// ListRecipes lists the recipe book with craftability against the current stock.
func (srv *shopService) ListRecipes(ctx context.Context, input *usecase.ListRecipesInput) ([]*usecase.RecipeListing, error) {
	if input.Type != "" && !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown item type %q", input.Type))
	}
	if !input.Sort.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown sort %q", input.Sort))
	}

	state, err := srv.loader.current(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := engine.FilterRecipesByType(srv.engine.Catalog().Recipes(), input.Type)
	if input.Sort == usecase.RecipeSortRarity {
		recipes = engine.SortRecipesByRarityAndCraftability(recipes, state)
	}

	listings := make([]*usecase.RecipeListing, 0, len(recipes))
	for _, recipe := range recipes {
		listings = append(listings, &usecase.RecipeListing{
			Recipe:    recipe,
			Craftable: engine.CanCraft(state, recipe),
		})
	}

	return listings, nil
}

// ListInventory lists the crafted stock. With a customer the entries are scored and ordered
// by match quality, otherwise by rarity.
func (srv *shopService) ListInventory(ctx context.Context, input *usecase.ListInventoryInput) ([]*usecase.InventoryListing, error) {
	if input.Type != "" && !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown item type %q", input.Type))
	}

	state, err := srv.loader.current(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	entries := engine.FilterInventoryByType(srv.engine.Inventory(state), input.Type)

	if input.CustomerID == "" {
		entries = engine.SortInventoryByRarity(entries)
		listings := make([]*usecase.InventoryListing, 0, len(entries))
		for _, entry := range entries {
			listings = append(listings, &usecase.InventoryListing{InventoryEntry: entry})
		}

		return listings, nil
	}

	idx := state.CustomerIndex(input.CustomerID)
	if idx < 0 {
		return nil, domainerrors.ErrCustomerNotFound.WithDetails("customer " + input.CustomerID)
	}
	customer := state.Customers[idx]

	entries = engine.SortByMatchQualityAndRarity(entries, customer)
	listings := make([]*usecase.InventoryListing, 0, len(entries))
	for _, entry := range entries {
		quality := engine.MatchQuality(entry.Recipe, customer)
		listings = append(listings, &usecase.InventoryListing{InventoryEntry: entry, MatchQuality: &quality})
	}

	return listings, nil
}

// TopMaterials returns the best-stocked materials.
func (srv *shopService) TopMaterials(ctx context.Context) ([]entity.MaterialStack, error) {
	state, err := srv.loader.current(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get top materials")
	}

	return engine.TopMaterials(state), nil
}

// Catalog returns the static game data with derived prices.
func (srv *shopService) Catalog(_ context.Context) (*usecase.CatalogView, error) {
	c := srv.engine.Catalog()

	return &usecase.CatalogView{
		Materials:   c.Materials(),
		Recipes:     c.Recipes(),
		Boxes:       c.Boxes(),
		Professions: c.Professions(),
		Economy:     c.Economy(),
	}, nil
}

// QuoteSale prices a sale against the current game without applying it.
func (srv *shopService) QuoteSale(ctx context.Context, input *usecase.ServeCustomerInput) (*engine.Quote, error) {
	state, err := srv.loader.current(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to quote sale")
	}

	quote, err := srv.engine.Quote(state, input.CustomerID, input.ItemID, input.Action)
	if err != nil {
		srv.logger.Debug("Sale quote rejected", slog.String("customer", input.CustomerID), slog.Any("reason", err))

		return nil, err
	}

	return &quote, nil
}
