package impl

import (
	"context"
	"testing"

	"shopkeep/internal/domain/catalog"
	"shopkeep/internal/domain/engine"
	"shopkeep/internal/domain/entity"
	domainerrors "shopkeep/internal/domain/errors"
	"shopkeep/internal/domain/repository"
	mockRepo "shopkeep/internal/mocks/repository"
	mockSvc "shopkeep/internal/mocks/service"
	"shopkeep/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shopServiceFixtures holds all test dependencies for shop service tests.
type shopServiceFixtures struct {
	service   usecase.ShopUsecase
	txManager *mockRepo.MockTransactionManager
	t         *testing.T
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	rng := mockSvc.NewMockRandomSource(t)

	service := NewShopService(ShopServiceParams{
		Engine:    newTestEngine(rng),
		TxManager: txManager,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return shopServiceFixtures{
		service:   service,
		txManager: txManager,
		t:         t,
	}
}

// onLoad expects one read transaction that loads the given state, or reports an empty slot for nil.
func (fx shopServiceFixtures) onLoad(state *entity.GameState) {
	t := fx.t
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			gameRepo := mockRepo.NewMockGameStateRepository(t)
			mockFactory.EXPECT().GameStateRepo().Return(gameRepo)

			if state == nil {
				gameRepo.EXPECT().LoadSnapshot(ctx, testSlot).Return(nil, repository.ErrGameStateNotFound)
			} else {
				gameRepo.EXPECT().LoadSnapshot(ctx, testSlot).Return(savedGame(*state), nil)
			}

			return fn(mockFactory)
		}).
		Once()
}

func recipeIDs(listings []*usecase.RecipeListing) []entity.RecipeID {
	ids := make([]entity.RecipeID, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}

	return ids
}

func TestShopService_ListRecipes_CraftableFirst(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()

	state := gameInPhase(entity.PhaseCrafting, 100)
	state.Materials = map[entity.MaterialID]int{catalog.Iron: 1, catalog.Wood: 1}
	fx.onLoad(&state)

	listings, err := fx.service.ListRecipes(ctx, &usecase.ListRecipesInput{
		Type: entity.ItemTypeWeapon,
		Sort: usecase.RecipeSortRarity,
	})

	require.NoError(t, err)
	require.NotEmpty(t, listings)
	assert.Equal(t, catalog.IronDagger, listings[0].ID)
	assert.True(t, listings[0].Craftable)
	for _, l := range listings {
		assert.Equal(t, entity.ItemTypeWeapon, l.Type)
	}
	for _, l := range listings[1:] {
		assert.False(t, l.Craftable, l.ID)
	}
}

func TestShopService_ListRecipes_CatalogOrder(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	fx.onLoad(nil)

	listings, err := fx.service.ListRecipes(ctx, &usecase.ListRecipesInput{})

	require.NoError(t, err)
	expected := make([]entity.RecipeID, 0)
	for _, r := range catalog.MustNew(catalog.DefaultBase()).Recipes() {
		expected = append(expected, r.ID)
	}
	assert.Equal(t, expected, recipeIDs(listings))
}

func TestShopService_ListRecipes_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.ListRecipesInput
	}{
		{name: "unknown type", input: &usecase.ListRecipesInput{Type: "spaceship"}},
		{name: "unknown sort", input: &usecase.ListRecipesInput{Sort: "price"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShopService(t)

			listings, err := fx.service.ListRecipes(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, listings)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestShopService_ListInventory_ForCustomer(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()

	state := shoppingGame()
	state.Inventory = map[entity.RecipeID]int{
		catalog.HealingPotion: 2,
		catalog.IronDagger:    1,
		catalog.IronSword:     1,
	}
	fx.onLoad(&state)

	listings, err := fx.service.ListInventory(ctx, &usecase.ListInventoryInput{CustomerID: "c1"})

	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.Equal(t, catalog.IronDagger, listings[0].Recipe.ID)
	require.NotNil(t, listings[0].MatchQuality)
	assert.Equal(t, engine.MatchExact, *listings[0].MatchQuality)
	assert.Equal(t, catalog.IronSword, listings[1].Recipe.ID)
	assert.Equal(t, engine.MatchTypeUpgrade, *listings[1].MatchQuality)
	assert.Equal(t, catalog.HealingPotion, listings[2].Recipe.ID)
	assert.Equal(t, engine.MatchNone, *listings[2].MatchQuality)
	assert.Equal(t, 2, listings[2].Count)
}

func TestShopService_ListInventory_FilteredWithoutCustomer(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()

	state := gameInPhase(entity.PhaseCrafting, 0)
	state.Inventory = map[entity.RecipeID]int{catalog.HealingPotion: 2, catalog.IronSword: 1}
	fx.onLoad(&state)

	listings, err := fx.service.ListInventory(ctx, &usecase.ListInventoryInput{Type: entity.ItemTypeWeapon})

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, catalog.IronSword, listings[0].Recipe.ID)
	assert.Nil(t, listings[0].MatchQuality)
}

func TestShopService_ListInventory_UnknownCustomer(t *testing.T) {
	fx := createTestShopService(t)
	state := shoppingGame()
	fx.onLoad(&state)

	_, err := fx.service.ListInventory(context.Background(), &usecase.ListInventoryInput{CustomerID: "nobody"})

	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestShopService_TopMaterials(t *testing.T) {
	fx := createTestShopService(t)

	state := gameInPhase(entity.PhaseCrafting, 0)
	state.Materials = map[entity.MaterialID]int{catalog.Iron: 3, catalog.Wood: 5, catalog.Herbs: 1}
	fx.onLoad(&state)

	stacks, err := fx.service.TopMaterials(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []entity.MaterialStack{
		{MaterialID: catalog.Wood, Count: 5},
		{MaterialID: catalog.Iron, Count: 3},
		{MaterialID: catalog.Herbs, Count: 1},
	}, stacks)
}

func TestShopService_TopMaterials_LoadFails(t *testing.T) {
	fx := createTestShopService(t)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	stacks, err := fx.service.TopMaterials(context.Background())

	require.Error(t, err)
	assert.Nil(t, stacks)
	assert.Contains(t, err.Error(), "failed to get top materials")
}

func TestShopService_Catalog(t *testing.T) {
	fx := createTestShopService(t)

	view, err := fx.service.Catalog(context.Background())

	require.NoError(t, err)
	assert.Len(t, view.Boxes, 3)
	assert.Len(t, view.Professions, 6)
	assert.NotEmpty(t, view.Materials)
	assert.NotEmpty(t, view.Recipes)
	for _, r := range view.Recipes {
		assert.Positive(t, r.SellPrice, r.ID)
	}
}

func TestShopService_QuoteSale(t *testing.T) {
	fx := createTestShopService(t)
	state := shoppingGame()
	fx.onLoad(&state)

	quote, err := fx.service.QuoteSale(context.Background(), &usecase.ServeCustomerInput{
		CustomerID: "c1",
		ItemID:     catalog.IronSword,
		Action:     engine.ActionSell,
	})

	require.NoError(t, err)
	assert.Equal(t, 13, quote.Payment)
	assert.Equal(t, entity.SatisfactionDelightedUpgrade, quote.Satisfaction)
}

func TestShopService_QuoteSale_OutOfStock(t *testing.T) {
	fx := createTestShopService(t)
	state := shoppingGame()
	fx.onLoad(&state)

	quote, err := fx.service.QuoteSale(context.Background(), &usecase.ServeCustomerInput{
		CustomerID: "c1",
		ItemID:     catalog.IronDagger,
		Action:     engine.ActionSell,
	})

	assert.Nil(t, quote)
	assert.ErrorIs(t, err, domainerrors.ErrOutOfStock)
}
