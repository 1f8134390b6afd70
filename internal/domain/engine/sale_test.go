package engine

import (
	"testing"

	"shopkeep/internal/domain/catalog"
	"shopkeep/internal/domain/entity"
	domainerrors "shopkeep/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shopWith(customer entity.Customer, inventory map[entity.RecipeID]int) entity.GameState {
	state := stateInPhase(entity.PhaseShopping)
	state.Gold = 0
	state.Inventory = inventory
	state.Customers = []entity.Customer{customer}

	return state
}

func weaponSeeker(tier entity.BudgetTier, offer, maxBudget int) entity.Customer {
	return entity.Customer{
		ID:            "c1",
		Name:          "Hob",
		Profession:    entity.ProfessionFarmer,
		RequestType:   entity.ItemTypeWeapon,
		RequestRarity: entity.RarityCommon,
		OfferPrice:    offer,
		BudgetTier:    tier,
		MaxBudget:     maxBudget,
	}
}

func TestEngine_ServeCustomer_DelightedUpgrade(t *testing.T) {
	e := createTestEngine(t, constantRandom(0))
	state := shopWith(weaponSeeker(entity.BudgetTierMiddle, 10, 20), map[entity.RecipeID]int{catalog.IronSword: 1})

	result, err := e.ServeCustomer(state, "c1", catalog.IronSword, ActionSell)

	require.NoError(t, err)
	served := result.State.Customers[0]
	assert.True(t, served.Satisfied)
	assert.Equal(t, 13, served.Payment) // floor(10 * 1.35)
	assert.Equal(t, entity.SatisfactionDelightedUpgrade, served.Satisfaction)
	assert.Equal(t, 13, result.State.Gold)
	assert.Equal(t, 13, result.State.TotalEarnings)
	assert.Equal(t, 0, result.State.Inventory[catalog.IronSword])
	assert.True(t, result.Effects.ClearSelection)
	require.Len(t, result.Effects.Notifications, 1)
	assert.Contains(t, result.Effects.Notifications[0].Message, "Sold Iron Sword to Hob for 13 gold")

	// The input state is left untouched.
	assert.False(t, state.Customers[0].Satisfied)
	assert.Equal(t, 1, state.Inventory[catalog.IronSword])
}

func TestEngine_ServeCustomer_BudgetTierCannotAfford(t *testing.T) {
	e := createTestEngine(t, constantRandom(0))
	state := shopWith(weaponSeeker(entity.BudgetTierBudget, 15, 16), map[entity.RecipeID]int{catalog.IronSword: 1})
	before := state.Clone()

	result, err := e.ServeCustomer(state, "c1", catalog.IronSword, ActionSell)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerCannotAfford)
	assert.Equal(t, before, state.Clone())
	assert.Equal(t, Result{}, result)
}

func TestEngine_ServeCustomer_CappedAtBudget(t *testing.T) {
	e := createTestEngine(t, constantRandom(0))
	state := shopWith(weaponSeeker(entity.BudgetTierMiddle, 15, 16), map[entity.RecipeID]int{catalog.IronSword: 1})

	result, err := e.ServeCustomer(state, "c1", catalog.IronSword, ActionSell)

	require.NoError(t, err)
	assert.Equal(t, 16, result.State.Customers[0].Payment)
	assert.Equal(t, entity.SatisfactionExpensive, result.State.Customers[0].Satisfaction)
}

func TestEngine_ServeCustomer_AcceptLowerAndBarter(t *testing.T) {
	customer := weaponSeeker(entity.BudgetTierBudget, 15, 16)
	customer.Materials = []entity.BarterMaterial{
		{MaterialID: catalog.Iron, Value: 2},
		{MaterialID: catalog.Wood, Value: 1},
		{MaterialID: catalog.Iron, Value: 3},
	}

	t.Run("accept lower", func(t *testing.T) {
		e := createTestEngine(t, constantRandom(0))
		state := shopWith(customer, map[entity.RecipeID]int{catalog.IronSword: 1})

		result, err := e.ServeCustomer(state, "c1", catalog.IronSword, ActionAcceptLower)

		require.NoError(t, err)
		assert.Equal(t, 16, result.State.Gold)
		assert.Equal(t, entity.SatisfactionAcceptedLower, result.State.Customers[0].Satisfaction)
		assert.Empty(t, result.State.Materials)
	})

	t.Run("barter", func(t *testing.T) {
		e := createTestEngine(t, constantRandom(0))
		state := shopWith(customer, map[entity.RecipeID]int{catalog.IronSword: 1})

		result, err := e.ServeCustomer(state, "c1", catalog.IronSword, ActionBarter)

		require.NoError(t, err)
		assert.Equal(t, 16, result.State.Gold)
		assert.Equal(t, entity.SatisfactionBarter, result.State.Customers[0].Satisfaction)
		assert.Equal(t, map[entity.MaterialID]int{catalog.Iron: 2, catalog.Wood: 1}, result.State.Materials)
	})
}

func TestEngine_ServeCustomer_Rejections(t *testing.T) {
	served := weaponSeeker(entity.BudgetTierMiddle, 10, 20)
	served.Satisfied = true

	tests := []struct {
		name       string
		customer   entity.Customer
		inventory  map[entity.RecipeID]int
		customerID string
		recipeID   entity.RecipeID
		action     SaleAction
		expected   error
	}{
		{
			name:       "unknown customer",
			customer:   weaponSeeker(entity.BudgetTierMiddle, 10, 20),
			inventory:  map[entity.RecipeID]int{catalog.IronDagger: 1},
			customerID: "nobody",
			recipeID:   catalog.IronDagger,
			action:     ActionSell,
			expected:   domainerrors.ErrCustomerNotFound,
		},
		{
			name:       "already served",
			customer:   served,
			inventory:  map[entity.RecipeID]int{catalog.IronDagger: 1},
			customerID: "c1",
			recipeID:   catalog.IronDagger,
			action:     ActionSell,
			expected:   domainerrors.ErrCustomerAlreadyServed,
		},
		{
			name:       "unknown recipe",
			customer:   weaponSeeker(entity.BudgetTierMiddle, 10, 20),
			inventory:  map[entity.RecipeID]int{},
			customerID: "c1",
			recipeID:   "excalibur",
			action:     ActionSell,
			expected:   domainerrors.ErrRecipeNotFound,
		},
		{
			name:       "out of stock",
			customer:   weaponSeeker(entity.BudgetTierMiddle, 10, 20),
			inventory:  map[entity.RecipeID]int{catalog.IronDagger: 0},
			customerID: "c1",
			recipeID:   catalog.IronDagger,
			action:     ActionSell,
			expected:   domainerrors.ErrOutOfStock,
		},
		{
			name:       "unknown action",
			customer:   weaponSeeker(entity.BudgetTierMiddle, 10, 20),
			inventory:  map[entity.RecipeID]int{catalog.IronDagger: 1},
			customerID: "c1",
			recipeID:   catalog.IronDagger,
			action:     "steal",
			expected:   domainerrors.ErrInvalidSaleAction,
		},
	}

	for _, action := range []SaleAction{ActionSell, ActionAcceptLower, ActionBarter} {
		tests = append(tests, struct {
			name       string
			customer   entity.Customer
			inventory  map[entity.RecipeID]int
			customerID string
			recipeID   entity.RecipeID
			action     SaleAction
			expected   error
		}{
			name:       "wrong type with " + string(action),
			customer:   weaponSeeker(entity.BudgetTierWealthy, 10, 20),
			inventory:  map[entity.RecipeID]int{catalog.HealingPotion: 1},
			customerID: "c1",
			recipeID:   catalog.HealingPotion,
			action:     action,
			expected:   domainerrors.ErrWrongItemType,
		})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := createTestEngine(t, constantRandom(0))
			state := shopWith(tt.customer, tt.inventory)
			before := state.Clone()

			_, err := e.ServeCustomer(state, tt.customerID, tt.recipeID, tt.action)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, before, state.Clone())
		})
	}
}

func TestEngine_ServeCustomer_SatisfiedOnce(t *testing.T) {
	e := createTestEngine(t, constantRandom(0))
	state := shopWith(weaponSeeker(entity.BudgetTierMiddle, 10, 20), map[entity.RecipeID]int{catalog.IronDagger: 2})

	first, err := e.ServeCustomer(state, "c1", catalog.IronDagger, ActionSell)
	require.NoError(t, err)
	assert.True(t, first.State.Customers[0].Satisfied)

	_, err = e.ServeCustomer(first.State, "c1", catalog.IronDagger, ActionSell)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerAlreadyServed)
}

func TestEngine_ServeCustomer_WrongPhase(t *testing.T) {
	e := createTestEngine(t, constantRandom(0))
	state := shopWith(weaponSeeker(entity.BudgetTierMiddle, 10, 20), map[entity.RecipeID]int{catalog.IronDagger: 1})
	state.Phase = entity.PhaseEndDay

	_, err := e.ServeCustomer(state, "c1", catalog.IronDagger, ActionSell)

	assert.ErrorIs(t, err, domainerrors.ErrWrongPhase)
}

func TestQuoteSale(t *testing.T) {
	c := catalog.MustNew(catalog.DefaultBase())
	adventurer, _ := c.Profession(entity.ProfessionAdventurer)
	farmer, _ := c.Profession(entity.ProfessionFarmer)

	tests := []struct {
		name         string
		customer     entity.Customer
		recipe       entity.RecipeID
		profession   entity.Profession
		payment      int
		computed     int
		satisfaction entity.Satisfaction
	}{
		{
			name:         "perfect match",
			customer:     entity.Customer{RequestType: entity.ItemTypeWeapon, RequestRarity: entity.RarityCommon, OfferPrice: 15, MaxBudget: 100},
			recipe:       catalog.IronDagger,
			profession:   farmer,
			payment:      16,
			computed:     16,
			satisfaction: entity.SatisfactionPerfectMatch,
		},
		{
			name:         "perfect style match",
			customer:     entity.Customer{RequestType: entity.ItemTypeWeapon, RequestRarity: entity.RarityUncommon, OfferPrice: 20, MaxBudget: 100},
			recipe:       catalog.IronSword,
			profession:   adventurer,
			payment:      25, // floor(floor(20 * 1.1) * 1.15)
			computed:     25,
			satisfaction: entity.SatisfactionPerfectStyleMatch,
		},
		{
			name:         "upgrade with style keeps upgrade satisfaction",
			customer:     entity.Customer{RequestType: entity.ItemTypeWeapon, RequestRarity: entity.RarityCommon, OfferPrice: 20, MaxBudget: 100},
			recipe:       catalog.IronSword,
			profession:   adventurer,
			payment:      31, // floor(floor(20 * 1.35) * 1.15)
			computed:     31,
			satisfaction: entity.SatisfactionDelightedUpgrade,
		},
		{
			name:         "two rank downgrade",
			customer:     entity.Customer{RequestType: entity.ItemTypeWeapon, RequestRarity: entity.RarityRare, OfferPrice: 50, MaxBudget: 100},
			recipe:       catalog.IronDagger,
			profession:   farmer,
			payment:      20, // floor(50 * 0.4)
			computed:     20,
			satisfaction: entity.SatisfactionDowngrade,
		},
		{
			name:         "price floor",
			customer:     entity.Customer{RequestType: entity.ItemTypeWeapon, RequestRarity: entity.RarityLegendary, OfferPrice: 50, MaxBudget: 100},
			recipe:       catalog.IronDagger,
			profession:   farmer,
			payment:      20, // floor(50 * 0.1) is raised to floor(50 * 0.4)
			computed:     20,
			satisfaction: entity.SatisfactionDowngrade,
		},
		{
			name:         "capped for wealthy",
			customer:     entity.Customer{RequestType: entity.ItemTypeWeapon, RequestRarity: entity.RarityCommon, OfferPrice: 40, MaxBudget: 38, BudgetTier: entity.BudgetTierWealthy},
			recipe:       catalog.IronDagger,
			profession:   farmer,
			payment:      38,
			computed:     44,
			satisfaction: entity.SatisfactionExpensive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := mustRecipe(t, c, tt.recipe)

			quote, err := QuoteSale(tt.customer, recipe, tt.profession, ActionSell)

			require.NoError(t, err)
			assert.Equal(t, tt.payment, quote.Payment)
			assert.Equal(t, tt.computed, quote.Computed)
			assert.Equal(t, tt.satisfaction, quote.Satisfaction)
		})
	}
}
