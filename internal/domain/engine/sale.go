package engine

import (
	"fmt"

	"shopkeep/internal/domain/entity"
	domainerrors "shopkeep/internal/domain/errors"
)

// ServeCustomer sells one item from inventory to a waiting customer.
func (e *Engine) ServeCustomer(state entity.GameState, customerID string, recipeID entity.RecipeID, action SaleAction) (Result, error) {
	if err := e.requirePhase(state, entity.PhaseShopping); err != nil {
		return Result{}, err
	}

	quote, err := e.Quote(state, customerID, recipeID, action)
	if err != nil {
		return Result{}, err
	}

	next := state.Clone()
	idx := next.CustomerIndex(customerID)
	customer := &next.Customers[idx]
	recipe, _ := e.catalog.Recipe(recipeID)

	next.Inventory[recipe.ID]--
	customer.Satisfied = true
	customer.Payment = quote.Payment
	customer.Satisfaction = quote.Satisfaction
	next.Gold += quote.Payment
	next.TotalEarnings += quote.Payment

	if action == ActionBarter {
		for _, m := range customer.Materials {
			next.Materials[m.MaterialID]++
		}
	}

	fx := Effects{ClearSelection: true}
	message := fmt.Sprintf("Sold %s to %s for %d gold (%s)", recipe.Name, customer.Name, quote.Payment, quote.Satisfaction)
	if action == ActionBarter && len(customer.Materials) > 0 {
		message += fmt.Sprintf(" and %d materials", len(customer.Materials))
	}
	fx.event(next.Day, entity.KindSuccess, message)
	fx.notify(entity.KindSuccess, message)

	return Result{State: next, Effects: fx}, nil
}

// Quote prices a sale against the current state without applying it. It checks every
// precondition of ServeCustomer except the phase.
func (e *Engine) Quote(state entity.GameState, customerID string, recipeID entity.RecipeID, action SaleAction) (Quote, error) {
	idx := state.CustomerIndex(customerID)
	if idx < 0 {
		return Quote{}, domainerrors.ErrCustomerNotFound.WithDetails(fmt.Sprintf("customer %q", customerID))
	}
	customer := state.Customers[idx]
	if customer.Satisfied {
		return Quote{}, domainerrors.ErrCustomerAlreadyServed
	}

	recipe, ok := e.catalog.Recipe(recipeID)
	if !ok {
		return Quote{}, domainerrors.ErrRecipeNotFound.WithDetails(e.suggestion(string(recipeID)))
	}
	if state.Inventory[recipe.ID] < 1 {
		return Quote{}, domainerrors.ErrOutOfStock.WithDetails(fmt.Sprintf("no %s in stock", recipe.Name))
	}

	profession, _ := e.catalog.Profession(customer.Profession)

	return QuoteSale(customer, recipe, profession, action)
}
