package engine

import (
	"fmt"

	"shopkeep/internal/domain/entity"
)

// NewGame starts a game on day one with the given gold and a fresh market.
func (e *Engine) NewGame(startingGold int) Result {
	state := entity.NewGameState(startingGold)
	state.MarketReports, state.MarketBias = e.GenerateMarket()

	fx := Effects{ClearSelection: true}
	fx.event(state.Day, entity.KindInfo, "Day 1 begins. Welcome to your new shop!")
	for _, report := range state.MarketReports {
		fx.event(state.Day, entity.KindInfo, report)
	}

	return Result{State: state, Effects: fx}
}

// BeginCrafting moves from MORNING to CRAFTING.
func (e *Engine) BeginCrafting(state entity.GameState) (Result, error) {
	if err := e.requirePhase(state, entity.PhaseMorning); err != nil {
		return Result{}, err
	}

	next := state.Clone()
	next.Phase = entity.PhaseCrafting

	var fx Effects
	fx.event(next.Day, entity.KindInfo, "The workshop is open")

	return Result{State: next, Effects: fx}, nil
}

// OpenShop moves from CRAFTING to SHOPPING and replaces the customer roster.
func (e *Engine) OpenShop(state entity.GameState) (Result, error) {
	if err := e.requirePhase(state, entity.PhaseCrafting); err != nil {
		return Result{}, err
	}

	next := state.Clone()
	next.Customers = e.GenerateCustomers(next)
	next.Phase = entity.PhaseShopping

	fx := Effects{ClearSelection: true}
	message := fmt.Sprintf("The shop is open. %d customers are waiting", len(next.Customers))
	fx.event(next.Day, entity.KindInfo, message)
	fx.notify(entity.KindInfo, message)

	return Result{State: next, Effects: fx}, nil
}

// EndDay moves from SHOPPING to END_DAY. Unserved customers simply leave.
func (e *Engine) EndDay(state entity.GameState) (Result, error) {
	if err := e.requirePhase(state, entity.PhaseShopping); err != nil {
		return Result{}, err
	}

	next := state.Clone()
	next.Phase = entity.PhaseEndDay

	served, earned := 0, 0
	for _, c := range next.Customers {
		if c.Satisfied {
			served++
			earned += c.Payment
		}
	}

	var fx Effects
	fx.event(next.Day, entity.KindInfo, fmt.Sprintf("Day %d closed: served %d of %d customers and earned %d gold",
		next.Day, served, len(next.Customers), earned))

	return Result{State: next, Effects: fx}, nil
}

// StartNewDay moves from END_DAY to the next day's MORNING with an empty roster and a new market.
func (e *Engine) StartNewDay(state entity.GameState) (Result, error) {
	if err := e.requirePhase(state, entity.PhaseEndDay); err != nil {
		return Result{}, err
	}

	next := state.Clone()
	next.Day++
	next.Phase = entity.PhaseMorning
	next.Customers = []entity.Customer{}
	next.MarketReports, next.MarketBias = e.GenerateMarket()

	fx := Effects{ClearSelection: true}
	fx.event(next.Day, entity.KindInfo, fmt.Sprintf("Day %d begins", next.Day))
	for _, report := range next.MarketReports {
		fx.event(next.Day, entity.KindInfo, report)
	}
	if len(next.MarketReports) > 0 {
		fx.notify(entity.KindInfo, next.MarketReports[0])
	}

	return Result{State: next, Effects: fx}, nil
}
