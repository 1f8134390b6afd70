package engine

import (
	"fmt"

	"shopkeep/internal/domain/entity"
	domainerrors "shopkeep/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// SaleAction selects how a customer pays.
type SaleAction string

const (
	// ActionSell charges the computed price, capped by the customer's budget.
	ActionSell SaleAction = "sell"
	// ActionAcceptLower settles for the customer's budget ceiling.
	ActionAcceptLower SaleAction = "accept_lower"
	// ActionBarter settles for the budget ceiling plus the customer's barter materials.
	ActionBarter SaleAction = "barter"
)

// IsValid checks if the SaleAction is known.
func (a SaleAction) IsValid() bool {
	switch a {
	case ActionSell, ActionAcceptLower, ActionBarter:
		return true
	default:
		return false
	}
}

var (
	exactMatchMultiplier = decimal.RequireFromString("1.1")
	upgradeBase          = decimal.RequireFromString("1.2")
	upgradePerRank       = decimal.RequireFromString("0.15")
	downgradePerRank     = decimal.RequireFromString("0.3")
	styleMultiplier      = decimal.RequireFromString("1.15")
	priceFloorRatio      = decimal.RequireFromString("0.4")
)

// Quote is the priced outcome of a sale before it is applied.
type Quote struct {
	// Computed is the price from match quality and style, before budget rules.
	Computed     int                 `json:"computed"`
	Payment      int                 `json:"payment"`
	Satisfaction entity.Satisfaction `json:"satisfaction"`
}

// QuoteSale prices an item for a customer. The item type must match the request regardless of
// action. Each step is floored to whole gold.
func QuoteSale(customer entity.Customer, recipe entity.Recipe, profession entity.Profession, action SaleAction) (Quote, error) {
	if !action.IsValid() {
		return Quote{}, domainerrors.ErrInvalidSaleAction.WithDetails(fmt.Sprintf("action %q", action))
	}
	if recipe.Type != customer.RequestType {
		return Quote{}, domainerrors.ErrWrongItemType.WithDetails(
			fmt.Sprintf("%s wants a %s, %s is a %s", customer.Name, customer.RequestType, recipe.Name, recipe.Type))
	}

	base := decimal.NewFromInt(int64(customer.OfferPrice))
	delta := recipe.Rarity.Rank() - customer.RequestRarity.Rank()

	var payment decimal.Decimal
	var satisfaction entity.Satisfaction
	switch {
	case delta == 0:
		payment = base.Mul(exactMatchMultiplier).Floor()
		satisfaction = entity.SatisfactionPerfectMatch
	case delta > 0:
		bonus := upgradeBase.Add(upgradePerRank.Mul(decimal.NewFromInt(int64(delta))))
		payment = base.Mul(bonus).Floor()
		satisfaction = entity.SatisfactionDelightedUpgrade
	default:
		penalty := decimal.NewFromInt(1).Sub(downgradePerRank.Mul(decimal.NewFromInt(int64(-delta))))
		payment = base.Mul(penalty).Floor()
		satisfaction = entity.SatisfactionDowngrade
	}

	if profession.Prefers(recipe.Type, recipe.Subcategory) {
		payment = payment.Mul(styleMultiplier).Floor()
		if delta == 0 {
			satisfaction = entity.SatisfactionPerfectStyleMatch
		}
	}

	if floor := base.Mul(priceFloorRatio).Floor(); payment.LessThan(floor) {
		payment = floor
	}

	quote := Quote{
		Computed:     int(payment.IntPart()),
		Payment:      int(payment.IntPart()),
		Satisfaction: satisfaction,
	}

	switch action {
	case ActionSell:
		if quote.Payment <= customer.MaxBudget {
			break
		}
		if customer.BudgetTier == entity.BudgetTierBudget {
			return Quote{}, domainerrors.ErrCustomerCannotAfford.WithDetails(
				fmt.Sprintf("%s can pay at most %d gold, the price is %d", customer.Name, customer.MaxBudget, quote.Payment))
		}
		quote.Payment = customer.MaxBudget
		quote.Satisfaction = entity.SatisfactionExpensive
	case ActionAcceptLower:
		quote.Payment = customer.MaxBudget
		quote.Satisfaction = entity.SatisfactionAcceptedLower
	case ActionBarter:
		quote.Payment = customer.MaxBudget
		quote.Satisfaction = entity.SatisfactionBarter
	}

	return quote, nil
}
