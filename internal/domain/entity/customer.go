package entity

// ProfessionID identifies a customer archetype.
type ProfessionID string

const (
	ProfessionAdventurer ProfessionID = "adventurer"
	ProfessionNoble      ProfessionID = "noble"
	ProfessionGuard      ProfessionID = "guard"
	ProfessionScholar    ProfessionID = "scholar"
	ProfessionMerchant   ProfessionID = "merchant"
	ProfessionFarmer     ProfessionID = "farmer"
)

// BudgetTier describes how much a customer can spend.
type BudgetTier string

const (
	BudgetTierBudget  BudgetTier = "budget"
	BudgetTierMiddle  BudgetTier = "middle"
	BudgetTierWealthy BudgetTier = "wealthy"
)

// Profession is a static customer archetype.
type Profession struct {
	ID   ProfessionID `json:"id" yaml:"id"`
	Name string       `json:"name" yaml:"name"`
	// Preferences lists, per item type, the subcategories this profession favours.
	Preferences        map[ItemType][]string `json:"preferences" yaml:"preferences"`
	NamePool           []string              `json:"name_pool" yaml:"namePool"`
	PreferredMaterials []MaterialID          `json:"preferred_materials" yaml:"preferredMaterials"`
	// BudgetTier, when set, overrides the random budget roll.
	BudgetTier BudgetTier `json:"budget_tier,omitempty" yaml:"budgetTier"`
}

// Prefers reports whether the profession favours the given subcategory of an item type.
func (p Profession) Prefers(itemType ItemType, subcategory string) bool {
	for _, s := range p.Preferences[itemType] {
		if s == subcategory {
			return true
		}
	}

	return false
}

// Satisfaction describes how a served customer felt about the sale.
type Satisfaction string

const (
	SatisfactionPerfectMatch      Satisfaction = "perfect match"
	SatisfactionPerfectStyleMatch Satisfaction = "perfect style match"
	SatisfactionDelightedUpgrade  Satisfaction = "delighted upgrade"
	SatisfactionDowngrade         Satisfaction = "disappointed downgrade"
	SatisfactionExpensive         Satisfaction = "expensive but worth it"
	SatisfactionAcceptedLower     Satisfaction = "accepted lower offer"
	SatisfactionBarter            Satisfaction = "barter trade"
)

// Customer is a generated shopper. It is created when the shop opens, served at most once
// and discarded when a new day starts.
type Customer struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Profession    ProfessionID     `json:"profession"`
	RequestType   ItemType         `json:"request_type"`
	RequestRarity Rarity           `json:"request_rarity"`
	OfferPrice    int              `json:"offer_price"`
	BudgetTier    BudgetTier       `json:"budget_tier"`
	MaxBudget     int              `json:"max_budget"`
	Flexible      bool             `json:"flexible"`
	Satisfied     bool             `json:"satisfied"`
	Payment       int              `json:"payment,omitempty"`
	Satisfaction  Satisfaction     `json:"satisfaction,omitempty"`
	Materials     []BarterMaterial `json:"materials"`
}
