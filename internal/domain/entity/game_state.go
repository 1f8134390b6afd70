package entity

import "maps"

// GameState is the root aggregate of a running game. It is treated as an immutable value:
// every operation reads the old state, computes a new one and replaces it wholesale.
type GameState struct {
	Phase         Phase               `json:"phase"`
	Day           int                 `json:"day"`
	Gold          int                 `json:"gold"`
	Materials     map[MaterialID]int  `json:"materials"`
	Inventory     map[RecipeID]int    `json:"inventory"`
	Customers     []Customer          `json:"customers"`
	TotalEarnings int                 `json:"total_earnings"`
	MarketReports []string            `json:"market_reports"`
	MarketBias    map[BiasKey]float64 `json:"market_bias"`
}

// NewGameState returns the state of a fresh game on day one.
func NewGameState(startingGold int) GameState {
	return GameState{
		Phase:         PhaseMorning,
		Day:           1,
		Gold:          startingGold,
		Materials:     map[MaterialID]int{},
		Inventory:     map[RecipeID]int{},
		Customers:     []Customer{},
		MarketReports: []string{},
		MarketBias:    map[BiasKey]float64{},
	}
}

// Clone returns a deep copy of the state so that the copy can be modified freely.
func (s GameState) Clone() GameState {
	out := s
	out.Materials = cloneMap(s.Materials)
	out.Inventory = cloneMap(s.Inventory)
	out.MarketBias = cloneMap(s.MarketBias)
	out.MarketReports = append([]string{}, s.MarketReports...)

	out.Customers = make([]Customer, len(s.Customers))
	for i, c := range s.Customers {
		c.Materials = append([]BarterMaterial{}, c.Materials...)
		out.Customers[i] = c
	}

	return out
}

// CustomerIndex returns the roster position of the customer with the given id, or -1.
func (s GameState) CustomerIndex(id string) int {
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			return i
		}
	}

	return -1
}

// Normalize replaces nil collections with empty ones, which keeps snapshots
// written by older versions usable.
func (s *GameState) Normalize() {
	if s.Materials == nil {
		s.Materials = map[MaterialID]int{}
	}
	if s.Inventory == nil {
		s.Inventory = map[RecipeID]int{}
	}
	if s.Customers == nil {
		s.Customers = []Customer{}
	}
	if s.MarketReports == nil {
		s.MarketReports = []string{}
	}
	if s.MarketBias == nil {
		s.MarketBias = map[BiasKey]float64{}
	}
	if s.Day < 1 {
		s.Day = 1
	}
	if !s.Phase.IsValid() {
		s.Phase = PhaseMorning
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}

	return maps.Clone(m)
}
