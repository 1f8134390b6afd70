// Package random provides the game's random source.
package random

import (
	"math/rand/v2"
	"sync"

	"shopkeep/internal/domain/service"
)

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// LCG is a seedable linear congruential generator. Until it is seeded it draws
// from the platform generator.
type LCG struct {
	mu     sync.Mutex
	seeded bool
	state  int64
}

var _ service.RandomSource = (*LCG)(nil)

// NewLCG returns an unseeded generator.
func NewLCG() *LCG {
	return &LCG{}
}

// NewSeededLCG returns a generator already seeded with seed.
func NewSeededLCG(seed int64) *LCG {
	g := &LCG{}
	g.SetSeed(seed)

	return g
}

// Next returns the next number in [0, 1).
func (g *LCG) Next() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.seeded {
		// #nosec G404 -- gameplay randomness, not security sensitive.
		return rand.Float64()
	}

	g.state = (g.state*lcgMultiplier + lcgIncrement) % lcgModulus

	return float64(g.state) / lcgModulus
}

// SetSeed starts the deterministic sequence at seed.
func (g *LCG) SetSeed(seed int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state = ((seed % lcgModulus) + lcgModulus) % lcgModulus
	g.seeded = true
}

// ClearSeed returns to platform randomness.
func (g *LCG) ClearSeed() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seeded = false
	g.state = 0
}

// Seeded reports whether the deterministic sequence is in use.
func (g *LCG) Seeded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.seeded
}
