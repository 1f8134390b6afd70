package engine

import (
	"fmt"
	"testing"

	"shopkeep/internal/domain/catalog"
	"shopkeep/internal/domain/entity"
	"shopkeep/internal/domain/service"
)

// scriptedRandom replays a fixed list of values, cycling when it runs out.
type scriptedRandom struct {
	values []float64
	pos    int
}

func constantRandom(v float64) *scriptedRandom {
	return &scriptedRandom{values: []float64{v}}
}

func (s *scriptedRandom) Next() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++

	return v
}

func (s *scriptedRandom) SetSeed(int64) {}
func (s *scriptedRandom) ClearSeed()    {}
func (s *scriptedRandom) Seeded() bool  { return true }

var _ service.RandomSource = (*scriptedRandom)(nil)

func createTestEngine(t *testing.T, rng service.RandomSource, opts ...Option) *Engine {
	t.Helper()

	ids := 0
	opts = append([]Option{WithIDGenerator(func() string {
		ids++

		return fmt.Sprintf("customer-%d", ids)
	})}, opts...)

	return New(catalog.MustNew(catalog.DefaultBase()), rng, opts...)
}

func stateInPhase(phase entity.Phase) entity.GameState {
	state := entity.NewGameState(100)
	state.Phase = phase

	return state
}
