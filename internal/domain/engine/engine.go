// Package engine implements the day-cycle simulation: supply boxes, crafting, the daily market,
// customer generation and sales. Every operation is a pure reducer: it reads the given state,
// computes a new one and reports side effects, leaving its input untouched.
package engine

import (
	"fmt"
	"slices"

	"shopkeep/internal/domain/catalog"
	"shopkeep/internal/domain/entity"
	domainerrors "shopkeep/internal/domain/errors"
	"shopkeep/internal/domain/service"

	"github.com/google/uuid"
)

// Effects are the side effects of a successful operation.
type Effects struct {
	Events         []entity.GameEvent
	Notifications  []entity.Notification
	ClearSelection bool
}

// Result is the outcome of a successful operation.
type Result struct {
	State   entity.GameState
	Effects Effects
}

// Engine runs game operations against a catalog and a random source.
// It holds no game state of its own. The random source is mutable, so an Engine
// must not be used from several goroutines at once.
type Engine struct {
	catalog      *catalog.Catalog
	rng          service.RandomSource
	newID        func() string
	strictPhases bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDGenerator replaces the customer id generator.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// WithStrictPhases controls whether operations are rejected outside their phase.
func WithStrictPhases(strict bool) Option {
	return func(e *Engine) {
		e.strictPhases = strict
	}
}

// New creates an Engine. Phase gating is on unless disabled with WithStrictPhases.
func New(c *catalog.Catalog, rng service.RandomSource, opts ...Option) *Engine {
	e := &Engine{
		catalog:      c,
		rng:          rng,
		newID:        uuid.NewString,
		strictPhases: true,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Catalog returns the catalog the engine works with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// requirePhase rejects an operation when gating is on and the state is in none of the allowed phases.
func (e *Engine) requirePhase(state entity.GameState, allowed ...entity.Phase) error {
	if !e.strictPhases || slices.Contains(allowed, state.Phase) {
		return nil
	}

	return domainerrors.ErrWrongPhase.WithDetails(fmt.Sprintf("current phase is %s", state.Phase))
}

func (fx *Effects) event(day int, kind entity.MessageKind, message string) {
	fx.Events = append(fx.Events, entity.GameEvent{Day: day, Kind: kind, Message: message})
}

func (fx *Effects) notify(kind entity.MessageKind, message string) {
	fx.Notifications = append(fx.Notifications, entity.Notification{Kind: kind, Message: message})
}

// suggestion formats the closest known ids for an unknown-id rejection.
func (e *Engine) suggestion(id string) string {
	if s := e.catalog.Suggest(id); len(s) > 0 {
		return fmt.Sprintf("%q not found, did you mean %q?", id, s[0])
	}

	return fmt.Sprintf("%q not found", id)
}
