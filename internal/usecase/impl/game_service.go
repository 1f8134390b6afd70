// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shopkeep/config"
	deliverycontext "shopkeep/internal/delivery/context"
	"shopkeep/internal/domain/engine"
	"shopkeep/internal/domain/entity"
	domainerrors "shopkeep/internal/domain/errors"
	"shopkeep/internal/domain/repository"
	"shopkeep/internal/domain/service"
	"shopkeep/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultEventHistory = 50
	maxEventHistory     = 500
)

// gameService implements the GameUsecase interface.
// All operations run under one mutex: the engine's random source and the
// selected customer are shared by every request.
type gameService struct {
	mu sync.Mutex

	engine       *engine.Engine
	rng          service.RandomSource
	txManager    repository.TransactionManager
	publisher    service.EventPublisher
	loader       stateLoader
	eventHistory int
	logger       *slog.Logger

	selectedCustomerID string
}

// GameServiceParams holds dependencies for GameService, injected by Fx.
type GameServiceParams struct {
	fx.In

	Engine    *engine.Engine
	Random    service.RandomSource
	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewGameService is the constructor for gameService. A seed in the game configuration
// is applied to the random source right away.
func NewGameService(params GameServiceParams) usecase.GameUsecase {
	eventHistory := defaultEventHistory
	if params.Config != nil && params.Config.Game != nil {
		if params.Config.Game.EventHistory > 0 {
			eventHistory = params.Config.Game.EventHistory
		}
		if seed := params.Config.Game.Seed; seed != nil {
			params.Random.SetSeed(*seed)
			params.Logger.Info("Random source seeded from configuration", slog.Int64("seed", *seed))
		}
	}

	return &gameService{
		engine:       params.Engine,
		rng:          params.Random,
		txManager:    params.TxManager,
		publisher:    params.Publisher,
		loader:       newStateLoader(params.TxManager, params.Config),
		eventHistory: min(eventHistory, maxEventHistory),
		logger:       params.Logger,
	}
}

// mutation is one state-changing operation.
type mutation struct {
	name   string
	reduce func(state entity.GameState) (engine.Result, error)
	// resetLog drops the slot's event log and skips loading the current state.
	resetLog bool
}

// outcome collects what a committed mutation has to publish.
type outcome struct {
	state     entity.GameState
	events    []*entity.GameEvent
	effects   engine.Effects
	rejection error
}

// NewGame discards the saved game and its event log and starts over on day one.
func (srv *gameService) NewGame(ctx context.Context) (*usecase.GameView, error) {
	srv.logger.Info("Starting a new game", slog.String("slot", srv.loader.slot))

	return srv.apply(ctx, mutation{
		name: "start a new game",
		reduce: func(_ entity.GameState) (engine.Result, error) {
			return srv.engine.NewGame(srv.loader.startingGold), nil
		},
		resetLog: true,
	})
}

// GetState returns the saved game, starting one when the slot is empty.
func (srv *gameService) GetState(ctx context.Context) (*usecase.GameView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	var out outcome
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		state, created, err := srv.loadOrCreate(ctx, repoFactory)
		if err != nil {
			return err
		}
		out.state = state
		out.events = created

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get game state")
	}

	srv.publish(ctx, out)

	return srv.view(out.state), nil
}

// BeginCrafting moves from the morning to the workshop.
func (srv *gameService) BeginCrafting(ctx context.Context) (*usecase.GameView, error) {
	return srv.apply(ctx, mutation{name: "begin crafting", reduce: srv.engine.BeginCrafting})
}

// OpenBox buys a supply box.
func (srv *gameService) OpenBox(ctx context.Context, boxID entity.BoxID) (*usecase.GameView, error) {
	return srv.apply(ctx, mutation{
		name: "open box",
		reduce: func(state entity.GameState) (engine.Result, error) {
			return srv.engine.OpenBox(state, boxID)
		},
	})
}

// CraftItem turns materials into one item of a recipe.
func (srv *gameService) CraftItem(ctx context.Context, recipeID entity.RecipeID) (*usecase.GameView, error) {
	return srv.apply(ctx, mutation{
		name: "craft item",
		reduce: func(state entity.GameState) (engine.Result, error) {
			return srv.engine.CraftItem(state, recipeID)
		},
	})
}

// OpenShop lets the day's customers in.
func (srv *gameService) OpenShop(ctx context.Context) (*usecase.GameView, error) {
	return srv.apply(ctx, mutation{name: "open shop", reduce: srv.engine.OpenShop})
}

// SelectCustomer marks a waiting customer as the one being served. The selection is
// kept in memory only and cleared by any operation that replaces or serves the roster.
func (srv *gameService) SelectCustomer(ctx context.Context, customerID string) (*usecase.GameView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	var out outcome
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		state, created, err := srv.loadOrCreate(ctx, repoFactory)
		if err != nil {
			return err
		}
		out.state = state
		out.events = created

		idx := state.CustomerIndex(customerID)
		switch {
		case idx < 0:
			out.rejection = domainerrors.ErrCustomerNotFound.WithDetails("customer " + customerID)
		case state.Customers[idx].Satisfied:
			out.rejection = domainerrors.ErrCustomerAlreadyServed
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to select customer")
	}

	srv.publish(ctx, out)
	if out.rejection != nil {
		return nil, out.rejection
	}

	srv.selectedCustomerID = customerID

	return srv.view(out.state), nil
}

// ServeCustomer sells an inventory item to a waiting customer.
func (srv *gameService) ServeCustomer(ctx context.Context, input *usecase.ServeCustomerInput) (*usecase.GameView, error) {
	return srv.apply(ctx, mutation{
		name: "serve customer",
		reduce: func(state entity.GameState) (engine.Result, error) {
			return srv.engine.ServeCustomer(state, input.CustomerID, input.ItemID, input.Action)
		},
	})
}

// EndDay closes the shop.
func (srv *gameService) EndDay(ctx context.Context) (*usecase.GameView, error) {
	return srv.apply(ctx, mutation{name: "end day", reduce: srv.engine.EndDay})
}

// StartNewDay moves to the next morning.
func (srv *gameService) StartNewDay(ctx context.Context) (*usecase.GameView, error) {
	return srv.apply(ctx, mutation{name: "start new day", reduce: srv.engine.StartNewDay})
}

// RecentEvents returns the newest entries of the event log. A non-positive limit uses
// the configured history size.
func (srv *gameService) RecentEvents(ctx context.Context, limit int) ([]*entity.GameEvent, error) {
	if limit <= 0 {
		limit = srv.eventHistory
	}
	limit = min(limit, maxEventHistory)

	var events []*entity.GameEvent
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EventRepo().ListRecentEvents(ctx, srv.loader.slot, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list events")
		}
		events = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get recent events")
	}

	return events, nil
}

// Seed makes the random source deterministic, or restores platform randomness for a nil seed.
func (srv *gameService) Seed(ctx context.Context, seed *int64) (*usecase.GameView, error) {
	srv.mu.Lock()
	if seed == nil {
		srv.rng.ClearSeed()
		srv.logger.Info("Random seed cleared")
	} else {
		srv.rng.SetSeed(*seed)
		srv.logger.Info("Random source seeded", slog.Int64("seed", *seed))
	}
	srv.mu.Unlock()

	return srv.GetState(ctx)
}

// apply runs one mutation in a single transaction. A rejected mutation writes nothing
// and is reported as an error notification; a successful one saves the new snapshot
// and appends its events before they are published.
func (srv *gameService) apply(ctx context.Context, m mutation) (*usecase.GameView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var out outcome
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var state entity.GameState
		if m.resetLog {
			if err := repoFactory.EventRepo().DeleteEvents(ctx, srv.loader.slot); err != nil {
				return errors.Wrap(err, "failed to reset event log")
			}
		} else {
			loaded, created, err := srv.loadOrCreate(ctx, repoFactory)
			if err != nil {
				return err
			}
			state = loaded
			out.state = loaded
			out.events = created
		}

		result, err := m.reduce(state)
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				out.rejection = err

				return nil
			}

			return errors.Wrap(err, "unexpected engine error")
		}

		recorded, err := srv.save(ctx, repoFactory, result)
		if err != nil {
			return err
		}
		out.state = result.State
		out.events = append(out.events, recorded...)
		out.effects = result.Effects

		return nil
	})
	if err != nil {
		logger.Error("Game operation failed", slog.String("operation", m.name), slog.Any("error", err))

		return nil, errors.Wrapf(err, "failed to %s", m.name)
	}

	srv.publish(ctx, out)
	if out.rejection != nil {
		logger.Debug("Game operation rejected", slog.String("operation", m.name), slog.Any("reason", out.rejection))

		return nil, out.rejection
	}

	if out.effects.ClearSelection || out.state.CustomerIndex(srv.selectedCustomerID) < 0 {
		srv.selectedCustomerID = ""
	}

	return srv.view(out.state), nil
}

// loadOrCreate loads the slot's state. An empty slot gets a new game, which is saved
// right away; its events are returned for publishing.
func (srv *gameService) loadOrCreate(ctx context.Context, repoFactory repository.RepositoryFactory) (entity.GameState, []*entity.GameEvent, error) {
	state, found, err := srv.loader.load(ctx, repoFactory)
	if err != nil {
		return entity.GameState{}, nil, err
	}
	if found {
		return state, nil, nil
	}

	srv.logger.Info("No saved game, starting a new one", slog.String("slot", srv.loader.slot))
	opening := srv.engine.NewGame(srv.loader.startingGold)
	recorded, err := srv.save(ctx, repoFactory, opening)
	if err != nil {
		return entity.GameState{}, nil, err
	}

	return opening.State, recorded, nil
}

// save writes the snapshot of a result and appends its events to the slot's log.
func (srv *gameService) save(ctx context.Context, repoFactory repository.RepositoryFactory, result engine.Result) ([]*entity.GameEvent, error) {
	snapshot := &entity.Snapshot{
		Slot:      srv.loader.slot,
		Version:   entity.SnapshotVersion,
		State:     result.State,
		UpdatedAt: time.Now(),
	}
	if err := repoFactory.GameStateRepo().SaveSnapshot(ctx, snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to save game state")
	}

	if len(result.Effects.Events) == 0 {
		return nil, nil
	}

	events := make([]*entity.GameEvent, 0, len(result.Effects.Events))
	for _, event := range result.Effects.Events {
		event.Slot = srv.loader.slot
		events = append(events, &event)
	}
	if err := repoFactory.EventRepo().AppendEvents(ctx, events); err != nil {
		return nil, errors.Wrap(err, "failed to record events")
	}

	return events, nil
}

// publish hands committed events and notifications to the publisher. A rejection
// becomes an error notification carrying its user-facing message.
func (srv *gameService) publish(ctx context.Context, out outcome) {
	for _, event := range out.events {
		srv.publisher.AddEvent(ctx, event)
	}
	for _, notification := range out.effects.Notifications {
		srv.publisher.AddNotification(ctx, notification)
	}

	if out.rejection == nil {
		return
	}

	message := out.rejection.Error()
	var appErr domainerrors.AppError
	if errors.As(out.rejection, &appErr) {
		message = appErr.Message()
	}
	srv.publisher.AddNotification(ctx, entity.Notification{Kind: entity.KindError, Message: message})
}

func (srv *gameService) view(state entity.GameState) *usecase.GameView {
	return &usecase.GameView{
		State:              state,
		SelectedCustomerID: srv.selectedCustomerID,
		Seeded:             srv.rng.Seeded(),
	}
}
