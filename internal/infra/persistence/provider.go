// Package persistence selects the save slot storage driver from configuration.
package persistence

import (
	"context"
	"log/slog"

	"shopkeep/config"
	"shopkeep/internal/domain/repository"
	"shopkeep/internal/infra/persistence/document"
	"shopkeep/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the storage provider, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the repositories of the configured driver
type Result struct {
	fx.Out

	TxManager     repository.TransactionManager
	GameStateRepo repository.GameStateRepository
	EventRepo     repository.EventRepository
}

// New creates the repositories of the configured storage driver
func New(params Params) (Result, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	switch cfg.Driver {
	case config.StorageDriverMemory:
		logger.Info("Using in-memory save slots, progress is lost on shutdown")

		return fromDocumentStore(document.NewMemoryStore()), nil

	case config.StorageDriverFile:
		store, err := document.NewFileStore(cfg.Path)
		if err != nil {
			return Result{}, err
		}
		logger.Info("Using file save slots", slog.String("path", store.Path()))

		return fromDocumentStore(store), nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Result{}, err
		}
		logger.Info("Using PostgreSQL save slots")

		return Result{
			TxManager:     postgres.NewTransactionManager(db),
			GameStateRepo: postgres.NewGameStateRepository(db),
			EventRepo:     postgres.NewEventRepository(db),
		}, nil

	default:
		return Result{}, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

func fromDocumentStore(store *document.Store) Result {
	return Result{
		TxManager:     store.TransactionManager(),
		GameStateRepo: store.GameStateRepo(),
		EventRepo:     store.EventRepo(),
	}
}

// OpenForTool opens the configured storage outside of an Fx application. Postgres
// connections are pinged and migrated before returning; the returned close function
// releases them.
func OpenForTool(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Result, func() error, error) {
	lc := &toolLifecycle{}
	result, err := New(Params{Lc: lc, Config: cfg, Logger: logger})
	if err != nil {
		return Result{}, nil, err
	}

	for _, hook := range lc.hooks {
		if hook.OnStart == nil {
			continue
		}
		if err := hook.OnStart(ctx); err != nil {
			return Result{}, nil, err
		}
	}

	closeFn := func() error {
		for i := len(lc.hooks) - 1; i >= 0; i-- {
			if lc.hooks[i].OnStop == nil {
				continue
			}
			if err := lc.hooks[i].OnStop(context.Background()); err != nil {
				return err
			}
		}

		return nil
	}

	return result, closeFn, nil
}

// toolLifecycle collects hooks for OpenForTool.
type toolLifecycle struct {
	hooks []fx.Hook
}

func (l *toolLifecycle) Append(hook fx.Hook) {
	l.hooks = append(l.hooks, hook)
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
