package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"shopkeep/config"
	"shopkeep/internal/delivery"
	"shopkeep/internal/delivery/http"
	"shopkeep/internal/delivery/http/router/handler"
	"shopkeep/internal/delivery/http/ws"
	"shopkeep/internal/domain/catalog"
	"shopkeep/internal/domain/engine"
	"shopkeep/internal/domain/service"
	"shopkeep/internal/infra/events"
	logs "shopkeep/internal/infra/log"
	"shopkeep/internal/infra/persistence"
	"shopkeep/internal/infra/random"
	"shopkeep/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		persistence.Module,
		events.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newRandomSource,
			newGameEngine,
		),
	)
}

// newRandomSource creates the process-wide random source; a configured seed is applied by the game service
func newRandomSource() service.RandomSource {
	return random.NewLCG()
}

// newGameEngine loads the catalog, including any configured override file, and builds the engine on it
func newGameEngine(cfg *config.Config, rng service.RandomSource, logger *slog.Logger) (*engine.Engine, error) {
	base, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	c, err := catalog.New(base)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	logger.Info("Catalog loaded",
		slog.Int("materials", len(c.Materials())),
		slog.Int("recipes", len(c.Recipes())),
		slog.Int("boxes", len(c.Boxes())),
	)

	return engine.New(c, rng, engine.WithStrictPhases(cfg.Game.IsStrictPhases())), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGameService,
			impl.NewShopService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGameHandler,
			handler.NewShopHandler,
			handler.NewTestHandler,
			ws.NewFxHub,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
