package impl

import (
	"context"

	"shopkeep/config"
	"shopkeep/internal/domain/entity"
	"shopkeep/internal/domain/repository"

	"github.com/pkg/errors"
)

const defaultSlot = "default"

// stateLoader reads the game of one save slot. A slot without a snapshot reads as a
// fresh game. The game service saves that game right away in the same transaction,
// while shop queries read it without writing.
type stateLoader struct {
	txManager    repository.TransactionManager
	slot         string
	startingGold int
}

func newStateLoader(txManager repository.TransactionManager, cfg *config.Config) stateLoader {
	loader := stateLoader{
		txManager: txManager,
		slot:      defaultSlot,
	}
	if cfg != nil && cfg.Game != nil {
		if cfg.Game.Slot != "" {
			loader.slot = cfg.Game.Slot
		}
		loader.startingGold = cfg.Game.StartingGold
	}

	return loader
}

// load reads the slot's state through a transaction-bound factory. It reports whether
// a snapshot was found; when none was, the returned state is a fresh game.
func (l stateLoader) load(ctx context.Context, repoFactory repository.RepositoryFactory) (entity.GameState, bool, error) {
	snapshot, err := repoFactory.GameStateRepo().LoadSnapshot(ctx, l.slot)
	if err != nil {
		if errors.Is(err, repository.ErrGameStateNotFound) {
			return entity.NewGameState(l.startingGold), false, nil
		}

		return entity.GameState{}, false, errors.Wrap(err, "failed to load game state")
	}

	return snapshot.State, true, nil
}

// current reads the slot's state in its own transaction.
func (l stateLoader) current(ctx context.Context) (entity.GameState, error) {
	var state entity.GameState

	err := l.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loaded, _, err := l.load(ctx, repoFactory)
		if err != nil {
			return err
		}
		state = loaded

		return nil
	})
	if err != nil {
		return entity.GameState{}, err
	}

	return state, nil
}
