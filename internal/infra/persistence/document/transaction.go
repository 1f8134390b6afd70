package document

import (
	"context"
	"time"

	"shopkeep/internal/domain/entity"
	"shopkeep/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// transaction binds repositories to the working copy of one Execute call.
type transaction struct {
	doc   *document
	dirty bool
}

func (tx *transaction) GameStateRepo() repository.GameStateRepository {
	return &gameStateRepository{tx: tx}
}

func (tx *transaction) EventRepo() repository.EventRepository {
	return &eventRepository{tx: tx}
}

// gameStateRepository implements repository.GameStateRepository on a working copy.
type gameStateRepository struct {
	tx *transaction
}

func (repo *gameStateRepository) LoadSnapshot(ctx context.Context, slot string) (*entity.Snapshot, error) {
	snapshot, ok := repo.tx.doc.Snapshots[slot]
	if !ok {
		return nil, repository.ErrGameStateNotFound
	}

	out := copySnapshot(snapshot)
	out.Migrate()

	return out, nil
}

func (repo *gameStateRepository) SaveSnapshot(ctx context.Context, snapshot *entity.Snapshot) error {
	if snapshot == nil {
		return errors.New("snapshot is nil")
	}
	if snapshot.Slot == "" {
		return errors.New("snapshot has no slot")
	}
	if snapshot.Version == 0 {
		snapshot.Version = entity.SnapshotVersion
	}
	if snapshot.UpdatedAt.IsZero() {
		snapshot.UpdatedAt = time.Now().UTC()
	}

	repo.tx.doc.Snapshots[snapshot.Slot] = copySnapshot(snapshot)
	repo.tx.dirty = true

	return nil
}

func (repo *gameStateRepository) DeleteSnapshot(ctx context.Context, slot string) error {
	if _, ok := repo.tx.doc.Snapshots[slot]; !ok {
		return nil
	}
	delete(repo.tx.doc.Snapshots, slot)
	repo.tx.dirty = true

	return nil
}

// eventRepository implements repository.EventRepository on a working copy.
type eventRepository struct {
	tx *transaction
}

// AppendEvents assigns ids and timestamps to events that have none, like a database default would.
func (repo *eventRepository) AppendEvents(ctx context.Context, events []*entity.GameEvent) error {
	if len(events) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, event := range events {
		if event == nil {
			return errors.New("event is nil")
		}
		if event.Slot == "" {
			return errors.New("event has no slot")
		}
		if event.ID == uuid.Nil {
			event.ID = uuid.New()
		}
		if event.CreatedAt.IsZero() {
			event.CreatedAt = now
		}

		stored := *event
		entries := append(repo.tx.doc.Events[event.Slot], &stored)
		if overflow := len(entries) - maxEventsPerSlot; overflow > 0 {
			entries = append([]*entity.GameEvent(nil), entries[overflow:]...)
		}
		repo.tx.doc.Events[event.Slot] = entries
	}
	repo.tx.dirty = true

	return nil
}

func (repo *eventRepository) ListRecentEvents(ctx context.Context, slot string, limit int) ([]*entity.GameEvent, error) {
	entries := repo.tx.doc.Events[slot]
	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}

	out := make([]*entity.GameEvent, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		event := *entries[i]
		out = append(out, &event)
	}

	return out, nil
}

func (repo *eventRepository) DeleteEvents(ctx context.Context, slot string) error {
	if _, ok := repo.tx.doc.Events[slot]; !ok {
		return nil
	}
	delete(repo.tx.doc.Events, slot)
	repo.tx.dirty = true

	return nil
}

// autoCommitGameStateRepository runs each call in its own transaction.
type autoCommitGameStateRepository struct {
	store *Store
}

func (repo *autoCommitGameStateRepository) LoadSnapshot(ctx context.Context, slot string) (*entity.Snapshot, error) {
	var snapshot *entity.Snapshot
	err := repo.store.Execute(ctx, func(f repository.RepositoryFactory) error {
		var err error
		snapshot, err = f.GameStateRepo().LoadSnapshot(ctx, slot)

		return err
	})

	return snapshot, err
}

func (repo *autoCommitGameStateRepository) SaveSnapshot(ctx context.Context, snapshot *entity.Snapshot) error {
	return repo.store.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.GameStateRepo().SaveSnapshot(ctx, snapshot)
	})
}

func (repo *autoCommitGameStateRepository) DeleteSnapshot(ctx context.Context, slot string) error {
	return repo.store.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.GameStateRepo().DeleteSnapshot(ctx, slot)
	})
}

// autoCommitEventRepository runs each call in its own transaction.
type autoCommitEventRepository struct {
	store *Store
}

func (repo *autoCommitEventRepository) AppendEvents(ctx context.Context, events []*entity.GameEvent) error {
	return repo.store.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.EventRepo().AppendEvents(ctx, events)
	})
}

func (repo *autoCommitEventRepository) ListRecentEvents(ctx context.Context, slot string, limit int) ([]*entity.GameEvent, error) {
	var events []*entity.GameEvent
	err := repo.store.Execute(ctx, func(f repository.RepositoryFactory) error {
		var err error
		events, err = f.EventRepo().ListRecentEvents(ctx, slot, limit)

		return err
	})

	return events, err
}

func (repo *autoCommitEventRepository) DeleteEvents(ctx context.Context, slot string) error {
	return repo.store.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.EventRepo().DeleteEvents(ctx, slot)
	})
}
