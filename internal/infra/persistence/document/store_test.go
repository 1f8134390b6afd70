package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"shopkeep/internal/domain/entity"
	"shopkeep/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSnapshot(slot string, gold int) *entity.Snapshot {
	state := entity.NewGameState(gold)
	state.Materials["iron"] = 2

	return &entity.Snapshot{Slot: slot, Version: entity.SnapshotVersion, State: state}
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := store.GameStateRepo()

	require.NoError(t, repo.SaveSnapshot(ctx, createTestSnapshot("default", 80)))

	loaded, err := repo.LoadSnapshot(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, 80, loaded.State.Gold)
	assert.Equal(t, 2, loaded.State.Materials["iron"])
	assert.False(t, loaded.UpdatedAt.IsZero())

	// Callers get a copy.
	loaded.State.Materials["iron"] = 99
	again, err := repo.LoadSnapshot(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, 2, again.State.Materials["iron"])
}

func TestStore_LoadSnapshot_NotFound(t *testing.T) {
	store := NewMemoryStore()

	snapshot, err := store.GameStateRepo().LoadSnapshot(context.Background(), "missing")

	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, repository.ErrGameStateNotFound)
}

func TestStore_DeleteSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := store.GameStateRepo()

	require.NoError(t, repo.SaveSnapshot(ctx, createTestSnapshot("default", 10)))
	require.NoError(t, repo.DeleteSnapshot(ctx, "default"))
	require.NoError(t, repo.DeleteSnapshot(ctx, "default"))

	_, err := repo.LoadSnapshot(ctx, "default")
	assert.ErrorIs(t, err, repository.ErrGameStateNotFound)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "saves", "save.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.GameStateRepo().SaveSnapshot(ctx, createTestSnapshot("default", 55)); err != nil {
			return err
		}

		return f.EventRepo().AppendEvents(ctx, []*entity.GameEvent{
			{Slot: "default", Day: 1, Kind: entity.KindInfo, Message: "Day 1 begins"},
		})
	}))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	loaded, err := reopened.GameStateRepo().LoadSnapshot(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, 55, loaded.State.Gold)

	events, err := reopened.EventRepo().ListRecentEvents(ctx, "default", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Day 1 begins", events[0].Message)
}

func TestFileStore_Execute_RollbackLeavesFileUntouched(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "save.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.GameStateRepo().SaveSnapshot(ctx, createTestSnapshot("default", 30)))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.GameStateRepo().SaveSnapshot(ctx, createTestSnapshot("default", 999)); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	loaded, err := store.GameStateRepo().LoadSnapshot(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, 30, loaded.State.Gold)
}

func TestNewFileStore_MigratesOldVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	old := `{"snapshots":{"default":{"version":1,"state":{"phase":"SHOPPING","day":3,"gold":40}}}}`
	require.NoError(t, os.WriteFile(path, []byte(old), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	loaded, err := store.GameStateRepo().LoadSnapshot(context.Background(), "default")
	require.NoError(t, err)
	assert.Equal(t, entity.SnapshotVersion, loaded.Version)
	assert.Equal(t, "default", loaded.Slot)
	assert.Equal(t, 3, loaded.State.Day)
	assert.Equal(t, 40, loaded.State.Gold)
	assert.Equal(t, entity.PhaseShopping, loaded.State.Phase)
	assert.NotNil(t, loaded.State.Materials)
	assert.NotNil(t, loaded.State.Customers)
}

func TestNewFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewFileStore(path)

	assert.Nil(t, store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse save file")
}

func TestStore_ListRecentEvents(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := store.EventRepo()

	events := []*entity.GameEvent{
		{Slot: "default", Day: 1, Kind: entity.KindInfo, Message: "first"},
		{Slot: "default", Day: 1, Kind: entity.KindSuccess, Message: "second"},
		{Slot: "other", Day: 1, Kind: entity.KindInfo, Message: "elsewhere"},
		{Slot: "default", Day: 2, Kind: entity.KindInfo, Message: "third"},
	}
	require.NoError(t, repo.AppendEvents(ctx, events))

	for _, event := range events {
		assert.NotEqual(t, uuid.Nil, event.ID)
		assert.False(t, event.CreatedAt.IsZero())
	}

	recent, err := repo.ListRecentEvents(ctx, "default", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Message)
	assert.Equal(t, "second", recent[1].Message)

	all, err := repo.ListRecentEvents(ctx, "default", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.DeleteEvents(ctx, "default"))
	none, err := repo.ListRecentEvents(ctx, "default", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_AppendEvents_KeepsNewest(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	events := make([]*entity.GameEvent, 0, maxEventsPerSlot+5)
	for i := range maxEventsPerSlot + 5 {
		events = append(events, &entity.GameEvent{Slot: "default", Day: 1, Kind: entity.KindInfo, Message: fmt.Sprintf("event %d", i)})
	}
	require.NoError(t, store.EventRepo().AppendEvents(ctx, events))

	all, err := store.EventRepo().ListRecentEvents(ctx, "default", 0)
	require.NoError(t, err)
	require.Len(t, all, maxEventsPerSlot)
	assert.Equal(t, fmt.Sprintf("event %d", maxEventsPerSlot+4), all[0].Message)
	assert.Equal(t, "event 5", all[len(all)-1].Message)
}

func TestStore_Execute_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewMemoryStore().Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestStore_SaveSnapshot_Invalid(t *testing.T) {
	repo := NewMemoryStore().GameStateRepo()

	require.Error(t, repo.SaveSnapshot(context.Background(), nil))
	require.Error(t, repo.SaveSnapshot(context.Background(), &entity.Snapshot{}))
}
