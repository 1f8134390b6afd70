// Package document implements save slot storage as one JSON document held in memory and,
// for the file driver, mirrored to disk after every committed transaction.
package document

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"shopkeep/internal/domain/entity"
	"shopkeep/internal/domain/repository"

	"github.com/pkg/errors"
)

// maxEventsPerSlot bounds the event log of a slot; the oldest entries are dropped first.
const maxEventsPerSlot = 1000

// document is the on-disk layout of a save file.
type document struct {
	Version   int                            `json:"version"`
	Snapshots map[string]*entity.Snapshot    `json:"snapshots"`
	Events    map[string][]*entity.GameEvent `json:"events"`
}

func newDocument() *document {
	return &document{
		Version:   entity.SnapshotVersion,
		Snapshots: map[string]*entity.Snapshot{},
		Events:    map[string][]*entity.GameEvent{},
	}
}

func (d *document) clone() *document {
	out := &document{
		Version:   d.Version,
		Snapshots: make(map[string]*entity.Snapshot, len(d.Snapshots)),
		Events:    make(map[string][]*entity.GameEvent, len(d.Events)),
	}
	for slot, snapshot := range d.Snapshots {
		out.Snapshots[slot] = copySnapshot(snapshot)
	}
	// Stored events are never modified in place, so the slices can share their entries.
	for slot, events := range d.Events {
		out.Events[slot] = append([]*entity.GameEvent(nil), events...)
	}

	return out
}

func copySnapshot(s *entity.Snapshot) *entity.Snapshot {
	out := *s
	out.State = s.State.Clone()

	return &out
}

// Store is a transactional document store. Transactions run one at a time against a copy of
// the document which replaces the committed one only when the transaction succeeds.
// Execute is not reentrant.
type Store struct {
	mu   sync.Mutex
	path string
	doc  *document
}

// NewMemoryStore creates a store that lives only as long as the process.
func NewMemoryStore() *Store {
	return &Store{doc: newDocument()}
}

// NewFileStore opens the save file at path, creating an empty document when the file does not exist.
func NewFileStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("save file path is empty")
	}

	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	return &Store{path: path, doc: doc}, nil
}

// Path returns the save file path, empty for a memory store.
func (s *Store) Path() string {
	return s.path
}

// Execute runs fn against a working copy of the document and commits the copy when fn succeeds.
// For file stores a commit that changed anything is written to disk first; a failed write
// leaves the committed document unchanged.
func (s *Store) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction{doc: s.doc.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	if !tx.dirty {
		return nil
	}

	if s.path != "" {
		if err := writeDocument(s.path, tx.doc); err != nil {
			return err
		}
	}
	s.doc = tx.doc

	return nil
}

// TransactionManager returns the store as a repository.TransactionManager.
func (s *Store) TransactionManager() repository.TransactionManager {
	return s
}

// GameStateRepo returns a repository whose every call is its own transaction.
func (s *Store) GameStateRepo() repository.GameStateRepository {
	return &autoCommitGameStateRepository{store: s}
}

// EventRepo returns a repository whose every call is its own transaction.
func (s *Store) EventRepo() repository.EventRepository {
	return &autoCommitEventRepository{store: s}
}

func readDocument(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return newDocument(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read save file")
	}

	doc := newDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse save file")
	}
	if doc.Snapshots == nil {
		doc.Snapshots = map[string]*entity.Snapshot{}
	}
	if doc.Events == nil {
		doc.Events = map[string][]*entity.GameEvent{}
	}
	for slot, snapshot := range doc.Snapshots {
		if snapshot == nil {
			delete(doc.Snapshots, slot)

			continue
		}
		snapshot.Slot = slot
		snapshot.Migrate()
	}
	doc.Version = entity.SnapshotVersion

	return doc, nil
}

// writeDocument replaces the save file atomically: the document is written to a temporary
// file in the same directory which is then renamed over the old one.
func writeDocument(path string, doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode save file")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create save directory")
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary save file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return errors.Wrap(err, "failed to write save file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()

		return errors.Wrap(err, "failed to sync save file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close save file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "failed to replace save file")
	}

	return nil
}
