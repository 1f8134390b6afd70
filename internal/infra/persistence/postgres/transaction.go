// Package postgres stores save slots and their event logs in PostgreSQL through GORM.
package postgres

import (
	"context"

	domainerrors "shopkeep/internal/domain/errors"
	"shopkeep/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out save slot repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// GameStateRepo creates a game state repository instance bound to the transaction.
func (f *gormRepositoryFactory) GameStateRepo() repository.GameStateRepository {
	return NewGameStateRepository(f.tx)
}

// EventRepo creates an event repository instance bound to the transaction.
func (f *gormRepositoryFactory) EventRepo() repository.EventRepository {
	return NewEventRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one database transaction, so a snapshot and the events recorded with
// it are committed together or not at all. Errors returned by fn come back unchanged;
// failures to begin or commit are reported as database errors.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gormRepositoryFactory{tx: tx})

		return fnErr
	})
	if err == nil {
		return nil
	}
	if fnErr != nil {
		return fnErr
	}

	return domainerrors.NewDatabaseExecuteError(err, "save slot transaction failed")
}
