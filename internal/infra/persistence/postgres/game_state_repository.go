package postgres

import (
	"context"
	"encoding/json"

	"shopkeep/internal/domain/entity"
	domainerrors "shopkeep/internal/domain/errors"
	"shopkeep/internal/domain/repository"
	"shopkeep/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gameStateRepository implements the repository.GameStateRepository interface.
type gameStateRepository struct {
	db *gorm.DB
}

// NewGameStateRepository is the constructor for gameStateRepository.
func NewGameStateRepository(db *gorm.DB) repository.GameStateRepository {
	return &gameStateRepository{
		db: db,
	}
}

// LoadSnapshot retrieves the snapshot of a save slot and migrates it to the current version.
func (repo *gameStateRepository) LoadSnapshot(ctx context.Context, slot string) (*entity.Snapshot, error) {
	var slotM model.SaveSlotModel

	if err := repo.db.WithContext(withSlot(ctx, slot)).
		Where("slot = ?", slot).
		First(&slotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGameStateNotFound
		}

		return nil, errors.Wrap(err, "failed to find save slot")
	}

	snapshot, err := toSnapshotDomain(&slotM)
	if err != nil {
		return nil, err
	}
	snapshot.Migrate()

	return snapshot, nil
}

// SaveSnapshot inserts the snapshot or replaces the existing one of the same slot.
func (repo *gameStateRepository) SaveSnapshot(ctx context.Context, snapshot *entity.Snapshot) error {
	slotM, err := fromSnapshotDomain(snapshot)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(withSlot(ctx, snapshot.Slot)).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"version", "state", "updated_at"}),
		}).
		Create(slotM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid save slot")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save snapshot")
	}

	snapshot.UpdatedAt = slotM.UpdatedAt

	return nil
}

// DeleteSnapshot removes a save slot. Its events are removed by the cascade.
func (repo *gameStateRepository) DeleteSnapshot(ctx context.Context, slot string) error {
	if err := repo.db.WithContext(withSlot(ctx, slot)).
		Where("slot = ?", slot).
		Delete(&model.SaveSlotModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete save slot")
	}

	return nil
}

// --- Mapper Functions ---

// toSnapshotDomain converts a GORM SaveSlotModel to a domain Snapshot.
func toSnapshotDomain(data *model.SaveSlotModel) (*entity.Snapshot, error) {
	snapshot := &entity.Snapshot{
		Slot:      data.Slot,
		Version:   data.Version,
		UpdatedAt: data.UpdatedAt,
	}
	if err := json.Unmarshal(data.State, &snapshot.State); err != nil {
		return nil, errors.Wrap(err, "failed to decode game state")
	}

	return snapshot, nil
}

// fromSnapshotDomain converts a domain Snapshot to a GORM SaveSlotModel.
func fromSnapshotDomain(data *entity.Snapshot) (*model.SaveSlotModel, error) {
	if data == nil {
		return nil, errors.New("snapshot is nil")
	}

	state, err := json.Marshal(data.State)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode game state")
	}

	version := data.Version
	if version == 0 {
		version = entity.SnapshotVersion
	}

	return &model.SaveSlotModel{
		Slot:      data.Slot,
		Version:   version,
		State:     datatypes.JSON(state),
		UpdatedAt: data.UpdatedAt,
	}, nil
}
