package postgres

import (
	"context"

	"shopkeep/internal/domain/entity"
	domainerrors "shopkeep/internal/domain/errors"
	"shopkeep/internal/domain/repository"
	"shopkeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const eventBatchSize = 100

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// AppendEvents inserts events in order and fills in their generated ids and timestamps.
func (repo *eventRepository) AppendEvents(ctx context.Context, events []*entity.GameEvent) error {
	if len(events) == 0 {
		return nil
	}

	eventModels := make([]*model.GameEventModel, 0, len(events))
	for _, event := range events {
		if event.ID == uuid.Nil {
			event.ID = uuid.New()
		}
		eventModels = append(eventModels, fromEventDomain(event))
	}

	if err := repo.db.WithContext(withSlot(ctx, events[0].Slot)).
		Omit(clause.Associations).
		CreateInBatches(eventModels, eventBatchSize).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEvent
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGameStateNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append events")
	}

	for i, eventM := range eventModels {
		events[i].CreatedAt = eventM.CreatedAt
	}

	return nil
}

// ListRecentEvents retrieves up to limit events of a slot, newest first. A non-positive limit returns all of them.
func (repo *eventRepository) ListRecentEvents(ctx context.Context, slot string, limit int) ([]*entity.GameEvent, error) {
	var eventModels []*model.GameEventModel

	query := repo.db.WithContext(withSlot(ctx, slot)).
		Where("slot = ?", slot).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.GameEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// DeleteEvents removes the whole event log of a slot.
func (repo *eventRepository) DeleteEvents(ctx context.Context, slot string) error {
	if err := repo.db.WithContext(withSlot(ctx, slot)).
		Where("slot = ?", slot).
		Delete(&model.GameEventModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete events")
	}

	return nil
}

// --- Mapper Functions ---

// toEventDomain converts a GORM GameEventModel to a domain GameEvent.
func toEventDomain(data *model.GameEventModel) *entity.GameEvent {
	if data == nil {
		return nil
	}

	return &entity.GameEvent{
		ID:        data.ID,
		Slot:      data.Slot,
		Day:       data.Day,
		Kind:      entity.MessageKind(data.Kind),
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}

// fromEventDomain converts a domain GameEvent to a GORM GameEventModel.
func fromEventDomain(data *entity.GameEvent) *model.GameEventModel {
	if data == nil {
		return nil
	}

	return &model.GameEventModel{
		ID:        data.ID,
		Slot:      data.Slot,
		Day:       data.Day,
		Kind:      string(data.Kind),
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}
