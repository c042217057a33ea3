package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
)

var _ cmdr.RegistrationLedger = (*GormCmdrRegistrationRepository)(nil)

// GormCmdrRegistrationRepository implements cmdr.RegistrationLedger using GORM
type GormCmdrRegistrationRepository struct {
	db *gorm.DB
}

// NewGormCmdrRegistrationRepository creates a new GORM registration ledger
func NewGormCmdrRegistrationRepository(db *gorm.DB) *GormCmdrRegistrationRepository {
	return &GormCmdrRegistrationRepository{db: db}
}

// Record persists a registration attempt and sets record.ID
func (r *GormCmdrRegistrationRepository) Record(ctx context.Context, record *cmdr.RegistrationRecord) error {
	model := recordToModel(record)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to record registration for cmdr %d: %w", record.DiscordID, result.Error)
	}

	record.ID = model.ID
	return nil
}

// FindLatestByDiscordID returns the most recent attempt for a cmdr.
// Returns cmdr.ErrNoRegistration when none was recorded.
func (r *GormCmdrRegistrationRepository) FindLatestByDiscordID(ctx context.Context, discordID int64) (*cmdr.RegistrationRecord, error) {
	var model CmdrRegistrationModel
	result := r.db.WithContext(ctx).
		Where("discord_id = ?", discordID).
		Order("recorded_at DESC, id DESC").
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cmdr %d: %w", discordID, cmdr.ErrNoRegistration)
		}
		return nil, fmt.Errorf("failed to find registration: %w", result.Error)
	}

	return modelToRecord(&model), nil
}

// ListByDiscordID returns every attempt for a cmdr, oldest first
func (r *GormCmdrRegistrationRepository) ListByDiscordID(ctx context.Context, discordID int64) ([]*cmdr.RegistrationRecord, error) {
	var models []CmdrRegistrationModel
	result := r.db.WithContext(ctx).
		Where("discord_id = ?", discordID).
		Order("recorded_at ASC, id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", result.Error)
	}

	records := make([]*cmdr.RegistrationRecord, 0, len(models))
	for i := range models {
		records = append(records, modelToRecord(&models[i]))
	}
	return records, nil
}

func recordToModel(record *cmdr.RegistrationRecord) *CmdrRegistrationModel {
	return &CmdrRegistrationModel{
		ID:          record.ID,
		DiscordID:   record.DiscordID,
		DiscordName: record.DiscordName,
		SystemID:    record.SystemID,
		PowerID:     record.PowerID,
		Status:      string(record.Status),
		Error:       record.Error,
		RecordedAt:  record.RecordedAt,
	}
}

func modelToRecord(model *CmdrRegistrationModel) *cmdr.RegistrationRecord {
	return &cmdr.RegistrationRecord{
		ID:          model.ID,
		DiscordID:   model.DiscordID,
		DiscordName: model.DiscordName,
		SystemID:    model.SystemID,
		PowerID:     model.PowerID,
		Status:      cmdr.RegistrationStatus(model.Status),
		Error:       model.Error,
		RecordedAt:  model.RecordedAt,
	}
}
