package persistence

import (
	"time"
)

// CmdrRegistrationModel represents the cmdr_registrations table
type CmdrRegistrationModel struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement"`
	DiscordID   int64     `gorm:"column:discord_id;not null;index:idx_cmdr_registrations_discord"`
	DiscordName string    `gorm:"column:discord_name;not null"`
	SystemID    *int      `gorm:"column:system_id"`
	PowerID     *int      `gorm:"column:power_id"`
	Status      string    `gorm:"column:status;not null"` // registered or failed
	Error       string    `gorm:"column:error;type:text"`
	RecordedAt  time.Time `gorm:"column:recorded_at;not null;index:idx_cmdr_registrations_discord"`
}

func (CmdrRegistrationModel) TableName() string {
	return "cmdr_registrations"
}
