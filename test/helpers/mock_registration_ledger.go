package helpers

import (
	"context"
	"fmt"
	"sync"

	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
)

var _ cmdr.RegistrationLedger = (*MockRegistrationLedger)(nil)

// MockRegistrationLedger is an in-memory RegistrationLedger with error injection
type MockRegistrationLedger struct {
	mu        sync.Mutex
	records   []*cmdr.RegistrationRecord
	recordErr error
}

// NewMockRegistrationLedger creates an empty ledger
func NewMockRegistrationLedger() *MockRegistrationLedger {
	return &MockRegistrationLedger{}
}

// SetRecordError makes Record fail with err
func (m *MockRegistrationLedger) SetRecordError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordErr = err
}

// Records returns everything recorded so far
func (m *MockRegistrationLedger) Records() []*cmdr.RegistrationRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*cmdr.RegistrationRecord(nil), m.records...)
}

// Record implements RegistrationLedger
func (m *MockRegistrationLedger) Record(ctx context.Context, record *cmdr.RegistrationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recordErr != nil {
		return m.recordErr
	}

	record.ID = len(m.records) + 1
	m.records = append(m.records, record)
	return nil
}

// FindLatestByDiscordID implements RegistrationLedger
func (m *MockRegistrationLedger) FindLatestByDiscordID(ctx context.Context, discordID int64) (*cmdr.RegistrationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].DiscordID == discordID {
			return m.records[i], nil
		}
	}
	return nil, fmt.Errorf("cmdr %d: %w", discordID, cmdr.ErrNoRegistration)
}

// ListByDiscordID implements RegistrationLedger
func (m *MockRegistrationLedger) ListByDiscordID(ctx context.Context, discordID int64) ([]*cmdr.RegistrationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*cmdr.RegistrationRecord
	for _, record := range m.records {
		if record.DiscordID == discordID {
			result = append(result, record)
		}
	}
	return result, nil
}
