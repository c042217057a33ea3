package helpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/andrescamacho/traikoa-go/internal/adapters/api"
	"github.com/andrescamacho/traikoa-go/internal/adapters/persistence"
)

// TestRepositories wires the real repositories over a MockAPIClient and a test database
type TestRepositories struct {
	DB             *gorm.DB
	API            *MockAPIClient
	Systems        *api.SystemRepository
	ControlSystems *api.ControlSystemRepository
	Powers         *api.PowerRepository
	Cmdrs          *api.CmdrRepository
	Ledger         *persistence.GormCmdrRegistrationRepository
}

// NewTestRepositories creates repositories sharing one mock API and one in-memory database
func NewTestRepositories(t *testing.T) *TestRepositories {
	t.Helper()

	db := NewTestDB(t)
	mock := NewMockAPIClient()
	systems := api.NewSystemRepository(mock)

	return &TestRepositories{
		DB:             db,
		API:            mock,
		Systems:        systems,
		ControlSystems: api.NewControlSystemRepository(mock, systems),
		Powers:         api.NewPowerRepository(mock),
		Cmdrs:          api.NewCmdrRepository(mock),
		Ledger:         persistence.NewGormCmdrRegistrationRepository(db),
	}
}
