package database

import (
	"github.com/traini8/backend/model"
)

// ListFilters holds the optional exact-match filters for listing training
// centers. An empty string means the filter is not applied.
type ListFilters struct {
	City    string
	State   string
	Pincode string
}

// Storage is the persistence abstraction handlers are built against.
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck() error

	// GORM DB access
	GetDB() interface{} // Returns *gorm.DB for GORMStore

	// Training center methods
	FindCenterByCode(code string) (*model.TrainingCenter, error)
	CreateCenter(center *model.TrainingCenter) error
	ListCenters(filters ListFilters) ([]model.TrainingCenter, error)
}
