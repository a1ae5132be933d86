// interfaces.go: this code defines the interface for the database operations
package datastore

import (
	"fmt"
	"time"

	"github.com/claraeyoon/phasenet-go/internal/conf"
	"github.com/claraeyoon/phasenet-go/internal/errors"
	"gorm.io/gorm"
)

// Interface abstracts the underlying database implementation and defines the
// operations the application performs on stored picks.
type Interface interface {
	Open() error
	Save(picks []Pick) error
	GetAllPicks() ([]Pick, error)
	PicksByTrace(traceID string) ([]Pick, error)
	PicksInRange(from, to time.Time) ([]Pick, error)
	Close() error
}

// DataStore implements Interface using a GORM database.
type DataStore struct {
	DB *gorm.DB
}

// New creates a datastore instance based on the output configuration, or nil
// when no database output is enabled.
func New(settings *conf.Settings) Interface {
	if settings.Output.SQLite.Enabled {
		return &SQLiteStore{Settings: settings}
	}
	return nil
}

// Save stores a batch of picks in a single transaction.
func (ds *DataStore) Save(picks []Pick) error {
	if len(picks) == 0 {
		return nil
	}
	if err := ds.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&picks).Error
	}); err != nil {
		return errors.New(fmt.Errorf("saving %d picks: %w", len(picks), err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("count", len(picks)).
			Build()
	}
	return nil
}

// GetAllPicks returns every stored pick in (trace, time, phase) order.
func (ds *DataStore) GetAllPicks() ([]Pick, error) {
	var picks []Pick
	if err := ds.DB.Order("trace_id, time, phase").Find(&picks).Error; err != nil {
		return nil, errors.New(fmt.Errorf("loading picks: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return picks, nil
}

// PicksByTrace returns the stored picks for one trace identity in time order.
func (ds *DataStore) PicksByTrace(traceID string) ([]Pick, error) {
	var picks []Pick
	if err := ds.DB.Where("trace_id = ?", traceID).Order("time, phase").Find(&picks).Error; err != nil {
		return nil, errors.New(fmt.Errorf("loading picks for %s: %w", traceID, err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("trace_id", traceID).
			Build()
	}
	return picks, nil
}

// PicksInRange returns the picks whose onset lies in [from, to).
func (ds *DataStore) PicksInRange(from, to time.Time) ([]Pick, error) {
	var picks []Pick
	if err := ds.DB.Where("time >= ? AND time < ?", from, to).
		Order("trace_id, time, phase").Find(&picks).Error; err != nil {
		return nil, errors.New(fmt.Errorf("loading picks in range: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return picks, nil
}

// Close closes the underlying database connection.
func (ds *DataStore) Close() error {
	if ds.DB == nil {
		return nil
	}
	sqlDB, err := ds.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
