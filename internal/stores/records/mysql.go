package records

import (
	"context"
	"fmt"

	"github.com/ethanbaker/stringanalyzer/pkg/analysis"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Store persists records in MySQL using GORM
type Store struct {
	db *gorm.DB
}

// NewStore creates a new record store with a MySQL connection
func NewStore(databaseURL string) (*Store, error) {
	return newStore(mysql.Open(databaseURL), true)
}

// newStore opens a store on any dialector, optionally migrating tables
func newStore(dialector gorm.Dialector, migrate bool) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}

	if migrate {
		if err := store.migrate(); err != nil {
			return nil, fmt.Errorf("failed to migrate tables: %w", err)
		}
	}

	return store, nil
}

// migrate creates or updates the required database tables
func (s *Store) migrate() error {
	return s.db.AutoMigrate(&RecordModel{})
}

// Load returns every stored record in insertion order
func (s *Store) Load(ctx context.Context) ([]analysis.TextRecord, error) {
	var models []RecordModel
	if err := s.db.WithContext(ctx).Order("position").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	records := make([]analysis.TextRecord, len(models))
	for i, model := range models {
		records[i] = model.toRecord()
	}

	return records, nil
}

// Save replaces the stored collection in a single transaction
func (s *Store) Save(ctx context.Context, records []analysis.TextRecord) error {
	models := make([]RecordModel, len(records))
	for i, record := range records {
		models[i] = toModel(record, i)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&RecordModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear records: %w", err)
		}

		if len(models) == 0 {
			return nil
		}

		if err := tx.Create(&models).Error; err != nil {
			return fmt.Errorf("failed to insert records: %w", err)
		}

		return nil
	})
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}
