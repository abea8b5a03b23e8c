package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/plotkit/plotkit/core"
)

// configRecord is the GORM model one stored configuration maps to.
type configRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:128"`
	YAML      string
	UpdatedAt time.Time
}

// SQLStorage implements core.ConfigStorage on a SQL database via GORM, for
// teams that keep their presets in shared infrastructure.
type SQLStorage struct {
	db *gorm.DB
}

// FromSQL opens the database behind the dialector and runs migrations.
func FromSQL(dialect gorm.Dialector, opts ...gorm.Option) (*SQLStorage, error) {
	db, err := gorm.Open(dialect, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&configRecord{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLStorage{db: db}, nil
}

// SaveConfig stores the configuration under name, replacing any previous
// version.
func (s *SQLStorage) SaveConfig(name string, cfg *core.PlotConfig) error {
	content, err := yamlString(cfg)
	if err != nil {
		return err
	}

	var existing configRecord
	result := s.db.Where("name = ?", name).First(&existing)
	switch {
	case errors.Is(result.Error, gorm.ErrRecordNotFound):
		result = s.db.Create(&configRecord{Name: name, YAML: content})
	case result.Error != nil:
		return fmt.Errorf("failed to look up config %q: %w", name, result.Error)
	default:
		existing.YAML = content
		result = s.db.Save(&existing)
	}
	if result.Error != nil {
		return fmt.Errorf("failed to store config %q: %w", name, result.Error)
	}
	return nil
}

// LoadConfig retrieves the named configuration.
func (s *SQLStorage) LoadConfig(name string) (*core.PlotConfig, error) {
	var rec configRecord
	result := s.db.Where("name = ?", name).First(&rec)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: config %q", core.ErrNotFound, name)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", name, result.Error)
	}
	return decodeStrict([]byte(rec.YAML))
}

// ListConfigs returns the stored configuration names in alphabetical order.
func (s *SQLStorage) ListConfigs() ([]string, error) {
	var recs []configRecord
	result := s.db.Order("name").Find(&recs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list configs: %w", result.Error)
	}
	return lo.Map(recs, func(r configRecord, _ int) string { return r.Name }), nil
}

// DeleteConfig removes the named configuration.
func (s *SQLStorage) DeleteConfig(name string) error {
	result := s.db.Where("name = ?", name).Delete(&configRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete config %q: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: config %q", core.ErrNotFound, name)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
