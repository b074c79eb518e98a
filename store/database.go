package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// RecordEntry represents a row in the database
type RecordEntry struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

func (RecordEntry) TableName() string { return "slick_records" }

type DatabaseStore struct {
	db *gorm.DB
}

var _ Store = (*DatabaseStore)(nil)

func NewDatabaseStore(dsn string) (*DatabaseStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-create table if needed
	if err := db.AutoMigrate(&RecordEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &DatabaseStore{db: db}, nil
}

// Get retrieves a value from database
func (ds *DatabaseStore) Get(key string) (string, error) {
	var entry RecordEntry

	result := ds.db.Where("key = ?", key).First(&entry)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if result.Error != nil {
		return "", result.Error
	}

	return entry.Value, nil
}

// Set stores a value in database
func (ds *DatabaseStore) Set(key, value string) error {
	entry := RecordEntry{
		Key:   key,
		Value: value,
	}

	// Upsert (insert or update)
	return ds.db.Save(&entry).Error
}

// Delete removes a key from database
func (ds *DatabaseStore) Delete(key string) error {
	return ds.db.Delete(&RecordEntry{}, "key = ?", key).Error
}

// Clear removes every row of the records table.
func (ds *DatabaseStore) Clear() error {
	return ds.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&RecordEntry{}).Error
}

func (ds *DatabaseStore) Keys() ([]string, error) {
	var keys []string
	if err := ds.db.Model(&RecordEntry{}).Order("key").Pluck("key", &keys).Error; err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}

// Close closes the database connection
func (ds *DatabaseStore) Close() error {
	sqlDB, err := ds.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
