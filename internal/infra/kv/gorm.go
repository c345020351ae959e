// Package kv provides the persistent key/value backends behind adapter.Store.
package kv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// Ensure GormStore implements adapter.Store.
var _ adapter.Store = (*GormStore)(nil)

// entry is the single-table document layout: one row per key.
type entry struct {
	Key   string `gorm:"primaryKey;column:key;size:64"`
	Value string `gorm:"column:value"`
}

func (entry) TableName() string {
	return "kv_entries"
}

// GormStore implements adapter.Store on a relational database through GORM.
// SQLite (pure Go driver) backs the default local setup; Postgres is used
// when a DATABASE_URL is configured.
type GormStore struct {
	db *gorm.DB
}

// NewSQLite opens (creating if needed) a SQLite-backed store at path.
func NewSQLite(path string) (*GormStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	return open(sqlite.Open(path))
}

// NewPostgres opens a Postgres-backed store at the given connection URL.
func NewPostgres(url string) (*GormStore, error) {
	return open(postgres.Open(url))
}

func open(dialector gorm.Dialector) (*GormStore, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("failed to run auto-migration: %w", err)
	}

	slog.Info("Key/value store ready", "dialect", db.Dialector.Name())
	return &GormStore{db: db}, nil
}

// Get returns the value stored under key, or nil when the key is absent.
func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var e entry
	result := s.db.WithContext(ctx).Where("key = ?", key).First(&e)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return []byte(e.Value), nil
}

// Set stores value under key, replacing any previous value.
func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&entry{Key: key, Value: string(value)})
	return result.Error
}

// Remove deletes the key; removing an absent key is a no-op.
func (s *GormStore) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&entry{}).Error
}

// HealthCheck reports whether the underlying database answers a ping.
func (s *GormStore) HealthCheck() bool {
	sqlDB, err := s.db.DB()
	if err != nil {
		slog.Error("Failed to get sql.DB for health check", "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		slog.Error("Store health check failed", "error", err)
		return false
	}
	return true
}

// Close closes the database connection.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	return sqlDB.Close()
}
