// Package session keeps the bearer token and user profile between runs and
// signs outbound requests with it.
package session

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"moneymanager/internal/models"
)

// ErrNotFound is returned by Store.Get for a key that was never stored.
var ErrNotFound = errors.New("session key not found")

// Store is durable key/value storage.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// gormStore keeps settings rows in the local database.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore returns a Store backed by the settings table.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(ctx context.Context, key string) (string, error) {
	var row models.Setting
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", key, err)
	}
	return row.Value, nil
}

func (s *gormStore) Put(ctx context.Context, key, value string) error {
	row := models.Setting{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *gormStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Where("key IN ?", keys).Delete(&models.Setting{}).Error; err != nil {
		return fmt.Errorf("deleting session keys: %w", err)
	}
	return nil
}
