package storage

import (
	"context"
	"errors"
	"nextlevel_lms/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DatabaseMedium keeps values as rows of the kv_items table.
type DatabaseMedium struct {
	DB *gorm.DB
}

func NewDatabaseMedium(db *gorm.DB) *DatabaseMedium {
	return &DatabaseMedium{DB: db}
}

func (m *DatabaseMedium) Driver() string { return "database" }

func (m *DatabaseMedium) GetItem(ctx context.Context, key string) (string, bool, error) {
	var item model.KVItem
	err := m.DB.WithContext(ctx).Where(&model.KVItem{Key: key}).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return item.Value, true, nil
}

func (m *DatabaseMedium) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	item := model.KVItem{Key: key, Value: value, UpdatedAt: time.Now()}
	return m.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
}

func (m *DatabaseMedium) RemoveItem(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return m.DB.WithContext(ctx).Delete(&model.KVItem{Key: key}).Error
}
