package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry SQLite 介质的键值表结构
type KVEntry struct {
	Key       string `gorm:"primaryKey;type:varchar(100)"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

// GormMedium 基于 GORM 的键值介质，保持"每个键一份 JSON 文档"的语义
type GormMedium struct {
	db *gorm.DB
}

func NewGormMedium(db *gorm.DB) (*GormMedium, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	return &GormMedium{db: db}, nil
}

func (g *GormMedium) GetItem(key string) (string, bool, error) {
	var entry KVEntry
	err := g.db.Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (g *GormMedium) SetItem(key, value string) error {
	entry := KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (g *GormMedium) RemoveItem(key string) error {
	return g.db.Where("key = ?", key).Delete(&KVEntry{}).Error
}
