package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"FocusGo/storage"
)

var (
	DB    *gorm.DB
	Store *storage.Store
)

// InitStorage 按配置的驱动初始化存储介质与类型化存储层
func InitStorage(conf Config) error {
	var medium storage.Medium
	var err error

	switch conf.StorageDriver {
	case StorageDriverMemory:
		medium = storage.NewMemoryMedium()
	case StorageDriverSQLite:
		DB, err = openSQLite(conf.DBPath)
		if err != nil {
			return err
		}
		medium, err = storage.NewGormMedium(DB)
		if err != nil {
			return fmt.Errorf("初始化键值表失败: %w", err)
		}
	case StorageDriverFile:
		medium, err = storage.NewFileMedium(conf.DataDir)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("未知的存储驱动: %s", conf.StorageDriver)
	}

	Store = storage.NewStore(medium, Logger)
	Logger.Infow("存储初始化完成", "driver", conf.StorageDriver)
	return nil
}

func openSQLite(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("创建数据库目录失败: %w", err)
		}
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: dbLogger})
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}
	return db, nil
}
