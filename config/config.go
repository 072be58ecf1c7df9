package config

import (
	"github.com/spf13/viper"
)

// 存储驱动
const (
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
	StorageDriverMemory = "memory"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// 存储配置
	StorageDriver string `mapstructure:"STORAGE_DRIVER"` // file / sqlite / memory
	DataDir       string `mapstructure:"DATA_DIR"`       // file 驱动的数据目录
	DBPath        string `mapstructure:"DB_PATH"`        // sqlite 驱动的数据库文件

	// 内部接口认证（浏览器扩展上报用）
	InternalAuthToken string `mapstructure:"INTERNAL_AUTH_TOKEN"`

	// 提醒配置
	ReminderIntervalSeconds  int `mapstructure:"REMINDER_INTERVAL_SECONDS"`
	ReminderLookaheadMinutes int `mapstructure:"REMINDER_LOOKAHEAD_MINUTES"`
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8790")
	viper.SetDefault("STORAGE_DRIVER", StorageDriverFile)
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("DB_PATH", "data/focusgo.db")
	viper.SetDefault("REMINDER_INTERVAL_SECONDS", 60)
	viper.SetDefault("REMINDER_LOOKAHEAD_MINUTES", 15)

	err = viper.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
