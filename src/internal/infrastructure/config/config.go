package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ===========================
// 環境配置
// ===========================

// 資料庫驅動常量
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config 服務的環境配置
//
// 配置來源：環境變數，本地開發可放 .env 檔
// （.env 只補缺，不覆蓋已設定的環境變數）
type Config struct {
	// 服務
	Env  string // development / production
	Port string

	// 資料庫
	DBDriver   string // sqlite（本地/測試）或 mysql（正式環境）
	SQLitePath string // DBDriver = sqlite 時使用
	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string
}

// Load 載入環境配置
//
// 實作邏輯：
// 1. 嘗試讀取 .env（只補上未設定的變數，不覆蓋）
// 2. 讀取環境變數，未設定的套用預設值
// 3. 驗證所選資料庫驅動需要的變數齊全
func Load() (*Config, error) {
	// .env 只補缺，已設定的環境變數優先
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	cfg := &Config{
		Env:        getEnv("ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		DBDriver:   getEnv("DB_DRIVER", DriverSQLite),
		SQLitePath: getEnv("SQLITE_PATH", "reward_engine.db"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     os.Getenv("DB_USER"),
		DBPass:     os.Getenv("DB_PASS"),
		DBName:     os.Getenv("DB_NAME"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate 驗證配置完整性
func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverSQLite:
		return nil
	case DriverMySQL:
		required := map[string]string{
			"DB_HOST": c.DBHost,
			"DB_USER": c.DBUser,
			"DB_PASS": c.DBPass,
			"DB_NAME": c.DBName,
		}
		for name, value := range required {
			if value == "" {
				return fmt.Errorf("required environment variable %s is not set", name)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (expected %s or %s)", c.DBDriver, DriverSQLite, DriverMySQL)
	}
}

// MySQLDSN 組合 MySQL 連線字串
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName,
	)
}

// IsDevelopment 是否為開發環境
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// getEnv 讀取環境變數，未設定時返回預設值
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
