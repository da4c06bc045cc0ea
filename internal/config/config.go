package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const defaultDiseaseAPIBaseURL = "https://disease.sh/v3/covid-19"

type Config struct {
	Server     ServerConfig
	DiseaseAPI DiseaseAPIConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Archive    ArchiveConfig
	Log        LogConfig
	Worker     WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string

	// CORSOrigins - список через запятую, пусто - любой источник
	CORSOrigins string
}

type DiseaseAPIConfig struct {
	BaseURL string
	// RequestTimeout в секундах, 0 - без таймаута
	RequestTimeout int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int

	PoolSize    int
	DialTimeout time.Duration
}

type CacheConfig struct {
	Enabled       bool
	SummaryTTL    time.Duration
	HistoricalTTL time.Duration
}

type ArchiveConfig struct {
	Enabled bool
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled         bool
	RefreshInterval time.Duration
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - то же, что Load, но с явным путём к файлу конфигурации
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DISEASE_API_BASE_URL", defaultDiseaseAPIBaseURL)
	v.SetDefault("DISEASE_API_TIMEOUT", 0)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_DIAL_TIMEOUT", 5)
	v.SetDefault("CACHE_SUMMARY_TTL", 600)
	v.SetDefault("CACHE_HISTORICAL_TTL", 3600)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("WORKER_REFRESH_INTERVAL", 900)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),

			CORSOrigins: v.GetString("API_CORS_ORIGINS"),
		},
		DiseaseAPI: DiseaseAPIConfig{
			BaseURL:        v.GetString("DISEASE_API_BASE_URL"),
			RequestTimeout: v.GetInt("DISEASE_API_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),

			PoolSize:    v.GetInt("REDIS_POOL_SIZE"),
			DialTimeout: time.Duration(v.GetInt("REDIS_DIAL_TIMEOUT")) * time.Second,
		},
		Cache: CacheConfig{
			Enabled:       v.GetBool("CACHE_ENABLED"),
			SummaryTTL:    time.Duration(v.GetInt("CACHE_SUMMARY_TTL")) * time.Second,
			HistoricalTTL: time.Duration(v.GetInt("CACHE_HISTORICAL_TTL")) * time.Second,
		},
		Archive: ArchiveConfig{
			Enabled: v.GetBool("ARCHIVE_ENABLED"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:         v.GetBool("WORKER_ENABLED"),
			RefreshInterval: time.Duration(v.GetInt("WORKER_REFRESH_INTERVAL")) * time.Second,
		},
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

// DSN - строка подключения в формате key=value для pgx
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
