// internal/config/config.go
package config

import (
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageBackendS3    = "s3"
	StorageBackendMinio = "minio"
)

type Config struct {
	Log          LogConfig
	AWS          AWSConfig
	Storage      StorageConfig
	CloudFront   EndpointConfig
	CodePipeline EndpointConfig
	History      HistoryConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type AWSConfig struct {
	Region string
}

type StorageConfig struct {
	Backend        string
	Endpoint       string
	AccessKey      string
	SecretKey      string
	UseSSL         bool
	ForcePathStyle bool
	ListPageSize   int
}

type EndpointConfig struct {
	Endpoint string
}

type HistoryConfig struct {
	Enabled       bool
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	TTLSeconds    int
}

var (
	once     sync.Once
	instance *Config
)

// Load reads the configuration once per process; later calls return the same value.
func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()
		instance = Read()
	})

	return instance
}

// Read builds a Config from the current environment without caching it.
func Read() *Config {
	v := viper.New()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("STORAGE_BACKEND", StorageBackendS3)
	v.SetDefault("STORAGE_ENDPOINT", "")
	v.SetDefault("STORAGE_ACCESS_KEY", "")
	v.SetDefault("STORAGE_SECRET_KEY", "")
	v.SetDefault("STORAGE_USE_SSL", true)
	v.SetDefault("STORAGE_FORCE_PATH_STYLE", false)
	v.SetDefault("STORAGE_LIST_PAGE_SIZE", 1000)
	v.SetDefault("CLOUDFRONT_ENDPOINT", "")
	v.SetDefault("CODEPIPELINE_ENDPOINT", "")
	v.SetDefault("HISTORY_ENABLED", false)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_HOST", "127.0.0.1")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("HISTORY_TTL_SECONDS", 7*24*60*60)

	// Read from environment variables
	v.AutomaticEnv()

	pageSize := v.GetInt("STORAGE_LIST_PAGE_SIZE")
	if pageSize <= 0 || pageSize > 1000 {
		pageSize = 1000
	}

	return &Config{
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		AWS: AWSConfig{
			Region: v.GetString("AWS_REGION"),
		},
		Storage: StorageConfig{
			Backend:        strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND"))),
			Endpoint:       v.GetString("STORAGE_ENDPOINT"),
			AccessKey:      v.GetString("STORAGE_ACCESS_KEY"),
			SecretKey:      v.GetString("STORAGE_SECRET_KEY"),
			UseSSL:         v.GetBool("STORAGE_USE_SSL"),
			ForcePathStyle: v.GetBool("STORAGE_FORCE_PATH_STYLE"),
			ListPageSize:   pageSize,
		},
		CloudFront: EndpointConfig{
			Endpoint: v.GetString("CLOUDFRONT_ENDPOINT"),
		},
		CodePipeline: EndpointConfig{
			Endpoint: v.GetString("CODEPIPELINE_ENDPOINT"),
		},
		History: HistoryConfig{
			Enabled:       v.GetBool("HISTORY_ENABLED"),
			RedisURL:      v.GetString("REDIS_URL"),
			RedisHost:     v.GetString("REDIS_HOST"),
			RedisPort:     v.GetString("REDIS_PORT"),
			RedisPassword: v.GetString("REDIS_PASSWORD"),
			RedisDB:       v.GetInt("REDIS_DB"),
			TTLSeconds:    v.GetInt("HISTORY_TTL_SECONDS"),
		},
	}
}
