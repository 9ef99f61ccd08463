package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration,
// populated from environment variables.
type Config struct {
	App     AppConfig
	Mongo   MongoConfig
	Storage StorageConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type MongoConfig struct {
	URI        string // mongodb://127.0.0.1:27017
	Database   string // superheroes
	Collection string // superheroes
	TimeoutSec int    // connect/ping timeout
}

// StorageMode selects the image backend at startup.
const (
	StorageModeLocal = "local"
	StorageModeMinIO = "minio"
)

type StorageConfig struct {
	Mode string // local or minio

	// Local backend
	LocalDir  string // directory uploads are written to
	PublicURL string // external base URL the local files are served from, "" for root-relative

	// MinIO backend
	MinIO MinIOConfig
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string // object key prefix inside the bucket
	UseSSL    bool
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Superhero API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Mongo: MongoConfig{
			URI:        getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
			Database:   getEnv("MONGO_DB", "superheroes"),
			Collection: getEnv("MONGO_COLLECTION", "superheroes"),
			TimeoutSec: getEnvInt("MONGO_TIMEOUT_SEC", 10),
		},
		Storage: StorageConfig{
			Mode:      getEnv("STORAGE_MODE", StorageModeLocal),
			LocalDir:  getEnv("UPLOAD_DIR", "./uploads"),
			PublicURL: getEnv("UPLOAD_PUBLIC_URL", ""),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("MINIO_BUCKET", "superheroes"),
				Prefix:    getEnv("MINIO_PREFIX", "superheroes/"),
				UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded config for mistakes that would only
// surface later as confusing runtime failures.
func (c *Config) Validate() error {
	if c.Storage.Mode != StorageModeLocal && c.Storage.Mode != StorageModeMinIO {
		return fmt.Errorf("STORAGE_MODE must be %q or %q, got %q",
			StorageModeLocal, StorageModeMinIO, c.Storage.Mode)
	}

	if c.App.Environment == "production" {
		if os.Getenv("MONGO_URI") == "" {
			return fmt.Errorf("MONGO_URI must be set in production")
		}
		if c.Storage.Mode == StorageModeMinIO && os.Getenv("MINIO_SECRET_KEY") == "" {
			return fmt.Errorf("MINIO_SECRET_KEY must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
