package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds every setting the service reads from the environment.
type Config struct {
	Port           string
	Env            string
	AllowedOrigins string

	Storage         string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	RedisURI        string
	RedisPassword   string
	RedisDB         int
	SQLitePath      string

	// RejectBlankTitle makes whitespace-only titles invalid on create.
	RejectBlankTitle  bool
	RepositoryTimeout time.Duration
}

// Load โหลดค่า Environment Variables จากไฟล์ .env (ถ้ามี) แล้วอ่านค่าจาก environment.
// The returned bool reports whether a .env file was loaded.
func Load(files ...string) (Config, bool, error) {
	loaded := godotenv.Load(files...) == nil

	cfg := Config{
		Port:            getEnv("APP_PORT", "8888"),
		Env:             getEnv("APP_ENV", EnvDevelopment),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "*"),
		Storage:         getEnv("STORAGE", StorageMemory),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDatabase:   getEnv("MONGO_DB", "FlashcardDB"),
		MongoCollection: getEnv("MONGO_COLLECTION", "questionnaires"),
		RedisURI:        os.Getenv("REDIS_URI"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		SQLitePath:      getEnv("SQLITE_PATH", "flashcard.db"),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return cfg, loaded, fmt.Errorf("REDIS_DB: %w", err)
	}
	if cfg.RejectBlankTitle, err = strconv.ParseBool(getEnv("REJECT_BLANK_TITLE", "false")); err != nil {
		return cfg, loaded, fmt.Errorf("REJECT_BLANK_TITLE: %w", err)
	}
	if cfg.RepositoryTimeout, err = time.ParseDuration(getEnv("REPOSITORY_TIMEOUT", "5s")); err != nil {
		return cfg, loaded, fmt.Errorf("REPOSITORY_TIMEOUT: %w", err)
	}

	return cfg, loaded, cfg.Validate()
}

// Validate checks that the selected storage backend has what it needs.
func (c Config) Validate() error {
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		return fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Env)
	}
	if c.RepositoryTimeout <= 0 {
		return errors.New("REPOSITORY_TIMEOUT must be positive")
	}

	switch c.Storage {
	case StorageMemory:
	case StorageMongo:
		if c.MongoURI == "" {
			return errors.New("MONGO_URI must be set when STORAGE=mongo")
		}
	case StorageRedis:
		if c.RedisURI == "" {
			return errors.New("REDIS_URI must be set when STORAGE=redis")
		}
	case StorageSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH must not be empty when STORAGE=sqlite")
		}
	default:
		return fmt.Errorf("unknown STORAGE %q", c.Storage)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
