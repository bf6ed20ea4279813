package common

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Library  LibraryConfig
	Database DatabaseConfig
	Server   ServerConfig
}

// LibraryConfig holds library layout configuration.
type LibraryConfig struct {
	Root string
}

// DatabaseConfig holds database-related configuration. DSN empty means the
// local sqlite database under the library root.
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	GRPCAddr string
}

// LibraryPaths is the on-disk layout of one library, derived from the root
// and passed explicitly to every component that touches disk.
type LibraryPaths struct {
	Root         string
	LibraryDir   string // canonical markdown text
	OriginalsDir string // copied source files
	ImagesDir    string // per-document image directories
	DBPath       string // local sqlite database
}

// NewLibraryPaths derives the standard layout under root.
func NewLibraryPaths(root string) LibraryPaths {
	return LibraryPaths{
		Root:         root,
		LibraryDir:   filepath.Join(root, "library"),
		OriginalsDir: filepath.Join(root, "originals"),
		ImagesDir:    filepath.Join(root, "images"),
		DBPath:       filepath.Join(root, "candlekeep.db"),
	}
}

// ImageDir returns the image directory for one document.
func (p LibraryPaths) ImageDir(documentID int) string {
	return filepath.Join(p.ImagesDir, strconv.Itoa(documentID))
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Library: LibraryConfig{
			Root: getEnv("CANDLEKEEP_HOME", defaultRoot()),
		},
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
	}
}

func defaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".candlekeep"
	}
	return filepath.Join(home, ".candlekeep")
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Library.Root == "" {
		return NewAppError("CONFIG_ERROR", "CANDLEKEEP_HOME is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
