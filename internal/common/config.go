package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/joseph-ayodele/paystubs-tracker/constants"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Server   ServerConfig   `yaml:"server"`
	Export   ExportConfig   `yaml:"export"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver           string        `yaml:"driver"` // sqlite | postgres
	DSN              string        `yaml:"dsn"`
	MaxConns         int32         `yaml:"max_conns"`
	MinConns         int32         `yaml:"min_conns"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time"`
	DialTimeout      time.Duration `yaml:"dial_timeout"`
	StatementTimeout time.Duration `yaml:"statement_timeout"`
}

// StorageConfig selects where split pages are written.
type StorageConfig struct {
	Backend         string `yaml:"backend"` // local | gcs | memory
	Root            string `yaml:"root"`
	Bucket          string `yaml:"bucket"`
	Prefix          string `yaml:"prefix"`
	CredentialsFile string `yaml:"credentials_file"`
}

// IngestConfig holds pipeline and inbox settings.
type IngestConfig struct {
	Delimiter      string        `yaml:"delimiter"`
	InboxDir       string        `yaml:"inbox_dir"`
	Debounce       time.Duration `yaml:"debounce"`
	QueueSize      int           `yaml:"queue_size"`
	ProcessTimeout time.Duration `yaml:"process_timeout"`
	SkipHidden     bool          `yaml:"skip_hidden"`
}

// ServerConfig holds daemon listener configuration
type ServerConfig struct {
	GRPCAddr       string `yaml:"grpc_addr"`
	MetricsAddr    string `yaml:"metrics_addr"`
	VerifySchedule string `yaml:"verify_schedule"`
}

// ExportConfig holds export formatting options.
type ExportConfig struct {
	Currency string `yaml:"currency"`
}

// LogConfig holds logger options.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

// Storage backends.
const (
	StorageLocal  = "local"
	StorageGCS    = "gcs"
	StorageMemory = "memory"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          DriverSQLite,
			DSN:             "file:paystubs.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
			MaxConns:        20,
			MinConns:        2,
			MaxConnLifetime: 30 * time.Minute,
			MaxConnIdleTime: 5 * time.Minute,
			DialTimeout:     3 * time.Second,
		},
		Storage: StorageConfig{
			Backend: StorageLocal,
			Root:    "./statements",
		},
		Ingest: IngestConfig{
			Delimiter:      constants.DefaultDelimiter,
			InboxDir:       "./inbox",
			Debounce:       500 * time.Millisecond,
			QueueSize:      64,
			ProcessTimeout: 5 * time.Minute,
			SkipHidden:     true,
		},
		Server: ServerConfig{
			GRPCAddr:       ":8080",
			MetricsAddr:    ":9090",
			VerifySchedule: "@hourly",
		},
		Export: ExportConfig{
			Currency: constants.DefaultCurrency,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from defaults, an optional YAML file named by
// PAYSTUBS_CONFIG, then environment variables (a .env file is read first if present).
// Environment variables win over the file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, NewAppError(CodeConfig, "load .env", err)
	}

	cfg := DefaultConfig()
	if path := os.Getenv("PAYSTUBS_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewAppError(CodeConfig, fmt.Sprintf("read config file %s", path), err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return NewAppError(CodeConfig, fmt.Sprintf("parse config file %s", path), err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Database.Driver = getEnv("DB_DRIVER", c.Database.Driver)
	c.Database.DSN = getEnv("DB_URL", c.Database.DSN)
	c.Database.MaxConns = getEnvAsInt32("DB_MAX_CONNS", c.Database.MaxConns)
	c.Database.MinConns = getEnvAsInt32("DB_MIN_CONNS", c.Database.MinConns)
	c.Database.MaxConnLifetime = getEnvAsDuration("DB_MAX_CONN_LIFETIME", c.Database.MaxConnLifetime)
	c.Database.MaxConnIdleTime = getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", c.Database.MaxConnIdleTime)
	c.Database.DialTimeout = getEnvAsDuration("DB_DIAL_TIMEOUT", c.Database.DialTimeout)
	c.Database.StatementTimeout = getEnvAsDuration("DB_STATEMENT_TIMEOUT", c.Database.StatementTimeout)

	c.Storage.Backend = getEnv("STORAGE_BACKEND", c.Storage.Backend)
	c.Storage.Root = getEnv("STORAGE_ROOT", c.Storage.Root)
	c.Storage.Bucket = getEnv("STORAGE_BUCKET", c.Storage.Bucket)
	c.Storage.Prefix = getEnv("STORAGE_PREFIX", c.Storage.Prefix)
	c.Storage.CredentialsFile = getEnv("GOOGLE_APPLICATION_CREDENTIALS", c.Storage.CredentialsFile)

	if v, ok := os.LookupEnv("INGEST_DELIMITER"); ok {
		c.Ingest.Delimiter = v
	}
	c.Ingest.InboxDir = getEnv("INBOX_DIR", c.Ingest.InboxDir)
	c.Ingest.Debounce = getEnvAsDuration("INBOX_DEBOUNCE", c.Ingest.Debounce)
	c.Ingest.QueueSize = getEnvAsInt("INGEST_QUEUE_SIZE", c.Ingest.QueueSize)
	c.Ingest.ProcessTimeout = getEnvAsDuration("INGEST_TIMEOUT", c.Ingest.ProcessTimeout)
	c.Ingest.SkipHidden = getEnvAsBool("INGEST_SKIP_HIDDEN", c.Ingest.SkipHidden)

	c.Server.GRPCAddr = getEnv("GRPC_ADDR", c.Server.GRPCAddr)
	c.Server.MetricsAddr = getEnv("METRICS_ADDR", c.Server.MetricsAddr)
	c.Server.VerifySchedule = getEnv("VERIFY_SCHEDULE", c.Server.VerifySchedule)

	c.Export.Currency = strings.ToUpper(getEnv("EXPORT_CURRENCY", c.Export.Currency))

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
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

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return NewAppError(CodeConfig, fmt.Sprintf("DB_DRIVER %q is not supported", c.Database.Driver), ErrInvalidInput)
	}
	if c.Database.DSN == "" {
		return NewAppError(CodeConfig, "DB_URL is required", ErrInvalidInput)
	}

	switch c.Storage.Backend {
	case StorageLocal:
		if c.Storage.Root == "" {
			return NewAppError(CodeConfig, "STORAGE_ROOT is required for local storage", ErrInvalidInput)
		}
	case StorageGCS:
		if c.Storage.Bucket == "" {
			return NewAppError(CodeConfig, "STORAGE_BUCKET is required for gcs storage", ErrInvalidInput)
		}
	case StorageMemory:
	default:
		return NewAppError(CodeConfig, fmt.Sprintf("STORAGE_BACKEND %q is not supported", c.Storage.Backend), ErrInvalidInput)
	}

	v := NewValidator().Field("EXPORT_CURRENCY", c.Export.Currency, CurrencyCode)
	if v.HasErrors() {
		return NewAppError(CodeConfig, v.ErrorMessage(), ErrInvalidInput)
	}
	return nil
}
