package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "WAKESTATE"

const (
	BackendDuckDB = "duckdb"
	BackendBadger = "badger"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Archive ArchiveConfig `mapstructure:"archive"`
	Server  ServerConfig  `mapstructure:"server"`
}

type StorageConfig struct {
	Backend string       `mapstructure:"backend" validate:"oneof=duckdb badger"`
	DuckDB  DuckDBConfig `mapstructure:"duckdb"`
	Badger  BadgerConfig `mapstructure:"badger"`
	// LegacyPath is an INI file consulted when the primary backend misses.
	LegacyPath string `mapstructure:"legacy_path"`
}

type DuckDBConfig struct {
	Path    string `mapstructure:"path" validate:"required"`
	Threads int    `mapstructure:"threads" validate:"min=0"`
}

type BadgerConfig struct {
	Path       string `mapstructure:"path" validate:"required_without=InMemory"`
	InMemory   bool   `mapstructure:"in_memory"`
	SyncWrites bool   `mapstructure:"sync_writes"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
}

// ArchiveConfig points at the S3 bucket exports are copied to. An empty
// bucket disables archiving.
type ArchiveConfig struct {
	Bucket   string        `mapstructure:"bucket"`
	Prefix   string        `mapstructure:"prefix"`
	Region   string        `mapstructure:"region"`
	Endpoint string        `mapstructure:"endpoint"`
	Interval time.Duration `mapstructure:"interval" validate:"min=0"`
}

func (a ArchiveConfig) Enabled() bool {
	return a.Bucket != ""
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendDuckDB)
	v.SetDefault("storage.duckdb.path", "wakestate.db")
	v.SetDefault("storage.duckdb.threads", 4)
	v.SetDefault("storage.badger.path", "wakestate-badger")
	v.SetDefault("storage.badger.in_memory", false)
	v.SetDefault("storage.badger.sync_writes", true)
	v.SetDefault("storage.legacy_path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("archive.bucket", "")
	v.SetDefault("archive.prefix", "wakestate/")
	v.SetDefault("archive.region", "")
	v.SetDefault("archive.endpoint", "")
	v.SetDefault("archive.interval", "0s")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
}

// LoadConfig reads the YAML file at path, if any, over the defaults and
// applies WAKESTATE_* environment overrides (storage.duckdb.path becomes
// WAKESTATE_STORAGE_DUCKDB_PATH).
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse wakestate config: %w", err)
	}
	cfg.Storage.Backend = strings.ToLower(cfg.Storage.Backend)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid wakestate config: %w", err)
	}
	return &cfg, nil
}

// NewLogger builds the process logger at the configured level.
func (c *Config) NewLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
