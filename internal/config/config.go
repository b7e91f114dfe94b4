// Package config provides YAML + environment configuration for the
// awareness classifier service.
package config

import "time"

// Default configuration values.
const (
	defaultServiceName     = "awareness-classifier"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8080
	defaultBatchSize       = 100
	defaultPollInterval    = 30 * time.Second
	defaultStoreWriteRPS   = 50
	defaultDBHost          = "localhost"
	defaultDBPort          = 5432
	defaultDBUser          = "postgres"
	defaultDBName          = "awareness"
	defaultDBSSLMode       = "disable"
	defaultDBMaxConns      = 25
	defaultDBMaxIdleConns  = 5
	defaultConnMaxLifetime = 5 * time.Minute
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultLanguage        = "dutch"
)

// Config holds all configuration for the awareness classifier service.
type Config struct {
	Service        ServiceConfig        `yaml:"service"`
	Database       DatabaseConfig       `yaml:"database"`
	Logging        LoggingConfig        `yaml:"logging"`
	Classification ClassificationConfig `yaml:"classification"`
	Processor      ProcessorConfig      `yaml:"processor"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"CLASSIFIER_PORT" yaml:"port"`
	Debug   bool   `env:"APP_DEBUG"       yaml:"debug"`
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	Host            string        `env:"POSTGRES_HOST"     yaml:"host"`
	Port            int           `env:"POSTGRES_PORT"     yaml:"port"`
	User            string        `env:"POSTGRES_USER"     yaml:"user"`
	Password        string        `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database        string        `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode         string        `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// ClassificationConfig holds classification settings.
type ClassificationConfig struct {
	// Language selects the stemmer used by the text normalizer.
	// Supported: "dutch" (default), "english".
	Language string `env:"CLASSIFIER_LANGUAGE" yaml:"language"`
}

// ProcessorConfig holds the background content processor settings.
type ProcessorConfig struct {
	Enabled       bool          `env:"PROCESSOR_ENABLED" yaml:"enabled"`
	BatchSize     int           `yaml:"batch_size"`
	PollInterval  time.Duration `yaml:"poll_interval"`
	StoreWriteRPS int           `yaml:"store_write_rps"`
}

// SetDefaults applies default values to unset fields.
func (c *Config) SetDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = defaultServiceName
	}
	if c.Service.Version == "" {
		c.Service.Version = defaultServiceVersion
	}
	if c.Service.Port == 0 {
		c.Service.Port = defaultServicePort
	}
	if c.Database.Host == "" {
		c.Database.Host = defaultDBHost
	}
	if c.Database.Port == 0 {
		c.Database.Port = defaultDBPort
	}
	if c.Database.User == "" {
		c.Database.User = defaultDBUser
	}
	if c.Database.Database == "" {
		c.Database.Database = defaultDBName
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = defaultDBSSLMode
	}
	if c.Database.MaxConnections == 0 {
		c.Database.MaxConnections = defaultDBMaxConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaultDBMaxIdleConns
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = defaultConnMaxLifetime
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Classification.Language == "" {
		c.Classification.Language = defaultLanguage
	}
	if c.Processor.BatchSize == 0 {
		c.Processor.BatchSize = defaultBatchSize
	}
	if c.Processor.PollInterval == 0 {
		c.Processor.PollInterval = defaultPollInterval
	}
	if c.Processor.StoreWriteRPS == 0 {
		c.Processor.StoreWriteRPS = defaultStoreWriteRPS
	}
}
