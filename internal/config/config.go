package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers
const (
	DriverMongoDB = "mongodb"
	DriverMemory  = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig  `mapstructure:"server"`
	MongoDB   MongoDBConfig `mapstructure:"mongodb"`
	Store     StoreConfig   `mapstructure:"store"`
	API       APIConfig     `mapstructure:"api"`
	JWT       JWTConfig     `mapstructure:"jwt"`
	LogLevel  string        `mapstructure:"logLevel"`
	LogFormat string        `mapstructure:"logFormat"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	AllowedOrigins  []string      `mapstructure:"allowedOrigins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connectTimeout"`
}

// StoreConfig selects the repository implementation
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

// APIConfig holds limits applied by the resource handlers
type APIConfig struct {
	MaxPageSize int `mapstructure:"maxPageSize"`
}

// JWTConfig holds JWT-specific configuration. An empty secret disables the write guard.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// Load loads configuration from an optional .env file, an optional config.yaml
// found in path or path/config, and environment variables (SERVER_PORT,
// MONGODB_URI, STORE_DRIVER, ...). Environment wins over the file.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "."
	}
	// A missing .env is normal outside local development.
	_ = godotenv.Load(path + "/.env")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(path + "/config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	// PORT is what most hosting platforms inject
	if err := v.BindEnv("server.port", "SERVER_PORT", "PORT"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("logLevel", "LOGLEVEL", "LOG_LEVEL"); err != nil {
		return nil, err
	}

	// Read configuration
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Unmarshal configuration
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "blood_donation_system")
	v.SetDefault("mongodb.connectTimeout", 10*time.Second)
	v.SetDefault("store.driver", DriverMongoDB)
	v.SetDefault("api.maxPageSize", 100)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "json")
}

// Validate rejects configurations the service cannot start with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("server.port must not be empty")
	}
	switch c.Store.Driver {
	case DriverMongoDB:
		if c.MongoDB.URI == "" || c.MongoDB.Database == "" {
			return errors.New("mongodb.uri and mongodb.database are required for the mongodb store driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store.driver %q (want %q or %q)", c.Store.Driver, DriverMongoDB, DriverMemory)
	}
	if c.API.MaxPageSize <= 0 {
		return errors.New("api.maxPageSize must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdownTimeout must be positive")
	}
	return nil
}

// WriteGuardEnabled reports whether writes require a bearer token
func (c *Config) WriteGuardEnabled() bool {
	return c.JWT.Secret != ""
}
