package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "blood_donation_system", cfg.MongoDB.Database)
	assert.Equal(t, 10*time.Second, cfg.MongoDB.ConnectTimeout)
	assert.Equal(t, DriverMongoDB, cfg.Store.Driver)
	assert.Equal(t, 100, cfg.API.MaxPageSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.WriteGuardEnabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_DATABASE", "blood_test")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("API_MAXPAGESIZE", "25")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoDB.URI)
	assert.Equal(t, "blood_test", cfg.MongoDB.Database)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, 25, cfg.API.MaxPageSize)
	assert.True(t, cfg.WriteGuardEnabled())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "3001")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "3001", cfg.Server.Port)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "7000"
  allowedOrigins:
    - http://localhost:3000
  shutdownTimeout: 2s
store:
  driver: memory
api:
  maxPageSize: 50
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, 50, cfg.API.MaxPageSize)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORE_DRIVER=memory\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("STORE_DRIVER") })

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store.driver")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: "8000", ShutdownTimeout: time.Second},
			MongoDB: MongoDBConfig{URI: "mongodb://localhost:27017", Database: "db"},
			Store:   StoreConfig{Driver: DriverMongoDB},
			API:     APIConfig{MaxPageSize: 100},
		}
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(*Config){
		"empty port":       func(c *Config) { c.Server.Port = " " },
		"zero page size":   func(c *Config) { c.API.MaxPageSize = 0 },
		"missing database": func(c *Config) { c.MongoDB.Database = "" },
		"zero shutdown":    func(c *Config) { c.Server.ShutdownTimeout = 0 },
		"unknown driver":   func(c *Config) { c.Store.Driver = "sqlite" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	memory := valid()
	memory.Store.Driver = DriverMemory
	memory.MongoDB = MongoDBConfig{}
	assert.NoError(t, memory.Validate())
}
