package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-api/pkg/config"
)

// chdir changes the working directory for the test and restores it on cleanup
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8001, cfg.HTTP.Port)
	assert.Equal(t, config.StorePostgres, cfg.Store.Driver)
	assert.False(t, cfg.Cache.Enabled())
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, int32(25), cfg.DB.MaxConns)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL_SECONDS", "30")
	t.Setenv("DB_FORCE_IPV4", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, config.StoreMemory, cfg.Store.Driver)
	assert.True(t, cfg.Cache.Enabled())
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.DB.ForceIPv4)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := config.Load()
	assert.ErrorContains(t, err, "STORE_DRIVER")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5434, User: "root", Password: "p@ss:word", DBName: "dcifre", SSLMode: "disable"}
	assert.Equal(t, "postgres://root:p%40ss%3Aword@db:5434/dcifre?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://u:p@h:1/x"
	assert.Equal(t, "postgres://u:p@h:1/x", c.ConnectionString())
}
