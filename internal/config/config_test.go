package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.App.Env)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnMaxIdleTime)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "changeme", cfg.JWT.Secret)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiration)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONDUIT_JWT_SECRET", "from-env")
	t.Setenv("CONDUIT_APP_ENV", EnvTesting)
	t.Setenv("CONDUIT_DATABASE_QUERYTIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, EnvTesting, cfg.App.Env)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
}
