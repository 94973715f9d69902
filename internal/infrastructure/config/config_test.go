package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "helpdesk/internal/shared/config"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "UTC", cfg.Server.Timezone)
	assert.Equal(t, sharedConfig.DriverSQLite, cfg.Database.DriverName())
	assert.Equal(t, sharedConfig.PasswordSchemeSHA256, cfg.Auth.Password.Scheme)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10, cfg.RateLimit.Login.Limit)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HELPDESK_SERVER_PORT", "9090")
	t.Setenv("HELPDESK_AUTH_PASSWORD_SCHEME", "bcrypt")
	t.Setenv("HELPDESK_DATABASE_PATH", "/tmp/hd.db")

	cfg, err := Load("release")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, sharedConfig.PasswordSchemeBcrypt, cfg.Auth.Password.Scheme)
	assert.Equal(t, "/tmp/hd.db", cfg.Database.Path)
}
