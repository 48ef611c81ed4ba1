package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[auth]
token_secret = "test-secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, SessionStoreMemory, cfg.Auth.SessionStore)
	assert.Equal(t, "IN", cfg.Auth.PhoneRegion)
	assert.True(t, cfg.Booking.RejectsConflicts())
	assert.Len(t, cfg.Owners, 1)
	assert.Len(t, cfg.Venues.Catalog, 7)
	assert.Equal(t, "UTC", cfg.Stats.Timezone)
	assert.Empty(t, cfg.Venues.FallbackOwnerID)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[auth]
token_secret = "s"

[booking]
reject_conflicts = false

[venues]
fallback_owner_id = "owner-1"

[[owners]]
id = "owner-1"
email = "a@b.c"
password = "pw"

[[venues.catalog]]
id = "court-a"
owner_id = "owner-1"
sports = ["football"]
open_time = "08:00"
close_time = "10:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.False(t, cfg.Booking.RejectsConflicts())
	assert.Equal(t, "owner-1", cfg.Venues.FallbackOwnerID)
	require.Len(t, cfg.Venues.Catalog, 1)
	assert.Equal(t, "court-a", cfg.Venues.Catalog[0].ID)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[auth]
token_secret = "s"
`)
	t.Setenv("SPORTITUP_SERVER_HTTP_PORT", "7070")
	t.Setenv("SPORTITUP_STATS_TIMEZONE", "Asia/Kolkata")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, "Asia/Kolkata", cfg.Stats.Timezone)
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("SPORTITUP_AUTH_TOKEN_SECRET", "from-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.TokenSecret)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing secret", ``},
		{"unknown driver", "[auth]\ntoken_secret = \"s\"\n[storage]\ndriver = \"mongo\"\n"},
		{"postgres without host", "[auth]\ntoken_secret = \"s\"\n[storage]\ndriver = \"postgres\"\n"},
		{"reset without memory", "[auth]\ntoken_secret = \"s\"\n[storage]\ndriver = \"postgres\"\n[database]\nhost = \"h\"\ndbname = \"d\"\n[demo]\nenable_reset = true\n"},
		{"bad timezone", "[auth]\ntoken_secret = \"s\"\n[stats]\ntimezone = \"Mars/Base\"\n"},
		{"unknown fallback owner", "[auth]\ntoken_secret = \"s\"\n[venues]\nfallback_owner_id = \"nobody\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
