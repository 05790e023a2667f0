package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("POSTGRES_URL", "postgres://localhost/store")
	t.Setenv("SESSION_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "token", cfg.Session.CookieName)
	assert.Equal(t, 8*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Session.CookieSecure)
	assert.Equal(t, 3*time.Second, cfg.StoreTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "otaku-store", cfg.Media.Folder)
	assert.Empty(t, cfg.AdminUsernames)
}

func TestLoad_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("POSTGRES_URL", "postgres://localhost/store")
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("ADMIN_USERNAMES", "alice,bob")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.False(t, cfg.Session.CookieSecure)
	assert.Equal(t, []string{"alice", "bob"}, cfg.AdminUsernames)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	content := "POSTGRES_URL=postgres://dotenv/store\nSESSION_SECRET=" + testSecret + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	for _, key := range []string{"POSTGRES_URL", "SESSION_SECRET"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://dotenv/store", cfg.DatabaseDSN)
}

func TestLoad_MissingRequired(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("POSTGRES_URL", "")
	os.Unsetenv("POSTGRES_URL")
	t.Setenv("SESSION_SECRET", testSecret)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_URL")
}

func TestLoad_ShortSecret(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("POSTGRES_URL", "postgres://localhost/store")
	t.Setenv("SESSION_SECRET", "short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
