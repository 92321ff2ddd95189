package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.MaxAccounts)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoadFromFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("user: kristi\ndb_path: /tmp/j.sqlite\nsnapshot_path: /tmp/j.yaml\nmax_accounts: 2\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kristi", cfg.User)
	assert.Equal(t, "/tmp/j.sqlite", cfg.DBPath)
	assert.Equal(t, 2, cfg.MaxAccounts)
}

func TestLoadFromFileJSONFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{"user":"kristi","db_path":"/tmp/j.sqlite","max_accounts":1}`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kristi", cfg.User)
	assert.Equal(t, 1, cfg.MaxAccounts)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRADEJOURNAL_USER", "env-user")
	t.Setenv("TRADEJOURNAL_DB", "/tmp/env.sqlite")
	t.Setenv("TRADEJOURNAL_MAX_ACCOUNTS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env-user", cfg.User)
	assert.Equal(t, "/tmp/env.sqlite", cfg.DBPath)
	assert.Equal(t, 5, cfg.MaxAccounts)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.User = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.DBPath = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MaxAccounts = 0
	assert.Error(t, cfg.Validate())
}

func TestSaveToFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	want := &Config{User: "kristi", DBPath: "/tmp/a.sqlite", SnapshotPath: "/tmp/a.yaml", MaxAccounts: 3}
	require.NoError(t, want.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, want.User, got.User)
	assert.Equal(t, want.DBPath, got.DBPath)
}
