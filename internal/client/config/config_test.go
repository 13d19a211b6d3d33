package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"client"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)
	cfg := LoadConfig()
	require.Equal(t, "http://127.0.0.1:8080", cfg.ServerBaseURL)
	require.Equal(t, "vagali.db", cfg.CredentialsDB)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Flags(t *testing.T) {
	withArgs(t, "-a", "http://api.example.com", "-d", "/tmp/creds.db", "-t", "5")
	cfg := LoadConfig()
	require.Equal(t, "http://api.example.com", cfg.ServerBaseURL)
	require.Equal(t, "/tmp/creds.db", cfg.CredentialsDB)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"server_base_url": "http://json.example.com",
		"request_timeout_sec": 30
	}`), 0o600))

	withArgs(t, "-c", file)
	cfg := LoadConfig()
	require.Equal(t, "http://json.example.com", cfg.ServerBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	// untouched by JSON, stays default
	require.Equal(t, "vagali.db", cfg.CredentialsDB)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"server_base_url": "http://json.example.com"}`), 0o600))

	withArgs(t, "-c", file, "-a", "http://flag.example.com")
	cfg := LoadConfig()
	require.Equal(t, "http://flag.example.com", cfg.ServerBaseURL)
}
