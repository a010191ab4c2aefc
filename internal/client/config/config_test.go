package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "download", c.DownloadDir)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "en", c.Locale)
	assert.Empty(t, c.DictationCommand)
	assert.Equal(t, 8, c.DashboardCategoryWindow)
	assert.Equal(t, 5, c.EditorCategoryWindow)
	assert.Equal(t, "notevault.db", filepath.Base(c.SessionDBPath))
}

func TestLoad_NilFlagSetUsesDefaults(t *testing.T) {
	t.Setenv("NOTEVAULT_CONFIG", "")
	cfg, err := Load(nil)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}

func TestLoad_UnchangedFlagsDoNotMaskFile(t *testing.T) {
	p := writeFile(t, "c.json", `{"api_base_url":"http://file","request_timeout":"3s"}`)

	cfg, err := Load(newFlagSet(t, "-c", p))
	require.NoError(t, err)
	assert.Equal(t, "http://file", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoad_Precedence(t *testing.T) {
	p := writeFile(t, "c.yaml", "api_base_url: http://file\nlog_level: warn\nlocale: de\n")
	t.Setenv("NOTEVAULT_LOG_LEVEL", "error")
	t.Setenv("NOTEVAULT_API_URL", "http://env")

	cfg, err := Load(newFlagSet(t, "--config", p, "--api=http://flag", "-t", "2s"))
	require.NoError(t, err)

	assert.Equal(t, "http://flag", cfg.APIBaseURL, "flag beats env and file")
	assert.Equal(t, "error", cfg.LogLevel, "env beats file")
	assert.Equal(t, "de", cfg.Locale, "file beats defaults")
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
}

func TestLoad_ConfigFromEnv(t *testing.T) {
	p := writeFile(t, "c.yml", "download_dir: /tmp/out\n")
	t.Setenv("NOTEVAULT_CONFIG", p)

	cfg, err := Load(newFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", cfg.DownloadDir)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(newFlagSet(t, "-c", filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, err)

	bad := writeFile(t, "bad.json", `{"request_timeout":"ten"}`)
	_, err = Load(newFlagSet(t, "-c", bad))
	require.Error(t, err)

	t.Setenv("NOTEVAULT_TIMEOUT", "soon")
	_, err = Load(newFlagSet(t))
	require.Error(t, err)
}
