package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

const appName = "notevault"

// Config holds runtime settings for the NoteVault terminal client.
//
// Units: RequestTimeout is a time.Duration (e.g., 10*time.Second). The
// category windows count categories, not pages.
type Config struct {
	APIBaseURL              string
	RequestTimeout          time.Duration
	SessionDBPath           string
	DownloadDir             string
	LogLevel                string
	Locale                  string
	DictationCommand        string
	DashboardCategoryWindow int
	EditorCategoryWindow    int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = defaultSessionDBPath()
	c.DownloadDir = "download"
	c.LogLevel = "info"
	c.Locale = "en"
	c.DictationCommand = ""
	c.DashboardCategoryWindow = 8
	c.EditorCategoryWindow = 5
}

func defaultSessionDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return appName + ".db"
	}
	return filepath.Join(dir, appName, appName+".db")
}

// Load builds a Config by applying defaults, the config file named by
// --config (or NOTEVAULT_CONFIG), NOTEVAULT_* variables and finally the
// flags set explicitly on fs. Later sources take precedence. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path := configPath(fs)
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := loadEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if fs != nil {
		if err := applyFlags(cfg, fs); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func configPath(fs *pflag.FlagSet) string {
	if fs != nil {
		if f := fs.Lookup(flagConfig); f != nil && f.Changed {
			return f.Value.String()
		}
	}
	return os.Getenv(envPrefix + "CONFIG")
}
