package config

import (
	"fmt"
	"strconv"
	"time"
)

const envPrefix = "NOTEVAULT_"

type lookupFunc func(key string) (string, bool)

// loadEnv overlays cfg with NOTEVAULT_* variables.
func loadEnv(cfg *Config, lookup lookupFunc) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(envPrefix + name)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = n
		return nil
	}

	str("API_URL", &cfg.APIBaseURL)
	str("DB", &cfg.SessionDBPath)
	str("DOWNLOAD_DIR", &cfg.DownloadDir)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOCALE", &cfg.Locale)
	str("DICTATION_COMMAND", &cfg.DictationCommand)

	if v, ok := lookup(envPrefix + "TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTIMEOUT: %w", envPrefix, err)
		}
		cfg.RequestTimeout = d
	}
	if err := num("DASHBOARD_CATEGORY_WINDOW", &cfg.DashboardCategoryWindow); err != nil {
		return err
	}
	return num("EDITOR_CATEGORY_WINDOW", &cfg.EditorCategoryWindow)
}
