package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/notevault/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for file unmarshalling. It relies on
// timex.Duration so the timeout can be given either as a string like "10s"
// or as integer nanoseconds. Absent keys leave the current value alone.
type FileConfig struct {
	APIBaseURL              *string         `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeout          *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	SessionDBPath           *string         `json:"session_db_path" yaml:"session_db_path"`
	DownloadDir             *string         `json:"download_dir" yaml:"download_dir"`
	LogLevel                *string         `json:"log_level" yaml:"log_level"`
	Locale                  *string         `json:"locale" yaml:"locale"`
	DictationCommand        *string         `json:"dictation_command" yaml:"dictation_command"`
	DashboardCategoryWindow *int            `json:"dashboard_category_window" yaml:"dashboard_category_window"`
	EditorCategoryWindow    *int            `json:"editor_category_window" yaml:"editor_category_window"`
}

// loadFile overlays cfg with the file at path. The format follows the
// extension: .yaml and .yml are YAML, anything else is JSON.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	setIf(&cfg.APIBaseURL, fc.APIBaseURL)
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	setIf(&cfg.SessionDBPath, fc.SessionDBPath)
	setIf(&cfg.DownloadDir, fc.DownloadDir)
	setIf(&cfg.LogLevel, fc.LogLevel)
	setIf(&cfg.Locale, fc.Locale)
	setIf(&cfg.DictationCommand, fc.DictationCommand)
	setIf(&cfg.DashboardCategoryWindow, fc.DashboardCategoryWindow)
	setIf(&cfg.EditorCategoryWindow, fc.EditorCategoryWindow)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
