package config

import (
	"github.com/spf13/pflag"
)

const (
	flagConfig   = "config"
	flagAPI      = "api"
	flagTimeout  = "timeout"
	flagDB       = "db"
	flagLogLevel = "log-level"
)

// RegisterFlags declares the configuration flags on fs, normally the
// persistent flag set of the root command.
//
//	-c, --config string      JSON or YAML config file
//	-a, --api string         API base URL
//	-t, --timeout duration   per-request timeout
//	-d, --db string          session database path
//	-l, --log-level string   debug, info, warn or error
//
// The defaults shown in help are the built-in ones. Load applies a flag only
// when it was set on the command line, so file and environment values are
// not masked by flag defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(flagConfig, "c", "", "path to a JSON or YAML config file")
	fs.StringP(flagAPI, "a", d.APIBaseURL, "API base URL")
	fs.DurationP(flagTimeout, "t", d.RequestTimeout, "per-request timeout")
	fs.StringP(flagDB, "d", d.SessionDBPath, "session database path")
	fs.StringP(flagLogLevel, "l", d.LogLevel, "log level (debug, info, warn, error)")
}

// applyFlags copies the flags whose Changed bit is set.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs.Changed(flagAPI) {
		v, err := fs.GetString(flagAPI)
		if err != nil {
			return err
		}
		cfg.APIBaseURL = v
	}
	if fs.Changed(flagTimeout) {
		v, err := fs.GetDuration(flagTimeout)
		if err != nil {
			return err
		}
		cfg.RequestTimeout = v
	}
	if fs.Changed(flagDB) {
		v, err := fs.GetString(flagDB)
		if err != nil {
			return err
		}
		cfg.SessionDBPath = v
	}
	if fs.Changed(flagLogLevel) {
		v, err := fs.GetString(flagLogLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = v
	}
	return nil
}
