// Package config loads runtime configuration for the NoteVault terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with --config/-c or NOTEVAULT_CONFIG.
//     Files ending in .yaml or .yml are YAML, everything else is JSON.
//  3. Environment variables with the NOTEVAULT_ prefix.
//  4. Command-line flags set explicitly by the user.
//
// Supported flags
//
//	-a, --api string         API base URL
//	-t, --timeout duration   per-request timeout
//	-d, --db string          session database path
//	-l, --log-level string   log level
//
// Environment
//
//	NOTEVAULT_API_URL, NOTEVAULT_TIMEOUT, NOTEVAULT_DB, NOTEVAULT_DOWNLOAD_DIR,
//	NOTEVAULT_LOG_LEVEL, NOTEVAULT_LOCALE, NOTEVAULT_DICTATION_COMMAND,
//	NOTEVAULT_DASHBOARD_CATEGORY_WINDOW, NOTEVAULT_EDITOR_CATEGORY_WINDOW
//
// # File schema
//
// The file loader uses timex.Duration for the timeout, so it can be either a
// string like "10s" or integer nanoseconds:
//
//	api_base_url: http://localhost:8000
//	request_timeout: 10s
//	download_dir: download
//	dictation_command: "vosk-stream --json"
package config
