// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 10s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paperscope/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the result fetcher.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the base address of the recommendation service
	// (default "http://localhost:8000").
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Limit is the number of results requested per search (default 10,
	// the service accepts 1-50).
	Limit int `json:"limit" yaml:"limit"`

	// Mock selects the built-in fixed dataset instead of the remote
	// service. Used when no recommendation service is running.
	Mock bool `json:"mock" yaml:"mock"`
}

// UIConfig holds settings for the interactive browser.
type UIConfig struct {
	// PageSize is the number of results shown per page (default 6).
	PageSize int `json:"page_size" yaml:"page_size"`

	// DebounceInterval is how long a typed query must be stable before a
	// live search fires (default 300ms).
	DebounceInterval time.Duration `json:"debounce_interval" yaml:"debounce_interval"`

	// Theme is the preferred color theme: "dark", "light", or "" to
	// detect from the terminal background. A stored preference from a
	// previous session wins over this value.
	Theme string `json:"theme,omitempty" yaml:"theme,omitempty"`

	// PrefsPath is the path of the preference database
	// (default "~/.config/paperscope/prefs.db").
	PrefsPath string `json:"prefs_path,omitempty" yaml:"prefs_path,omitempty"`
}

// LoggingConfig holds settings for structured logging.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" yaml:"level"`

	// File is an optional log file path. The interactive browser always
	// logs to a file since the terminal is owned by the UI.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// Config groups all client configuration.
type Config struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	UI      UIConfig      `json:"ui" yaml:"ui"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}
