// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers file and env on top.
// - External errors must be wrapped via this package's error kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DefaultMaxMentees is the mentor capacity applied when a registration
	// does not specify one.
	DefaultMaxMentees int `koanf:"default_max_mentees"`

	// MaxMenteesLimit caps the capacity a single registration may request.
	MaxMenteesLimit int `koanf:"max_mentees_limit"`

	// DefaultExperienceLevel is applied when a mentee registers without one.
	DefaultExperienceLevel string `koanf:"default_experience_level"`

	// ExportPath is where the shutdown export writes the pipe-delimited
	// matches file.
	ExportPath string `koanf:"export_path"`

	// ReportPath is where the shutdown export writes the detailed directory
	// report.
	ReportPath string `koanf:"report_path"`

	// StoreCapacityHint preallocates the directory store.
	StoreCapacityHint int `koanf:"store_capacity_hint"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:               "info",
		Addr:                   ":8080",
		DefaultMaxMentees:      3,
		MaxMenteesLimit:        10,
		DefaultExperienceLevel: "beginner",
		ExportPath:             "matches.txt",
		ReportPath:             "report.txt",
		StoreCapacityHint:      256,
	}
}
