// Package config provides configuration structures and loading for GoExport.
package config

// Config represents the complete application configuration.
type Config struct {
	Directories DirectoriesConfig `yaml:"directories" mapstructure:"directories"`
	Database    DatabaseConfig    `yaml:"database" mapstructure:"database"`
	Export      ExportConfig      `yaml:"export" mapstructure:"export"`
	Logging     LoggingConfig     `yaml:"logging" mapstructure:"logging"`
}

// DirectoriesConfig represents the fixed working directories. All three are
// created at startup if absent.
type DirectoriesConfig struct {
	Input  string `yaml:"input" mapstructure:"input"`   // default location of source database files
	Output string `yaml:"output" mapstructure:"output"` // default export destination
	Logs   string `yaml:"logs" mapstructure:"logs"`     // rotating log files
}

// DatabaseConfig represents source database connection settings.
type DatabaseConfig struct {
	Driver         string `yaml:"driver" mapstructure:"driver"`                   // sqlite, mysql, or empty for auto-detect
	ConnectTimeout int    `yaml:"connect_timeout" mapstructure:"connect_timeout"` // seconds
}

// ExportConfig represents export processing settings.
type ExportConfig struct {
	Format     string `yaml:"format" mapstructure:"format"`             // csv, json, xlsx, pdf; empty = prompt
	ChunkSize  int    `yaml:"chunk_size" mapstructure:"chunk_size"`     // rows per fetch batch; 0 = single fetch
	PDFMaxRows int    `yaml:"pdf_max_rows" mapstructure:"pdf_max_rows"` // rendered data rows per PDF
}

// LoggingConfig represents logging settings. The console sink level is
// configurable; the rotating log file always receives debug detail.
type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`             // debug, info, warn, error (console)
	Format     string `yaml:"format" mapstructure:"format"`           // json or text (console)
	MaxSizeMB  int    `yaml:"max_size_mb" mapstructure:"max_size_mb"` // log file size before rotation
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"` // rotated files kept
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Directories: DirectoriesConfig{
			Input:  "./input",
			Output: "./export",
			Logs:   "./logs",
		},
		Database: DatabaseConfig{
			Driver:         "", // detected from the source path
			ConnectTimeout: 30,
		},
		Export: ExportConfig{
			Format:     "",
			ChunkSize:  0,
			PDFMaxRows: 50,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 5,
		},
	}
}
