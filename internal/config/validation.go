package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

var (
	validDrivers = map[string]bool{"": true, "sqlite": true, "mysql": true}
	validFormats = map[string]bool{"": true, "csv": true, "json": true, "xlsx": true, "pdf": true}
	validLevels  = map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}
)

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Directories.Input == "" {
		errs = append(errs, ValidationError{Field: "directories.input", Message: "must not be empty"})
	}
	if c.Directories.Output == "" {
		errs = append(errs, ValidationError{Field: "directories.output", Message: "must not be empty"})
	}
	if c.Directories.Logs == "" {
		errs = append(errs, ValidationError{Field: "directories.logs", Message: "must not be empty"})
	}

	if !validDrivers[c.Database.Driver] {
		errs = append(errs, ValidationError{
			Field:   "database.driver",
			Message: fmt.Sprintf("unknown driver %q (must be sqlite or mysql)", c.Database.Driver),
		})
	}
	if c.Database.ConnectTimeout < 0 {
		errs = append(errs, ValidationError{Field: "database.connect_timeout", Message: "must not be negative"})
	}

	if !validFormats[strings.ToLower(c.Export.Format)] {
		errs = append(errs, ValidationError{
			Field:   "export.format",
			Message: fmt.Sprintf("unknown format %q (must be csv, json, xlsx, or pdf)", c.Export.Format),
		})
	}
	if c.Export.ChunkSize < 0 {
		errs = append(errs, ValidationError{Field: "export.chunk_size", Message: "must not be negative"})
	}
	if c.Export.PDFMaxRows <= 0 {
		errs = append(errs, ValidationError{Field: "export.pdf_max_rows", Message: "must be positive"})
	}

	if !validLevels[c.Logging.Level] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q (must be debug, info, warn, or error)", c.Logging.Level),
		})
	}
	if c.Logging.MaxSizeMB <= 0 {
		errs = append(errs, ValidationError{Field: "logging.max_size_mb", Message: "must be positive"})
	}
	if c.Logging.MaxBackups < 0 {
		errs = append(errs, ValidationError{Field: "logging.max_backups", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
