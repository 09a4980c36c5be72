// Package sqlutil provides SQL identifier utilities for GoExport.
package sqlutil

import (
	"fmt"
	"strings"
)

// QuoteIdentifier quotes a table or column name for the given driver.
// SQLite sources use bracket quoting, which tolerates embedded spaces and
// reserved words (the form desktop databases use). MySQL uses backticks,
// with embedded backticks doubled.
func QuoteIdentifier(driver, name string) string {
	switch driver {
	case "mysql":
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	default:
		return "[" + name + "]"
	}
}

// IsValidIdentifier checks that a table name is safe to interpolate into a
// query. Names read back from the catalog may contain spaces but must not
// contain quoting characters. Defense-in-depth against SQL injection.
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, "`[]\"';")
}

// QuoteIdentifierSafe quotes an identifier after validating it.
// Use this when identifiers might come from untrusted sources.
func QuoteIdentifierSafe(driver, name string) (string, error) {
	if !IsValidIdentifier(name) {
		return "", &InvalidIdentifierError{Name: name}
	}
	return QuoteIdentifier(driver, name), nil
}

// InvalidIdentifierError is returned when an identifier contains characters
// that cannot be safely quoted.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier: %q (must not contain quoting characters)", e.Name)
}
