// Package catalog discovers exportable tables in a source database.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

// systemPrefixes mark tables that belong to the database engine, not the
// user. Access system tables keep their MSys/USys/~ prefixes after a
// file conversion, so they are filtered alongside SQLite's own.
var systemPrefixes = []string{"MSys", "USys", "~", "sqlite_"}

// queries lists the discovery statements per driver: a metadata-table query
// first, then a generic introspection fallback. Only a failure of the
// primary query (not of the connection) moves to the fallback.
var queries = map[string][]string{
	"sqlite": {
		`SELECT name FROM sqlite_master WHERE type = 'table'`,
		`SELECT name FROM pragma_table_list WHERE type = 'table'`,
	},
	"mysql": {
		`SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'`,
		`SHOW TABLES`,
	},
}

// List returns the sorted, deduplicated names of user-visible tables.
func List(ctx context.Context, db *sql.DB, driver string) ([]string, error) {
	stmts, ok := queries[driver]
	if !ok {
		return nil, fmt.Errorf("no catalog queries for driver %q", driver)
	}

	var lastErr error
	for _, stmt := range stmts {
		names, err := queryNames(ctx, db, stmt)
		if err != nil {
			lastErr = err
			continue
		}
		return filterAndSort(names), nil
	}

	return nil, fmt.Errorf("failed to list tables: %w", lastErr)
}

// queryNames runs a single-column name query.
func queryNames(ctx context.Context, db *sql.DB, stmt string) ([]string, error) {
	rows, err := db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// filterAndSort applies the system-prefix exclusion, deduplicates, and
// sorts lexicographically.
func filterAndSort(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))

	for _, name := range names {
		if isSystemTable(name) || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}

	sort.Strings(result)
	return result
}

// isSystemTable reports whether a name carries a system-table prefix.
func isSystemTable(name string) bool {
	for _, prefix := range systemPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
