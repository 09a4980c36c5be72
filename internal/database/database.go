// Package database provides source database connection handling for GoExport.
//
// Connections are not pooled: every table export opens a fresh handle and
// closes it when done, so a failed or hung table cannot poison the rest of
// the run.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver for server sources
	_ "modernc.org/sqlite"             // pure-Go SQLite driver for desktop database files

	"github.com/dbsmedya/goexport/internal/config"
)

// Opener creates fresh connections to one source database.
type Opener struct {
	driver  string
	dsn     string
	timeout time.Duration
}

// NewOpener creates an Opener for the given source. When the configured
// driver is empty it is detected from the source string.
func NewOpener(cfg *config.DatabaseConfig, source string) (*Opener, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DetectDriver(source)
	}

	dsn, err := BuildDSN(driver, source)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.ConnectTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Opener{driver: driver, dsn: dsn, timeout: timeout}, nil
}

// Driver returns the resolved driver name ("sqlite" or "mysql").
func (o *Opener) Driver() string {
	return o.driver
}

// Open returns a fresh, verified connection. The caller owns the handle and
// must close it. The handle is limited to a single underlying connection so
// each table export uses exactly one.
func (o *Opener) Open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(o.driver, o.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s source: %w", o.driver, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach %s source: %w", o.driver, err)
	}

	return db, nil
}

// DetectDriver picks the driver from the source string. MySQL DSNs carry a
// tcp/unix address or a mysql:// prefix; everything else is treated as a
// database file path.
func DetectDriver(source string) string {
	if strings.HasPrefix(source, "mysql://") ||
		strings.Contains(source, "@tcp(") ||
		strings.Contains(source, "@unix(") {
		return "mysql"
	}
	return "sqlite"
}

// BuildDSN normalizes the source string for the chosen driver.
func BuildDSN(driver, source string) (string, error) {
	switch driver {
	case "sqlite":
		if source == "" {
			return "", fmt.Errorf("source database path is empty")
		}
		return source, nil
	case "mysql":
		dsn := strings.TrimPrefix(source, "mysql://")
		if dsn == "" {
			return "", fmt.Errorf("source DSN is empty")
		}
		if !strings.Contains(dsn, "parseTime") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "parseTime=true"
		}
		return dsn, nil
	default:
		return "", fmt.Errorf("unsupported driver %q", driver)
	}
}
