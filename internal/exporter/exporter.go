// Package exporter provides the core table export pipeline for GoExport.
package exporter

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dbsmedya/goexport/internal/fsutil"
	"github.com/dbsmedya/goexport/internal/logger"
	"github.com/dbsmedya/goexport/internal/sqlutil"
	"github.com/dbsmedya/goexport/internal/types"
	"github.com/dbsmedya/goexport/internal/writer"
)

// ConnectionOpener yields a fresh connection per call. Satisfied by
// database.Opener.
type ConnectionOpener interface {
	Open(ctx context.Context) (*sql.DB, error)
	Driver() string
}

// Exporter exports single tables from one source database. Each table gets
// a fresh connection, so a failed or hung table cannot affect the next one.
type Exporter struct {
	opener    ConnectionOpener
	registry  *writer.Registry
	format    writer.Format
	outputDir string
	chunkSize int
	logger    *logger.Logger
}

// New creates an Exporter. The format must be registered; this is the one
// place format validity is checked, so later dispatch cannot hit an
// unknown case.
func New(opener ConnectionOpener, registry *writer.Registry, format writer.Format, outputDir string, chunkSize int, log *logger.Logger) (*Exporter, error) {
	if opener == nil {
		return nil, fmt.Errorf("opener is nil")
	}
	if registry == nil {
		return nil, fmt.Errorf("writer registry is nil")
	}
	if _, ok := registry.Get(format); !ok {
		return nil, fmt.Errorf("format %s is not available", format)
	}
	if outputDir == "" {
		return nil, fmt.Errorf("output directory is empty")
	}
	if log == nil {
		log = logger.NewDefault()
	}

	return &Exporter{
		opener:    opener,
		registry:  registry,
		format:    format,
		outputDir: outputDir,
		chunkSize: chunkSize,
		logger:    log,
	}, nil
}

// ExportTable exports one table and returns its record. Errors are
// converted into a failed record, never propagated: one bad table must not
// abort the run.
func (e *Exporter) ExportTable(ctx context.Context, table string) types.ExportRecord {
	start := time.Now()
	rec := types.ExportRecord{
		Table:     table,
		StartedAt: start,
	}
	log := e.logger.WithTable(table)
	log.Debugw("Starting table export", "format", e.format)

	db, err := e.opener.Open(ctx)
	if err != nil {
		log.Errorw("Failed to connect to source", "error", err)
		rec.Err = err.Error()
		rec.Duration = time.Since(start)
		return rec
	}
	defer db.Close()

	data, err := e.fetch(ctx, db, table)
	if err != nil {
		log.Errorw("Failed to read table", "error", err)
		rec.Err = err.Error()
		rec.Duration = time.Since(start)
		return rec
	}
	rec.Rows = int64(data.RowCount())
	log.Debugw("Table loaded", "rows", rec.Rows)

	// An empty table produces no output file.
	if data.Empty() {
		log.Warnw("Table is empty - skipping output")
		rec.Err = "table is empty"
		rec.Duration = time.Since(start)
		return rec
	}

	outPath := filepath.Join(e.outputDir, fsutil.SanitizeFilename(table)+e.format.Extension())

	w, ok := e.registry.Get(e.format)
	if !ok {
		// Unreachable given constructor validation.
		rec.Err = fmt.Sprintf("no writer registered for format %s", e.format)
		log.Errorw("Writer dispatch failed", "format", e.format)
		rec.Duration = time.Since(start)
		return rec
	}

	if err := w.Write(data, outPath); err != nil {
		log.Errorw("Failed to write output file", "path", outPath, "error", err)
		rec.Err = err.Error()
		rec.Duration = time.Since(start)
		return rec
	}

	size, err := fsutil.FileSize(outPath)
	if err != nil {
		log.Errorw("Output file missing after write", "path", outPath, "error", err)
		rec.Err = "output file was not created"
		rec.Duration = time.Since(start)
		return rec
	}

	rec.OutputFile = outPath
	rec.Bytes = size
	rec.Success = true
	rec.Duration = time.Since(start)

	log.Infow("Table exported",
		"rows", rec.Rows,
		"bytes", rec.Bytes,
		"file", filepath.Base(outPath),
		"duration", rec.Duration,
	)
	return rec
}

// Format returns the export format in use.
func (e *Exporter) Format() writer.Format {
	return e.format
}

// fetch reads the full table, in bounded batches when a chunk size is
// configured to limit peak memory on very large tables.
func (e *Exporter) fetch(ctx context.Context, db *sql.DB, table string) (*types.TableData, error) {
	quoted, err := sqlutil.QuoteIdentifierSafe(e.opener.Driver(), table)
	if err != nil {
		return nil, err
	}
	query := "SELECT * FROM " + quoted

	data := &types.TableData{Name: table}

	if e.chunkSize <= 0 {
		if _, err := e.queryInto(ctx, db, query, data); err != nil {
			return nil, err
		}
		return data, nil
	}

	offset := 0
	for {
		chunkQuery := fmt.Sprintf("%s LIMIT %d OFFSET %d", query, e.chunkSize, offset)
		n, err := e.queryInto(ctx, db, chunkQuery, data)
		if err != nil {
			return nil, err
		}
		if n < e.chunkSize {
			return data, nil
		}
		offset += n
	}
}

// queryInto runs a query and appends its rows to data, setting the column
// names on the first batch. Returns the number of rows read.
func (e *Exporter) queryInto(ctx context.Context, db *sql.DB, query string, data *types.TableData) (int, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return 0, err
	}
	if data.Columns == nil {
		data.Columns = cols
	}

	count := 0
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return count, err
		}
		data.Rows = append(data.Rows, values)
		count++
	}
	return count, rows.Err()
}
