package exporter

import (
	"context"
	"fmt"

	"github.com/dbsmedya/goexport/internal/logger"
	"github.com/dbsmedya/goexport/internal/types"
)

// Orchestrator drives the exporter over a list of tables sequentially,
// aggregating per-table results into run statistics.
type Orchestrator struct {
	exporter *Exporter
	progress ProgressReporter
	logger   *logger.Logger
}

// NewOrchestrator creates an Orchestrator. A nil progress reporter falls
// back to plain console lines.
func NewOrchestrator(exp *Exporter, progress ProgressReporter, log *logger.Logger) (*Orchestrator, error) {
	if exp == nil {
		return nil, fmt.Errorf("exporter is nil")
	}
	if progress == nil {
		progress = &ConsoleReporter{}
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &Orchestrator{
		exporter: exp,
		progress: progress,
		logger:   log,
	}, nil
}

// Run exports the tables in the given order, one at a time. Every table
// yields a record, success or failure; a cancelled context stops the run
// between tables and returns the statistics gathered so far alongside the
// context error.
func (o *Orchestrator) Run(ctx context.Context, tables []string) (*types.RunStatistics, error) {
	stats := types.NewRunStatistics(len(tables))

	o.logger.Infow("Starting export run",
		"tables", len(tables),
		"format", o.exporter.Format(),
	)
	o.progress.Start(len(tables))

	for _, table := range tables {
		select {
		case <-ctx.Done():
			o.logger.Warnw("Export run interrupted", "completed", len(stats.Records), "total", stats.Total)
			stats.Finalize()
			return stats, ctx.Err()
		default:
		}

		rec := o.exporter.ExportTable(ctx, table)
		stats.Append(rec)
		o.progress.TableDone(rec)
	}

	o.progress.Wait()
	stats.Finalize()

	o.logger.Infow("Export run completed",
		"duration", stats.Duration(),
		"successful", stats.Succeeded,
		"failed", stats.Failed,
	)
	return stats, nil
}
