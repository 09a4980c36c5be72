// Package types contains shared types used across multiple packages to avoid import cycles.
package types

import "time"

// TableData holds one table's contents as read from the source database.
type TableData struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// RowCount returns the number of data rows.
func (td *TableData) RowCount() int {
	return len(td.Rows)
}

// Empty reports whether the table contains no rows.
func (td *TableData) Empty() bool {
	return len(td.Rows) == 0
}

// ExportRecord is the outcome of attempting to export one table.
// A record is created when the export starts, populated on completion
// or failure, and never mutated afterward.
type ExportRecord struct {
	Table      string
	OutputFile string
	Rows       int64
	Bytes      int64
	Duration   time.Duration
	StartedAt  time.Time
	Success    bool
	Err        string
}

// RunStatistics aggregates ExportRecords for one invocation.
// Records are kept in processing order.
type RunStatistics struct {
	StartedAt   time.Time
	CompletedAt time.Time
	Records     []ExportRecord
	Total       int
	Succeeded   int
	Failed      int
}

// NewRunStatistics creates a RunStatistics for a run over the given
// number of tables, with the start time set to now.
func NewRunStatistics(totalTables int) *RunStatistics {
	return &RunStatistics{
		StartedAt: time.Now(),
		Records:   make([]ExportRecord, 0, totalTables),
		Total:     totalTables,
	}
}

// Append adds a finalized record and updates the success/failure counters.
func (rs *RunStatistics) Append(rec ExportRecord) {
	rs.Records = append(rs.Records, rec)
	if rec.Success {
		rs.Succeeded++
	} else {
		rs.Failed++
	}
}

// Finalize sets the end time. Call after the last table has been processed.
func (rs *RunStatistics) Finalize() {
	rs.CompletedAt = time.Now()
}

// Duration returns the total wall-clock time of the run.
func (rs *RunStatistics) Duration() time.Duration {
	return rs.CompletedAt.Sub(rs.StartedAt)
}
