package exporter

import (
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gookit/color"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/dbsmedya/goexport/internal/types"
)

// ProgressReporter receives per-table completion events during a run.
// Reporting must never hide a failure: each outcome is surfaced as it
// happens, not batched.
type ProgressReporter interface {
	Start(total int)
	TableDone(rec types.ExportRecord)
	Wait()
}

// ConsoleReporter prints one status line per table as it completes.
type ConsoleReporter struct{}

func (r *ConsoleReporter) Start(total int) {}

func (r *ConsoleReporter) TableDone(rec types.ExportRecord) {
	if rec.Success {
		color.Green.Printf("  ✓ %s → %s (%d rows, %s, %.2fs)\n",
			rec.Table,
			filepath.Base(rec.OutputFile),
			rec.Rows,
			humanize.Bytes(uint64(rec.Bytes)),
			rec.Duration.Seconds(),
		)
		return
	}
	color.Red.Printf("  ✗ %s: %s\n", rec.Table, rec.Err)
}

func (r *ConsoleReporter) Wait() {}

// BarReporter adds a progress bar on top of the console lines. The bar
// renders to stderr so the per-table lines on stdout stay intact. It
// advances after every table regardless of outcome.
type BarReporter struct {
	console  ConsoleReporter
	progress *mpb.Progress
	bar      *mpb.Bar
}

// NewBarReporter creates the secondary graphical progress indicator.
func NewBarReporter() *BarReporter {
	return &BarReporter{}
}

func (r *BarReporter) Start(total int) {
	r.progress = mpb.New(
		mpb.WithOutput(os.Stderr),
		mpb.WithWidth(64),
	)
	r.bar = r.progress.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("Exporting tables"),
			decor.CountersNoUnit(" %d / %d", decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncSpace),
		),
	)
}

func (r *BarReporter) TableDone(rec types.ExportRecord) {
	r.console.TableDone(rec)
	if r.bar != nil {
		r.bar.Increment()
	}
}

func (r *BarReporter) Wait() {
	if r.progress != nil {
		r.progress.Wait()
	}
}

// NewReporter returns the reporter matching the flag: console lines only,
// or console lines plus the graphical bar.
func NewReporter(withBar bool) ProgressReporter {
	if withBar {
		return NewBarReporter()
	}
	return &ConsoleReporter{}
}
