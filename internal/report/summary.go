// Package report renders run statistics into the human readable export
// summary written next to the output files.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dbsmedya/goexport/internal/logger"
	"github.com/dbsmedya/goexport/internal/types"
)

const separatorWidth = 60

// SummaryFileName is the file the summary is persisted to inside the
// output directory.
const SummaryFileName = "summary.txt"

// Render formats run statistics as the multi-line summary text.
func Render(stats *types.RunStatistics) string {
	heavy := strings.Repeat("=", separatorWidth)
	light := strings.Repeat("-", separatorWidth)

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(heavy)
	line("TABLE EXPORT SUMMARY")
	line(heavy)
	line("Date/Time: %s", stats.StartedAt.Format("2006-01-02 15:04:05"))
	line("Total duration: %.2f seconds", stats.Duration().Seconds())
	line("")
	line("Tables total: %d", stats.Total)
	line("Successful: %d", stats.Succeeded)
	line("Failed: %d", stats.Failed)
	line("")
	line("DETAILS:")
	line(light)

	var totalRows, totalBytes int64
	for _, rec := range stats.Records {
		status := "✓"
		if !rec.Success {
			status = "✗"
		}
		errInfo := ""
		if rec.Err != "" {
			errInfo = fmt.Sprintf(" (%s)", rec.Err)
		}
		line("%s %s: %s rows, %s bytes, %.2fs%s",
			status,
			rec.Table,
			humanize.Comma(rec.Rows),
			humanize.Comma(rec.Bytes),
			rec.Duration.Seconds(),
			errInfo,
		)
		if rec.Success {
			totalRows += rec.Rows
			totalBytes += rec.Bytes
		}
	}

	line(light)
	line("Total exported rows: %s", humanize.Comma(totalRows))
	line("Total file size: %s bytes (%.2f MB)", humanize.Comma(totalBytes), float64(totalBytes)/1024/1024)
	if len(stats.Records) > 0 {
		line("Average per table: %.2fs", stats.Duration().Seconds()/float64(len(stats.Records)))
	}
	b.WriteString(heavy)
	return b.String()
}

// WriteSummary prints the summary to the console and persists it to
// summary.txt in the output directory. A failed file write is logged and
// swallowed: the run already succeeded and the console copy is out.
func WriteSummary(stats *types.RunStatistics, outputDir string, log *logger.Logger) string {
	if log == nil {
		log = logger.NewDefault()
	}
	text := Render(stats)
	fmt.Println("\n" + text)

	path := filepath.Join(outputDir, SummaryFileName)
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		log.Errorw("Failed to write summary file", "path", path, "error", err)
		return ""
	}
	fmt.Printf("\nSummary saved: %s\n", path)
	log.Infow("Summary written", "path", path)
	return path
}
