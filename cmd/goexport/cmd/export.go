package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goexport/internal/catalog"
	"github.com/dbsmedya/goexport/internal/config"
	"github.com/dbsmedya/goexport/internal/database"
	"github.com/dbsmedya/goexport/internal/exporter"
	"github.com/dbsmedya/goexport/internal/fsutil"
	"github.com/dbsmedya/goexport/internal/logger"
	"github.com/dbsmedya/goexport/internal/prompt"
	"github.com/dbsmedya/goexport/internal/report"
	"github.com/dbsmedya/goexport/internal/selection"
	"github.com/dbsmedya/goexport/internal/writer"
)

var (
	exportFile      string
	exportOut       string
	exportFormat    string
	exportTables    string
	exportChunkSize int
	exportProgress  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tables from a source database",
	Long: `Export reads tables from a desktop database file or MySQL server and
writes each one to its own output file in the chosen format.

Anything not given as a flag is asked for interactively: the source file,
the output folder, the export format and the table selection. A summary
of the run is written to summary.txt in the output folder.

Examples:
  goexport export
  goexport export --file input/crm.db --format csv --tables all
  goexport export --file input/crm.db --tables '1-3,7' --progress-bar`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "",
		"Source database file or MySQL DSN (prompted when omitted)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "",
		"Output directory (prompted when omitted)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "",
		"Export format: csv, xlsx, pdf, json (prompted when omitted)")
	exportCmd.Flags().StringVarP(&exportTables, "tables", "t", "",
		"Table selection: 'all', numbers like '1,3' or '1-3,7', or names (prompted when omitted)")
	exportCmd.Flags().IntVar(&exportChunkSize, "chunk-size", 0,
		"Rows per fetch batch (0 = read each table in one query)")
	exportCmd.Flags().BoolVar(&exportProgress, "progress-bar", false,
		"Show a progress bar on stderr in addition to per-table lines")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Format, overrides.ChunkSize)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Working directories must exist before anything touches them
	if err := fsutil.EnsureDirs(cfg.Directories.Input, cfg.Directories.Output, cfg.Directories.Logs); err != nil {
		return fmt.Errorf("failed to create working directories: %w", err)
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging, cfg.Directories.Logs)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	log.Infow("Starting export",
		"config", configFile,
	)

	prompter := prompt.NewStdin()

	// Source database
	source := exportFile
	if source == "" {
		source, err = prompter.ChooseFile(cfg.Directories.Input)
		if err != nil {
			return abortedOrErr(err)
		}
	}
	log.Infow("Source selected", "source", source)

	// Output directory
	outDir := exportOut
	if outDir == "" {
		outDir, err = prompter.ChooseFolder(cfg.Directories.Output)
		if err != nil {
			return abortedOrErr(err)
		}
	}
	if err := fsutil.EnsureDirs(outDir); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	log.Infow("Output directory selected", "dir", outDir)

	// Export format
	registry := writer.NewRegistry(cfg.Export.PDFMaxRows)
	var format writer.Format
	if cfg.Export.Format != "" {
		format, err = writer.ParseFormat(cfg.Export.Format)
		if err != nil {
			return err
		}
	} else {
		format, err = prompter.ChooseFormat(registry.Available())
		if err != nil {
			return abortedOrErr(err)
		}
	}
	log.Infow("Export format selected", "format", format)

	// Source connection factory
	opener, err := database.NewOpener(&cfg.Database, source)
	if err != nil {
		return fmt.Errorf("failed to prepare source connection: %w", err)
	}

	// Handle graceful shutdown: the run stops between tables
	ctx := database.SetupSignalHandlerWithCallback(func(os.Signal) {
		log.Warn("Received shutdown signal - finishing current table...")
	})

	// Table catalog. Discovery failures are logged and leave an empty
	// catalog, which ends the run with the same message as a table-less
	// source.
	tables := discoverTables(ctx, opener, log)
	if len(tables) == 0 {
		return fmt.Errorf("no exportable tables found in %s", source)
	}

	// Table selection
	var selected []string
	if exportTables != "" {
		selected, err = selection.Parse(tables, exportTables)
		if err != nil {
			return fmt.Errorf("selection %q matches no tables", exportTables)
		}
	} else {
		selected, err = prompter.ChooseTables(tables)
		if err != nil {
			return abortedOrErr(err)
		}
	}
	log.Infow("Tables selected", "count", len(selected))

	// Build the export pipeline
	exp, err := exporter.New(opener, registry, format, outDir, cfg.Export.ChunkSize, log)
	if err != nil {
		return fmt.Errorf("failed to create exporter: %w", err)
	}
	orch, err := exporter.NewOrchestrator(exp, exporter.NewReporter(exportProgress), log)
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	fmt.Printf("\nExporting %d table(s) to %s as %s\n", len(selected), outDir, format)
	if cfg.Export.ChunkSize > 0 {
		fmt.Printf("Chunk size: %d rows\n", cfg.Export.ChunkSize)
	}
	fmt.Println("------------------------------------------------------------")

	stats, err := orch.Run(ctx, selected)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Export cancelled by user")
			fmt.Println("\nExport aborted by user.")
			return nil
		}
		return fmt.Errorf("export run failed: %w", err)
	}

	report.WriteSummary(stats, outDir, log)

	fmt.Printf("\nExport finished.\n")
	fmt.Printf("Output files: %s\n", outDir)
	if log.LogFile() != "" {
		fmt.Printf("Log file: %s\n", log.LogFile())
	}

	if stats.Failed > 0 {
		return fmt.Errorf("export completed with %d failed table(s)", stats.Failed)
	}
	return nil
}

// discoverTables opens a catalog connection, lists the tables and closes
// the connection again. Export connections are opened per table later.
func discoverTables(ctx context.Context, opener *database.Opener, log *logger.Logger) []string {
	db, err := opener.Open(ctx)
	if err != nil {
		log.Errorw("Failed to connect to source", "error", err)
		return nil
	}
	defer db.Close()

	tables, err := catalog.List(ctx, db, opener.Driver())
	if err != nil {
		log.Errorw("Failed to list tables", "error", err)
		return nil
	}
	log.Infow("Catalog loaded", "tables", len(tables))
	return tables
}

// abortedOrErr turns a user abort into a clean exit message.
func abortedOrErr(err error) error {
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Println("\nNo selection made. Exiting.")
		return nil
	}
	return err
}
