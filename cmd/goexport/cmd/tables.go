package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goexport/internal/catalog"
	"github.com/dbsmedya/goexport/internal/config"
	"github.com/dbsmedya/goexport/internal/database"
)

var tablesFile string

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List exportable tables in a source database",
	Long: `Tables connects to the source database, lists its user tables and
exits. System tables are filtered out. The printed numbers are the same
ones the export selection accepts.

Example:
  goexport tables --file input/crm.db`,
	RunE: runTables,
}

func init() {
	tablesCmd.Flags().StringVarP(&tablesFile, "file", "f", "",
		"Source database file or MySQL DSN (required)")
	tablesCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opener, err := database.NewOpener(&cfg.Database, tablesFile)
	if err != nil {
		return fmt.Errorf("failed to prepare source connection: %w", err)
	}

	ctx := cmd.Context()
	db, err := opener.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to source: %w", err)
	}
	defer db.Close()

	tables, err := catalog.List(ctx, db, opener.Driver())
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	if len(tables) == 0 {
		cmd.Printf("No exportable tables found in %s\n", tablesFile)
		return nil
	}

	cmd.Printf("Tables in %s:\n\n", tablesFile)
	for i, table := range tables {
		cmd.Printf("  %2d. %s\n", i+1, table)
	}
	cmd.Printf("\nTotal: %d table(s)\n", len(tables))
	return nil
}
