package cmd

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestDatabase builds a small SQLite file with user and system tables.
func createTestDatabase(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	stmts := []string{
		`CREATE TABLE Customers (ID INTEGER PRIMARY KEY, Name TEXT, City TEXT)`,
		`CREATE TABLE Orders (ID INTEGER PRIMARY KEY, CustomerID INTEGER, Total REAL)`,
		`CREATE TABLE MSysAccessStorage (ID INTEGER)`,
		`INSERT INTO Customers VALUES (1, 'Müller GmbH', 'Berlin'), (2, 'Smith & Co', 'London')`,
		`INSERT INTO Orders VALUES (1, 1, 99.5), (2, 1, 12.0), (3, 2, 7.25)`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}

func TestTablesCommandStructure(t *testing.T) {
	assert.NotNil(t, tablesCmd)
	assert.Equal(t, "tables", tablesCmd.Use)
	assert.NotEmpty(t, tablesCmd.Short)
	assert.NotNil(t, tablesCmd.RunE)
}

func TestRunTables(t *testing.T) {
	originalFile := tablesFile
	defer func() { tablesFile = originalFile }()

	tablesFile = createTestDatabase(t)

	var buf bytes.Buffer
	tablesCmd.SetOut(&buf)
	tablesCmd.SetContext(context.Background())

	err := runTables(tablesCmd, nil)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "1. Customers")
	assert.Contains(t, output, "2. Orders")
	assert.Contains(t, output, "Total: 2 table(s)")
	assert.NotContains(t, output, "MSysAccessStorage")
}

func TestRunTables_EmptyDatabase(t *testing.T) {
	originalFile := tablesFile
	defer func() { tablesFile = originalFile }()

	tablesFile = filepath.Join(t.TempDir(), "empty.db")

	var buf bytes.Buffer
	tablesCmd.SetOut(&buf)
	tablesCmd.SetContext(context.Background())

	err := runTables(tablesCmd, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No exportable tables found")
}
