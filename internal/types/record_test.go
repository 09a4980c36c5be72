package types

import (
	"testing"
	"time"
)

func TestRunStatistics_Counters(t *testing.T) {
	rs := NewRunStatistics(3)

	rs.Append(ExportRecord{Table: "Customers", Rows: 10, Bytes: 1024, Success: true})
	rs.Append(ExportRecord{Table: "Orders", Rows: 5, Bytes: 512, Success: true})
	rs.Append(ExportRecord{Table: "Broken", Success: false, Err: "table is empty"})
	rs.Finalize()

	if rs.Total != 3 {
		t.Errorf("Total = %d, expected 3", rs.Total)
	}
	if rs.Succeeded != 2 {
		t.Errorf("Succeeded = %d, expected 2", rs.Succeeded)
	}
	if rs.Failed != 1 {
		t.Errorf("Failed = %d, expected 1", rs.Failed)
	}
	if rs.Succeeded+rs.Failed != rs.Total {
		t.Errorf("Succeeded+Failed = %d, expected Total = %d", rs.Succeeded+rs.Failed, rs.Total)
	}
	if rs.CompletedAt.Before(rs.StartedAt) {
		t.Error("CompletedAt before StartedAt")
	}
}

func TestRunStatistics_InsertionOrder(t *testing.T) {
	rs := NewRunStatistics(2)
	rs.Append(ExportRecord{Table: "Orders", Success: true})
	rs.Append(ExportRecord{Table: "Customers", Success: false})

	if rs.Records[0].Table != "Orders" || rs.Records[1].Table != "Customers" {
		t.Errorf("records not in processing order: %v", rs.Records)
	}
}

func TestNormalizeValue(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{"byte slice", []byte("hello"), "hello"},
		{"time", ts, "2024-06-01 12:30:00"},
		{"nil", nil, nil},
		{"int64", int64(42), int64(42)},
		{"string", "plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeValue(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeValue(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTableData_Empty(t *testing.T) {
	td := &TableData{Columns: []string{"id"}}
	if !td.Empty() {
		t.Error("expected empty table")
	}
	td.Rows = append(td.Rows, []any{int64(1)})
	if td.Empty() || td.RowCount() != 1 {
		t.Error("expected one row")
	}
}
