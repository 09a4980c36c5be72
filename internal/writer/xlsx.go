package writer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dbsmedya/goexport/internal/types"
)

// XLSXWriter writes a single-sheet workbook with a header row and no row
// index column.
type XLSXWriter struct{}

func (w *XLSXWriter) Write(data *types.TableData, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	header := make([]any, len(data.Columns))
	for i, col := range data.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range data.Rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = types.NormalizeValue(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
