package writer

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/goexport/internal/types"
)

// pdfCellChars bounds cell text so wide tables stay legible.
const pdfCellChars = 15

// PDFWriter renders a table onto a single page: title line, equal-width
// columns, font size shrinking with column count, and a capped number of
// data rows with a note when rows were cut off.
type PDFWriter struct {
	maxRows int
}

// NewPDFWriter creates a PDFWriter rendering at most maxRows data rows.
func NewPDFWriter(maxRows int) *PDFWriter {
	if maxRows <= 0 {
		maxRows = 50
	}
	return &PDFWriter{maxRows: maxRows}
}

func (w *PDFWriter) Write(data *types.TableData, path string) error {
	if len(data.Columns) == 0 {
		return fmt.Errorf("table has no columns")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("Table: "+data.Name), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colCount := len(data.Columns)
	colWidth := (pageWidth - left - right) / float64(colCount)

	// Font shrinks as columns grow, bounded to [6,10]
	fontSize := float64(60 / colCount)
	if fontSize < 6 {
		fontSize = 6
	} else if fontSize > 10 {
		fontSize = 10
	}

	pdf.SetFont("Arial", "B", fontSize)
	for _, col := range data.Columns {
		pdf.CellFormat(colWidth, 8, tr(truncateCell(col)), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", fontSize)
	renderRows := len(data.Rows)
	if renderRows > w.maxRows {
		renderRows = w.maxRows
	}
	for _, row := range data.Rows[:renderRows] {
		for i := 0; i < colCount; i++ {
			var cell string
			if i < len(row) {
				cell = truncateCell(cellString(row[i]))
			}
			pdf.CellFormat(colWidth, 6, tr(cell), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(data.Rows) > renderRows {
		pdf.Ln(5)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("(Shows %d of %d rows)", renderRows, len(data.Rows)), "", 1, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// truncateCell bounds cell text by display width, not bytes, so multibyte
// text does not get split mid-rune.
func truncateCell(s string) string {
	return runewidth.Truncate(s, pdfCellChars, "")
}
