// Package writer serializes tabular data into the supported export formats.
package writer

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/goexport/internal/types"
)

// Format identifies an export format. Parsed and validated once at input
// time so later dispatch cannot hit an unknown case.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

// ParseFormat converts user input to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format %q (must be csv, xlsx, pdf, or json)", s)
	}
}

// Extension returns the filename extension including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// String returns the uppercase display name.
func (f Format) String() string {
	return strings.ToUpper(string(f))
}

// Writer serializes one table to a destination path.
type Writer interface {
	Write(data *types.TableData, path string) error
}

// Registry holds the fixed table of writer implementations, preserving the
// order formats are offered to the operator.
type Registry struct {
	writers *orderedmap.OrderedMap[Format, Writer]
}

// NewRegistry creates a registry with all supported writers.
func NewRegistry(pdfMaxRows int) *Registry {
	m := orderedmap.NewOrderedMap[Format, Writer]()
	m.Set(FormatCSV, &CSVWriter{})
	m.Set(FormatXLSX, &XLSXWriter{})
	m.Set(FormatPDF, NewPDFWriter(pdfMaxRows))
	m.Set(FormatJSON, &JSONWriter{})
	return &Registry{writers: m}
}

// Get returns the writer for a format.
func (r *Registry) Get(f Format) (Writer, bool) {
	return r.writers.Get(f)
}

// Available returns the offered formats in registration order. Evaluated
// once during configuration; the selection step only sees formats listed
// here.
func (r *Registry) Available() []Format {
	return r.writers.Keys()
}

// cellString renders a normalized cell value for text-based formats.
func cellString(v any) string {
	v = types.NormalizeValue(v)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
