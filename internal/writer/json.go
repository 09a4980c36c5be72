package writer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dbsmedya/goexport/internal/types"
)

// JSONWriter writes an array of row objects keyed by column name,
// pretty-printed with two-space indent. Non-ASCII characters are emitted
// literally, not escaped.
type JSONWriter struct{}

func (w *JSONWriter) Write(data *types.TableData, path string) error {
	records := make([]map[string]any, 0, len(data.Rows))
	for _, row := range data.Rows {
		record := make(map[string]any, len(data.Columns))
		for i, col := range data.Columns {
			var v any
			if i < len(row) {
				v = types.NormalizeValue(row[i])
			}
			record[col] = v
		}
		records = append(records, record)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return f.Close()
}
