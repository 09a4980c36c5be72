package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/goexport/internal/types"
)

func pdfData(rows int) *types.TableData {
	data := &types.TableData{
		Name:    "Orders",
		Columns: []string{"ID", "Customer", "Total"},
	}
	for i := 1; i <= rows; i++ {
		data.Rows = append(data.Rows, []any{int64(i), fmt.Sprintf("Customer %d", i), float64(i) * 9.99})
	}
	return data
}

func TestPDFWriter_Basic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.pdf")

	require.NoError(t, NewPDFWriter(50).Write(pdfData(3), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(raw) > 0)
	assert.Equal(t, "%PDF", string(raw[:4]))

	content := string(raw)
	assert.Contains(t, content, "Table: Orders")
	assert.NotContains(t, content, "Shows", "no truncation note below the cap")
}

func TestPDFWriter_RowCapNote(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.pdf")

	require.NoError(t, NewPDFWriter(50).Write(pdfData(51), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Shows 50 of 51 rows")
}

func TestPDFWriter_ExactCapNoNote(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.pdf")

	require.NoError(t, NewPDFWriter(50).Write(pdfData(50), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Shows")
}

func TestPDFWriter_NoColumns(t *testing.T) {
	err := NewPDFWriter(50).Write(&types.TableData{Name: "Empty"}, filepath.Join(t.TempDir(), "t.pdf"))
	assert.Error(t, err)
}

func TestPDFWriter_ManyColumnsShrinkFont(t *testing.T) {
	data := &types.TableData{Name: "Wide"}
	for i := 0; i < 20; i++ {
		data.Columns = append(data.Columns, fmt.Sprintf("Col%02d", i))
	}
	data.Rows = [][]any{make([]any, 20)}

	path := filepath.Join(t.TempDir(), "wide.pdf")
	require.NoError(t, NewPDFWriter(50).Write(data, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestTruncateCell(t *testing.T) {
	assert.Equal(t, "short", truncateCell("short"))
	assert.Equal(t, "exactly15chars!", truncateCell("exactly15chars!"))
	assert.Len(t, truncateCell("this is much longer than fifteen"), 15)
}
