package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Clean name unchanged",
			input:    "Customers",
			expected: "Customers",
		},
		{
			name:     "Slash and trailing dot",
			input:    "A/B.",
			expected: "A_B",
		},
		{
			name:     "All invalid characters",
			input:    `a<b>c:d"e/f\g|h?i*j`,
			expected: "a_b_c_d_e_f_g_h_i_j",
		},
		{
			name:     "Leading and trailing spaces",
			input:    "  report  ",
			expected: "report",
		},
		{
			name:     "Leading dots",
			input:    "..hidden",
			expected: "hidden",
		},
		{
			name:     "Interior dots kept",
			input:    "v1.2.backup",
			expected: "v1.2.backup",
		},
		{
			name:     "Embedded space kept",
			input:    "Order Details",
			expected: "Order Details",
		},
		{
			name:     "Non-ASCII kept",
			input:    "Kundendaten_Übersicht",
			expected: "Kundendaten_Übersicht",
		},
		{
			name:     "Only invalid characters",
			input:    `\/..`,
			expected: "__",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestEnsureDirs(t *testing.T) {
	base := t.TempDir()
	nested := filepath.Join(base, "export", "deep")

	err := EnsureDirs(filepath.Join(base, "input"), nested)
	require.NoError(t, err)

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call on existing directories is a no-op
	assert.NoError(t, EnsureDirs(nested))
}

func TestFileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0o644))

	size, err := FileSize(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	_, err = FileSize(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
