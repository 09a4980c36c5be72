// Package fsutil provides filesystem helpers for GoExport.
package fsutil

import "strings"

// invalidFilenameChars are characters rejected by at least one common
// filesystem. Each occurrence is replaced with an underscore.
const invalidFilenameChars = `<>:"/\|?*`

// SanitizeFilename maps an arbitrary string (typically a table name) to a
// filesystem-safe name. Invalid characters become underscores, then leading
// and trailing dots and spaces are stripped.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(invalidFilenameChars, r) {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), ". ")
}
