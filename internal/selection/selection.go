// Package selection parses the operator's table selection expression
// against a discovered catalog.
package selection

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// ErrNoSelection is returned when the expression parses to nothing.
// Distinct from an empty catalog, which the caller handles earlier.
var ErrNoSelection = errors.New("no valid selection")

// Parse resolves a selection expression to a sorted, deduplicated subset of
// the catalog.
//
// Grammar: an empty expression or "all" selects everything. Otherwise a
// comma-separated list, each item a 1-based index into the sorted catalog,
// an inclusive range "start-end", or a literal table name (exact match).
// The two syntaxes are not mixed: if the input contains any digit or
// hyphen the whole expression is parsed as numbers and ranges, otherwise
// as names. Out-of-range indices are silently dropped.
func Parse(catalog []string, expr string) ([]string, error) {
	expr = strings.TrimSpace(expr)

	if expr == "" || strings.EqualFold(expr, "all") || strings.EqualFold(expr, "alle") {
		if len(catalog) == 0 {
			return nil, ErrNoSelection
		}
		return dedupSort(catalog), nil
	}

	var selected []string
	if isNumericExpr(expr) {
		selected = parseNumeric(catalog, expr)
	} else {
		selected = parseNames(catalog, expr)
	}

	if len(selected) == 0 {
		return nil, ErrNoSelection
	}
	return dedupSort(selected), nil
}

// isNumericExpr decides the detection pass: any digit or hyphen anywhere
// switches the whole input to index/range syntax.
func isNumericExpr(expr string) bool {
	return strings.ContainsAny(expr, "0123456789-")
}

// parseNumeric resolves indices and inclusive ranges. Malformed tokens and
// out-of-range indices contribute nothing.
func parseNumeric(catalog []string, expr string) []string {
	var selected []string

	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.Contains(part, "-") {
			bounds := strings.SplitN(part, "-", 2)
			start, err1 := strconv.Atoi(strings.TrimSpace(bounds[0]))
			end, err2 := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if err1 != nil || err2 != nil {
				continue
			}
			for i := start; i <= end; i++ {
				if i >= 1 && i <= len(catalog) {
					selected = append(selected, catalog[i-1])
				}
			}
			continue
		}

		i, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		if i >= 1 && i <= len(catalog) {
			selected = append(selected, catalog[i-1])
		}
	}

	return selected
}

// parseNames resolves literal table names, case-sensitively.
func parseNames(catalog []string, expr string) []string {
	known := make(map[string]bool, len(catalog))
	for _, name := range catalog {
		known[name] = true
	}

	var selected []string
	for _, part := range strings.Split(expr, ",") {
		name := strings.TrimSpace(part)
		if known[name] {
			selected = append(selected, name)
		}
	}
	return selected
}

// dedupSort returns a sorted copy without duplicates.
func dedupSort(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}
