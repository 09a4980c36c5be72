package types

import "time"

// NormalizeValue converts a raw database/sql driver value into a type
// suitable for serialization. Byte slices become strings (drivers return
// text columns as []byte), timestamps are formatted, nil stays nil.
func NormalizeValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	default:
		return v
	}
}

// NormalizeRow applies NormalizeValue to every cell of a row in place.
func NormalizeRow(row []any) {
	for i, v := range row {
		row[i] = NormalizeValue(v)
	}
}
