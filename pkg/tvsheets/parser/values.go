package parser

import (
	"strconv"
	"strings"
)

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func parseInt(s string) (int, bool) {
	switch v := parseValue(strings.TrimSpace(s)).(type) {
	case int64:
		return int(v), true
	case float64:
		// Whole numbers can come back as "1.0" from other writers.
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	switch v := parseValue(strings.TrimSpace(s)).(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// pad returns row extended with empty cells to n columns.
// Reading trims trailing empty cells, e.g. an empty Awards value.
func pad(row []string, n int) []string {
	if len(row) >= n {
		return row
	}
	out := make([]string, n)
	copy(out, row)
	return out
}
