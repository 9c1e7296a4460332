package parser

import "fmt"

// LayoutError reports a sheet whose rows do not follow the show layout.
type LayoutError struct {
	Sheet string
	// Row is the 1-based row number, 0 when the problem is not tied to a row.
	Row    int
	Reason string
}

func (e *LayoutError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("sheet %q: %s", e.Sheet, e.Reason)
	}
	return fmt.Sprintf("sheet %q row %d: %s", e.Sheet, e.Row, e.Reason)
}

func layoutErrorf(sheet string, row int, format string, args ...interface{}) *LayoutError {
	return &LayoutError{Sheet: sheet, Row: row, Reason: fmt.Sprintf(format, args...)}
}
