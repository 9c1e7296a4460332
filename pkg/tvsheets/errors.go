package tvsheets

import (
	"errors"
	"fmt"
)

// ErrNoShows indicates an export was requested with an empty catalog.
var ErrNoShows = errors.New("no shows to export")

// Export stages reported by SheetError.
const (
	StageCreate    = "create"
	StageEpisodes  = "episodes"
	StageCast      = "cast"
	StagePrintArea = "print_area"
)

// SheetError represents a failure while writing one show sheet.
type SheetError struct {
	SheetName string
	Stage     string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, stage string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
