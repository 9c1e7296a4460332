// Package tvsheets writes TV show catalogs to xlsx workbooks and reads them back.
package tvsheets

import "github.com/rs/zerolog"

// DefaultFileName is the workbook written by the CLI.
const DefaultFileName = "TV_Shows_DummyData.xlsx"

const (
	// EpisodesLabel is the single-cell row opening the episode block.
	EpisodesLabel = "Episodes"
	// CastLabel is the single-cell row opening the cast block.
	CastLabel = "Main Cast"
)

// Options configures export behavior.
type Options struct {
	// Logger receives per-sheet debug events.
	Logger zerolog.Logger
	// SkipPrintArea disables the per-sheet print area definition.
	SkipPrintArea bool
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{
		Logger: zerolog.Nop(),
	}
}
