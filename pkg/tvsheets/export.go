package tvsheets

import (
	"fmt"

	"github.com/ukaji3/tvsheets-go/pkg/tvsheets/models"
	"github.com/xuri/excelize/v2"
)

// Export writes one sheet per show to path, overwriting any existing file.
func Export(shows []models.Show, path string, opts Options) error {
	if len(shows) == 0 {
		return ErrNoShows
	}
	log := opts.Logger

	f := excelize.NewFile()
	defer f.Close()

	// The first show takes over the default sheet so the workbook holds show sheets only.
	defaultSheet := f.GetSheetName(0)
	namer := newSheetNamer()

	for i, show := range shows {
		sheet := namer.next(show.Name)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return NewSheetError(sheet, StageCreate, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return NewSheetError(sheet, StageCreate, err)
		}

		area, err := writeShow(f, sheet, show)
		if err != nil {
			return err
		}

		if !opts.SkipPrintArea {
			if err := definePrintArea(f, sheet, area); err != nil {
				return NewSheetError(sheet, StagePrintArea, err)
			}
		}

		log.Debug().
			Str("show", show.Name).
			Str("sheet", sheet).
			Int("episodes", len(show.Episodes)).
			Int("cast", len(show.Cast)).
			Msg("Sheet written")
	}

	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("sheets", len(shows)).Msg("Workbook saved")
	return nil
}

// writeShow lays out both blocks of a show and returns the used range.
func writeShow(f *excelize.File, sheet string, show models.Show) (models.PrintArea, error) {
	w := &rowWriter{f: f, sheet: sheet}

	w.append(EpisodesLabel)
	w.append(headerRow(models.EpisodeHeader)...)
	for _, ep := range show.Episodes {
		w.append(ep.Row()...)
	}
	if w.err != nil {
		return models.PrintArea{}, NewSheetError(sheet, StageEpisodes, w.err)
	}

	w.skip()
	w.append(CastLabel)
	w.append(headerRow(models.CastHeader)...)
	for _, c := range show.Cast {
		w.append(c.Row()...)
	}
	if w.err != nil {
		return models.PrintArea{}, NewSheetError(sheet, StageCast, w.err)
	}

	return models.PrintArea{R1: 1, C1: 1, R2: w.row, C2: w.maxCol}, nil
}

// rowWriter appends rows to a sheet starting at A1. The first error sticks.
type rowWriter struct {
	f      *excelize.File
	sheet  string
	row    int
	maxCol int
	err    error
}

func (w *rowWriter) append(values ...interface{}) {
	if w.err != nil {
		return
	}
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(w.sheet, cell, &values); err != nil {
		w.err = err
		return
	}
	if len(values) > w.maxCol {
		w.maxCol = len(values)
	}
}

// skip leaves the next row empty.
func (w *rowWriter) skip() {
	w.row++
}

func headerRow(header []string) []interface{} {
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	return row
}

func definePrintArea(f *excelize.File, sheet string, area models.PrintArea) error {
	ref, err := area.Reference(sheet)
	if err != nil {
		return err
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: ref,
		Scope:    sheet,
	})
}
