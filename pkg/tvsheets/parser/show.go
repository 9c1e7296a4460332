package parser

import (
	"github.com/ukaji3/tvsheets-go/pkg/tvsheets/models"
	"github.com/xuri/excelize/v2"
)

// ReadShow decodes the show stored on sheetName.
func ReadShow(f *excelize.File, sheetName string) (models.Show, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Show{}, err
	}
	return DecodeShow(sheetName, rows)
}

// DecodeShow decodes the rows of one show sheet as returned by GetRows.
// Show.Name is set to sheetName.
//
// A cast member whose fields are all empty reads back as a blank row. It is
// dropped when it ends the block and rejected with a LayoutError otherwise,
// since nothing distinguishes it from trailing or stray blank rows.
func DecodeShow(sheetName string, rows [][]string) (models.Show, error) {
	show := models.Show{Name: sheetName}

	b := LocateBlocks(rows)
	if b.Episodes < 0 {
		return show, layoutErrorf(sheetName, 0, "missing %q label", episodesLabel)
	}
	if b.Cast < 0 {
		return show, layoutErrorf(sheetName, 0, "missing %q label", castLabel)
	}

	if err := checkHeader(sheetName, rows, b.Episodes+1, b.Cast, models.EpisodeHeader); err != nil {
		return show, err
	}
	// Episode rows end at the blank separator just above the cast label.
	for i := b.Episodes + 2; i < b.Cast-1; i++ {
		ep, err := decodeEpisode(sheetName, i+1, rows[i])
		if err != nil {
			return show, err
		}
		show.Episodes = append(show.Episodes, ep)
	}

	if err := checkHeader(sheetName, rows, b.Cast+1, len(rows), models.CastHeader); err != nil {
		return show, err
	}
	for i := b.Cast + 2; i < len(rows); i++ {
		if isBlankRow(rows[i]) {
			if isBlankRow(flatten(rows[i:])) {
				break
			}
			return show, layoutErrorf(sheetName, i+1, "blank row inside %q block", castLabel)
		}
		show.Cast = append(show.Cast, decodeCast(rows[i]))
	}

	return show, nil
}

func checkHeader(sheet string, rows [][]string, idx, limit int, want []string) error {
	if idx >= limit || idx >= len(rows) {
		return layoutErrorf(sheet, idx+1, "missing header row")
	}
	got := pad(rows[idx], len(want))
	if len(got) != len(want) {
		return layoutErrorf(sheet, idx+1, "header has %d columns, want %d", len(got), len(want))
	}
	for i, h := range want {
		if got[i] != h {
			return layoutErrorf(sheet, idx+1, "header column %d is %q, want %q", i+1, got[i], h)
		}
	}
	return nil
}

func decodeEpisode(sheet string, rowNum int, row []string) (models.Episode, error) {
	if isBlankRow(row) {
		return models.Episode{}, layoutErrorf(sheet, rowNum, "blank row inside %q block", episodesLabel)
	}
	row = pad(row, len(models.EpisodeHeader))

	season, ok := parseInt(row[0])
	if !ok {
		return models.Episode{}, layoutErrorf(sheet, rowNum, "season %q is not a number", row[0])
	}
	episode, ok := parseInt(row[1])
	if !ok {
		return models.Episode{}, layoutErrorf(sheet, rowNum, "episode %q is not a number", row[1])
	}
	rating, ok := parseFloat(row[8])
	if !ok {
		return models.Episode{}, layoutErrorf(sheet, rowNum, "rating %q is not a number", row[8])
	}

	return models.Episode{
		Season:   season,
		Episode:  episode,
		Title:    row[2],
		Director: row[3],
		Synopsis: row[4],
		Platform: row[5],
		AirDate:  row[6],
		Runtime:  row[7],
		Rating:   rating,
	}, nil
}

func decodeCast(row []string) models.CastMember {
	row = pad(row, len(models.CastHeader))
	return models.CastMember{
		ActorName:   row[0],
		Character:   row[1],
		Nationality: row[2],
		Awards:      row[3],
	}
}

func flatten(rows [][]string) []string {
	var out []string
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}
