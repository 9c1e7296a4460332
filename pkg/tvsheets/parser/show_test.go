package parser

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ukaji3/tvsheets-go/pkg/tvsheets/models"
	"github.com/xuri/excelize/v2"
)

func episodeHeader() []string { return append([]string(nil), models.EpisodeHeader...) }
func castHeader() []string    { return append([]string(nil), models.CastHeader...) }

func TestDecodeShow(t *testing.T) {
	rows := [][]string{
		{"Episodes"},
		episodeHeader(),
		{"1", "1", "Pilot", "Vince Gilligan", "Walter White turns to making meth after a cancer diagnosis.", "AMC/Netflix", "2008-01-20", "59 min", "9.1"},
		{"1", "2", "Cat's in the Bag...", "Adam Bernstein", "", "AMC/Netflix", "2008-01-27", "48 min", "8.6"},
		{},
		{"Main Cast"},
		castHeader(),
		{"Bryan Cranston", "Walter White", "American", "Emmy, Golden Globe"},
		{"Dean Norris", "Hank Schrader", "American"},
	}

	show, err := DecodeShow("Breaking Bad", rows)
	if err != nil {
		t.Fatalf("DecodeShow failed: %v", err)
	}

	expected := models.Show{
		Name: "Breaking Bad",
		Episodes: []models.Episode{
			{Season: 1, Episode: 1, Title: "Pilot", Director: "Vince Gilligan", Synopsis: "Walter White turns to making meth after a cancer diagnosis.", Platform: "AMC/Netflix", AirDate: "2008-01-20", Runtime: "59 min", Rating: 9.1},
			{Season: 1, Episode: 2, Title: "Cat's in the Bag...", Director: "Adam Bernstein", Platform: "AMC/Netflix", AirDate: "2008-01-27", Runtime: "48 min", Rating: 8.6},
		},
		Cast: []models.CastMember{
			{ActorName: "Bryan Cranston", Character: "Walter White", Nationality: "American", Awards: "Emmy, Golden Globe"},
			{ActorName: "Dean Norris", Character: "Hank Schrader", Nationality: "American"},
		},
	}
	if !reflect.DeepEqual(show, expected) {
		t.Errorf("DecodeShow = %+v, expected %+v", show, expected)
	}
}

func TestDecodeShowEmptyBlocks(t *testing.T) {
	rows := [][]string{
		{"Episodes"},
		episodeHeader(),
		nil,
		{"Main Cast"},
		castHeader(),
	}

	show, err := DecodeShow("Empty", rows)
	if err != nil {
		t.Fatalf("DecodeShow failed: %v", err)
	}
	if len(show.Episodes) != 0 || len(show.Cast) != 0 {
		t.Errorf("Expected empty show, got %+v", show)
	}
}

func TestDecodeShowBlankCastMember(t *testing.T) {
	rows := [][]string{
		{"Episodes"},
		episodeHeader(),
		{},
		{"Main Cast"},
		castHeader(),
		{"Naveen Andrews", "Sayid Jarrah", "British"},
		{},
	}

	show, err := DecodeShow("Lost", rows)
	if err != nil {
		t.Fatalf("DecodeShow failed: %v", err)
	}
	expected := []models.CastMember{{ActorName: "Naveen Andrews", Character: "Sayid Jarrah", Nationality: "British"}}
	if !reflect.DeepEqual(show.Cast, expected) {
		t.Errorf("Cast = %+v, expected %+v", show.Cast, expected)
	}
}

func TestDecodeShowLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		row  int
	}{
		{"no episodes label", [][]string{{"Main Cast"}, castHeader()}, 0},
		{"no cast label", [][]string{{"Episodes"}, episodeHeader()}, 0},
		{"cast label without separator", [][]string{{"Episodes"}, episodeHeader(), {"Main Cast"}, castHeader()}, 0},
		{"wrong episode header", [][]string{{"Episodes"}, {"Season", "Title"}, {}, {"Main Cast"}, castHeader()}, 2},
		{"missing cast header", [][]string{{"Episodes"}, episodeHeader(), {}, {"Main Cast"}}, 5},
		{"bad season", [][]string{{"Episodes"}, episodeHeader(), {"one", "1", "", "", "", "", "", "", "8"}, {}, {"Main Cast"}, castHeader()}, 3},
		{"bad rating", [][]string{{"Episodes"}, episodeHeader(), {"1", "1", "", "", "", "", "", "", "great"}, {}, {"Main Cast"}, castHeader()}, 3},
		{"blank cast member before others", [][]string{{"Episodes"}, episodeHeader(), {}, {"Main Cast"}, castHeader(), {"", "", "", ""}, {"D", "E", "F"}}, 6},
		{"gap in cast", [][]string{{"Episodes"}, episodeHeader(), {}, {"Main Cast"}, castHeader(), {"A", "B", "C"}, {}, {"D", "E", "F"}}, 7},
	}

	for _, tt := range tests {
		_, err := DecodeShow("Broken", tt.rows)
		var layoutErr *LayoutError
		if !errors.As(err, &layoutErr) {
			t.Errorf("%s: expected LayoutError, got %v", tt.name, err)
			continue
		}
		if layoutErr.Row != tt.row {
			t.Errorf("%s: error row = %d, expected %d (%v)", tt.name, layoutErr.Row, tt.row, err)
		}
	}
}

func TestReadShow(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetSheetRow(sheetName, "A1", &[]interface{}{"Episodes"})
	f.SetSheetRow(sheetName, "A2", &[]interface{}{"Season", "Episode", "Title", "Director", "Synopsis", "OTT Platform", "Air Date", "Runtime", "Rating"})
	f.SetSheetRow(sheetName, "A3", &[]interface{}{1, 1, "Pilot (Part 1)", "J.J. Abrams", "Survivors of Oceanic Flight 815 crash on a mysterious island.", "ABC/Hulu", "2004-09-22", "42 min", 9.1})
	f.SetSheetRow(sheetName, "A5", &[]interface{}{"Main Cast"})
	f.SetSheetRow(sheetName, "A6", &[]interface{}{"Actor Name", "Character", "Nationality", "Awards"})
	f.SetSheetRow(sheetName, "A7", &[]interface{}{"Terry O'Quinn", "John Locke", "American", "Emmy"})
	f.SetSheetRow(sheetName, "A8", &[]interface{}{"Matthew Fox", "Jack Shephard", "American", ""})

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	show, err := ReadShow(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadShow failed: %v", err)
	}

	if len(show.Episodes) != 1 {
		t.Fatalf("Expected 1 episode, got %d", len(show.Episodes))
	}
	ep := show.Episodes[0]
	if ep.Season != 1 || ep.Episode != 1 || ep.Rating != 9.1 || ep.Director != "J.J. Abrams" {
		t.Errorf("Unexpected episode: %+v", ep)
	}
	if len(show.Cast) != 2 {
		t.Fatalf("Expected 2 cast members, got %d", len(show.Cast))
	}
	if show.Cast[1] != (models.CastMember{ActorName: "Matthew Fox", Character: "Jack Shephard", Nationality: "American"}) {
		t.Errorf("Unexpected cast member: %+v", show.Cast[1])
	}

	if _, err := ReadShow(f2, "Missing"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}
