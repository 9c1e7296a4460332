package parser

import (
	"strings"

	"github.com/ukaji3/tvsheets-go/pkg/tvsheets/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas returns the print area of each sheet that defines one.
// Only the first range of a multi-range print area is kept.
func ExtractPrintAreas(f *excelize.File) map[string]models.PrintArea {
	result := make(map[string]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheet, area, ok := parsePrintAreaReference(dn.RefersTo)
		if !ok {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" {
			sheet = dn.Scope
		}
		if _, seen := result[sheet]; !seen {
			result[sheet] = area
		}
	}

	return result
}

// parsePrintAreaReference parses 'Sheet Name'!$A$1:$D$10 or Sheet1!$A$1:$D$10.
func parsePrintAreaReference(ref string) (string, models.PrintArea, bool) {
	part := strings.TrimSpace(strings.Split(ref, ",")[0])
	idx := strings.LastIndex(part, "!")
	if idx < 0 {
		return "", models.PrintArea{}, false
	}

	sheet := part[:idx]
	if len(sheet) >= 2 && strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}

	area, ok := parseRange(part[idx+1:])
	return sheet, area, ok
}

// parseRange parses a range string like $A$1:$D$10.
func parseRange(rangeStr string) (models.PrintArea, bool) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return models.PrintArea{}, false
	}

	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.PrintArea{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.PrintArea{}, false
	}

	return models.PrintArea{R1: r1, C1: c1, R2: r2, C2: c2}, true
}
