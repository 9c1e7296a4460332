package tvsheets

import (
	"path/filepath"

	"github.com/ukaji3/tvsheets-go/pkg/tvsheets/models"
	"github.com/ukaji3/tvsheets-go/pkg/tvsheets/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads a workbook written by Export and decodes every sheet.
func Load(path string) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	printAreas := parser.ExtractPrintAreas(f)

	wb := &models.WorkbookData{BookName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		show, err := parser.ReadShow(f, sheetName)
		if err != nil {
			return nil, err
		}

		sheet := models.SheetData{Name: sheetName, Show: show}
		if area, ok := printAreas[sheetName]; ok {
			a := area
			sheet.PrintArea = &a
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}
