package models

// WorkbookData represents a workbook read back from disk.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds one entry per sheet in workbook order.
	Sheets []SheetData `json:"sheets"`
}

// SheetData represents a single decoded show sheet.
type SheetData struct {
	// Name is the sheet name as stored in the workbook.
	Name string `json:"name"`
	// Show is the decoded show. Show.Name equals Name.
	Show Show `json:"show"`
	// PrintArea is the sheet's print area, nil if none is defined.
	PrintArea *PrintArea `json:"print_area,omitempty"`
}

// Shows returns the decoded shows in sheet order.
func (w *WorkbookData) Shows() []Show {
	shows := make([]Show, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		shows = append(shows, s.Show)
	}
	return shows
}
