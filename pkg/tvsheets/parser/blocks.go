package parser

// Block labels, mirrored from the writer.
const (
	episodesLabel = "Episodes"
	castLabel     = "Main Cast"
)

// Blocks holds 0-based row indexes of the two label rows in a show sheet.
// A missing label is -1.
type Blocks struct {
	Episodes int
	Cast     int
}

// LocateBlocks finds the "Episodes" and "Main Cast" label rows.
// A label row has the label in its first cell and nothing else.
// The cast label must come after a blank row that follows the episode block.
func LocateBlocks(rows [][]string) Blocks {
	b := Blocks{Episodes: -1, Cast: -1}
	for i, row := range rows {
		if b.Episodes < 0 {
			if isLabelRow(row, episodesLabel) {
				b.Episodes = i
			}
			continue
		}
		if isLabelRow(row, castLabel) && i > 0 && isBlankRow(rows[i-1]) {
			b.Cast = i
			break
		}
	}
	return b
}

func isLabelRow(row []string, label string) bool {
	if len(row) == 0 || row[0] != label {
		return false
	}
	return isBlankRow(row[1:])
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
