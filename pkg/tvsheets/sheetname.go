package tvsheets

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSheetNameLength is the Excel limit on sheet name length, in characters.
const MaxSheetNameLength = 31

const invalidSheetChars = `:\/?*[]`

// reservedSheetName is refused by Excel in any letter case.
const reservedSheetName = "History"

// SanitizeSheetName makes name acceptable as an Excel sheet name.
// Forbidden characters are dropped, leading and trailing apostrophes are
// trimmed and the result is cut to MaxSheetNameLength characters.
// The reserved name "History" gets a " (2)" suffix.
func SanitizeSheetName(name string) string {
	out := sanitizeSheetName(name)
	if strings.EqualFold(out, reservedSheetName) {
		return out + " (2)"
	}
	return out
}

func sanitizeSheetName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(invalidSheetChars, r) {
			continue
		}
		b.WriteRune(r)
	}
	out := strings.Trim(strings.TrimSpace(b.String()), "'")
	out = truncateRunes(out, MaxSheetNameLength)
	out = strings.TrimRight(out, "'")
	if out == "" {
		return "Sheet"
	}
	return out
}

// sheetNamer hands out sanitized names that are unique within one workbook.
// Excel compares sheet names case-insensitively. The reserved name counts as taken.
type sheetNamer struct {
	used map[string]struct{}
}

func newSheetNamer() *sheetNamer {
	return &sheetNamer{used: map[string]struct{}{
		strings.ToLower(reservedSheetName): {},
	}}
}

func (n *sheetNamer) next(show string) string {
	base := sanitizeSheetName(show)
	name := base
	for i := 2; n.taken(name); i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		name = truncateRunes(base, MaxSheetNameLength-utf8.RuneCountInString(suffix)) + suffix
	}
	n.used[strings.ToLower(name)] = struct{}{}
	return name
}

func (n *sheetNamer) taken(name string) bool {
	_, ok := n.used[strings.ToLower(name)]
	return ok
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
