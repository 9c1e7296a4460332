// Package models defines the TV show records written to and read from workbooks.
package models

// Show is one television series. It becomes one sheet.
type Show struct {
	// Name is the show title and the sheet name.
	Name string `json:"name"`
	// Episodes is written as the "Episodes" block, in order.
	Episodes []Episode `json:"episodes"`
	// Cast is written as the "Main Cast" block, in order.
	Cast []CastMember `json:"cast"`
}

// Clone returns a deep copy of s.
func (s Show) Clone() Show {
	out := Show{Name: s.Name}
	if s.Episodes != nil {
		out.Episodes = append([]Episode(nil), s.Episodes...)
	}
	if s.Cast != nil {
		out.Cast = append([]CastMember(nil), s.Cast...)
	}
	return out
}
