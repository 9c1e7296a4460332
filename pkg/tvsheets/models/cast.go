package models

// CastHeader is the column order of the "Main Cast" block.
var CastHeader = []string{
	"Actor Name",
	"Character",
	"Nationality",
	"Awards",
}

// CastMember represents one main cast entry.
type CastMember struct {
	ActorName   string `json:"actor_name"`
	Character   string `json:"character"`
	Nationality string `json:"nationality"`
	// Awards may be empty.
	Awards string `json:"awards"`
}

// Row returns the cell values in CastHeader order.
func (c CastMember) Row() []interface{} {
	return []interface{}{c.ActorName, c.Character, c.Nationality, c.Awards}
}
