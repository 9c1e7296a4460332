package models

// EpisodeHeader is the column order of the "Episodes" block.
var EpisodeHeader = []string{
	"Season",
	"Episode",
	"Title",
	"Director",
	"Synopsis",
	"OTT Platform",
	"Air Date",
	"Runtime",
	"Rating",
}

// Episode represents a single episode record.
type Episode struct {
	Season   int    `json:"season"`
	Episode  int    `json:"episode"`
	Title    string `json:"title"`
	Director string `json:"director"`
	Synopsis string `json:"synopsis"`
	// Platform is the streaming service, e.g. "AMC/Netflix".
	Platform string `json:"platform"`
	// AirDate is an ISO date (YYYY-MM-DD). It is kept as text.
	AirDate string `json:"air_date"`
	// Runtime is free text such as "22 min".
	Runtime string  `json:"runtime"`
	Rating  float64 `json:"rating"`
}

// Row returns the cell values in EpisodeHeader order.
func (e Episode) Row() []interface{} {
	return []interface{}{
		e.Season,
		e.Episode,
		e.Title,
		e.Director,
		e.Synopsis,
		e.Platform,
		e.AirDate,
		e.Runtime,
		e.Rating,
	}
}
