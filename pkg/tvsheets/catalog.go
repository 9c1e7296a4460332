package tvsheets

import "github.com/ukaji3/tvsheets-go/pkg/tvsheets/models"

// catalog is the built-in dataset. Only Catalog hands it out, as a copy.
var catalog = []models.Show{
	{
		Name: "Friends",
		Episodes: []models.Episode{
			{Season: 1, Episode: 1, Title: "The One Where Monica Gets a Roommate", Director: "James Burrows", Synopsis: "Monica and the gang introduce Rachel to the real world.", Platform: "Max", AirDate: "1994-09-22", Runtime: "22 min", Rating: 8.1},
		},
		Cast: []models.CastMember{
			{ActorName: "Jennifer Aniston", Character: "Rachel Green", Nationality: "American", Awards: "Emmy, Golden Globe"},
			{ActorName: "Courteney Cox", Character: "Monica Geller", Nationality: "American", Awards: ""},
			{ActorName: "Lisa Kudrow", Character: "Phoebe Buffay", Nationality: "American", Awards: "Emmy"},
			{ActorName: "Matt LeBlanc", Character: "Joey Tribbiani", Nationality: "American", Awards: "Emmy Nominee"},
			{ActorName: "Matthew Perry", Character: "Chandler Bing", Nationality: "Canadian-American", Awards: "Emmy Nominee"},
			{ActorName: "David Schwimmer", Character: "Ross Geller", Nationality: "American", Awards: "Emmy Nominee"},
		},
	},
	{
		Name: "Breaking Bad",
		Episodes: []models.Episode{
			{Season: 1, Episode: 1, Title: "Pilot", Director: "Vince Gilligan", Synopsis: "Walter White turns to making meth after a cancer diagnosis.", Platform: "AMC/Netflix", AirDate: "2008-01-20", Runtime: "59 min", Rating: 9.1},
		},
		Cast: []models.CastMember{
			{ActorName: "Bryan Cranston", Character: "Walter White", Nationality: "American", Awards: "Emmy, Golden Globe"},
			{ActorName: "Aaron Paul", Character: "Jesse Pinkman", Nationality: "American", Awards: "Emmy"},
			{ActorName: "Anna Gunn", Character: "Skyler White", Nationality: "American", Awards: "Emmy"},
			{ActorName: "Dean Norris", Character: "Hank Schrader", Nationality: "American", Awards: ""},
			{ActorName: "Betsy Brandt", Character: "Marie Schrader", Nationality: "American", Awards: ""},
			{ActorName: "RJ Mitte", Character: "Walter White Jr.", Nationality: "American", Awards: ""},
		},
	},
	{
		Name: "Prison Break",
		Episodes: []models.Episode{
			{Season: 1, Episode: 1, Title: "Pilot", Director: "Brett Ratner", Synopsis: "Michael Scofield gets imprisoned to break out his brother Lincoln.", Platform: "Fox/Hulu", AirDate: "2005-08-29", Runtime: "45 min", Rating: 8.7},
		},
		Cast: []models.CastMember{
			{ActorName: "Wentworth Miller", Character: "Michael Scofield", Nationality: "British-American", Awards: "Golden Globe Nominee"},
			{ActorName: "Dominic Purcell", Character: "Lincoln Burrows", Nationality: "Australian", Awards: ""},
			{ActorName: "Sarah Wayne Callies", Character: "Sara Tancredi", Nationality: "American", Awards: ""},
			{ActorName: "Amaury Nolasco", Character: "Fernando Sucre", Nationality: "Puerto Rican", Awards: ""},
			{ActorName: "Robert Knepper", Character: `Theodore "T-Bag" Bagwell`, Nationality: "American", Awards: ""},
		},
	},
	{
		Name: "Lost",
		Episodes: []models.Episode{
			{Season: 1, Episode: 1, Title: "Pilot (Part 1)", Director: "J.J. Abrams", Synopsis: "Survivors of Oceanic Flight 815 crash on a mysterious island.", Platform: "ABC/Hulu", AirDate: "2004-09-22", Runtime: "42 min", Rating: 9.1},
		},
		Cast: []models.CastMember{
			{ActorName: "Matthew Fox", Character: "Jack Shephard", Nationality: "American", Awards: ""},
			{ActorName: "Evangeline Lilly", Character: "Kate Austen", Nationality: "Canadian", Awards: ""},
			{ActorName: "Terry O'Quinn", Character: "John Locke", Nationality: "American", Awards: "Emmy"},
			{ActorName: "Josh Holloway", Character: `James "Sawyer" Ford`, Nationality: "American", Awards: ""},
			{ActorName: "Jorge Garcia", Character: `Hugo "Hurley" Reyes`, Nationality: "American", Awards: ""},
			{ActorName: "Naveen Andrews", Character: "Sayid Jarrah", Nationality: "British", Awards: ""},
		},
	},
}

// Catalog returns a copy of the built-in show dataset in sheet order.
func Catalog() []models.Show {
	shows := make([]models.Show, len(catalog))
	for i, s := range catalog {
		shows[i] = s.Clone()
	}
	return shows
}
