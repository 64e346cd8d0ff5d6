package models

// regionStates maps the dealer regions in the sales table to the US state
// they are in, for map charts.
var regionStates = map[string]string{
	"Austin":     "TX",
	"Aurora":     "IL",
	"Greenville": "SC",
	"Janesville": "WI",
	"Middletown": "OH",
	"Pasco":      "WA",
	"Scottsdale": "AZ",
}

// StateOf returns the two-letter state code of a dealer region, or "" when
// the region is not known.
func StateOf(region string) string {
	return regionStates[region]
}
