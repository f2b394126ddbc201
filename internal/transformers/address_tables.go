package transformers

import "strings"

// street suffixes, keyed by lowercase spelling
var streetTypes = map[string]string{
	"dr": "Dr", "drive": "Dr",
	"st": "St", "street": "St",
	"ave": "Ave", "av": "Ave", "avenue": "Ave",
	"rd": "Rd", "road": "Rd",
	"blvd": "Blvd", "boulevard": "Blvd",
	"ln": "Ln", "lane": "Ln",
	"cir": "Cir", "circle": "Cir",
	"ct": "Ct", "court": "Ct",
	"ter": "Ter", "terrace": "Ter",
	"pl": "Pl", "place": "Pl",
	"hwy": "Hwy", "highway": "Hwy",
	"way": "Way",
	"pkwy": "Pkwy", "parkway": "Pkwy",
	"trl": "Trl", "trail": "Trl",
	"sq": "Sq", "square": "Sq",
	"plz": "Plz", "plaza": "Plz",
	"aly": "Aly", "alley": "Aly",
	"expy": "Expy", "expressway": "Expy",
	"fwy": "Fwy", "freeway": "Fwy",
	"loop": "Loop",
	"pike": "Pike",
	"row": "Row",
	"walk": "Walk",
	"xing": "Xing", "crossing": "Xing",
}

var directionals = map[string]string{
	"n": "N", "north": "N",
	"s": "S", "south": "S",
	"e": "E", "east": "E",
	"w": "W", "west": "W",
	"ne": "NE", "northeast": "NE",
	"nw": "NW", "northwest": "NW",
	"se": "SE", "southeast": "SE",
	"sw": "SW", "southwest": "SW",
}

// secondary unit designators
var unitTypes = map[string]string{
	"apt": "Apt", "apartment": "Apt",
	"ste": "Ste", "suite": "Ste",
	"unit": "Unit",
	"fl": "Fl", "floor": "Fl",
	"rm": "Rm", "room": "Rm",
	"bldg": "Bldg", "building": "Bldg",
	"dept": "Dept",
	"lot": "Lot",
	"spc": "Spc", "space": "Spc",
	"trlr": "Trlr",
	"ph": "Ph",
	"#": "#",
}

var stateNames = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR", "california": "CA",
	"colorado": "CO", "connecticut": "CT", "delaware": "DE", "florida": "FL", "georgia": "GA",
	"hawaii": "HI", "idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
	"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS", "missouri": "MO",
	"montana": "MT", "nebraska": "NE", "nevada": "NV", "new hampshire": "NH", "new jersey": "NJ",
	"new mexico": "NM", "new york": "NY", "north carolina": "NC", "north dakota": "ND", "ohio": "OH",
	"oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT", "vermont": "VT",
	"virginia": "VA", "washington": "WA", "west virginia": "WV", "wisconsin": "WI", "wyoming": "WY",
	"district of columbia": "DC", "puerto rico": "PR", "guam": "GU", "american samoa": "AS",
	"virgin islands": "VI", "northern mariana islands": "MP",
}

var stateCodes = func() map[string]bool {
	codes := map[string]bool{"AA": true, "AE": true, "AP": true}
	for _, code := range stateNames {
		codes[code] = true
	}
	return codes
}()

var countryNames = map[string]bool{
	"united states":            true,
	"united states of america": true,
	"usa":                      true,
	"us":                       true,
	"u.s.a.":                   true,
	"u.s.":                     true,
}

func lookup(table map[string]string, token string) (string, bool) {
	key := strings.ToLower(strings.TrimSuffix(token, "."))
	v, ok := table[key]
	return v, ok
}

func isStreetType(token string) bool {
	_, ok := lookup(streetTypes, token)
	return ok
}
