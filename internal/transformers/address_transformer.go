package transformers

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	zipRe        = regexp.MustCompile(`^(\d{5})(?:-?(\d{4}))?$`)
	numberRe     = regexp.MustCompile(`^\d+[A-Za-z]?(?:[-/]\d+[A-Za-z]?)?$`)
	hashUnitRe   = regexp.MustCompile(`^#(\S+)$`)
)

type addressTransformer struct{}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{}
}

func (t *addressTransformer) NormalizeAddressComponent(input string) string {
	return squash(input)
}

// ParseAddress splits a free-text US address into its components. Comma
// separated input is read as street, [unit...], city, state/ZIP; input
// without commas is delimited by the street suffix. Unrecognised text is
// returned in Street.
func (t *addressTransformer) ParseAddress(search string) ParsedAddress {
	var parsed ParsedAddress
	search = t.NormalizeAddressComponent(search)
	if search == "" {
		return parsed
	}

	parts := splitParts(search)
	if len(parts) == 0 {
		return parsed
	}

	if len(parts) == 1 {
		tokens := strings.Fields(parts[0])
		// a trailing ZIP anchors the region even when no street suffix is found
		if n := len(tokens); n > 1 && zipRe.MatchString(tokens[n-1]) {
			tokens = takeRegion(&parsed, tokens)
		}
		rest := parseStreet(&parsed, tokens, true)
		if parsed.State == "" && parsed.Zip == "" {
			rest = takeRegion(&parsed, rest)
		}
		parsed.City = strings.Join(rest, " ")
		return parsed
	}

	rest := takeRegion(&parsed, strings.Fields(parts[len(parts)-1]))
	streetParts := parts[:len(parts)-1]
	if len(rest) > 0 {
		parsed.City = strings.Join(rest, " ")
	} else if len(streetParts) > 1 {
		parsed.City = streetParts[len(streetParts)-1]
		streetParts = streetParts[:len(streetParts)-1]
	}
	parseStreet(&parsed, strings.Fields(strings.Join(streetParts, " ")), false)
	return parsed
}

// splitParts splits on commas and drops a trailing country name.
func splitParts(s string) []string {
	var parts []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) > 1 && countryNames[strings.ToLower(parts[len(parts)-1])] {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// takeRegion consumes a trailing ZIP code and state from tokens and returns
// what is left.
func takeRegion(p *ParsedAddress, tokens []string) []string {
	if n := len(tokens); n > 0 {
		if m := zipRe.FindStringSubmatch(tokens[n-1]); m != nil {
			p.Zip, p.Plus4 = m[1], m[2]
			tokens = tokens[:n-1]
		}
	}
	n := len(tokens)
	if n == 0 {
		return tokens
	}
	if code := strings.ToUpper(strings.TrimSuffix(tokens[n-1], ".")); len(code) == 2 && stateCodes[code] {
		p.State = code
		return tokens[:n-1]
	}
	for size := min(3, n); size > 0; size-- {
		name := strings.ToLower(strings.Join(tokens[n-size:], " "))
		if code, ok := stateNames[name]; ok {
			p.State = code
			return tokens[:n-size]
		}
	}
	return tokens
}

// parseStreet fills the street components from tokens. With open set the
// street may be followed by city tokens, which are returned unconsumed.
func parseStreet(p *ParsedAddress, tokens []string, open bool) []string {
	i := 0
	if i < len(tokens) && numberRe.MatchString(tokens[i]) {
		p.Number = tokens[i]
		i++
	}
	if i+1 < len(tokens) {
		if dir, ok := lookup(directionals, tokens[i]); ok && (i+2 < len(tokens) || !isStreetType(tokens[i+1])) {
			p.Prefix = dir
			i++
		}
	}
	body := tokens[i:]

	typeAt := findStreetType(body, open)
	if typeAt < 0 {
		if open {
			p.Street = strings.Join(body, " ")
			return nil
		}
		return parseUntyped(p, body)
	}

	p.Street = strings.Join(body[:typeAt], " ")
	p.Type, _ = lookup(streetTypes, body[typeAt])
	k := typeAt + 1
	if k < len(body) {
		if dir, ok := lookup(directionals, body[k]); ok {
			p.Suffix = dir
			k++
		}
	}
	k = takeUnit(p, body, k)

	rest := body[k:]
	if !open && len(rest) > 0 {
		*p = ParsedAddress{Number: p.Number, Prefix: p.Prefix, City: p.City, State: p.State, Zip: p.Zip, Plus4: p.Plus4}
		p.Street = strings.Join(body, " ")
		return nil
	}
	return rest
}

// findStreetType returns the index of the street suffix in body, never 0 so
// the street name is not empty. Open input takes the first match, closed
// input the last.
func findStreetType(body []string, open bool) int {
	found := -1
	for j := 1; j < len(body); j++ {
		if isStreetType(body[j]) {
			if open {
				return j
			}
			found = j
		}
	}
	return found
}

func parseUntyped(p *ParsedAddress, body []string) []string {
	end := len(body)
	for j := 1; j < len(body); j++ {
		if _, ok := lookup(unitTypes, body[j]); ok || hashUnitRe.MatchString(body[j]) {
			end = j
			break
		}
	}
	name := body[:end]
	if len(name) > 1 {
		if dir, ok := lookup(directionals, name[len(name)-1]); ok {
			p.Suffix = dir
			name = name[:len(name)-1]
		}
	}
	p.Street = strings.Join(name, " ")
	if k := takeUnit(p, body, end); k < len(body) {
		p.SecUnitNum = strings.TrimSpace(p.SecUnitNum + " " + strings.Join(body[k:], " "))
	}
	return nil
}

func takeUnit(p *ParsedAddress, body []string, k int) int {
	if k >= len(body) {
		return k
	}
	if m := hashUnitRe.FindStringSubmatch(body[k]); m != nil {
		p.SecUnitType, p.SecUnitNum = "#", m[1]
		return k + 1
	}
	unit, ok := lookup(unitTypes, body[k])
	if !ok {
		return k
	}
	p.SecUnitType = unit
	if k+1 < len(body) {
		p.SecUnitNum = strings.TrimPrefix(body[k+1], "#")
		return k + 2
	}
	return k + 1
}

func squash(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
