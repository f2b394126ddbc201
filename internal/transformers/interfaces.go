package transformers

import "strings"

// ParsedAddress holds the components recognised in a free-text US address.
type ParsedAddress struct {
	Number      string
	Prefix      string
	Street      string
	Type        string
	Suffix      string
	SecUnitType string
	SecUnitNum  string
	City        string
	State       string
	Zip         string
	Plus4       string
}

// StreetLine joins the street components in delivery-line order.
func (p ParsedAddress) StreetLine() string {
	line := strings.Join([]string{p.Number, p.Prefix, p.Street, p.Type, p.Suffix, p.SecUnitType, p.SecUnitNum}, " ")
	return squash(line)
}

type AddressTransformer interface {
	NormalizeAddressComponent(input string) string
	ParseAddress(search string) ParsedAddress
}
