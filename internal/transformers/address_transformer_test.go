package transformers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAddress(t *testing.T) {
	parser := NewAddressTransformer()

	tests := []struct {
		name   string
		input  string
		street string
		want   ParsedAddress
	}{
		{
			name:   "comma separated with country",
			input:  "440 Park Ave S, New York, NY, United States",
			street: "440 Park Ave S",
			want:   ParsedAddress{Number: "440", Street: "Park", Type: "Ave", Suffix: "S", City: "New York", State: "NY"},
		},
		{
			name:   "comma separated",
			input:  "123 Main St, Springfield, IL",
			street: "123 Main St",
			want:   ParsedAddress{Number: "123", Street: "Main", Type: "St", City: "Springfield", State: "IL"},
		},
		{
			name:   "state and zip share a part",
			input:  "1600 Pennsylvania Avenue NW, Washington, DC 20500",
			street: "1600 Pennsylvania Ave NW",
			want:   ParsedAddress{Number: "1600", Street: "Pennsylvania", Type: "Ave", Suffix: "NW", City: "Washington", State: "DC", Zip: "20500"},
		},
		{
			name:   "secondary unit in its own part",
			input:  "123 Main St, Apt 4, Springfield, IL 62701-1234",
			street: "123 Main St Apt 4",
			want: ParsedAddress{Number: "123", Street: "Main", Type: "St", SecUnitType: "Apt", SecUnitNum: "4",
				City: "Springfield", State: "IL", Zip: "62701", Plus4: "1234"},
		},
		{
			name:   "no commas",
			input:  "123 N Main Street Springfield IL 62701",
			street: "123 N Main St",
			want:   ParsedAddress{Number: "123", Prefix: "N", Street: "Main", Type: "St", City: "Springfield", State: "IL", Zip: "62701"},
		},
		{
			name:   "no commas with hash unit and full state name",
			input:  "9 Elm Rd #12 Salem New Hampshire",
			street: "9 Elm Rd # 12",
			want:   ParsedAddress{Number: "9", Street: "Elm", Type: "Rd", SecUnitType: "#", SecUnitNum: "12", City: "Salem", State: "NH"},
		},
		{
			name:   "street suffix that looks like a state",
			input:  "12 Oak Ct",
			street: "12 Oak Ct",
			want:   ParsedAddress{Number: "12", Street: "Oak", Type: "Ct"},
		},
		{
			name:   "directional street name",
			input:  "77 North St, Boston, MA",
			street: "77 North St",
			want:   ParsedAddress{Number: "77", Street: "North", Type: "St", City: "Boston", State: "MA"},
		},
		{
			name:   "street without suffix",
			input:  "350 Broadway, New York, NY 10013",
			street: "350 Broadway",
			want:   ParsedAddress{Number: "350", Street: "Broadway", City: "New York", State: "NY", Zip: "10013"},
		},
		{
			name:   "street and city only",
			input:  "1 Infinite Loop, Cupertino",
			street: "1 Infinite Loop",
			want:   ParsedAddress{Number: "1", Street: "Infinite", Type: "Loop", City: "Cupertino"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.ParseAddress(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.street, got.StreetLine())
		})
	}
}

func TestParseAddressEmptyAndGarbage(t *testing.T) {
	parser := NewAddressTransformer()

	assert.Equal(t, ParsedAddress{}, parser.ParseAddress("   "))
	assert.Equal(t, ParsedAddress{}, parser.ParseAddress(", ,"))

	got := parser.ParseAddress("somewhere over the rainbow")
	assert.Equal(t, "somewhere over the rainbow", got.StreetLine())
	assert.Empty(t, got.City)
}

func TestNormalizeAddressComponent(t *testing.T) {
	parser := NewAddressTransformer()
	assert.Equal(t, "440 Park Ave S", parser.NormalizeAddressComponent("  440   Park\tAve \n S "))
}
