package models

import (
	"smartystreets-api/pkg/smartystreets"
)

// MaxBatchSize is the largest list the street-address and zipcode APIs accept in one POST.
const MaxBatchSize = 100

// AddressRequest is the query string form of a single street-address lookup.
// Address carries free text and takes precedence over the individual fields.
type AddressRequest struct {
	InputID      string `schema:"input_id" json:"input_id,omitempty"`
	Address      string `schema:"address" json:"address,omitempty" validate:"required_without=Street"`
	Street       string `schema:"street" json:"street,omitempty"`
	Street2      string `schema:"street2" json:"street2,omitempty"`
	Secondary    string `schema:"secondary" json:"secondary,omitempty"`
	City         string `schema:"city" json:"city,omitempty"`
	State        string `schema:"state" json:"state,omitempty"`
	Zipcode      string `schema:"zipcode" json:"zipcode,omitempty" validate:"omitempty,max=10"`
	Lastline     string `schema:"lastline" json:"lastline,omitempty"`
	Addressee    string `schema:"addressee" json:"addressee,omitempty"`
	Urbanization string `schema:"urbanization" json:"urbanization,omitempty"`
	Candidates   int    `schema:"candidates" json:"candidates,omitempty" validate:"gte=0,lte=10"`
	Match        string `schema:"match" json:"match,omitempty" validate:"omitempty,oneof=strict range invalid enhanced"`
	IncludeRaw   bool   `schema:"raw" json:"-"`
}

func (r *AddressRequest) Input() smartystreets.Single {
	if r.Address != "" {
		return smartystreets.Text(r.Address)
	}
	return smartystreets.Address{
		InputID:      r.InputID,
		Street:       r.Street,
		Street2:      r.Street2,
		Secondary:    r.Secondary,
		City:         r.City,
		State:        r.State,
		Zipcode:      r.Zipcode,
		Lastline:     r.Lastline,
		Addressee:    r.Addressee,
		Urbanization: r.Urbanization,
		Candidates:   r.Candidates,
		Match:        r.Match,
	}
}

// ZipcodeRequest is the query string form of a city/state/ZIP lookup.
type ZipcodeRequest struct {
	InputID    string `schema:"input_id"`
	City       string `schema:"city" validate:"required_without=Zipcode"`
	State      string `schema:"state"`
	Zipcode    string `schema:"zipcode" validate:"omitempty,numeric,len=5"`
	IncludeRaw bool   `schema:"raw"`
}

func (r *ZipcodeRequest) Query() smartystreets.Query {
	q := smartystreets.Query{}
	setIfPresent(q, "input_id", r.InputID)
	setIfPresent(q, "city", r.City)
	setIfPresent(q, "state", r.State)
	setIfPresent(q, "zipcode", r.Zipcode)
	return q
}

// SuggestRequest is the query string form of an autocomplete lookup.
type SuggestRequest struct {
	Prefix             string `schema:"prefix" validate:"required"`
	Suggestions        int    `schema:"suggestions" validate:"gte=0,lte=10"`
	CityFilter         string `schema:"city_filter"`
	StateFilter        string `schema:"state_filter"`
	Prefer             string `schema:"prefer"`
	Geolocate          string `schema:"geolocate" validate:"omitempty,oneof=true false"`
	GeolocatePrecision string `schema:"geolocate_precision" validate:"omitempty,oneof=city state"`
	IncludeRaw         bool   `schema:"raw"`
}

func (r *SuggestRequest) Query() smartystreets.Query {
	q := smartystreets.Query{"prefix": r.Prefix}
	if r.Suggestions > 0 {
		q["suggestions"] = r.Suggestions
	}
	setIfPresent(q, "city_filter", r.CityFilter)
	setIfPresent(q, "state_filter", r.StateFilter)
	setIfPresent(q, "prefer", r.Prefer)
	setIfPresent(q, "geolocate", r.Geolocate)
	setIfPresent(q, "geolocate_precision", r.GeolocatePrecision)
	return q
}

// Response is the body returned by every address endpoint. Raw is only
// set when the caller asks for the untransformed service payload.
type Response struct {
	Data any `json:"data"`
	Raw  any `json:"raw,omitempty"`
}

func NewResponse(result *smartystreets.Result, includeRaw bool) *Response {
	resp := &Response{Data: result.Data}
	if includeRaw {
		resp.Raw = result.Raw
	}
	return resp
}

func setIfPresent(q smartystreets.Query, key, value string) {
	if value != "" {
		q[key] = value
	}
}
