// README: Request and result shapes for the hotel and travel search endpoints.
package search

import "errors"

// ErrInvalidQuery marks a search request that failed validation.
var ErrInvalidQuery = errors.New("invalid search query")

// HotelQuery is an inbound hotel search.
type HotelQuery struct {
	Destination    string `json:"destination"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Guests         int    `json:"guests"`
	Rooms          int    `json:"rooms"`
	BudgetPerNight int64  `json:"budget_per_night"`
	HotelType      string `json:"hotel_type"` // budget, mid-range, luxury, all
}

// HotelOption is one hotel candidate in a search result.
type HotelOption struct {
	Name          string  `json:"name"`
	Address       string  `json:"address,omitempty"`
	Rating        float64 `json:"rating"`
	PricePerNight int64   `json:"price_per_night"`
	Currency      string  `json:"currency"`
	Tier          string  `json:"tier"`
}

// HotelResult is the hotel search response.
type HotelResult struct {
	Destination string        `json:"destination"`
	CheckIn     string        `json:"check_in"`
	CheckOut    string        `json:"check_out"`
	Nights      int           `json:"nights"`
	Guests      int           `json:"guests"`
	Rooms       int           `json:"rooms"`
	Hotels      []HotelOption `json:"hotels"`
	Summary     string        `json:"search_summary"`
}

// TravelQuery is an inbound travel option search.
type TravelQuery struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	TravelDate  string `json:"travel_date"`
	TravelType  string `json:"travel_type"` // flight, train, bus, all
	Passengers  int    `json:"passengers"`
}

// TravelOption is one transport candidate in a search result.
type TravelOption struct {
	Operator       string `json:"operator"`
	Departure      string `json:"departure"`
	Arrival        string `json:"arrival"`
	Duration       string `json:"duration"`
	PricePerPerson int64  `json:"price_per_person"`
	Currency       string `json:"currency"`
}

// TravelResult is the travel search response.
type TravelResult struct {
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	TravelDate  string         `json:"travel_date"`
	Passengers  int            `json:"passengers"`
	Flights     []TravelOption `json:"flights"`
	Trains      []TravelOption `json:"trains"`
	Buses       []TravelOption `json:"buses"`
	Summary     string         `json:"search_summary"`
}
