// README: Itinerary domain model: request, document, and nested day/hotel/transport entities.
package itinerary

import (
	"time"

	"voyago/internal/weather"
)

// DateLayout is the wire format for trip dates.
const DateLayout = "2006-01-02"

// Transport preference accepted on the inbound request.
const (
	TransportFlight = "Flight"
	TransportTrain  = "Train"
	TransportCar    = "Car"
	TransportBus    = "Bus"
)

// TripRequest is a validated, immutable trip request.
type TripRequest struct {
	Source      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	People      int
	Budget      float64
	Transport   string
}

// Days returns the inclusive day span of the trip.
// 2024-01-01 through 2024-01-03 is 3 days.
func (r TripRequest) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// Document is the full structured trip plan returned to the caller.
// The model produces everything except image URLs, weather, and the
// budget breakdown, which are attached during assembly.
type Document struct {
	Title              string             `json:"title"`
	Details            TripDetails        `json:"details"`
	Days               []DayPlan          `json:"days"`
	SuggestedHotels    []HotelSuggestion  `json:"suggested_hotels"`
	SuggestedTransport []TransportOption  `json:"suggested_transport"`
	Weather            []weather.Snapshot `json:"weather,omitempty"`
	Budget             *BudgetSummary     `json:"budget,omitempty"`
}

// TripDetails echoes the normalized request parameters. During assembly these
// are overwritten with the server-side values so model drift cannot leak through.
type TripDetails struct {
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Travelers    int     `json:"travelers"`
	BudgetPerson float64 `json:"budget_per_person"`
	Transport    string  `json:"transport"`
	Currency     string  `json:"currency"`
}

type DayPlan struct {
	Day            int        `json:"day"`
	Title          string     `json:"title"`
	Activities     []Activity `json:"activities"`
	FoodSuggestion string     `json:"food_suggestion"`
}

type Activity struct {
	Time           string  `json:"time"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Rating         float64 `json:"rating"`
	PositiveReview string  `json:"positive_review"`
	NegativeReview string  `json:"negative_review"`
	ImageURL       string  `json:"image_url"`
}

type HotelSuggestion struct {
	Name          string  `json:"name"`
	PricePerNight float64 `json:"price_per_night"`
	Rating        float64 `json:"rating"`
	ImageURL      string  `json:"image_url"`
}

type TransportOption struct {
	Name           string  `json:"name"`
	PricePerPerson float64 `json:"price_per_person"`
	Rating         float64 `json:"rating"`
	Duration       string  `json:"duration"`
}

// BudgetSummary is the per-person budget expressed in the settlement currency,
// with an indicative split across spend categories.
type BudgetSummary struct {
	Total         int64  `json:"total"`
	Currency      string `json:"currency"`
	Accommodation int64  `json:"accommodation"`
	Food          int64  `json:"food"`
	Transport     int64  `json:"transport"`
	Activities    int64  `json:"activities"`
}
