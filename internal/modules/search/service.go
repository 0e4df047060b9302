package search

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"voyago/internal/maps"
	"voyago/internal/modules/budget"
)

const dateLayout = "2006-01-02"

// PlaceSearcher resolves real lodging candidates for a destination.
type PlaceSearcher interface {
	SearchHotels(ctx context.Context, location string, limit int) ([]maps.Place, error)
}

// RouteEstimator resolves ground travel durations between two cities.
type RouteEstimator interface {
	GetTravelEstimate(ctx context.Context, origin, destination, mode string) (time.Duration, string, error)
}

// Service answers hotel and travel searches. Both backends are optional:
// without a Places client hotels come from a deterministic curated set, and
// without a route client travel durations fall back to typical figures.
type Service struct {
	places PlaceSearcher
	routes RouteEstimator
}

func NewService(places PlaceSearcher, routes RouteEstimator) *Service {
	return &Service{places: places, routes: routes}
}

// SearchHotels returns up to three lodging options per requested tier.
func (s *Service) SearchHotels(ctx context.Context, q HotelQuery) (*HotelResult, error) {
	if strings.TrimSpace(q.Destination) == "" {
		return nil, fmt.Errorf("%w: destination is required", ErrInvalidQuery)
	}
	checkIn, err := time.Parse(dateLayout, q.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: check_in must be YYYY-MM-DD", ErrInvalidQuery)
	}
	checkOut, err := time.Parse(dateLayout, q.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: check_out must be YYYY-MM-DD", ErrInvalidQuery)
	}
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return nil, fmt.Errorf("%w: check_out must be after check_in", ErrInvalidQuery)
	}
	if q.Guests < 1 {
		q.Guests = 2
	}
	if q.Rooms < 1 {
		q.Rooms = 1
	}

	hotels := s.hotelOptions(ctx, q)

	return &HotelResult{
		Destination: q.Destination,
		CheckIn:     q.CheckIn,
		CheckOut:    q.CheckOut,
		Nights:      nights,
		Guests:      q.Guests,
		Rooms:       q.Rooms,
		Hotels:      hotels,
		Summary:     fmt.Sprintf("%d hotels in %s for %d night(s)", len(hotels), q.Destination, nights),
	}, nil
}

func (s *Service) hotelOptions(ctx context.Context, q HotelQuery) []HotelOption {
	if s.places != nil {
		places, err := s.places.SearchHotels(ctx, q.Destination, 3)
		if err != nil {
			log.Printf("places hotel search for %q failed, using curated set: %v", q.Destination, err)
		} else if len(places) > 0 {
			opts := make([]HotelOption, 0, len(places))
			for _, p := range places {
				opts = append(opts, HotelOption{
					Name:          p.Name,
					Address:       p.Address,
					Rating:        float64(p.Rating),
					PricePerNight: nightlyRate(q.Destination, p.Name, q.HotelType),
					Currency:      budget.SettlementCurrency,
					Tier:          tierFor(q.HotelType),
				})
			}
			return opts
		}
	}
	return curatedHotels(q.Destination, q.HotelType)
}

// curatedHotels produces a stable set of plausible options when no Places
// backend is configured. The same query always yields the same answer.
func curatedHotels(destination, hotelType string) []HotelOption {
	templates := []struct {
		name   string
		rating float64
		tier   string
	}{
		{"The %s Grand", 4.6, "luxury"},
		{"%s Residency", 4.2, "mid-range"},
		{"Hotel %s Inn", 3.9, "budget"},
	}

	var opts []HotelOption
	for _, t := range templates {
		if hotelType != "" && hotelType != "all" && hotelType != t.tier {
			continue
		}
		name := fmt.Sprintf(t.name, titleCase(destination))
		opts = append(opts, HotelOption{
			Name:          name,
			Rating:        t.rating,
			PricePerNight: nightlyRate(destination, name, t.tier),
			Currency:      budget.SettlementCurrency,
			Tier:          t.tier,
		})
	}
	return opts
}

// nightlyRate derives a stable per-night price from the destination and hotel
// name, within the band for the tier.
func nightlyRate(destination, name, hotelType string) int64 {
	var lo, span int64
	switch tierFor(hotelType) {
	case "budget":
		lo, span = 1200, 1300
	case "luxury":
		lo, span = 8000, 7000
	default:
		lo, span = 3000, 3000
	}
	h := fnv.New32a()
	h.Write([]byte(destination))
	h.Write([]byte(name))
	return lo + int64(h.Sum32())%span
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func tierFor(hotelType string) string {
	switch hotelType {
	case "budget", "mid-range", "luxury":
		return hotelType
	default:
		return "mid-range"
	}
}

// SearchTravel returns transport options between two cities. Prices are
// indicative; durations come from the route backend when one is configured.
func (s *Service) SearchTravel(ctx context.Context, q TravelQuery) (*TravelResult, error) {
	if strings.TrimSpace(q.Origin) == "" || strings.TrimSpace(q.Destination) == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", ErrInvalidQuery)
	}
	if _, err := time.Parse(dateLayout, q.TravelDate); err != nil {
		return nil, fmt.Errorf("%w: travel_date must be YYYY-MM-DD", ErrInvalidQuery)
	}
	if q.Passengers < 1 {
		q.Passengers = 1
	}

	drive := s.drivingDuration(ctx, q.Origin, q.Destination)

	res := &TravelResult{
		Origin:      q.Origin,
		Destination: q.Destination,
		TravelDate:  q.TravelDate,
		Passengers:  q.Passengers,
	}
	if q.TravelType == "all" || q.TravelType == "" || q.TravelType == "flight" {
		res.Flights = flightOptions(q, drive)
	}
	if q.TravelType == "all" || q.TravelType == "" || q.TravelType == "train" {
		res.Trains = railOptions(q, drive)
	}
	if q.TravelType == "all" || q.TravelType == "" || q.TravelType == "bus" {
		res.Buses = busOptions(q, drive)
	}
	res.Summary = fmt.Sprintf("%d flight(s), %d train(s), %d bus(es) from %s to %s",
		len(res.Flights), len(res.Trains), len(res.Buses), q.Origin, q.Destination)
	return res, nil
}

// drivingDuration asks the route backend for a ground estimate; zero means
// no backend or no route, and callers fall back to typical durations.
func (s *Service) drivingDuration(ctx context.Context, origin, destination string) time.Duration {
	if s.routes == nil {
		return 0
	}
	d, _, err := s.routes.GetTravelEstimate(ctx, origin, destination, "driving")
	if err != nil {
		log.Printf("route estimate %s -> %s unavailable: %v", origin, destination, err)
		return 0
	}
	return d
}

func flightOptions(q TravelQuery, drive time.Duration) []TravelOption {
	dur := 2 * time.Hour
	if drive > 0 {
		dur = drive / 6
		if dur < 90*time.Minute {
			dur = 90 * time.Minute
		}
	}
	base := fareSeed(q.Origin, q.Destination, "flight", 3500, 4000)
	return []TravelOption{
		{Operator: "IndiGo", Departure: "06:10", Arrival: clockAfter("06:10", dur), Duration: humanDuration(dur), PricePerPerson: base, Currency: budget.SettlementCurrency},
		{Operator: "Air India", Departure: "11:45", Arrival: clockAfter("11:45", dur), Duration: humanDuration(dur), PricePerPerson: base + 650, Currency: budget.SettlementCurrency},
		{Operator: "Vistara", Departure: "18:30", Arrival: clockAfter("18:30", dur), Duration: humanDuration(dur), PricePerPerson: base + 1100, Currency: budget.SettlementCurrency},
	}
}

func railOptions(q TravelQuery, drive time.Duration) []TravelOption {
	dur := 9 * time.Hour
	if drive > 0 {
		dur = drive * 9 / 10
	}
	base := fareSeed(q.Origin, q.Destination, "train", 600, 900)
	return []TravelOption{
		{Operator: "Rajdhani Express", Departure: "17:00", Arrival: clockAfter("17:00", dur), Duration: humanDuration(dur), PricePerPerson: base + 800, Currency: budget.SettlementCurrency},
		{Operator: "Superfast Express", Departure: "21:20", Arrival: clockAfter("21:20", dur), Duration: humanDuration(dur), PricePerPerson: base, Currency: budget.SettlementCurrency},
	}
}

func busOptions(q TravelQuery, drive time.Duration) []TravelOption {
	dur := 11 * time.Hour
	if drive > 0 {
		dur = drive * 23 / 20
	}
	base := fareSeed(q.Origin, q.Destination, "bus", 400, 700)
	return []TravelOption{
		{Operator: "Volvo A/C Sleeper", Departure: "20:00", Arrival: clockAfter("20:00", dur), Duration: humanDuration(dur), PricePerPerson: base + 300, Currency: budget.SettlementCurrency},
		{Operator: "State Transport Semi-Sleeper", Departure: "21:30", Arrival: clockAfter("21:30", dur), Duration: humanDuration(dur), PricePerPerson: base, Currency: budget.SettlementCurrency},
	}
}

// fareSeed derives a stable indicative fare for a route and mode.
func fareSeed(origin, destination, mode string, lo, span int64) int64 {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(origin)))
	h.Write([]byte(strings.ToLower(destination)))
	h.Write([]byte(mode))
	return lo + int64(h.Sum32())%span
}

func clockAfter(start string, d time.Duration) string {
	t, err := time.Parse("15:04", start)
	if err != nil {
		return ""
	}
	out := t.Add(d)
	if out.Day() > t.Day() {
		return out.Format("15:04") + " +1d"
	}
	return out.Format("15:04")
}

func humanDuration(d time.Duration) string {
	d = d.Round(5 * time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
