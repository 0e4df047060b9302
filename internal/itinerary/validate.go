// README: Request validation and numeric coercion for the inbound itinerary contract.
package itinerary

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RawRequest mirrors the inbound JSON body. People and budget arrive from the
// UI as either numbers or numeric strings, so they are coerced during validation
// rather than bound to typed fields.
type RawRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	People      any    `json:"people"`
	Budget      any    `json:"budget"`
	Transport   string `json:"transport"`
}

// ValidateRequest checks the raw request and returns an immutable TripRequest.
// Every failure wraps ErrValidation so the handler maps it to a 400.
func ValidateRequest(raw RawRequest) (TripRequest, error) {
	source := strings.TrimSpace(raw.Source)
	destination := strings.TrimSpace(raw.Destination)
	if source == "" {
		return TripRequest{}, fmt.Errorf("%w: source is required", ErrValidation)
	}
	if destination == "" {
		return TripRequest{}, fmt.Errorf("%w: destination is required", ErrValidation)
	}

	start, err := time.Parse(DateLayout, strings.TrimSpace(raw.StartDate))
	if err != nil {
		return TripRequest{}, fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrValidation)
	}
	end, err := time.Parse(DateLayout, strings.TrimSpace(raw.EndDate))
	if err != nil {
		return TripRequest{}, fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrValidation)
	}
	if end.Before(start) {
		return TripRequest{}, fmt.Errorf("%w: endDate must not be before startDate", ErrValidation)
	}

	people, err := coerceNumber(raw.People)
	if err != nil || people != float64(int(people)) || people < 1 {
		return TripRequest{}, fmt.Errorf("%w: people must be a whole number >= 1", ErrValidation)
	}
	budget, err := coerceNumber(raw.Budget)
	if err != nil || budget < 0 {
		return TripRequest{}, fmt.Errorf("%w: budget must be a number >= 0", ErrValidation)
	}

	transport := strings.TrimSpace(raw.Transport)
	switch transport {
	case TransportFlight, TransportTrain, TransportCar, TransportBus:
	default:
		return TripRequest{}, fmt.Errorf("%w: transport must be one of Flight, Train, Car, Bus", ErrValidation)
	}

	req := TripRequest{
		Source:      source,
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		People:      int(people),
		Budget:      budget,
		Transport:   transport,
	}
	// A non-positive day count is a validation failure, never a retry.
	if req.Days() < 1 {
		return TripRequest{}, fmt.Errorf("%w: trip must span at least one day", ErrValidation)
	}
	return req, nil
}

func coerceNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}
