package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// Place represents a simplified location result.
type Place struct {
	Name             string
	Address          string
	Rating           float32
	PlaceID          string
	UserRatingsTotal int
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// SearchHotels searches for lodging near the given location. Results are
// filtered to well-rated places and capped.
func (s *PlacesService) SearchHotels(ctx context.Context, location string, limit int) ([]Place, error) {
	r := &maps.TextSearchRequest{
		Query:    fmt.Sprintf("hotels in %s", location),
		Type:     "lodging",
		Language: "en",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	// Hostels and guest houses show up under "lodging" too; keep them, but
	// drop anything that is obviously not accommodation.
	excludedKeywords := []string{"Restaurant", "Cafe", "Bar", "Travel Agency"}

	var results []Place
	for _, result := range resp.Results {
		if result.Rating < 3.5 { // Filter out poorly rated properties
			continue
		}

		skip := false
		for _, kw := range excludedKeywords {
			if strings.Contains(result.Name, kw) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		results = append(results, Place{
			Name:             result.Name,
			Address:          result.FormattedAddress,
			Rating:           result.Rating,
			PlaceID:          result.PlaceID,
			UserRatingsTotal: result.UserRatingsTotal,
		})

		if len(results) >= limit {
			break
		}
	}

	return results, nil
}
