package itinerary

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// docJSON renders a schema-conforming document with the given number of days.
func docJSON(days int) string {
	var b strings.Builder
	b.WriteString(`{
  "title": "Goa Getaway",
  "details": {
    "origin": "Delhi", "destination": "Goa",
    "start_date": "2024-01-01", "end_date": "2024-01-03",
    "travelers": 2, "budget_per_person": 33400, "transport": "Flight", "currency": "INR"
  },
  "days": [`)
	for i := 1; i <= days; i++ {
		if i > 1 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{
      "day": %d, "title": "Day %d",
      "activities": [
        {"time": "09:00 AM", "name": "Beach Walk %d", "description": "Morning stroll",
         "rating": 4.5, "positive_review": "Lovely sands", "negative_review": "Crowded at noon"}
      ],
      "food_suggestion": "Fish curry"
    }`, i, i, i)
	}
	b.WriteString(`],
  "suggested_hotels": [
    {"name": "Taj Resort", "price_per_night": 9000, "rating": 4.7},
    {"name": "Beach Inn", "price_per_night": 2500, "rating": 4.0}
  ],
  "suggested_transport": [
    {"name": "Flight", "price_per_person": 5500, "rating": 4.3, "duration": "2h 20m"},
    {"name": "Train", "price_per_person": 1400, "rating": 3.8, "duration": "26h"}
  ]
}`)
	return b.String()
}

func TestParseDocument_Valid(t *testing.T) {
	doc, err := ParseDocument(docJSON(3), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "Goa Getaway" {
		t.Errorf("Title = %q", doc.Title)
	}
	if len(doc.Days) != 3 {
		t.Fatalf("len(Days) = %d, want 3", len(doc.Days))
	}
	if doc.Days[2].Day != 3 {
		t.Errorf("Days[2].Day = %d, want 3", doc.Days[2].Day)
	}
	if len(doc.SuggestedHotels) != 2 || doc.SuggestedHotels[0].PricePerNight != 9000 {
		t.Errorf("hotels parsed incorrectly: %+v", doc.SuggestedHotels)
	}
	if len(doc.SuggestedTransport) != 2 || doc.SuggestedTransport[0].Duration != "2h 20m" {
		t.Errorf("transport parsed incorrectly: %+v", doc.SuggestedTransport)
	}
}

func TestParseDocument_StripsCodeFences(t *testing.T) {
	fenced := "```json\n" + docJSON(2) + "\n```"
	doc, err := ParseDocument(fenced, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Days) != 2 {
		t.Errorf("len(Days) = %d, want 2", len(doc.Days))
	}
}

func TestParseDocument_SchemaViolations(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantDays int
	}{
		{"not json at all", "Here is your itinerary!", 3},
		{"day count mismatch", docJSON(2), 3},
		{
			"missing title",
			strings.Replace(docJSON(1), `"title": "Goa Getaway",`, "", 1),
			1,
		},
		{
			"numeric string price",
			strings.Replace(docJSON(1), `"price_per_night": 9000`, `"price_per_night": "9,000"`, 1),
			1,
		},
		{
			"non-contiguous day numbers",
			strings.Replace(docJSON(2), `"day": 2,`, `"day": 3,`, 1),
			2,
		},
		{
			"empty activities",
			strings.Replace(docJSON(1),
				`{"time": "09:00 AM", "name": "Beach Walk 1", "description": "Morning stroll",
         "rating": 4.5, "positive_review": "Lovely sands", "negative_review": "Crowded at noon"}`, "", 1),
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument(tt.raw, tt.wantDays)
			if err == nil {
				t.Fatal("expected a schema error")
			}
			var se *SchemaError
			if !errors.As(err, &se) {
				t.Errorf("error %v is not a SchemaError", err)
			}
		})
	}
}
