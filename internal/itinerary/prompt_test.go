package itinerary

import (
	"strings"
	"testing"
	"time"

	"voyago/internal/types"
)

func promptRequest() TripRequest {
	return TripRequest{
		Source:      "Delhi",
		Destination: "Goa",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		People:      2,
		Budget:      400,
		Transport:   TransportFlight,
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	req := promptRequest()
	money := types.Money{Amount: 33400, Currency: "INR"}
	if BuildPrompt(req, money) != BuildPrompt(req, money) {
		t.Error("identical inputs produced different prompts")
	}
}

func TestBuildPrompt_EncodesContract(t *testing.T) {
	prompt := BuildPrompt(promptRequest(), types.Money{Amount: 33400, Currency: "INR"})

	for _, want := range []string{
		"exactly 3 entries",        // day coverage pinned to the computed span
		"33400 INR per person",     // normalized budget, settlement currency
		`"price_per_night"`,        // schema keys the parser expects
		`"positive_review"`,
		`"food_suggestion"`,
		"No prose, no markdown code fences.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
