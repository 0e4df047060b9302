// README: Deterministic prompt construction encoding the required output schema.
package itinerary

import (
	"fmt"

	"voyago/internal/types"
)

// BuildPrompt renders the instruction block sent to the model. It is a pure
// function of the validated request, the day count, and the normalized budget,
// so unit tests can assert on the exact prompt without touching the model.
func BuildPrompt(req TripRequest, budget types.Money) string {
	days := req.Days()
	return fmt.Sprintf(`Role: You are the planning core of "Voyago", a travel itinerary service.

TRIP DETAILS:
- From: %s
- To: %s
- Dates: %s to %s (%d days)
- Travelers: %d people
- Budget: %d %s per person for the whole trip
- Preferred transport: %s

RULES:

1. DAY COVERAGE (CRITICAL):
   - The "days" array MUST contain exactly %d entries, one per trip day.
   - "day" values start at 1 and increase by 1 with no gaps.
   - Day 1 covers departure from %s and arrival in %s; the last day covers the return.

2. CURRENCY (CRITICAL):
   - EVERY price in the output is a plain number in %s.
   - NEVER emit currency symbols, thousands separators, or ranges ("1,500", "₹2000", "100-150" are all INVALID).

3. REALISTIC TIMING:
   - Give each activity a clock time (e.g. "09:00 AM") and keep 4-6 activities per day.
   - Account for travel time between places and for meal breaks.
   - Suggest one specific local food or restaurant per day in "food_suggestion".

4. REVIEWS:
   - For each activity include one short positive and one short negative visitor impression.
   - Ratings are numbers from 0 to 5.

5. Output JSON Schema (EXACT keys, EXACT types):
{
  "title": "string",
  "details": {
    "origin": "string",
    "destination": "string",
    "start_date": "YYYY-MM-DD",
    "end_date": "YYYY-MM-DD",
    "travelers": integer,
    "budget_per_person": number,
    "transport": "string",
    "currency": "%s"
  },
  "days": [
    {
      "day": integer (1-based, contiguous),
      "title": "string",
      "activities": [
        {
          "time": "string",
          "name": "string",
          "description": "string",
          "rating": number (0-5),
          "positive_review": "string",
          "negative_review": "string"
        }
      ],
      "food_suggestion": "string"
    }
  ],
  "suggested_hotels": [
    { "name": "string", "price_per_night": number, "rating": number (0-5) }
  ],
  "suggested_transport": [
    { "name": "string", "price_per_person": number, "rating": number (0-5), "duration": "string" }
  ]
}

6. Include at least 3 entries in "suggested_hotels" and at least 2 in "suggested_transport"
   (the first transport entry matches the preferred transport %s).

Return ONLY the JSON document. No prose, no markdown code fences.`,
		req.Source, req.Destination,
		req.StartDate.Format(DateLayout), req.EndDate.Format(DateLayout), days,
		req.People,
		budget.Amount, budget.Currency,
		req.Transport,
		days,
		req.Source, req.Destination,
		budget.Currency,
		budget.Currency,
		req.Transport,
	)
}
