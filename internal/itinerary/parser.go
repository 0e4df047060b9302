// README: Untrusted model output parsing and structural schema validation.
package itinerary

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ParseDocument turns raw model text into a validated Document.
// The text is treated as untrusted: it is decoded into a generic form first
// and walked field by field, so a malformed response becomes a SchemaError
// (and therefore a retry), never a crash or a half-filled document.
func ParseDocument(raw string, wantDays int) (*Document, error) {
	cleaned := stripCodeFences(raw)

	var root map[string]any
	if err := json.Unmarshal([]byte(cleaned), &root); err != nil {
		return nil, schemaErrf("$", "not valid JSON: %v", err)
	}

	doc := &Document{}
	var err error

	if doc.Title, err = wantString(root, "title"); err != nil {
		return nil, err
	}
	if doc.Details, err = parseDetails(root); err != nil {
		return nil, err
	}
	if doc.Days, err = parseDays(root, wantDays); err != nil {
		return nil, err
	}
	if doc.SuggestedHotels, err = parseHotels(root); err != nil {
		return nil, err
	}
	if doc.SuggestedTransport, err = parseTransport(root); err != nil {
		return nil, err
	}
	return doc, nil
}

// stripCodeFences removes markdown code blocks if present (e.g. ```json ... ```).
func stripCodeFences(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

func parseDetails(root map[string]any) (TripDetails, error) {
	obj, err := wantObject(root, "details")
	if err != nil {
		return TripDetails{}, err
	}
	var d TripDetails
	if d.Origin, err = wantStringAt(obj, "details", "origin"); err != nil {
		return TripDetails{}, err
	}
	if d.Destination, err = wantStringAt(obj, "details", "destination"); err != nil {
		return TripDetails{}, err
	}
	if d.StartDate, err = wantStringAt(obj, "details", "start_date"); err != nil {
		return TripDetails{}, err
	}
	if d.EndDate, err = wantStringAt(obj, "details", "end_date"); err != nil {
		return TripDetails{}, err
	}
	travelers, err := wantNumberAt(obj, "details", "travelers")
	if err != nil {
		return TripDetails{}, err
	}
	d.Travelers = int(travelers)
	if d.BudgetPerson, err = wantNumberAt(obj, "details", "budget_per_person"); err != nil {
		return TripDetails{}, err
	}
	if d.Transport, err = wantStringAt(obj, "details", "transport"); err != nil {
		return TripDetails{}, err
	}
	if d.Currency, err = wantStringAt(obj, "details", "currency"); err != nil {
		return TripDetails{}, err
	}
	return d, nil
}

func parseDays(root map[string]any, wantDays int) ([]DayPlan, error) {
	items, err := wantArray(root, "days")
	if err != nil {
		return nil, err
	}
	if len(items) != wantDays {
		return nil, schemaErrf("days", "expected %d entries, got %d", wantDays, len(items))
	}

	days := make([]DayPlan, 0, len(items))
	for i, item := range items {
		path := indexed("days", i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, schemaErrf(path, "expected an object")
		}
		var day DayPlan
		num, err := wantNumberAt(obj, path, "day")
		if err != nil {
			return nil, err
		}
		day.Day = int(num)
		// Day numbers must be 1-based, unique, ascending, and contiguous.
		if day.Day != i+1 {
			return nil, schemaErrf(path+".day", "expected %d, got %d", i+1, day.Day)
		}
		if day.Title, err = wantStringAt(obj, path, "title"); err != nil {
			return nil, err
		}
		if day.FoodSuggestion, err = wantStringAt(obj, path, "food_suggestion"); err != nil {
			return nil, err
		}
		if day.Activities, err = parseActivities(obj, path); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

func parseActivities(day map[string]any, path string) ([]Activity, error) {
	items, err := wantArray(day, path+".activities")
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, schemaErrf(path+".activities", "must not be empty")
	}
	activities := make([]Activity, 0, len(items))
	for i, item := range items {
		p := indexed(path+".activities", i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, schemaErrf(p, "expected an object")
		}
		var a Activity
		if a.Time, err = wantStringAt(obj, p, "time"); err != nil {
			return nil, err
		}
		if a.Name, err = wantStringAt(obj, p, "name"); err != nil {
			return nil, err
		}
		if a.Description, err = wantStringAt(obj, p, "description"); err != nil {
			return nil, err
		}
		if a.Rating, err = wantNumberAt(obj, p, "rating"); err != nil {
			return nil, err
		}
		if a.PositiveReview, err = wantStringAt(obj, p, "positive_review"); err != nil {
			return nil, err
		}
		if a.NegativeReview, err = wantStringAt(obj, p, "negative_review"); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, nil
}

func parseHotels(root map[string]any) ([]HotelSuggestion, error) {
	items, err := wantArray(root, "suggested_hotels")
	if err != nil {
		return nil, err
	}
	hotels := make([]HotelSuggestion, 0, len(items))
	for i, item := range items {
		p := indexed("suggested_hotels", i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, schemaErrf(p, "expected an object")
		}
		var h HotelSuggestion
		if h.Name, err = wantStringAt(obj, p, "name"); err != nil {
			return nil, err
		}
		if h.PricePerNight, err = wantNumberAt(obj, p, "price_per_night"); err != nil {
			return nil, err
		}
		if h.Rating, err = wantNumberAt(obj, p, "rating"); err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	return hotels, nil
}

func parseTransport(root map[string]any) ([]TransportOption, error) {
	items, err := wantArray(root, "suggested_transport")
	if err != nil {
		return nil, err
	}
	options := make([]TransportOption, 0, len(items))
	for i, item := range items {
		p := indexed("suggested_transport", i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, schemaErrf(p, "expected an object")
		}
		var o TransportOption
		if o.Name, err = wantStringAt(obj, p, "name"); err != nil {
			return nil, err
		}
		if o.PricePerPerson, err = wantNumberAt(obj, p, "price_per_person"); err != nil {
			return nil, err
		}
		if o.Rating, err = wantNumberAt(obj, p, "rating"); err != nil {
			return nil, err
		}
		if o.Duration, err = wantStringAt(obj, p, "duration"); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, nil
}

// Generic field accessors.

func wantString(obj map[string]any, key string) (string, error) {
	return wantStringAt(obj, "", key)
}

func wantStringAt(obj map[string]any, path, key string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", schemaErrf(join(path, key), "missing required key")
	}
	s, ok := v.(string)
	if !ok {
		return "", schemaErrf(join(path, key), "expected a string, got %T", v)
	}
	return s, nil
}

// wantNumberAt rejects numeric strings: prices and ratings must be JSON
// numbers, not "1500" or "₹1,500".
func wantNumberAt(obj map[string]any, path, key string) (float64, error) {
	v, ok := obj[key]
	if !ok {
		return 0, schemaErrf(join(path, key), "missing required key")
	}
	n, ok := v.(float64)
	if !ok {
		return 0, schemaErrf(join(path, key), "expected a number, got %T", v)
	}
	return n, nil
}

func wantObject(obj map[string]any, key string) (map[string]any, error) {
	v, ok := obj[key]
	if !ok {
		return nil, schemaErrf(key, "missing required key")
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, schemaErrf(key, "expected an object, got %T", v)
	}
	return m, nil
}

func wantArray(obj map[string]any, key string) ([]any, error) {
	// key may already carry a path prefix; only the last segment indexes the map.
	lookup := key
	if i := strings.LastIndex(key, "."); i >= 0 {
		lookup = key[i+1:]
	}
	v, ok := obj[lookup]
	if !ok {
		return nil, schemaErrf(key, "missing required key")
	}
	a, ok := v.([]any)
	if !ok {
		return nil, schemaErrf(key, "expected an array, got %T", v)
	}
	return a, nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func indexed(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
