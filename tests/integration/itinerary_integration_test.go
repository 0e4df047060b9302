// README: End-to-end test against a running API instance (opt-in via env).
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// TestItineraryEndpoint exercises the full pipeline against a live server and
// real provider keys. It is skipped unless VOYAGO_API_BASE_URL is set.
func TestItineraryEndpoint(t *testing.T) {
	baseURL := strings.TrimRight(os.Getenv("VOYAGO_API_BASE_URL"), "/")
	if baseURL == "" {
		t.Skip("VOYAGO_API_BASE_URL not set; skipping live API test")
	}

	client := &http.Client{Timeout: 120 * time.Second}
	waitForAPIReady(t, client, baseURL)

	start := time.Now().AddDate(0, 1, 0)
	end := start.AddDate(0, 0, 2)
	body, _ := json.Marshal(map[string]any{
		"source":      "Delhi",
		"destination": "Goa",
		"startDate":   start.Format("2006-01-02"),
		"endDate":     end.Format("2006-01-02"),
		"people":      2,
		"budget":      400,
		"transport":   "Flight",
	})

	resp, err := client.Post(baseURL+"/api/itinerary", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var doc struct {
		Title string `json:"title"`
		Days  []struct {
			Day        int `json:"day"`
			Activities []struct {
				Name     string `json:"name"`
				ImageURL string `json:"image_url"`
			} `json:"activities"`
		} `json:"days"`
		Budget *struct {
			Total    int64  `json:"total"`
			Currency string `json:"currency"`
		} `json:"budget"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(doc.Days) != 3 {
		t.Errorf("len(days) = %d, want 3 for an inclusive 3-day span", len(doc.Days))
	}
	for i, d := range doc.Days {
		if d.Day != i+1 {
			t.Errorf("days[%d].day = %d, want %d", i, d.Day, i+1)
		}
		for _, a := range d.Activities {
			if a.ImageURL == "" {
				t.Errorf("activity %q has no image URL", a.Name)
			}
		}
	}
	if doc.Budget == nil || doc.Budget.Currency != "INR" {
		t.Errorf("budget = %+v, want an INR summary", doc.Budget)
	}
}

func TestItineraryEndpointRejectsBadRequest(t *testing.T) {
	baseURL := strings.TrimRight(os.Getenv("VOYAGO_API_BASE_URL"), "/")
	if baseURL == "" {
		t.Skip("VOYAGO_API_BASE_URL not set; skipping live API test")
	}

	client := &http.Client{Timeout: 30 * time.Second}
	waitForAPIReady(t, client, baseURL)

	body := []byte(`{"source":"Delhi","destination":"Goa","startDate":"2026-05-10","endDate":"2026-05-01","people":2,"budget":400,"transport":"Flight"}`)
	resp, err := client.Post(baseURL+"/api/itinerary", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Message == "" {
		t.Error("expected a message explaining the rejection")
	}
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(time.Second)
	}
	t.Fatalf("API at %s did not become ready", baseURL)
}
