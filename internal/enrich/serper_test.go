package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"
)

func serperStub(t *testing.T, handler http.HandlerFunc) *SerperClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &SerperClient{
		apiKey:   "test-key",
		endpoint: srv.URL,
		limiter:  rate.NewLimiter(rate.Inf, 1),
	}
}

func TestSearchImage_ReturnsFirstNonEmptyURL(t *testing.T) {
	c := serperStub(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-API-KEY"); got != "test-key" {
			t.Errorf("X-API-KEY = %q", got)
		}
		var req imageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Query != "Baga Beach Goa" {
			t.Errorf("query = %q", req.Query)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"images": []map[string]string{
				{"imageUrl": ""},
				{"imageUrl": "https://img.example/baga.jpg"},
			},
		})
	})

	url, err := c.SearchImage(context.Background(), "Baga Beach Goa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://img.example/baga.jpg" {
		t.Errorf("url = %q", url)
	}
}

func TestSearchImage_NoResultsIsNotAnError(t *testing.T) {
	c := serperStub(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"images": []any{}})
	})
	url, err := c.SearchImage(context.Background(), "nowhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "" {
		t.Errorf("url = %q, want empty", url)
	}
}

func TestSearchImage_UpstreamFailureIsAnError(t *testing.T) {
	c := serperStub(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})
	if _, err := c.SearchImage(context.Background(), "anything"); err == nil {
		t.Fatal("expected an error on a non-200 response")
	}
}
