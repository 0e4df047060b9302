// README: Serper.dev image search client.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const serperImagesEndpoint = "https://google.serper.dev/images"

// httpClient is used for all Serper requests; the 15s timeout guards against
// stalled connections while context cancellation is still honoured via
// NewRequestWithContext.
var httpClient = &http.Client{Timeout: 15 * time.Second}

type imageRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

type imageResponse struct {
	Images []struct {
		ImageURL string `json:"imageUrl"`
	} `json:"images"`
}

// SerperClient looks up illustrative images through the Serper.dev API.
// A client-side rate limiter keeps bursty enrichment fan-out inside the
// provider's request budget.
type SerperClient struct {
	apiKey   string
	endpoint string
	limiter  *rate.Limiter
}

func NewSerperClient(apiKey string) *SerperClient {
	return &SerperClient{
		apiKey:   apiKey,
		endpoint: serperImagesEndpoint,
		limiter:  rate.NewLimiter(rate.Limit(10), 10),
	}
}

// SearchImage returns the first image URL for the query, or "" when the
// provider has no results. Absence of results is not an error.
func (c *SerperClient) SearchImage(ctx context.Context, query string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	reqBody, err := json.Marshal(imageRequest{Query: query, Num: 3})
	if err != nil {
		return "", fmt.Errorf("serper: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("serper: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("serper: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("serper: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("serper: status %d: %s", resp.StatusCode, body)
	}

	var ir imageResponse
	if err := json.Unmarshal(body, &ir); err != nil {
		return "", fmt.Errorf("serper: unmarshal response: %w", err)
	}
	for _, img := range ir.Images {
		if img.ImageURL != "" {
			return img.ImageURL, nil
		}
	}
	return "", nil
}
