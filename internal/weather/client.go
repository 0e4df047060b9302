// README: OpenWeatherMap forecast client (geocode + 5-day forecast grouped per day).
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"
)

const (
	geocodeEndpoint  = "https://api.openweathermap.org/geo/1.0/direct"
	forecastEndpoint = "https://api.openweathermap.org/data/2.5/forecast"
)

var httpClient = &http.Client{Timeout: 20 * time.Second}

// Snapshot is one day of forecast attached to the itinerary.
type Snapshot struct {
	Date     string  `json:"date"`
	Summary  string  `json:"summary"`
	Icon     string  `json:"icon"`
	TempMinC float64 `json:"temp_min_c"`
	TempMaxC float64 `json:"temp_max_c"`
}

type Client struct {
	apiKey      string
	geocodeURL  string
	forecastURL string
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:      apiKey,
		geocodeURL:  geocodeEndpoint,
		forecastURL: forecastEndpoint,
	}
}

type geocodeResult struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type forecastResult struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
}

// Forecast returns up to maxDays daily snapshots for the location. The
// upstream API reports 3-hour intervals, so entries are grouped per calendar
// day with min/max temperatures.
func (c *Client) Forecast(ctx context.Context, location string, maxDays int) ([]Snapshot, error) {
	lat, lon, err := c.geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	var fr forecastResult
	if err := c.getJSON(ctx, c.forecastURL+"?"+q.Encode(), &fr); err != nil {
		return nil, err
	}

	type agg struct {
		min, max    float64
		summary     string
		icon        string
		initialized bool
	}
	byDay := map[string]*agg{}
	for _, item := range fr.List {
		if len(item.Weather) == 0 {
			continue
		}
		day := time.Unix(item.Dt, 0).UTC().Format("2006-01-02")
		a, ok := byDay[day]
		if !ok {
			a = &agg{}
			byDay[day] = a
		}
		t := item.Main.Temp
		if !a.initialized {
			a.min, a.max = t, t
			a.summary = item.Weather[0].Description
			a.icon = fmt.Sprintf("https://openweathermap.org/img/wn/%s@2x.png", item.Weather[0].Icon)
			a.initialized = true
			continue
		}
		if t < a.min {
			a.min = t
		}
		if t > a.max {
			a.max = t
		}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	if len(days) > maxDays {
		days = days[:maxDays]
	}

	snapshots := make([]Snapshot, 0, len(days))
	for _, day := range days {
		a := byDay[day]
		snapshots = append(snapshots, Snapshot{
			Date:     day,
			Summary:  a.summary,
			Icon:     a.icon,
			TempMinC: a.min,
			TempMaxC: a.max,
		})
	}
	return snapshots, nil
}

func (c *Client) geocode(ctx context.Context, location string) (float64, float64, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("limit", "1")
	q.Set("appid", c.apiKey)

	var results []geocodeResult
	if err := c.getJSON(ctx, c.geocodeURL+"?"+q.Encode(), &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("weather: unable to geocode %q", location)
	}
	return results[0].Lat, results[0].Lon, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("weather: build request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("weather: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather: status %d: %s", resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("weather: unmarshal response: %w", err)
	}
	return nil
}
