// README: Itinerary service orchestrates validation, generation, enrichment, and assembly.
package itinerary

import (
	"context"
	"log"
	"time"

	"voyago/internal/ai"
	"voyago/internal/config"
	"voyago/internal/modules/budget"
	"voyago/internal/weather"
)

// Enricher decorates a validated document with image URLs. It must not fail
// the request; partial external-service failure degrades per item only.
type Enricher interface {
	Enrich(ctx context.Context, doc *Document)
}

// WeatherSource provides the optional per-day forecast supplement.
type WeatherSource interface {
	Forecast(ctx context.Context, location string, maxDays int) ([]weather.Snapshot, error)
}

// Recorder persists one ledger row per generation, best-effort.
type Recorder interface {
	RecordGeneration(ctx context.Context, destination string, days, attempts int, success bool)
}

type Service struct {
	runner   *Runner
	budget   *budget.Service
	enricher Enricher
	weather  WeatherSource // optional
	usage    Recorder      // optional
}

func NewService(gen ai.Generator, retry config.RetryConfig, budgetSvc *budget.Service, enricher Enricher, weatherSrc WeatherSource, recorder Recorder) *Service {
	return &Service{
		runner: &Runner{
			Generator:   gen,
			MaxAttempts: retry.MaxAttempts,
			BaseDelay:   retry.BaseDelay,
		},
		budget:   budgetSvc,
		enricher: enricher,
		weather:  weatherSrc,
		usage:    recorder,
	}
}

// Plan runs the full pipeline for one inbound request:
// validate → normalize budget → build prompt → generate under retry →
// enrich → assemble. The request is independently resourced; nothing is
// shared with other in-flight requests beyond read-only configuration.
func (s *Service) Plan(ctx context.Context, raw RawRequest) (*Document, error) {
	req, err := ValidateRequest(raw)
	if err != nil {
		return nil, err
	}
	days := req.Days()

	est := s.budget.Estimate(req.Budget)
	prompt := BuildPrompt(req, est.Total)

	// The forecast rides alongside generation; a miss leaves the field empty.
	forecastCh := s.fetchForecast(ctx, req.Destination, days)

	doc, attempts, err := s.runner.Run(ctx, prompt, days)
	s.recordUsage(req.Destination, days, attempts, err == nil)
	if err != nil {
		return nil, err
	}

	// The request parameters are authoritative for details, so whatever the
	// model echoed back cannot drift into the response. Applied before
	// enrichment so image queries key on the validated destination too.
	doc.Details = TripDetails{
		Origin:       req.Source,
		Destination:  req.Destination,
		StartDate:    req.StartDate.Format(DateLayout),
		EndDate:      req.EndDate.Format(DateLayout),
		Travelers:    req.People,
		BudgetPerson: float64(est.Total.Amount),
		Transport:    req.Transport,
		Currency:     est.Total.Currency,
	}

	s.enricher.Enrich(ctx, doc)

	doc.Budget = &BudgetSummary{
		Total:         est.Total.Amount,
		Currency:      est.Total.Currency,
		Accommodation: est.Breakdown.Accommodation,
		Food:          est.Breakdown.Food,
		Transport:     est.Breakdown.Transport,
		Activities:    est.Breakdown.Activities,
	}
	if forecastCh != nil {
		doc.Weather = <-forecastCh
	}
	return doc, nil
}

func (s *Service) fetchForecast(ctx context.Context, destination string, days int) <-chan []weather.Snapshot {
	if s.weather == nil {
		return nil
	}
	ch := make(chan []weather.Snapshot, 1)
	go func() {
		wctx, cancel := context.WithTimeout(ctx, 20*time.Second)
		defer cancel()
		snapshots, err := s.weather.Forecast(wctx, destination, days)
		if err != nil {
			log.Printf("weather forecast for %q unavailable: %v", destination, err)
		}
		ch <- snapshots
	}()
	return ch
}

func (s *Service) recordUsage(destination string, days, attempts int, success bool) {
	if s.usage == nil {
		return
	}
	// Ledger writes never block or fail the request.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.usage.RecordGeneration(ctx, destination, days, attempts, success)
}
