// README: CLI demo; runs the generation pipeline once and prints the result.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"voyago/internal/ai"
	"voyago/internal/config"
	"voyago/internal/enrich"
	"voyago/internal/itinerary"
	"voyago/internal/modules/budget"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	budgetSvc := budget.NewService(cfg.Currency.Rate)
	pipeline := enrich.NewPipeline(enrich.NewSerperClient(cfg.Images.SerperKey), nil, cfg.Enrich.Concurrency)
	svc := itinerary.NewService(provider, cfg.Retry, budgetSvc, pipeline, nil, nil)

	doc, err := svc.Plan(ctx, itinerary.RawRequest{
		Source:      "Delhi",
		Destination: "Goa",
		StartDate:   "2026-01-10",
		EndDate:     "2026-01-13",
		People:      2,
		Budget:      400,
		Transport:   itinerary.TransportFlight,
	})
	if err != nil {
		log.Fatalf("plan failed: %v", err)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
