// README: Entry point; loads config, wires the pipeline, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"voyago/internal/ai"
	"voyago/internal/config"
	"voyago/internal/enrich"
	httptransport "voyago/internal/http"
	"voyago/internal/http/handlers"
	"voyago/internal/infra"
	"voyago/internal/itinerary"
	"voyago/internal/maps"
	"voyago/internal/modules/budget"
	"voyago/internal/modules/search"
	"voyago/internal/modules/usage"
	"voyago/internal/weather"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	budgetSvc := budget.NewService(cfg.Currency.Rate)

	var cache *enrich.Cache
	if cfg.Redis.Addr != "" {
		cache = enrich.NewCache(infra.NewRedis(cfg.Redis.Addr), cfg.Enrich.CacheTTL)
	}
	pipeline := enrich.NewPipeline(enrich.NewSerperClient(cfg.Images.SerperKey), cache, cfg.Enrich.Concurrency)

	var weatherSrc itinerary.WeatherSource
	if cfg.Weather.APIKey != "" {
		weatherSrc = weather.NewClient(cfg.Weather.APIKey)
	}

	var recorder itinerary.Recorder
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
		recorder = usage.NewService(usage.NewStore(dbPool))
	}

	var places search.PlaceSearcher
	var routes search.RouteEstimator
	if cfg.Maps.APIKey != "" {
		placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		places = placesSvc
		routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		routes = routeSvc
	}

	planSvc := itinerary.NewService(provider, cfg.Retry, budgetSvc, pipeline, weatherSrc, recorder)
	searchHandler := handlers.NewSearchHandler(search.NewService(places, routes))

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(httptransport.NewRouter(planSvc, searchHandler))

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("voyago listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
