package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/natyavidhan/uidai-hackathon/analytics"
	"github.com/natyavidhan/uidai-hackathon/config"
	"github.com/natyavidhan/uidai-hackathon/handlers"
	"github.com/natyavidhan/uidai-hackathon/metrics"
	"github.com/natyavidhan/uidai-hackathon/middleware"
	"github.com/natyavidhan/uidai-hackathon/models"
	"github.com/natyavidhan/uidai-hackathon/store"
)

func newLoader(cfg config.Config, m *metrics.Metrics) store.Loader {
	switch cfg.DataSource {
	case config.SourceRemote:
		return &store.RemoteLoader{BaseURL: cfg.RemoteBaseURL, Metrics: m}
	case config.SourcePostgres:
		return &store.PostgresLoader{ConnStr: config.PostgresConnString(), Metrics: m}
	default:
		return &store.LocalLoader{Dir: cfg.DatasetsPath, Metrics: m}
	}
}

// precompute writes the snapshot files a static deployment serves instead
// of computing analytics per process.
func precompute(service *analytics.Service, dir string) error {
	all, err := service.AllDistricts()
	if err != nil {
		return err
	}

	series := make(map[string]models.TimeSeries, len(all))
	for key := range all {
		detail, err := service.District(key)
		if err != nil {
			return err
		}
		series[key] = detail.TimeSeries
	}

	summary, err := service.SummaryStats()
	if err != nil {
		return err
	}

	return store.WriteSnapshot(dir, all, series, summary)
}

func registerRoutes(api *mux.Router, a *handlers.API) {
	api.HandleFunc("/districts/all", a.GetAllDistricts).Methods("GET")
	api.HandleFunc("/district/{name}", a.GetDistrict).Methods("GET")
	api.HandleFunc("/stats/summary", a.GetSummaryStats).Methods("GET")
	api.HandleFunc("/geojson", a.GetGeoJSON).Methods("GET")
	api.HandleFunc("/health", a.HealthCheck).Methods("GET")
	api.HandleFunc("/health/detailed", a.DetailedHealthCheck).Methods("GET")
}

func main() {
	precomputeFlag := flag.Bool("precompute", false, "write snapshot JSON files and exit")
	flag.Parse()

	startTime := time.Now()
	log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

	// Load environment variables first
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := config.Load()
	m := metrics.New()

	// Record loading happens exactly once, before any query is served.
	// Every query afterwards is pure in-memory computation.
	log.Printf("Loading datasets from %s source...", cfg.DataSource)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 5*time.Minute)
	records, err := newLoader(cfg, m).LoadAll(loadCtx)
	cancelLoad()
	if err != nil {
		if errors.Is(err, store.ErrDataUnavailable) && cfg.DegradedOnEmpty {
			log.Printf("Warning: %v, serving degraded no-data state", err)
			records = nil
		} else {
			log.Fatalf("Failed to load records: %v", err)
		}
	}

	cache := analytics.NewCache(m)
	service := analytics.NewService(records, cache, cfg.Thresholds)

	if *precomputeFlag {
		log.Printf("Precomputing snapshot files into %s...", cfg.SnapshotDir)
		if err := precompute(service, cfg.SnapshotDir); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		log.Printf("Snapshot complete in %v", time.Since(startTime))
		return
	}

	// Warm the cache so the first map load does not pay for aggregation
	if _, err := service.AllDistricts(); err != nil {
		log.Printf("Warning: warming district aggregates failed: %v", err)
	}
	if _, err := service.SummaryStats(); err != nil {
		log.Printf("Warning: warming summary stats failed: %v", err)
	}
	log.Printf("Datasets loaded and aggregates warmed in %v", time.Since(startTime))

	api := handlers.NewAPI(service, cfg.GeoJSONPath, len(records))

	r := mux.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"Origin",
			"X-Requested-With",
		},
		MaxAge: 86400,
	})

	// Apply middlewares in order
	r.Use(middleware.CORSDebugMiddleware)
	r.Use(corsHandler.Handler)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.MetricsMiddleware(m))
	r.Use(gorillahandlers.CompressHandler)

	apiRouter := r.PathPrefix("/api/v1").Subrouter()
	registerRoutes(apiRouter, api)
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	log.Println("Routes registered successfully")

	srv := &http.Server{
		Handler:           r,
		Addr:              ":" + cfg.Port,
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			serverErrors <- err
		}
	}()

	// Handle graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("Shutdown signal received")
	case err := <-serverErrors:
		log.Printf("Server error received: %v", err)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}
	log.Println("Server stopped")
}
