package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/scoopnews/newsdesk/internal/config"
	"github.com/scoopnews/newsdesk/internal/gemini"
	"github.com/scoopnews/newsdesk/internal/logger"
	"github.com/scoopnews/newsdesk/internal/metrics"
	"github.com/scoopnews/newsdesk/internal/news"
	"github.com/scoopnews/newsdesk/internal/newsdata"
	"github.com/scoopnews/newsdesk/internal/pipeline"
	"github.com/scoopnews/newsdesk/internal/ratelimit"
	"github.com/scoopnews/newsdesk/internal/translate"
	"github.com/scoopnews/newsdesk/internal/weather"
)

func main() {
	// Check if we should start HTTP server for monitoring
	if os.Getenv("ENABLE_HTTP_MONITORING") == "true" {
		go startMonitoringServer()
	}

	if err := run(); err != nil {
		metrics.Global.SetError(err.Error())
		slog.Error("newsdesk failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	category := flag.String("category", pipeline.All, "section to fetch (All, World, Technology, Business, Science, Arts, Sports)")
	query := flag.String("query", "", "free-text search, overrides category")
	language := flag.String("lang", "", "display language code (en, es, fr, ar)")
	country := flag.String("country", "global", "country filter, or global")
	flag.Parse()

	config.LoadEnv()
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if *language == "" {
		*language = cfg.DefaultLanguage
	}

	languages, err := config.LoadLanguages(cfg.LanguagesPath)
	if err != nil {
		slog.Warn("language table unreadable, using built-in defaults",
			slog.String("path", cfg.LanguagesPath), slog.String("error", err.Error()))
		languages = config.DefaultLanguages()
	}

	ctx := context.Background()

	geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("create gemini client: %w", err)
	}
	defer geminiClient.Close()

	limiter := ratelimit.NewGeminiLimiter(cfg.MaxGeminiRequests)
	aggregator := newsdata.NewClient(cfg.NewsdataAPIKey, cfg.NewsdataBaseURL, cfg.RequestTimeout)
	translator := translate.New(geminiClient, limiter, translate.Options{
		ChunkSize:    cfg.TranslateChunkSize,
		ChunkDelay:   cfg.TranslateChunkDelay,
		ContentLimit: cfg.TranslateContentLimit,
	})

	p := pipeline.New(aggregator, translator, geminiClient, limiter, languages, pipeline.Options{
		PageSize:        cfg.PageSize,
		MaxArticles:     cfg.MaxArticles,
		DefaultLanguage: cfg.DefaultLanguage,
		CacheTTL:        cfg.CacheTTL,
	})

	city := cfg.WeatherCity
	if city == "" {
		city = config.LanguageFor(languages, *language).WeatherCity
	}
	if city == "" {
		city = "London"
	}
	report := weather.NewClient(cfg.WeatherAPIKey, cfg.RequestTimeout).Current(ctx, city)

	slog.Info("fetching edition",
		slog.String("category", *category), slog.String("query", *query),
		slog.String("lang", *language), slog.String("country", *country))

	articles := p.Fetch(ctx, pipeline.Request{
		Category: *category,
		Query:    *query,
		Language: *language,
		Country:  *country,
	})

	printEdition(os.Stdout, articles, report, city)
	return nil
}

func printEdition(w *os.File, articles []news.Article, report weather.Report, city string) {
	fmt.Fprintf(w, "THE SCOOP  |  %s %d°C %s  |  %d stories\n",
		city, report.Temp, report.Condition, len(articles))
	fmt.Fprintln(w, strings.Repeat("=", 72))

	for _, a := range articles {
		fmt.Fprintf(w, "\n[%s] %s\n", a.Category, a.Headline)
		if a.Subheadline != "" {
			fmt.Fprintf(w, "  %s\n", a.Subheadline)
		}
		fmt.Fprintf(w, "  %s", a.Author)
		if a.Location != "" {
			fmt.Fprintf(w, ", %s", a.Location)
		}
		fmt.Fprintf(w, "  (%s)\n", a.Date)
		if a.Summary != "" && a.Summary != a.Subheadline {
			fmt.Fprintf(w, "  TL;DR: %s\n", a.Summary)
		}
		if a.SourceURL != "" {
			fmt.Fprintf(w, "  %s\n", a.SourceURL)
		}
	}
}

func startMonitoringServer() {
	port := os.Getenv("MONITORING_PORT")
	if port == "" {
		port = "8080"
	}

	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler)

	log.Printf("Starting monitoring server on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Printf("Monitoring server error: %v", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
