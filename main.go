// go_candidates — LinkedIn profile ingestion MCP server.
//
// Exposes candidate_import, profile_extract, and candidate_get over MCP.
// With IMPORT_FILE set it instead imports that file once and exits.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_candidates/internal/candidateserver"
	"github.com/anatolykoptev/go_candidates/internal/engine"
	"github.com/anatolykoptev/go_candidates/internal/engine/candidate"
	"github.com/anatolykoptev/go_candidates/internal/engine/enrich"
	"github.com/anatolykoptev/go_candidates/internal/engine/pipeline"
	"github.com/anatolykoptev/go_candidates/internal/toolutil"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8891")
)

func main() {
	if err := run(); err != nil {
		slog.Error("go_candidates failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	cfg := loadConfig()

	store, err := candidate.Open(ctx, cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		return err
	}
	defer store.Close()
	if cfg.DatabaseURL != "" {
		slog.Info("store: postgres")
	} else {
		slog.Info("store: sqlite", slog.String("path", cfg.SQLitePath))
	}

	cache := engine.NewCache(cfg.RedisURL, cfg.CacheTTL, cfg.CacheMaxEntries, cfg.CacheCleanupInterval)
	defer cache.Close()

	var opts []pipeline.Option
	if cfg.LLMEnabled() {
		complete := engine.NewCompleter(cfg)
		enricher := enrich.NewClient(enrich.NewLLMBackend(complete), enrich.Options{
			Timeout:       cfg.EnrichTimeout,
			RatePerSec:    cfg.EnrichRatePerSec,
			HTMLThreshold: cfg.EnrichHTMLThreshold,
			DegradedChars: cfg.EnrichDegradedChars,
			MaxInputChars: cfg.EnrichMaxInputChars,
			Cache:         cache,
		})
		summaries := pipeline.NewSummarizer(complete, store, cfg.SummaryQueueSize)
		defer summaries.Close()
		opts = append(opts, pipeline.WithEnricher(enricher), pipeline.WithSummarizer(summaries))
		slog.Info("llm enabled", slog.String("model", cfg.LLMModel))
	} else {
		slog.Warn("LLM_API_KEY not set, enrichment and summaries disabled")
	}
	pipe := pipeline.New(store, opts...)

	if path := env.Str("IMPORT_FILE", ""); path != "" {
		skip, _ := strconv.ParseBool(env.Str("IMPORT_SKIP_EXISTING", "false"))
		return runImport(ctx, pipe, path, pipeline.BatchOptions{
			Concurrency:  cfg.BatchConcurrency,
			SkipExisting: skip,
		})
	}

	slog.Info("starting go_candidates", slog.String("port", mcpPort))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_candidates",
		Version: version,
	}, nil)

	candidateserver.RegisterTools(server, candidateserver.Deps{
		Pipeline:    pipe,
		Store:       store,
		Concurrency: cfg.BatchConcurrency,
	})
	slog.Info("tools registered", slog.Int("count", 3))

	return mcpserver.Run(server, mcpserver.Config{
		Name:         "go_candidates",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      func() string { return engine.FormatMetrics(cache) },
	})
}

// runImport processes one submissions file and prints the batch summary.
func runImport(ctx context.Context, pipe *pipeline.Pipeline, path string, opts pipeline.BatchOptions) error {
	subs, err := toolutil.ReadSubmissionsFile(path)
	if err != nil {
		return err
	}
	slog.Info("import: starting", slog.String("file", path), slog.Int("profiles", len(subs)))

	summary, err := pipe.RunBatch(ctx, subs, opts)
	if summary != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(summary); encErr != nil {
			slog.Warn("import: print summary", slog.Any("error", encErr))
		}
	}
	return err
}

func loadConfig() engine.Config {
	return engine.Config{
		LLMAPIKey:            env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks:   env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:           env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:             env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:       env.Float("LLM_TEMPERATURE", 0.1),
		LLMMaxTokens:         env.Int("LLM_MAX_TOKENS", 8192),
		HTTPClient:           &http.Client{Timeout: 60 * time.Second},
		EnrichTimeout:        env.Duration("ENRICH_TIMEOUT", 30*time.Second),
		EnrichRatePerSec:     env.Float("ENRICH_RATE_PER_SEC", 2),
		EnrichHTMLThreshold:  env.Int("ENRICH_HTML_THRESHOLD", 50_000),
		EnrichDegradedChars:  env.Int("ENRICH_DEGRADED_CHARS", 5_000),
		EnrichMaxInputChars:  env.Int("ENRICH_MAX_INPUT_CHARS", 8_000),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		SQLitePath:           env.Str("SQLITE_PATH", defaultSQLitePath()),
		RedisURL:             env.Str("REDIS_URL", ""),
		CacheTTL:             env.Duration("CACHE_TTL", 24*time.Hour),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		BatchConcurrency:     env.Int("BATCH_CONCURRENCY", 4),
		SummaryQueueSize:     env.Int("SUMMARY_QUEUE_SIZE", 64),
	}
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "candidates.db")
	}
	return filepath.Join(home, ".go_candidates", "candidates.db")
}
