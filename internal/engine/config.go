package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int
	HTTPClient         *http.Client

	EnrichTimeout       time.Duration
	EnrichRatePerSec    float64
	EnrichHTMLThreshold int // raw HTML size above which the retry degrades to text
	EnrichDegradedChars int
	EnrichMaxInputChars int

	DatabaseURL string // postgres; empty = SQLitePath
	SQLitePath  string

	RedisURL             string
	CacheTTL             time.Duration
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	BatchConcurrency int
	SummaryQueueSize int
}

// LLMEnabled reports whether an LLM backend is configured.
func (c Config) LLMEnabled() bool {
	return c.LLMAPIKey != "" && c.LLMAPIBase != ""
}
