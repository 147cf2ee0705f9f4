package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"
)

// Completer sends one system+user prompt pair to a chat model and returns the reply.
type Completer func(ctx context.Context, system, prompt string) (string, error)

// ErrLLMDisabled is returned by the completer when no LLM is configured.
var ErrLLMDisabled = errors.New("llm: not configured")

// NewCompleter wraps a go-kit LLM client built from c.
// Returns a completer that always fails with ErrLLMDisabled when c has no key or base URL.
func NewCompleter(c Config) Completer {
	if !c.LLMEnabled() {
		return func(context.Context, string, string) (string, error) {
			return "", ErrLLMDisabled
		}
	}
	opts := []llm.Option{
		llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
		llm.WithMaxTokens(c.LLMMaxTokens),
		llm.WithTemperature(c.LLMTemperature),
	}
	if c.HTTPClient != nil {
		opts = append(opts, llm.WithHTTPClient(c.HTTPClient))
	}
	client := llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel, opts...)
	return func(ctx context.Context, system, prompt string) (string, error) {
		return client.Complete(ctx, system, prompt)
	}
}

// CallLLM runs complete, counts the call, and strips markdown fences from the reply.
func CallLLM(ctx context.Context, complete Completer, system, prompt string) (string, error) {
	metrics.LLMCalls.Add(1)
	resp, err := complete(ctx, system, prompt)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return stripFences(resp), nil
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ExtractJSONObject returns the outermost {...} span of raw, or "" if there is none.
// Models sometimes wrap the object in prose despite being told not to.
func ExtractJSONObject(raw string) string {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return ""
	}
	return raw[start : end+1]
}
