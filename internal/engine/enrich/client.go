package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_candidates/internal/engine"
)

const maxAttempts = 2

// Options tunes a Client. Zero values take the defaults.
type Options struct {
	Timeout       time.Duration // per attempt
	RatePerSec    float64       // <= 0 means unlimited
	HTMLThreshold int           // raw HTML size above which the retry is degraded
	DegradedChars int           // text cap on the degraded retry
	MaxInputChars int           // text cap on the first attempt
	Cache         *engine.Cache // optional result cache
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.HTMLThreshold <= 0 {
		o.HTMLThreshold = 50_000
	}
	if o.DegradedChars <= 0 {
		o.DegradedChars = 5_000
	}
	if o.MaxInputChars <= 0 {
		o.MaxInputChars = 8_000
	}
	return o
}

// Client runs enrichment with pacing, a per-attempt timeout, one degraded
// retry, and result caching.
type Client struct {
	backend Backend
	limiter *rate.Limiter
	opts    Options
}

// NewClient wraps backend.
func NewClient(backend Backend, opts Options) *Client {
	opts = opts.withDefaults()
	limit := rate.Inf
	if opts.RatePerSec > 0 {
		limit = rate.Limit(opts.RatePerSec)
	}
	return &Client{
		backend: backend,
		limiter: rate.NewLimiter(limit, 1),
		opts:    opts,
	}
}

// Enrich asks the backend about req. It makes at most two attempts; when the
// first fails or comes back empty and the raw HTML is over the threshold, the
// second sees only a short text prefix. Returns ErrEnrichmentEmpty (wrapping
// the last cause) when no attempt produced anything.
func (c *Client) Enrich(ctx context.Context, req Request) (*Result, error) {
	in := c.prepare(req)
	key := cacheKey(in)
	if res, ok := engine.LoadJSON[*Result](ctx, c.opts.Cache, key); ok && !res.Empty() {
		slog.Debug("enrich: cache hit", slog.String("key", key))
		return res, nil
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			in = c.degrade(in, req)
		}
		engine.IncrEnrichAttempts()
		res, err := c.attempt(ctx, in)
		if err == nil && !res.Empty() {
			engine.StoreJSON(ctx, c.opts.Cache, key, res)
			return res, nil
		}
		if err == nil {
			err = errors.New("empty result")
		}
		lastErr = err
		slog.Debug("enrich: attempt failed",
			slog.Int("attempt", attempt),
			slog.Int("text_len", len(in.Text)),
			slog.Any("error", err))
		if ctx.Err() != nil {
			break
		}
	}
	engine.IncrEnrichFailures()
	return nil, fmt.Errorf("%w: %v", ErrEnrichmentEmpty, lastErr)
}

func (c *Client) attempt(ctx context.Context, in Input) (*Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	var res *Result
	err := engine.TrackOperation(ctx, "enrich", 5*time.Second, func(ctx context.Context) error {
		var err error
		res, err = c.backend.Infer(ctx, in)
		return err
	})
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return res, err
}

// prepare bounds the request's content for the first attempt. Pages that
// arrive without text are converted from HTML to markdown.
func (c *Client) prepare(req Request) Input {
	text := req.Text
	if text == "" && req.HTML != "" {
		md, err := htmltomarkdown.ConvertString(req.HTML)
		if err != nil {
			slog.Debug("enrich: markdown conversion failed", slog.Any("error", err))
		}
		text = md
	}
	return Input{
		Text:    engine.TruncateRunes(text, c.opts.MaxInputChars, ""),
		HTML:    engine.TruncateRunes(req.HTML, c.opts.MaxInputChars, ""),
		Partial: req.Partial,
	}
}

// degrade shrinks the input for the retry when the page is large.
func (c *Client) degrade(in Input, req Request) Input {
	if len(req.HTML) <= c.opts.HTMLThreshold {
		return in
	}
	in.Text = engine.TruncateRunes(in.Text, c.opts.DegradedChars, "")
	in.HTML = ""
	return in
}

func cacheKey(in Input) string {
	partial, _ := json.Marshal(in.Partial)
	return engine.CacheKey("enrich", in.Text, in.HTML, string(partial))
}
