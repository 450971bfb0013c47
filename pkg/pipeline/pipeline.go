package pipeline

import (
	"context"
	"log/slog"
	"time"

	"url2md-go/pkg/convert"
	"url2md-go/pkg/fetch"
	"url2md-go/pkg/metrics"
	"url2md-go/pkg/models"
)

// Default time budgets. The fetch budget bounds the network stage; the
// request budget bounds the whole pipeline.
const (
	DefaultFetchTimeout   = 30 * time.Second
	DefaultRequestTimeout = 60 * time.Second
)

// Service orchestrates the conversion pipeline: validate → fetch →
// classify → convert → assemble. Any stage failure short-circuits to a
// failure envelope; raw errors never reach the assembler.
type Service struct {
	fetcher        *fetch.Fetcher
	engine         convert.Engine
	fetchTimeout   time.Duration
	requestTimeout time.Duration
}

// New creates a pipeline service. engine may be nil when engine
// initialization failed at startup; every request then fails with
// converter_uninitialized until the process restarts.
func New(fetcher *fetch.Fetcher, engine convert.Engine, fetchTimeout, requestTimeout time.Duration) *Service {
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	return &Service{
		fetcher:        fetcher,
		engine:         engine,
		fetchTimeout:   fetchTimeout,
		requestTimeout: requestTimeout,
	}
}

// EngineReady reports whether the shared conversion engine is usable.
func (s *Service) EngineReady() bool {
	return s.engine != nil
}

// Handle runs one conversion request to completion and always returns a
// well-formed envelope. The returned error, when non-nil, carries the
// failure kind for HTTP status mapping; the envelope already reflects it.
func (s *Service) Handle(ctx context.Context, rawURL string, opts models.ConvertOptions) (models.ConversionResult, error) {
	started := time.Now()
	if opts.MarkdownType == "" {
		opts.MarkdownType = models.MarkdownComplete
	}
	outerCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	fetchBudget := s.fetchTimeout
	if opts.TimeoutSeconds > 0 {
		fetchBudget = time.Duration(opts.TimeoutSeconds) * time.Second
	}

	fetchCtx, cancelFetch := fetch.WithDeadline(outerCtx, fetchBudget)
	fetchStart := time.Now()
	res, err := s.fetcher.Fetch(fetchCtx, rawURL)
	cancelFetch()
	metrics.FetchDuration.Observe(time.Since(fetchStart).Seconds())
	if err != nil {
		// When the outer budget expired before the stage budget, the
		// pipeline is the thing that timed out, not the fetch.
		if convert.KindOf(err) == convert.KindFetchTimeout && outerCtx.Err() != nil && s.requestTimeout < fetchBudget {
			err = convert.Wrap(convert.KindRequestTimeout, err, "pipeline exceeded %s budget", s.requestTimeout)
		}
		return s.fail(rawURL, started, err)
	}
	metrics.FetchedBytes.Observe(float64(len(res.Body)))

	format := convert.Classify(res.ContentType, res.FinalURL)

	if s.engine == nil {
		return s.fail(rawURL, started, convert.Errf(convert.KindUninitialized, "conversion engine did not initialize"))
	}

	doc, err := s.convertBounded(outerCtx, res.Body, format)
	if err != nil {
		return s.fail(rawURL, started, err)
	}

	markdown := doc.Markdown
	if opts.MarkdownType == models.MarkdownSimple {
		markdown = simplifyMarkdown(markdown)
	}

	result := assembleSuccess(rawURL, format, opts, markdown, doc.Pages)
	metrics.ConversionsTotal.WithLabelValues("success").Inc()
	metrics.ConversionDuration.WithLabelValues(format.String()).Observe(time.Since(started).Seconds())
	slog.Info("conversion complete",
		"url", rawURL,
		"format", format.String(),
		"pages", doc.Pages,
		"markdown_bytes", len(markdown),
		"duration", time.Since(started),
	)
	return result, nil
}

// convertBounded races the engine against the outer deadline so the
// caller observes a timeout within budget plus bounded overhead even if
// the engine cannot be interrupted. An abandoned conversion finishes on
// its own goroutine and its result is discarded.
func (s *Service) convertBounded(ctx context.Context, body []byte, format convert.Format) (*convert.Document, error) {
	type outcome struct {
		doc *convert.Document
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		doc, err := s.engine.Convert(ctx, body, format)
		ch <- outcome{doc: doc, err: err}
	}()

	select {
	case o := <-ch:
		return o.doc, o.err
	case <-ctx.Done():
		return nil, convert.Wrap(convert.KindRequestTimeout, ctx.Err(), "pipeline exceeded %s budget", s.requestTimeout)
	}
}

func (s *Service) fail(rawURL string, started time.Time, err error) (models.ConversionResult, error) {
	kind := convert.KindOf(err)
	if kind == "" {
		kind = "internal"
	}
	metrics.ConversionsTotal.WithLabelValues(string(kind)).Inc()
	slog.Warn("conversion failed",
		"url", rawURL,
		"kind", string(kind),
		"error", err,
		"duration", time.Since(started),
	)
	return assembleFailure(err), err
}
