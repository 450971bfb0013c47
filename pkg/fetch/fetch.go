package fetch

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"url2md-go/pkg/convert"
	"url2md-go/pkg/utils"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Resource holds the raw bytes and response facts of one fetched URL.
// It is owned by the caller for the duration of a single request.
type Resource struct {
	Body        []byte
	ContentType string
	FinalURL    string
	StatusCode  int
}

// Fetcher retrieves remote resources under a wall-clock budget. The
// transport follows redirects; no retries are performed here — retry
// policy belongs to the caller.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBody   int64
}

// New creates a Fetcher. maxBody bounds the number of response bytes
// read; <= 0 means no bound.
func New(maxBody int64) *Fetcher {
	return &Fetcher{
		// Per-call deadlines come from the request context, so the
		// client itself carries no timeout.
		client:    &http.Client{},
		userAgent: defaultUserAgent,
		maxBody:   maxBody,
	}
}

// Fetch retrieves rawURL within the deadline carried by ctx. It fails
// fast with an invalid_url error before any network call when rawURL is
// not an absolute http/https URL. Every failure is returned as a
// *convert.Error with exactly one taxonomy kind.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Resource, error) {
	target, err := utils.ValidateURL(rawURL)
	if err != nil {
		return nil, convert.Wrap(convert.KindInvalidURL, err, "invalid URL %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, convert.Wrap(convert.KindInvalidURL, err, "invalid URL %q", rawURL)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, convert.Wrap(convert.KindFetchTimeout, err, "fetching %s exceeded the time budget", target)
		}
		return nil, convert.Wrap(convert.KindConnection, err, "connection to %s failed", target)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, convert.Errf(convert.KindRemoteStatus, "remote returned status %d for %s", resp.StatusCode, target)
	}

	reader := io.Reader(resp.Body)
	if f.maxBody > 0 {
		reader = io.LimitReader(resp.Body, f.maxBody)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		if isTimeout(err) {
			return nil, convert.Wrap(convert.KindFetchTimeout, err, "fetching %s exceeded the time budget", target)
		}
		return nil, convert.Wrap(convert.KindConnection, err, "reading response from %s failed", target)
	}

	finalURL := target
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &Resource{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		FinalURL:    finalURL,
		StatusCode:  resp.StatusCode,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// WithDeadline derives a context bounded by budget for a single fetch.
func WithDeadline(ctx context.Context, budget time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, budget)
}
