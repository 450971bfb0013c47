package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"url2md-go/pkg/convert"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingTransport records how many requests actually hit the wire.
type countingTransport struct {
	calls int64
	next  http.RoundTripper
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	atomic.AddInt64(&c.calls, 1)
	return c.next.RoundTrip(req)
}

func TestFetchInvalidURLNoNetworkCall(t *testing.T) {
	transport := &countingTransport{next: http.DefaultTransport}
	f := New(0)
	f.client = &http.Client{Transport: transport}

	for _, raw := range []string{"", "   ", "not-a-url", "ftp://example.com/file", "//missing-scheme.com", "http://"} {
		_, err := f.Fetch(context.Background(), raw)
		assert.Equal(t, convert.KindInvalidURL, convert.KindOf(err), "url %q", raw)
	}

	assert.Equal(t, int64(0), atomic.LoadInt64(&transport.calls), "invalid URLs must never reach the network")
}

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	f := New(0)
	res, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", res.ContentType)
	assert.Equal(t, srv.URL, res.FinalURL)
	assert.Contains(t, string(res.Body), "ok")
}

func TestFetchFollowsRedirects(t *testing.T) {
	var final string
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/end", http.StatusFound)
	})
	mux.HandleFunc("/end", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("landed"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	final = srv.URL + "/end"

	f := New(0)
	res, err := f.Fetch(context.Background(), srv.URL+"/start")
	require.NoError(t, err)
	assert.Equal(t, final, res.FinalURL)
	assert.Equal(t, "landed", string(res.Body))
}

func TestFetchRemoteStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	}))
	defer srv.Close()

	f := New(0)
	_, err := f.Fetch(context.Background(), srv.URL)
	assert.Equal(t, convert.KindRemoteStatus, convert.KindOf(err))
	assert.Contains(t, err.Error(), "404")
}

func TestFetchTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	f := New(0)
	budget := 100 * time.Millisecond
	ctx, cancel := WithDeadline(context.Background(), budget)
	defer cancel()

	start := time.Now()
	_, err := f.Fetch(ctx, srv.URL)
	elapsed := time.Since(start)

	assert.Equal(t, convert.KindFetchTimeout, convert.KindOf(err))
	assert.Less(t, elapsed, budget+2*time.Second, "fetch must return within budget plus bounded overhead")
}

func TestFetchConnectionRefused(t *testing.T) {
	// Grab a port that nothing listens on.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := srv.URL
	srv.Close()

	f := New(0)
	_, err := f.Fetch(context.Background(), target)
	assert.Equal(t, convert.KindConnection, convert.KindOf(err))
}

func TestFetchBodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, 4096))
	}))
	defer srv.Close()

	f := New(1024)
	res, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, res.Body, 1024)
}
