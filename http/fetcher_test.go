package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/newspulse"
	nphttp "github.com/fwojciec/newspulse/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := nphttp.NewFetcher()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends configured user agent and headers", func(t *testing.T) {
		t.Parallel()

		var gotUA, gotLang string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotLang = r.Header.Get("Accept-Language")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := nphttp.NewFetcher(
			nphttp.WithUserAgent("newspulse-test/1.0"),
			nphttp.WithHeader("Accept-Language", "en-US"),
		)

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "newspulse-test/1.0", gotUA)
		assert.Equal(t, "en-US", gotLang)
	})

	t.Run("defaults to a browser-like user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		_, err := nphttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, nphttp.DefaultUserAgent, gotUA)
	})

	t.Run("accepts any 2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte("accepted"))
		}))
		defer server.Close()

		html, err := nphttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "accepted", html)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := nphttp.NewFetcher(nphttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := nphttp.NewFetcher().Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := nphttp.NewFetcher(nphttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
	})

	t.Run("returns error for non-2xx status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		_, err := nphttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("returns EINVALID for malformed URL", func(t *testing.T) {
		t.Parallel()

		_, err := nphttp.NewFetcher().Fetch(context.Background(), "http://[::1")
		require.Error(t, err)
		assert.Equal(t, newspulse.EINVALID, newspulse.ErrorCode(err))
	})
}

// Compile-time verification that Fetcher implements newspulse.Fetcher
var _ newspulse.Fetcher = (*nphttp.Fetcher)(nil)
