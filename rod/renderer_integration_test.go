//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/newspulse"
	"github.com/fwojciec/newspulse/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Renderer implements newspulse.Renderer.
var _ newspulse.Renderer = (*rod.Renderer)(nil)

// infiniteScrollPage appends three batches of links as the user scrolls,
// then stops growing.
const infiniteScrollPage = `<!DOCTYPE html>
<html>
<head><title>Blog</title></head>
<body>
<div id="list"><a href="/blog/post-0">Post 0</a><div style="height:2000px"></div></div>
<script>
let batch = 0;
window.addEventListener('scroll', () => {
  if (batch >= 3) return;
  batch++;
  const list = document.getElementById('list');
  const a = document.createElement('a');
  a.href = '/blog/post-' + batch;
  a.textContent = 'Post ' + batch;
  list.appendChild(a);
  const pad = document.createElement('div');
  pad.style.height = '2000px';
  list.appendChild(pad);
});
</script>
</body>
</html>`

func TestRenderer_Integration_ScrollGrowsPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(infiniteScrollPage))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	session, err := rod.NewRenderer().Open(ctx, srv.URL)
	require.NoError(t, err)
	defer session.Close()

	before, err := session.Height(ctx)
	require.NoError(t, err)

	require.NoError(t, session.ScrollToBottom(ctx))
	time.Sleep(200 * time.Millisecond)

	after, err := session.Height(ctx)
	require.NoError(t, err)
	assert.Greater(t, after, before)

	html, err := session.HTML(ctx)
	require.NoError(t, err)
	assert.Contains(t, html, "/blog/post-1")
}

func TestRenderer_Integration_ReadinessTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p>No links here.</p></body></html>`))
	}))
	defer srv.Close()

	renderer := rod.NewRenderer(rod.WithReadyTimeout(500 * time.Millisecond))

	_, err := renderer.Open(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, newspulse.EUNAVAILABLE, newspulse.ErrorCode(err))
}

func TestRenderer_Integration_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rod.NewRenderer().Open(ctx, "http://example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_Integration_CloseIdempotent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><a href="/x">x</a></body></html>`))
	}))
	defer srv.Close()

	session, err := rod.NewRenderer().Open(context.Background(), srv.URL)
	require.NoError(t, err)

	require.NoError(t, session.Close())
	require.NoError(t, session.Close())
}
