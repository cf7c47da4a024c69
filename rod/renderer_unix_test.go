//go:build integration && !windows

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/newspulse/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Close_KillsLauncherProcess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><a href="/x">x</a></body></html>`))
	}))
	defer srv.Close()

	rs, err := rod.NewRenderer().Open(context.Background(), srv.URL)
	require.NoError(t, err)
	session, ok := rs.(*rod.Session)
	require.True(t, ok)

	pid := session.LauncherPID()
	require.NotZero(t, pid, "launcher PID should be set")

	// Signal 0 checks if process exists without affecting it
	err = syscall.Kill(pid, syscall.Signal(0))
	require.NoError(t, err, "launcher process should be running before Close()")

	require.NoError(t, session.Close())

	// Give the OS a moment to clean up the process
	time.Sleep(100 * time.Millisecond)

	err = syscall.Kill(pid, syscall.Signal(0))
	assert.Error(t, err, "launcher process should be terminated after Close()")
}
