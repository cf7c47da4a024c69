package rod_test

import (
	"context"
	"testing"

	"github.com/fwojciec/newspulse/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Open_CanceledContextSkipsLaunch(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session, err := rod.NewRenderer().Open(ctx, "https://example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, session)
}
