package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsContextDone(t *testing.T) {
	t.Run(`context check`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		require.False(t, IsContextDone(ctx))
		cancel()
		require.True(t, IsContextDone(ctx))
	})
}
