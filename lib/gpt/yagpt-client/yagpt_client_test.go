package yagptclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYandexClient(t *testing.T) {
	t.Run(`catalog check`, func(t *testing.T) {
		_, err := NewClient("token", "").GenerateByPromtAndText(context.TODO(), "sys", "user")
		require.EqualError(t, err, "YandexGPT catalog id is not configured")
	})
}
