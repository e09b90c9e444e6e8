package chatclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChatClient(t *testing.T) {
	t.Run(`successful completion check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			var req request
			require.Nil(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "llama", req.Model)
			require.Len(t, req.Messages, 2)
			require.Equal(t, "system", req.Messages[0].Role)
			require.Equal(t, "user", req.Messages[1].Role)
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Q1: What?\nA1: That."}}]}`))
		}))
		defer server.Close()

		text, err := NewClient(server.URL, "secret", "llama").GenerateByPromtAndText(context.TODO(), "sys", "user")
		require.Nil(t, err)
		require.Equal(t, "Q1: What?\nA1: That.", text)
	})

	t.Run(`api error surfaced check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL, "secret", "llama").GenerateByPromtAndText(context.TODO(), "sys", "user")
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "429")
		require.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run(`empty choices check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL, "secret", "llama").GenerateByPromtAndText(context.TODO(), "sys", "user")
		require.NotNil(t, err)
	})

	t.Run(`missing configuration check`, func(t *testing.T) {
		_, err := NewClient("", "secret", "llama").GenerateByPromtAndText(context.TODO(), "sys", "user")
		require.NotNil(t, err)
		_, err = NewClient("http://localhost", "", "llama").GenerateByPromtAndText(context.TODO(), "sys", "user")
		require.NotNil(t, err)
	})
}
