package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brieflyhq/briefly/pkg/config"
)

func TestComplete_Success(t *testing.T) {
	var gotAuth string
	var gotReq ChatRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Key points: ship Friday."}},
			},
		})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL, Model: "llama3-70b-8192"})

	out, err := client.Complete(context.Background(), "Summarize this:\n\nAlice: Let's ship Friday.")
	require.NoError(t, err)
	require.Equal(t, "Key points: ship Friday.", out)

	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, "llama3-70b-8192", gotReq.Model)

	messages, ok := gotReq.Messages.([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 1)
	first, ok := messages[0].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "user", first["role"])
	require.Contains(t, first["content"], "Alice: Let's ship Friday.")
}

func TestComplete_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 500")
}

func TestComplete_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)
}
