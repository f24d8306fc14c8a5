package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistantFallbackWithoutKey(t *testing.T) {
	a := NewAssistant(ProviderConfig{})
	assert.False(t, a.Configured())

	reply, err := a.Reply(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, fallbackReply, reply)
}

func TestAssistantReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "what is a PIA licence?", req.Messages[1].Content)

		json.NewEncoder(w).Encode(chatResponse{
			Choices: []chatChoice{{Message: chatMessage{Role: "assistant", Content: "A licence issued under the Petroleum Industry Act."}}},
		})
	}))
	defer srv.Close()

	a := NewAssistant(ProviderConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.True(t, a.Configured())

	reply, err := a.Reply(context.Background(), "what is a PIA licence?")
	require.NoError(t, err)
	assert.Equal(t, "A licence issued under the Petroleum Industry Act.", reply)
}

func TestAssistantProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := NewAssistant(ProviderConfig{APIKey: "test-key", BaseURL: srv.URL})
	_, err := a.Reply(context.Background(), "hello")
	assert.Error(t, err)
}

func TestAssistantEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse{})
	}))
	defer srv.Close()

	a := NewAssistant(ProviderConfig{APIKey: "test-key", BaseURL: srv.URL})
	_, err := a.Reply(context.Background(), "hello")
	assert.Error(t, err)
}
