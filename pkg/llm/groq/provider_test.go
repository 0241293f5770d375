package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echosee-be/pkg/llm"
)

func TestChat_Success(t *testing.T) {
	var captured chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"Which plan would you prefer?"}}]}`))
	}))
	defer server.Close()

	provider := NewGroqProvider("test-key", server.URL, "llama-3.3-70b-versatile")

	reply, err := provider.Chat(context.Background(),
		[]llm.Message{
			{Role: "system", Content: "context"},
			{Role: "user", Content: "I want to order"},
		},
		llm.WithMaxTokens(300),
		llm.WithTemperature(0.5),
	)

	require.NoError(t, err)
	assert.Equal(t, "Which plan would you prefer?", reply)

	assert.Equal(t, "llama-3.3-70b-versatile", captured.Model)
	assert.Equal(t, 300, captured.MaxTokens)
	assert.Equal(t, 0.5, captured.Temperature)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
}

func TestChat_MapsModelRoleToAssistant(t *testing.T) {
	var captured chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	provider := NewGroqProvider("test-key", server.URL, "llama-3.3-70b-versatile")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "model", Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "assistant", captured.Messages[0].Role)
}

func TestChat_Non200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	provider := NewGroqProvider("test-key", server.URL, "llama-3.3-70b-versatile")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestChat_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	provider := NewGroqProvider("test-key", server.URL, "llama-3.3-70b-versatile")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty choices")
}

func TestChat_ErrorFieldInBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"invalid model"}}`))
	}))
	defer server.Close()

	provider := NewGroqProvider("test-key", server.URL, "llama-3.3-70b-versatile")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid model")
}

func TestNewGroqProvider_DefaultBaseURL(t *testing.T) {
	provider := NewGroqProvider("test-key", "", "llama-3.3-70b-versatile")
	assert.Equal(t, defaultBaseURL, provider.baseURL)
}
