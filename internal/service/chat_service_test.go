package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillpath_backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestRelayReturnsAssistantContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body["model"])

		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "HTML是超文本标记语言"}}]}`))
	}))
	defer srv.Close()

	s := NewChatService(config.AIConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	}, nil)

	reply, err := s.relay(context.Background(), []AIChatMessage{
		{Role: "user", Content: "什么是HTML"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "HTML是超文本标记语言", reply)
}

func TestRelayErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := NewChatService(config.AIConfig{BaseURL: srv.URL}, nil)
	_, err := s.relay(context.Background(), []AIChatMessage{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}

func TestRelayErrorOnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"message": "insufficient quota"}}`))
	}))
	defer srv.Close()

	s := NewChatService(config.AIConfig{BaseURL: srv.URL}, nil)
	_, err := s.relay(context.Background(), []AIChatMessage{{Role: "user", Content: "hi"}})
	assert.ErrorContains(t, err, "insufficient quota")
}

func TestRelayErrorOnEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	s := NewChatService(config.AIConfig{BaseURL: srv.URL}, nil)
	_, err := s.relay(context.Background(), []AIChatMessage{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}
