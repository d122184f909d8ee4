package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fadilmartias/linkedin-autoapply/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenRouter(t *testing.T, handler http.HandlerFunc) *OpenRouterService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s, err := NewOpenRouterService(config.OpenRouterConfig{APIKey: "key", Model: "test-model", BaseURL: srv.URL})
	require.NoError(t, err)
	return s
}

func TestOpenRouterGenerate(t *testing.T) {
	s := newTestOpenRouter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  tailored resume  "}}]}`))
	})

	text, err := s.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "tailored resume", text)
}

func TestOpenRouterEmptyChoices(t *testing.T) {
	s := newTestOpenRouter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := s.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationUnavailable))
}

func TestOpenRouterClientError(t *testing.T) {
	s := newTestOpenRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	})

	_, err := s.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestNewOpenRouterServiceRequiresKey(t *testing.T) {
	_, err := NewOpenRouterService(config.OpenRouterConfig{})
	assert.ErrorIs(t, err, ErrGenerationUnavailable)
}

func TestOpenRouterServerErrorCallsOnce(t *testing.T) {
	var calls atomic.Int32
	s := newTestOpenRouter(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream down"}}`))
	})

	resumes := newTestResumeService(s, "base text", nil)
	assert.Equal(t, "base text", resumes.Tailor(context.Background(), "Go engineer"))
	assert.EqualValues(t, 1, calls.Load())
}

func TestOpenRouterRetriesWhenConfigured(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"tailored"}}]}`))
	}))
	t.Cleanup(srv.Close)

	s, err := NewOpenRouterService(config.OpenRouterConfig{APIKey: "key", Model: "m", BaseURL: srv.URL, MaxRetries: 1})
	require.NoError(t, err)
	s.client.SetRetryWaitTime(time.Millisecond).SetRetryMaxWaitTime(5 * time.Millisecond)

	text, err := s.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "tailored", text)
	assert.EqualValues(t, 2, calls.Load())
}
