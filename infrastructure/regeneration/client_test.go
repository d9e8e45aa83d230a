package regeneration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insights-backend/application/ports"
	apperrors "insights-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClientRegenerateSuccess(t *testing.T) {
	var got ports.RegenerationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/regenerate-insights", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(map[string]string{"generated_text": "fresh text"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	text, err := c.Regenerate(context.Background(), ports.RegenerationRequest{
		ContentID:    "c1",
		UserText:     "source",
		QuestionText: "why?",
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh text", text)
	assert.Equal(t, "c1", got.ContentID)
	assert.Equal(t, "why?", got.QuestionText)
}

func TestClientRegenerateNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	_, err := c.Regenerate(context.Background(), ports.RegenerationRequest{ContentID: "c1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
	assert.Contains(t, err.Error(), "regeneration-api")
}

func TestClientRegenerateTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 20*time.Millisecond, zap.NewNop())
	_, err := c.Regenerate(context.Background(), ports.RegenerationRequest{ContentID: "c1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestClientRegenerateEmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"generated_text": "   "})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	_, err := c.Regenerate(context.Background(), ports.RegenerationRequest{ContentID: "c1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestClientRegenerateMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	_, err := c.Regenerate(context.Background(), ports.RegenerationRequest{ContentID: "c1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}
