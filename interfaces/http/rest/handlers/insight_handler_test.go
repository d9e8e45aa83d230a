package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"insights-backend/application/ports"
	"insights-backend/application/services"
	"insights-backend/application/usecases"
	"insights-backend/domain/records"
	"insights-backend/infrastructure/persistence/memory"
	"insights-backend/infrastructure/persistence/repository"
	apperrors "insights-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedRegenClient struct {
	text string
}

func (c *fixedRegenClient) Regenerate(context.Context, ports.RegenerationRequest) (string, error) {
	return c.text, nil
}

func newInsightRouter(t *testing.T) (*chi.Mux, *services.InsightService) {
	t.Helper()
	logger := zap.NewNop()
	store := memory.NewStore()

	insights := services.NewInsightService(
		repository.New(store, "insights", records.InsightMapping, logger), logger)
	qa := services.NewQAService(
		repository.New(store, "qa", records.QAMapping, logger), logger)

	workflow := usecases.NewInsightRegeneration(
		insights, qa, &fixedRegenClient{text: "regenerated"}, nil, nil, logger)

	h := NewInsightHandler(insights, qa, workflow.VersioningWorkflow,
		apperrors.NewErrorHandler(logger, false), logger)

	r := chi.NewRouter()
	r.Route("/insights", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Post("/regenerate", h.Regenerate)
		r.Get("/{insightID}", h.Get)
		r.Patch("/{insightID}", h.Update)
		r.Post("/{insightID}/preferred", h.SetPreferred)
		r.Get("/{insightID}/qa", h.ListQA)
	})
	return r, insights
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestInsightCreateEndpoint(t *testing.T) {
	router, _ := newInsightRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/insights", map[string]interface{}{
		"content_id":       "c1",
		"insight_text":     "an insight",
		"confidence_score": 0.7,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool                    `json:"success"`
		Data    records.InsightResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.InsightID)
	assert.Equal(t, "c1", resp.Data.ContentID)
	assert.Equal(t, 1, resp.Data.Version)
}

func TestInsightCreateEndpointValidation(t *testing.T) {
	router, _ := newInsightRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/insights", map[string]interface{}{
		"insight_text": "missing content id",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.ErrorTypeValidation, resp.Type)
}

func TestInsightGetEndpointNotFound(t *testing.T) {
	router, _ := newInsightRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/insights/absent", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInsightRegenerateEndpoint(t *testing.T) {
	router, insights := newInsightRouter(t)
	ctx := context.Background()

	_, err := insights.Create(ctx, records.NewInsightParams{
		ContentID:       "c1",
		Text:            "old insight",
		ConfidenceScore: 0.6,
		PreferredChoice: true,
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/insights/regenerate", map[string]interface{}{
		"content_id":    "c1",
		"user_text":     "source",
		"question_text": "what changed?",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp.Data["version"])
	assert.Equal(t, "regenerated", resp.Data["insight_text"])
	assert.Equal(t, true, resp.Data["preferred_choice"])
	assert.NotNil(t, resp.Data["qa"])
}

func TestInsightSetPreferredEndpoint(t *testing.T) {
	router, insights := newInsightRouter(t)
	ctx := context.Background()

	_, err := insights.Create(ctx, records.NewInsightParams{
		ContentID: "c1", Text: "a", ConfidenceScore: 0.5, PreferredChoice: true,
	})
	require.NoError(t, err)
	b, err := insights.Create(ctx, records.NewInsightParams{
		ContentID: "c1", Text: "b", ConfidenceScore: 0.5,
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/insights/"+b.ID+"/preferred",
		map[string]interface{}{"content_id": "c1"})
	require.Equal(t, http.StatusOK, rec.Code)

	all, err := insights.ListByContentID(ctx, "c1", 0)
	require.NoError(t, err)
	for _, ins := range all {
		assert.Equal(t, ins.ID == b.ID, ins.PreferredChoice)
	}
}

func TestInsightListEndpointMinConfidence(t *testing.T) {
	router, insights := newInsightRouter(t)
	ctx := context.Background()

	for _, score := range []float64{0.2, 0.8} {
		_, err := insights.Create(ctx, records.NewInsightParams{
			ContentID: "c1", Text: "x", ConfidenceScore: score,
		})
		require.NoError(t, err)
	}

	rec := doJSON(t, router, http.MethodGet, "/insights?content_id=c1&min_confidence=0.5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []records.InsightResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 0.8, resp.Data[0].ConfidenceScore)
}
