package handlers

import (
	"net/http"

	"insights-backend/application/services"
	"insights-backend/application/usecases"
	"insights-backend/domain/records"
	"insights-backend/pkg/common"
	apperrors "insights-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// InsightHandler handles insight HTTP requests including regeneration
type InsightHandler struct {
	insights *services.InsightService
	qa       *services.QAService
	workflow *usecases.VersioningWorkflow
	errors   *apperrors.ErrorHandler
	logger   *zap.Logger
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(
	insights *services.InsightService,
	qa *services.QAService,
	workflow *usecases.VersioningWorkflow,
	errors *apperrors.ErrorHandler,
	logger *zap.Logger,
) *InsightHandler {
	return &InsightHandler{
		insights: insights,
		qa:       qa,
		workflow: workflow,
		errors:   errors,
		logger:   logger,
	}
}

// CreateInsightRequest represents the request body for creating an insight
type CreateInsightRequest struct {
	ContentID       string  `json:"content_id"`
	URLID           string  `json:"url_id,omitempty"`
	Text            string  `json:"insight_text"`
	ConfidenceScore float64 `json:"confidence_score"`
	Category        string  `json:"category,omitempty"`
	Version         int     `json:"version,omitempty"`
	IsCanonical     bool    `json:"is_canonical,omitempty"`
	PreferredChoice bool    `json:"preferred_choice,omitempty"`
}

// UpdateInsightRequest represents the request body for updating an insight
type UpdateInsightRequest struct {
	Text            *string  `json:"insight_text,omitempty"`
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Version         *int     `json:"version,omitempty"`
	IsCanonical     *bool    `json:"is_canonical,omitempty"`
	PreferredChoice *bool    `json:"preferred_choice,omitempty"`
}

// Create handles POST /insights
func (h *InsightHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInsightRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	rec, err := h.insights.Create(r.Context(), records.NewInsightParams{
		ContentID:       req.ContentID,
		URLID:           req.URLID,
		Text:            req.Text,
		ConfidenceScore: req.ConfidenceScore,
		Category:        req.Category,
		Version:         req.Version,
		IsCanonical:     req.IsCanonical,
		PreferredChoice: req.PreferredChoice,
		CreatedBy:       callerID(r),
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, rec.Response())
}

// Get handles GET /insights/{insightID}
func (h *InsightHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "insightID")

	rec, err := h.insights.GetByID(r.Context(), id)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, rec.Response())
}

// List handles GET /insights?content_id=...&min_confidence=...
func (h *InsightHandler) List(w http.ResponseWriter, r *http.Request) {
	contentID := r.URL.Query().Get("content_id")
	limit := common.ExtractLimit(r)

	var (
		recs []records.Insight
		err  error
	)
	if minScore, ok := common.ExtractScore(r, "min_confidence"); ok {
		recs, err = h.insights.ListByMinConfidence(r.Context(), contentID, minScore, limit)
	} else if contentID != "" {
		recs, err = h.insights.ListByContentID(r.Context(), contentID, limit)
	} else {
		recs, err = h.insights.List(r.Context(), limit)
	}
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	out := make([]records.InsightResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Response())
	}
	common.RespondJSON(w, http.StatusOK, out)
}

// Update handles PATCH /insights/{insightID}
func (h *InsightHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "insightID")

	var req UpdateInsightRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	rec, err := h.insights.Update(r.Context(), id, records.InsightUpdate{
		Text:            req.Text,
		ConfidenceScore: req.ConfidenceScore,
		Category:        req.Category,
		Version:         req.Version,
		IsCanonical:     req.IsCanonical,
		PreferredChoice: req.PreferredChoice,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, rec.Response())
}

// Regenerate handles POST /insights/regenerate
func (h *InsightHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	var req RegenerateRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	res, err := h.workflow.Regenerate(r.Context(), usecases.RegenerateParams{
		ContentID:    req.ContentID,
		URLID:        req.URLID,
		UserText:     req.UserText,
		QuestionText: req.QuestionText,
		IsCanonical:  req.IsCanonical,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated,
		regenerateResponse("insight_id", "insight_text", "confidence_score", res))
}

// SetPreferred handles POST /insights/{insightID}/preferred
func (h *InsightHandler) SetPreferred(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "insightID")

	var req SetPreferredRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := h.workflow.SetPreferredRecord(r.Context(), req.ContentID, id); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"insight_id":       id,
		"content_id":       req.ContentID,
		"preferred_choice": true,
	})
}

// ListQA handles GET /insights/{insightID}/qa
func (h *InsightHandler) ListQA(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "insightID")

	recs, err := h.qa.ListByParentID(r.Context(), id, common.ExtractLimit(r))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	out := make([]records.QAResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Response())
	}
	common.RespondJSON(w, http.StatusOK, out)
}
