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

// ImplicationHandler handles implication HTTP requests including regeneration
type ImplicationHandler struct {
	implications *services.ImplicationService
	qa           *services.QAService
	workflow     *usecases.VersioningWorkflow
	errors       *apperrors.ErrorHandler
	logger       *zap.Logger
}

// NewImplicationHandler creates a new implication handler
func NewImplicationHandler(
	implications *services.ImplicationService,
	qa *services.QAService,
	workflow *usecases.VersioningWorkflow,
	errors *apperrors.ErrorHandler,
	logger *zap.Logger,
) *ImplicationHandler {
	return &ImplicationHandler{
		implications: implications,
		qa:           qa,
		workflow:     workflow,
		errors:       errors,
		logger:       logger,
	}
}

// CreateImplicationRequest represents the request body for creating an implication
type CreateImplicationRequest struct {
	ContentID       string  `json:"content_id"`
	URLID           string  `json:"url_id,omitempty"`
	Text            string  `json:"implication_text"`
	RelevanceScore  float64 `json:"relevance_score"`
	Version         int     `json:"version,omitempty"`
	IsCanonical     bool    `json:"is_canonical,omitempty"`
	PreferredChoice bool    `json:"preferred_choice,omitempty"`
}

// UpdateImplicationRequest represents the request body for updating an implication
type UpdateImplicationRequest struct {
	Text            *string  `json:"implication_text,omitempty"`
	RelevanceScore  *float64 `json:"relevance_score,omitempty"`
	Version         *int     `json:"version,omitempty"`
	IsCanonical     *bool    `json:"is_canonical,omitempty"`
	PreferredChoice *bool    `json:"preferred_choice,omitempty"`
}

// Create handles POST /implications
func (h *ImplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateImplicationRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	rec, err := h.implications.Create(r.Context(), records.NewImplicationParams{
		ContentID:       req.ContentID,
		URLID:           req.URLID,
		Text:            req.Text,
		RelevanceScore:  req.RelevanceScore,
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

// Get handles GET /implications/{implicationID}
func (h *ImplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "implicationID")

	rec, err := h.implications.GetByID(r.Context(), id)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, rec.Response())
}

// List handles GET /implications?content_id=...&min_relevance=...
func (h *ImplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	contentID := r.URL.Query().Get("content_id")
	limit := common.ExtractLimit(r)

	var (
		recs []records.Implication
		err  error
	)
	if minScore, ok := common.ExtractScore(r, "min_relevance"); ok {
		recs, err = h.implications.ListByMinRelevance(r.Context(), contentID, minScore, limit)
	} else if contentID != "" {
		recs, err = h.implications.ListByContentID(r.Context(), contentID, limit)
	} else {
		recs, err = h.implications.List(r.Context(), limit)
	}
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	out := make([]records.ImplicationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Response())
	}
	common.RespondJSON(w, http.StatusOK, out)
}

// Update handles PATCH /implications/{implicationID}
func (h *ImplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "implicationID")

	var req UpdateImplicationRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	rec, err := h.implications.Update(r.Context(), id, records.ImplicationUpdate{
		Text:            req.Text,
		RelevanceScore:  req.RelevanceScore,
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

// Regenerate handles POST /implications/regenerate
func (h *ImplicationHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
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
		regenerateResponse("implication_id", "implication_text", "relevance_score", res))
}

// SetPreferred handles POST /implications/{implicationID}/preferred
func (h *ImplicationHandler) SetPreferred(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "implicationID")

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
		"implication_id":   id,
		"content_id":       req.ContentID,
		"preferred_choice": true,
	})
}

// ListQA handles GET /implications/{implicationID}/qa
func (h *ImplicationHandler) ListQA(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "implicationID")

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
