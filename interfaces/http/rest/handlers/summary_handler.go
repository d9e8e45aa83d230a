package handlers

import (
	"net/http"

	"insights-backend/application/services"
	"insights-backend/domain/records"
	"insights-backend/pkg/common"
	apperrors "insights-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SummaryHandler handles summary HTTP requests
type SummaryHandler struct {
	summaries *services.SummaryService
	errors    *apperrors.ErrorHandler
	logger    *zap.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaries *services.SummaryService, errors *apperrors.ErrorHandler, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{summaries: summaries, errors: errors, logger: logger}
}

// CreateSummaryRequest represents the request body for creating a summary
type CreateSummaryRequest struct {
	ContentID       string `json:"content_id"`
	URLID           string `json:"url_id,omitempty"`
	Text            string `json:"summary_text"`
	Version         int    `json:"version,omitempty"`
	IsCanonical     bool   `json:"is_canonical,omitempty"`
	PreferredChoice bool   `json:"preferred_choice,omitempty"`
}

// UpdateSummaryRequest represents the request body for updating a summary
type UpdateSummaryRequest struct {
	Text            *string `json:"summary_text,omitempty"`
	Version         *int    `json:"version,omitempty"`
	IsCanonical     *bool   `json:"is_canonical,omitempty"`
	PreferredChoice *bool   `json:"preferred_choice,omitempty"`
}

// Create handles POST /summaries
func (h *SummaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSummaryRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	rec, err := h.summaries.Create(r.Context(), records.NewSummaryParams{
		ContentID:       req.ContentID,
		URLID:           req.URLID,
		Text:            req.Text,
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

// Get handles GET /summaries/{summaryID}
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "summaryID")

	rec, err := h.summaries.GetByID(r.Context(), id)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, rec.Response())
}

// List handles GET /summaries?content_id=...
func (h *SummaryHandler) List(w http.ResponseWriter, r *http.Request) {
	contentID := r.URL.Query().Get("content_id")
	limit := common.ExtractLimit(r)

	var (
		recs []records.Summary
		err  error
	)
	if contentID != "" {
		recs, err = h.summaries.ListByContentID(r.Context(), contentID, limit)
	} else {
		recs, err = h.summaries.List(r.Context(), limit)
	}
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	out := make([]records.SummaryResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Response())
	}
	common.RespondJSON(w, http.StatusOK, out)
}

// Update handles PATCH /summaries/{summaryID}
func (h *SummaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "summaryID")

	var req UpdateSummaryRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	rec, err := h.summaries.Update(r.Context(), id, records.SummaryUpdate{
		Text:            req.Text,
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
