package handlers

import (
	"net/http"

	"insights-backend/application/services"
	"insights-backend/domain/records"
	"insights-backend/pkg/auth"
	"insights-backend/pkg/common"
	apperrors "insights-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// ContentHandler handles content record HTTP requests
type ContentHandler struct {
	contents *services.ContentService
	errors   *apperrors.ErrorHandler
	logger   *zap.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(contents *services.ContentService, errors *apperrors.ErrorHandler, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{contents: contents, errors: errors, logger: logger}
}

// CreateContentRequest represents the request body for creating content
type CreateContentRequest struct {
	Title     string `json:"title"`
	UserText  string `json:"user_text"`
	SourceURL string `json:"source_url,omitempty"`
	Status    string `json:"status,omitempty"`
}

// UpdateContentRequest represents the request body for updating content
type UpdateContentRequest struct {
	Title    *string `json:"title,omitempty"`
	UserText *string `json:"user_text,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// Create handles POST /contents
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateContentRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	rec, err := h.contents.Create(r.Context(), records.NewContentParams{
		Title:     req.Title,
		UserText:  req.UserText,
		SourceURL: req.SourceURL,
		Status:    req.Status,
		CreatedBy: callerID(r),
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, rec.Response())
}

// Get handles GET /contents/{contentID}
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "contentID")

	rec, err := h.contents.GetByID(r.Context(), id)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, rec.Response())
}

// List handles GET /contents
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.contents.List(r.Context(), common.ExtractLimit(r))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	out := make([]records.ContentResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Response())
	}
	common.RespondJSON(w, http.StatusOK, out)
}

// Update handles PATCH /contents/{contentID}
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "contentID")

	var req UpdateContentRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	rec, err := h.contents.Update(r.Context(), id, records.ContentUpdate{
		Title:    req.Title,
		UserText: req.UserText,
		Status:   req.Status,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, rec.Response())
}

// callerID resolves the authenticated user id, empty when unauthenticated
func callerID(r *http.Request) string {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		return ""
	}
	return user.UserID
}
