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

// MetadataHandler handles metadata HTTP requests
type MetadataHandler struct {
	metadata *services.MetadataService
	errors   *apperrors.ErrorHandler
	logger   *zap.Logger
}

// NewMetadataHandler creates a new metadata handler
func NewMetadataHandler(metadata *services.MetadataService, errors *apperrors.ErrorHandler, logger *zap.Logger) *MetadataHandler {
	return &MetadataHandler{metadata: metadata, errors: errors, logger: logger}
}

// CreateMetadataRequest represents the request body for creating metadata
type CreateMetadataRequest struct {
	ContentID  string                 `json:"content_id"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// UpdateMetadataRequest represents the request body for updating metadata
type UpdateMetadataRequest struct {
	Attributes map[string]interface{} `json:"attributes"`
}

// Create handles POST /metadata
func (h *MetadataHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMetadataRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	rec, err := h.metadata.Create(r.Context(), records.NewMetadataParams{
		ContentID:  req.ContentID,
		Attributes: req.Attributes,
		CreatedBy:  callerID(r),
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, rec.Response())
}

// Get handles GET /metadata/{metadataID}
func (h *MetadataHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "metadataID")

	rec, err := h.metadata.GetByID(r.Context(), id)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, rec.Response())
}

// Lookup handles GET /metadata?content_id=...
func (h *MetadataHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	contentID := r.URL.Query().Get("content_id")
	if contentID == "" {
		h.errors.Handle(w, r, apperrors.NewValidationError("content_id is required"))
		return
	}

	rec, err := h.metadata.FindByContentID(r.Context(), contentID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	if rec == nil {
		h.errors.Handle(w, r, apperrors.NewNotFoundError("metadata", contentID))
		return
	}

	common.RespondJSON(w, http.StatusOK, rec.Response())
}

// Update handles PATCH /metadata/{metadataID}
func (h *MetadataHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "metadataID")

	var req UpdateMetadataRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	rec, err := h.metadata.Update(r.Context(), id, records.MetadataUpdate{
		Attributes: req.Attributes,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, rec.Response())
}
