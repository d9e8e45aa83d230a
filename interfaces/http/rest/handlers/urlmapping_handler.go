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

// URLMappingHandler handles URL mapping HTTP requests
type URLMappingHandler struct {
	mappings *services.URLMappingService
	errors   *apperrors.ErrorHandler
	logger   *zap.Logger
}

// NewURLMappingHandler creates a new URL mapping handler
func NewURLMappingHandler(mappings *services.URLMappingService, errors *apperrors.ErrorHandler, logger *zap.Logger) *URLMappingHandler {
	return &URLMappingHandler{mappings: mappings, errors: errors, logger: logger}
}

// CreateURLMappingRequest represents the request body for creating a mapping
type CreateURLMappingRequest struct {
	ContentID string `json:"content_id"`
	URL       string `json:"url"`
}

// Create handles POST /url-mappings
func (h *URLMappingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateURLMappingRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	rec, err := h.mappings.Create(r.Context(), records.NewURLMappingParams{
		ContentID: req.ContentID,
		URL:       req.URL,
		CreatedBy: callerID(r),
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, rec.Response())
}

// Get handles GET /url-mappings/{urlID}
func (h *URLMappingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "urlID")

	rec, err := h.mappings.GetByID(r.Context(), id)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, rec.Response())
}

// Lookup handles GET /url-mappings?url=...
// Without a url parameter it lists mappings.
func (h *URLMappingHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		h.list(w, r)
		return
	}

	rec, err := h.mappings.FindByNormalizedURL(r.Context(), rawURL)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	if rec == nil {
		h.errors.Handle(w, r, apperrors.NewNotFoundError("url mapping", rawURL))
		return
	}

	common.RespondJSON(w, http.StatusOK, rec.Response())
}

func (h *URLMappingHandler) list(w http.ResponseWriter, r *http.Request) {
	recs, err := h.mappings.List(r.Context(), common.ExtractLimit(r))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	out := make([]records.URLMappingResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Response())
	}
	common.RespondJSON(w, http.StatusOK, out)
}
