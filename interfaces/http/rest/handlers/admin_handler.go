package handlers

import (
	"net/http"

	"insights-backend/application/usecases"
	"insights-backend/pkg/common"
	apperrors "insights-backend/pkg/errors"

	"go.uber.org/zap"
)

// AdminHandler handles administrative HTTP requests
type AdminHandler struct {
	seeder *usecases.SeedGenerator
	errors *apperrors.ErrorHandler
	logger *zap.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(seeder *usecases.SeedGenerator, errors *apperrors.ErrorHandler, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{seeder: seeder, errors: errors, logger: logger}
}

// SeedRequest represents the request body for a seed run. An empty item
// list runs the built-in sample set.
type SeedRequest struct {
	Items []SeedItemRequest `json:"items,omitempty"`
}

// SeedItemRequest is one caller-supplied sample item
type SeedItemRequest struct {
	Title           string  `json:"title"`
	UserText        string  `json:"user_text"`
	URL             string  `json:"url"`
	InsightText     string  `json:"insight_text,omitempty"`
	ImplicationText string  `json:"implication_text,omitempty"`
	SummaryText     string  `json:"summary_text,omitempty"`
	Confidence      float64 `json:"confidence,omitempty"`
	Relevance       float64 `json:"relevance,omitempty"`
}

// Seed handles POST /admin/seed
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	var req SeedRequest
	if r.ContentLength > 0 {
		if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
			h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
			return
		}
	}

	items := usecases.DefaultSeedItems()
	if len(req.Items) > 0 {
		items = make([]usecases.SeedItem, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, usecases.SeedItem{
				Title:           it.Title,
				UserText:        it.UserText,
				URL:             it.URL,
				InsightText:     it.InsightText,
				ImplicationText: it.ImplicationText,
				SummaryText:     it.SummaryText,
				Confidence:      it.Confidence,
				Relevance:       it.Relevance,
			})
		}
	}

	h.logger.Info("Seed run requested", zap.Int("items", len(items)))

	report := h.seeder.Run(r.Context(), items)
	common.RespondJSON(w, http.StatusOK, report)
}
