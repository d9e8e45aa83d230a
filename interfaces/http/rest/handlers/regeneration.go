package handlers

import (
	"time"

	"insights-backend/application/usecases"
)

// RegenerateRequest represents the request body for regenerating a record
type RegenerateRequest struct {
	ContentID    string `json:"content_id"`
	URLID        string `json:"url_id,omitempty"`
	UserText     string `json:"user_text,omitempty"`
	QuestionText string `json:"question_text,omitempty"`
	IsCanonical  *bool  `json:"is_canonical,omitempty"`
}

// SetPreferredRequest represents the request body for promoting a record
type SetPreferredRequest struct {
	ContentID string `json:"content_id"`
}

// regenerateResponse shapes a workflow result for callers. The record id
// is keyed by the entity's external id name (insight_id, implication_id).
func regenerateResponse(idKey, textKey, scoreKey string, res *usecases.RegenerateResult) map[string]interface{} {
	rec := res.Record
	body := map[string]interface{}{
		idKey:              rec.ID,
		"content_id":       rec.ContentID,
		textKey:            rec.Body,
		scoreKey:           rec.Score,
		"version":          res.Version,
		"prior_count":      res.PriorCount,
		"is_canonical":     rec.IsCanonical,
		"preferred_choice": rec.PreferredChoice,
		"created_at":       rec.CreatedAt.Format(time.RFC3339),
		"used_fallback":    res.UsedFallback,
	}
	if rec.URLID != "" {
		body["url_id"] = rec.URLID
	}
	if rec.CreatedBy != "" {
		body["created_by"] = rec.CreatedBy
	}
	if res.QA != nil {
		body["qa"] = res.QA.Response()
	}
	return body
}
