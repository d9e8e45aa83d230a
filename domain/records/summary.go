package records

import "time"

// Summary is one generated summary version for a content record
type Summary struct {
	ID              string
	ContentID       string
	URLID           string
	Text            string
	Version         int
	IsCanonical     bool
	PreferredChoice bool
	CreatedAt       time.Time
	CreatedBy       string
}

// NewSummaryParams carries caller input for summary creation
type NewSummaryParams struct {
	ContentID       string `validate:"required"`
	URLID           string `validate:"omitempty"`
	Text            string `validate:"required"`
	Version         int    `validate:"gt=0"`
	IsCanonical     bool
	PreferredChoice bool
	CreatedBy       string
}

// NewSummary builds a summary record with a generated id and timestamp
func NewSummary(p NewSummaryParams) Summary {
	return Summary{
		ID:              NewID(),
		ContentID:       p.ContentID,
		URLID:           p.URLID,
		Text:            p.Text,
		Version:         p.Version,
		IsCanonical:     p.IsCanonical,
		PreferredChoice: p.PreferredChoice,
		CreatedAt:       time.Now(),
		CreatedBy:       p.CreatedBy,
	}
}

// SummaryUpdate is the typed partial update for summary records
type SummaryUpdate struct {
	Text            *string
	Version         *int `validate:"omitempty,gt=0"`
	IsCanonical     *bool
	PreferredChoice *bool
}

// Item renders the partial update as a flat field map
func (u SummaryUpdate) Item() Item {
	it := Item{}
	if u.Text != nil {
		it["summary_text"] = *u.Text
	}
	if u.Version != nil {
		it["version"] = *u.Version
	}
	if u.IsCanonical != nil {
		it["is_canonical"] = *u.IsCanonical
	}
	if u.PreferredChoice != nil {
		it["preferred_choice"] = *u.PreferredChoice
	}
	return it
}

// SummaryResponse is the external shape
type SummaryResponse struct {
	SummaryID       string `json:"summary_id"`
	ContentID       string `json:"content_id"`
	URLID           string `json:"url_id,omitempty"`
	Text            string `json:"summary_text"`
	Version         int    `json:"version"`
	IsCanonical     bool   `json:"is_canonical"`
	PreferredChoice bool   `json:"preferred_choice"`
	CreatedAt       string `json:"created_at"`
	CreatedBy       string `json:"created_by,omitempty"`
}

// Response shapes the record for callers
func (s Summary) Response() SummaryResponse {
	return SummaryResponse{
		SummaryID:       s.ID,
		ContentID:       s.ContentID,
		URLID:           s.URLID,
		Text:            s.Text,
		Version:         s.Version,
		IsCanonical:     s.IsCanonical,
		PreferredChoice: s.PreferredChoice,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
		CreatedBy:       s.CreatedBy,
	}
}

func (s Summary) item() Item {
	return Item{
		KeyAttr:            s.ID,
		"content_id":       s.ContentID,
		"url_id":           s.URLID,
		"summary_text":     s.Text,
		"version":          s.Version,
		"is_canonical":     s.IsCanonical,
		"preferred_choice": s.PreferredChoice,
		"created_at":       s.CreatedAt.Format(time.RFC3339),
		"created_by":       s.CreatedBy,
	}
}

func summaryFromItem(it Item) (Summary, error) {
	id, err := requireKey(it, EntitySummary)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		ID:              id,
		ContentID:       itemString(it, "content_id"),
		URLID:           itemString(it, "url_id"),
		Text:            itemString(it, "summary_text"),
		Version:         itemInt(it, "version"),
		IsCanonical:     itemBool(it, "is_canonical"),
		PreferredChoice: itemBool(it, "preferred_choice"),
		CreatedAt:       itemTime(it, "created_at"),
		CreatedBy:       itemString(it, "created_by"),
	}, nil
}

// SummaryMapping binds summary records to their table schema
var SummaryMapping = Mapping[Summary]{
	Schema:   Schema{Entity: EntitySummary, ResponseKey: "summary_id"},
	ID:       func(s Summary) string { return s.ID },
	ToItem:   Summary.item,
	FromItem: summaryFromItem,
}
