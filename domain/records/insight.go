package records

import "time"

// Insight is one generated insight version for a content record
type Insight struct {
	ID              string
	ContentID       string
	URLID           string
	Text            string
	ConfidenceScore float64
	Category        string
	Version         int
	IsCanonical     bool
	PreferredChoice bool
	CreatedAt       time.Time
	CreatedBy       string
}

// NewInsightParams carries caller input for insight creation
type NewInsightParams struct {
	ContentID       string  `validate:"required"`
	URLID           string  `validate:"omitempty"`
	Text            string  `validate:"required"`
	ConfidenceScore float64 `validate:"gte=0,lte=1"`
	Category        string  `validate:"omitempty,max=100"`
	Version         int     `validate:"gt=0"`
	IsCanonical     bool
	PreferredChoice bool
	CreatedBy       string
}

// NewInsight builds an insight record with a generated id and timestamp
func NewInsight(p NewInsightParams) Insight {
	return Insight{
		ID:              NewID(),
		ContentID:       p.ContentID,
		URLID:           p.URLID,
		Text:            p.Text,
		ConfidenceScore: p.ConfidenceScore,
		Category:        p.Category,
		Version:         p.Version,
		IsCanonical:     p.IsCanonical,
		PreferredChoice: p.PreferredChoice,
		CreatedAt:       time.Now(),
		CreatedBy:       p.CreatedBy,
	}
}

// InsightUpdate is the typed partial update for insight records
type InsightUpdate struct {
	Text            *string
	ConfidenceScore *float64 `validate:"omitempty,gte=0,lte=1"`
	Category        *string  `validate:"omitempty,max=100"`
	Version         *int     `validate:"omitempty,gt=0"`
	IsCanonical     *bool
	PreferredChoice *bool
}

// Item renders the partial update as a flat field map
func (u InsightUpdate) Item() Item {
	it := Item{}
	if u.Text != nil {
		it["insight_text"] = *u.Text
	}
	if u.ConfidenceScore != nil {
		it["confidence_score"] = *u.ConfidenceScore
	}
	if u.Category != nil {
		it["category"] = *u.Category
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

// InsightResponse is the external shape
type InsightResponse struct {
	InsightID       string  `json:"insight_id"`
	ContentID       string  `json:"content_id"`
	URLID           string  `json:"url_id,omitempty"`
	Text            string  `json:"insight_text"`
	ConfidenceScore float64 `json:"confidence_score"`
	Category        string  `json:"category,omitempty"`
	Version         int     `json:"version"`
	IsCanonical     bool    `json:"is_canonical"`
	PreferredChoice bool    `json:"preferred_choice"`
	CreatedAt       string  `json:"created_at"`
	CreatedBy       string  `json:"created_by,omitempty"`
}

// Response shapes the record for callers
func (i Insight) Response() InsightResponse {
	return InsightResponse{
		InsightID:       i.ID,
		ContentID:       i.ContentID,
		URLID:           i.URLID,
		Text:            i.Text,
		ConfidenceScore: i.ConfidenceScore,
		Category:        i.Category,
		Version:         i.Version,
		IsCanonical:     i.IsCanonical,
		PreferredChoice: i.PreferredChoice,
		CreatedAt:       i.CreatedAt.Format(time.RFC3339),
		CreatedBy:       i.CreatedBy,
	}
}

func (i Insight) item() Item {
	return Item{
		KeyAttr:            i.ID,
		"content_id":       i.ContentID,
		"url_id":           i.URLID,
		"insight_text":     i.Text,
		"confidence_score": i.ConfidenceScore,
		"category":         i.Category,
		"version":          i.Version,
		"is_canonical":     i.IsCanonical,
		"preferred_choice": i.PreferredChoice,
		"created_at":       i.CreatedAt.Format(time.RFC3339),
		"created_by":       i.CreatedBy,
	}
}

func insightFromItem(it Item) (Insight, error) {
	id, err := requireKey(it, EntityInsight)
	if err != nil {
		return Insight{}, err
	}
	return Insight{
		ID:              id,
		ContentID:       itemString(it, "content_id"),
		URLID:           itemString(it, "url_id"),
		Text:            itemString(it, "insight_text"),
		ConfidenceScore: itemFloat(it, "confidence_score"),
		Category:        itemString(it, "category"),
		Version:         itemInt(it, "version"),
		IsCanonical:     itemBool(it, "is_canonical"),
		PreferredChoice: itemBool(it, "preferred_choice"),
		CreatedAt:       itemTime(it, "created_at"),
		CreatedBy:       itemString(it, "created_by"),
	}, nil
}

// InsightMapping binds insight records to their table schema
var InsightMapping = Mapping[Insight]{
	Schema:   Schema{Entity: EntityInsight, ResponseKey: "insight_id"},
	ID:       func(i Insight) string { return i.ID },
	ToItem:   Insight.item,
	FromItem: insightFromItem,
}
