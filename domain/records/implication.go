package records

import "time"

// Implication is one generated implication version for a content record
type Implication struct {
	ID              string
	ContentID       string
	URLID           string
	Text            string
	RelevanceScore  float64
	Version         int
	IsCanonical     bool
	PreferredChoice bool
	CreatedAt       time.Time
	CreatedBy       string
}

// NewImplicationParams carries caller input for implication creation
type NewImplicationParams struct {
	ContentID       string  `validate:"required"`
	URLID           string  `validate:"omitempty"`
	Text            string  `validate:"required"`
	RelevanceScore  float64 `validate:"gte=0,lte=1"`
	Version         int     `validate:"gt=0"`
	IsCanonical     bool
	PreferredChoice bool
	CreatedBy       string
}

// NewImplication builds an implication record with a generated id and timestamp
func NewImplication(p NewImplicationParams) Implication {
	return Implication{
		ID:              NewID(),
		ContentID:       p.ContentID,
		URLID:           p.URLID,
		Text:            p.Text,
		RelevanceScore:  p.RelevanceScore,
		Version:         p.Version,
		IsCanonical:     p.IsCanonical,
		PreferredChoice: p.PreferredChoice,
		CreatedAt:       time.Now(),
		CreatedBy:       p.CreatedBy,
	}
}

// ImplicationUpdate is the typed partial update for implication records
type ImplicationUpdate struct {
	Text            *string
	RelevanceScore  *float64 `validate:"omitempty,gte=0,lte=1"`
	Version         *int     `validate:"omitempty,gt=0"`
	IsCanonical     *bool
	PreferredChoice *bool
}

// Item renders the partial update as a flat field map
func (u ImplicationUpdate) Item() Item {
	it := Item{}
	if u.Text != nil {
		it["implication_text"] = *u.Text
	}
	if u.RelevanceScore != nil {
		it["relevance_score"] = *u.RelevanceScore
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

// ImplicationResponse is the external shape
type ImplicationResponse struct {
	ImplicationID   string  `json:"implication_id"`
	ContentID       string  `json:"content_id"`
	URLID           string  `json:"url_id,omitempty"`
	Text            string  `json:"implication_text"`
	RelevanceScore  float64 `json:"relevance_score"`
	Version         int     `json:"version"`
	IsCanonical     bool    `json:"is_canonical"`
	PreferredChoice bool    `json:"preferred_choice"`
	CreatedAt       string  `json:"created_at"`
	CreatedBy       string  `json:"created_by,omitempty"`
}

// Response shapes the record for callers
func (i Implication) Response() ImplicationResponse {
	return ImplicationResponse{
		ImplicationID:   i.ID,
		ContentID:       i.ContentID,
		URLID:           i.URLID,
		Text:            i.Text,
		RelevanceScore:  i.RelevanceScore,
		Version:         i.Version,
		IsCanonical:     i.IsCanonical,
		PreferredChoice: i.PreferredChoice,
		CreatedAt:       i.CreatedAt.Format(time.RFC3339),
		CreatedBy:       i.CreatedBy,
	}
}

func (i Implication) item() Item {
	return Item{
		KeyAttr:            i.ID,
		"content_id":       i.ContentID,
		"url_id":           i.URLID,
		"implication_text": i.Text,
		"relevance_score":  i.RelevanceScore,
		"version":          i.Version,
		"is_canonical":     i.IsCanonical,
		"preferred_choice": i.PreferredChoice,
		"created_at":       i.CreatedAt.Format(time.RFC3339),
		"created_by":       i.CreatedBy,
	}
}

func implicationFromItem(it Item) (Implication, error) {
	id, err := requireKey(it, EntityImplication)
	if err != nil {
		return Implication{}, err
	}
	return Implication{
		ID:              id,
		ContentID:       itemString(it, "content_id"),
		URLID:           itemString(it, "url_id"),
		Text:            itemString(it, "implication_text"),
		RelevanceScore:  itemFloat(it, "relevance_score"),
		Version:         itemInt(it, "version"),
		IsCanonical:     itemBool(it, "is_canonical"),
		PreferredChoice: itemBool(it, "preferred_choice"),
		CreatedAt:       itemTime(it, "created_at"),
		CreatedBy:       itemString(it, "created_by"),
	}, nil
}

// ImplicationMapping binds implication records to their table schema
var ImplicationMapping = Mapping[Implication]{
	Schema:   Schema{Entity: EntityImplication, ResponseKey: "implication_id"},
	ID:       func(i Implication) string { return i.ID },
	ToItem:   Implication.item,
	FromItem: implicationFromItem,
}
