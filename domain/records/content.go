package records

import "time"

// Content is the parent record every other entity references by content_id
type Content struct {
	ID        string
	Title     string
	UserText  string
	SourceURL string
	Status    string
	CreatedAt time.Time
	CreatedBy string
}

// NewContentParams carries caller input for content creation
type NewContentParams struct {
	Title     string `validate:"required,max=500"`
	UserText  string `validate:"required"`
	SourceURL string `validate:"omitempty,url"`
	Status    string `validate:"omitempty,oneof=pending analyzed archived"`
	CreatedBy string
}

// NewContent builds a content record with a generated id and timestamp
func NewContent(p NewContentParams) Content {
	status := p.Status
	if status == "" {
		status = "pending"
	}
	return Content{
		ID:        NewID(),
		Title:     p.Title,
		UserText:  p.UserText,
		SourceURL: p.SourceURL,
		Status:    status,
		CreatedAt: time.Now(),
		CreatedBy: p.CreatedBy,
	}
}

// ContentUpdate is the typed partial update for content records
type ContentUpdate struct {
	Title    *string `validate:"omitempty,max=500"`
	UserText *string
	Status   *string `validate:"omitempty,oneof=pending analyzed archived"`
}

// Item renders the partial update as a flat field map
func (u ContentUpdate) Item() Item {
	it := Item{}
	if u.Title != nil {
		it["title"] = *u.Title
	}
	if u.UserText != nil {
		it["user_text"] = *u.UserText
	}
	if u.Status != nil {
		it["status"] = *u.Status
	}
	return it
}

// ContentResponse is the external shape; optional fields are omitted, not null
type ContentResponse struct {
	ContentID string `json:"content_id"`
	Title     string `json:"title"`
	UserText  string `json:"user_text"`
	SourceURL string `json:"source_url,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	CreatedBy string `json:"created_by,omitempty"`
}

// Response shapes the record for callers
func (c Content) Response() ContentResponse {
	return ContentResponse{
		ContentID: c.ID,
		Title:     c.Title,
		UserText:  c.UserText,
		SourceURL: c.SourceURL,
		Status:    c.Status,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		CreatedBy: c.CreatedBy,
	}
}

func (c Content) item() Item {
	return Item{
		KeyAttr:      c.ID,
		"title":      c.Title,
		"user_text":  c.UserText,
		"source_url": c.SourceURL,
		"status":     c.Status,
		"created_at": c.CreatedAt.Format(time.RFC3339),
		"created_by": c.CreatedBy,
	}
}

func contentFromItem(it Item) (Content, error) {
	id, err := requireKey(it, EntityContent)
	if err != nil {
		return Content{}, err
	}
	return Content{
		ID:        id,
		Title:     itemString(it, "title"),
		UserText:  itemString(it, "user_text"),
		SourceURL: itemString(it, "source_url"),
		Status:    itemString(it, "status"),
		CreatedAt: itemTime(it, "created_at"),
		CreatedBy: itemString(it, "created_by"),
	}, nil
}

// ContentMapping binds content records to their table schema
var ContentMapping = Mapping[Content]{
	Schema:   Schema{Entity: EntityContent, ResponseKey: "content_id"},
	ID:       func(c Content) string { return c.ID },
	ToItem:   Content.item,
	FromItem: contentFromItem,
}
