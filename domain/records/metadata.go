package records

import "time"

// Metadata holds free-form key/value attributes for a content record
type Metadata struct {
	ID         string
	ContentID  string
	Attributes map[string]interface{}
	CreatedAt  time.Time
	CreatedBy  string
}

// NewMetadataParams carries caller input for metadata creation
type NewMetadataParams struct {
	ContentID  string `validate:"required"`
	Attributes map[string]interface{}
	CreatedBy  string
}

// NewMetadata builds a metadata record with a generated id and timestamp
func NewMetadata(p NewMetadataParams) Metadata {
	attrs := p.Attributes
	if attrs == nil {
		attrs = map[string]interface{}{}
	}
	return Metadata{
		ID:         NewID(),
		ContentID:  p.ContentID,
		Attributes: attrs,
		CreatedAt:  time.Now(),
		CreatedBy:  p.CreatedBy,
	}
}

// MetadataUpdate is the typed partial update for metadata records.
// Attributes, when set, replaces the whole attribute map.
type MetadataUpdate struct {
	Attributes map[string]interface{}
}

// Item renders the partial update as a flat field map
func (u MetadataUpdate) Item() Item {
	it := Item{}
	if u.Attributes != nil {
		it["attributes"] = u.Attributes
	}
	return it
}

// MetadataResponse is the external shape
type MetadataResponse struct {
	MetadataID string                 `json:"metadata_id"`
	ContentID  string                 `json:"content_id"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
	CreatedAt  string                 `json:"created_at"`
	CreatedBy  string                 `json:"created_by,omitempty"`
}

// Response shapes the record for callers
func (m Metadata) Response() MetadataResponse {
	return MetadataResponse{
		MetadataID: m.ID,
		ContentID:  m.ContentID,
		Attributes: m.Attributes,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
		CreatedBy:  m.CreatedBy,
	}
}

func (m Metadata) item() Item {
	return Item{
		KeyAttr:      m.ID,
		"content_id": m.ContentID,
		"attributes": m.Attributes,
		"created_at": m.CreatedAt.Format(time.RFC3339),
		"created_by": m.CreatedBy,
	}
}

func metadataFromItem(it Item) (Metadata, error) {
	id, err := requireKey(it, EntityMetadata)
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{
		ID:         id,
		ContentID:  itemString(it, "content_id"),
		Attributes: itemMap(it, "attributes"),
		CreatedAt:  itemTime(it, "created_at"),
		CreatedBy:  itemString(it, "created_by"),
	}, nil
}

// MetadataMapping binds metadata records to their table schema
var MetadataMapping = Mapping[Metadata]{
	Schema:   Schema{Entity: EntityMetadata, ResponseKey: "metadata_id"},
	ID:       func(m Metadata) string { return m.ID },
	ToItem:   Metadata.item,
	FromItem: metadataFromItem,
}
