package records

import (
	"net/url"
	"strings"
	"time"
)

// URLMapping links a content record to the URL it was extracted from
type URLMapping struct {
	ID            string
	ContentID     string
	URL           string
	NormalizedURL string
	CreatedAt     time.Time
	CreatedBy     string
}

// NewURLMappingParams carries caller input for URL mapping creation
type NewURLMappingParams struct {
	ContentID string `validate:"required"`
	URL       string `validate:"required"`
	CreatedBy string
}

// NewURLMapping builds a mapping record, normalizing the URL. A URL that
// does not parse as absolute http(s) is rejected.
func NewURLMapping(p NewURLMappingParams) (URLMapping, error) {
	normalized, err := NormalizeURL(p.URL)
	if err != nil {
		return URLMapping{}, err
	}
	return URLMapping{
		ID:            NewID(),
		ContentID:     p.ContentID,
		URL:           p.URL,
		NormalizedURL: normalized,
		CreatedAt:     time.Now(),
		CreatedBy:     p.CreatedBy,
	}, nil
}

// NormalizeURL lowercases the host, strips fragments and trailing slashes
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &url.Error{Op: "normalize", URL: raw, Err: url.InvalidHostError(u.Host)}
	}
	if u.Host == "" {
		return "", &url.Error{Op: "normalize", URL: raw, Err: url.InvalidHostError("")}
	}
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u.String(), nil
}

// URLMappingResponse is the external shape
type URLMappingResponse struct {
	URLID         string `json:"url_id"`
	ContentID     string `json:"content_id"`
	URL           string `json:"url"`
	NormalizedURL string `json:"normalized_url,omitempty"`
	CreatedAt     string `json:"created_at"`
	CreatedBy     string `json:"created_by,omitempty"`
}

// Response shapes the record for callers
func (m URLMapping) Response() URLMappingResponse {
	return URLMappingResponse{
		URLID:         m.ID,
		ContentID:     m.ContentID,
		URL:           m.URL,
		NormalizedURL: m.NormalizedURL,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
		CreatedBy:     m.CreatedBy,
	}
}

func (m URLMapping) item() Item {
	return Item{
		KeyAttr:          m.ID,
		"content_id":     m.ContentID,
		"url":            m.URL,
		"normalized_url": m.NormalizedURL,
		"created_at":     m.CreatedAt.Format(time.RFC3339),
		"created_by":     m.CreatedBy,
	}
}

func urlMappingFromItem(it Item) (URLMapping, error) {
	id, err := requireKey(it, EntityURLMapping)
	if err != nil {
		return URLMapping{}, err
	}
	return URLMapping{
		ID:            id,
		ContentID:     itemString(it, "content_id"),
		URL:           itemString(it, "url"),
		NormalizedURL: itemString(it, "normalized_url"),
		CreatedAt:     itemTime(it, "created_at"),
		CreatedBy:     itemString(it, "created_by"),
	}, nil
}

// URLMappingMapping binds URL mapping records to their table schema
var URLMappingMapping = Mapping[URLMapping]{
	Schema:   Schema{Entity: EntityURLMapping, ResponseKey: "url_id"},
	ID:       func(m URLMapping) string { return m.ID },
	ToItem:   URLMapping.item,
	FromItem: urlMappingFromItem,
}
