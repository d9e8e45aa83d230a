package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercases host", "https://Example.COM/path", "https://example.com/path"},
		{"strips fragment", "https://example.com/path#section", "https://example.com/path"},
		{"strips trailing slash", "https://example.com/path/", "https://example.com/path"},
		{"keeps query", "https://example.com/path?q=1", "https://example.com/path?q=1"},
		{"keeps path case", "https://example.com/Path/One", "https://example.com/Path/One"},
		{"trims whitespace", "  https://example.com/x  ", "https://example.com/x"},
		{"bare host", "http://example.com/", "http://example.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeURL(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeURLRejects(t *testing.T) {
	for _, raw := range []string{
		"ftp://example.com/x",
		"example.com/no-scheme",
		"//missing-scheme.com",
		"https://",
		"",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := NormalizeURL(raw)
			assert.Error(t, err)
		})
	}
}

func TestNewURLMapping(t *testing.T) {
	rec, err := NewURLMapping(NewURLMappingParams{
		ContentID: "c1",
		URL:       "https://Example.com/a/",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "https://Example.com/a/", rec.URL)
	assert.Equal(t, "https://example.com/a", rec.NormalizedURL)
	assert.False(t, rec.CreatedAt.IsZero())

	_, err = NewURLMapping(NewURLMappingParams{ContentID: "c1", URL: "mailto:x@y.z"})
	assert.Error(t, err)
}
