package common

import (
	"net/http"
	"strconv"
)

const maxListLimit = 100

// ExtractLimit reads the limit query parameter, capped at 100. Zero means
// no explicit limit was requested.
func ExtractLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// ExtractScore reads a score query parameter such as min_confidence.
// Returns the score and whether the parameter was present and valid.
func ExtractScore(r *http.Request, name string) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}

	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return score, true
}
