package regeneration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"insights-backend/application/ports"
	apperrors "insights-backend/pkg/errors"

	"go.uber.org/zap"
)

const regeneratePath = "/api/regenerate-insights"

// Client calls the external insight-regeneration API. The only timeout
// in the system lives here; the versioning workflow treats any failure
// as recoverable and substitutes placeholder text.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a regeneration API client with the given timeout
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type regenerateResponse struct {
	GeneratedText string `json:"generated_text"`
}

// Regenerate posts the content to the regeneration API and returns the
// generated text. Timeout, transport error, non-2xx, or an empty body
// all surface as an upstream error.
func (c *Client) Regenerate(ctx context.Context, req ports.RegenerationRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", apperrors.NewUpstreamError("regeneration-api", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+regeneratePath, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.NewUpstreamError("regeneration-api", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("Regeneration API call failed",
			zap.String("contentID", req.ContentID),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return "", apperrors.NewUpstreamError("regeneration-api", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Warn("Regeneration API returned non-200",
			zap.String("contentID", req.ContentID),
			zap.Int("status", resp.StatusCode),
		)
		return "", apperrors.NewUpstreamError("regeneration-api",
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var decoded regenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", apperrors.NewUpstreamError("regeneration-api", err)
	}
	if strings.TrimSpace(decoded.GeneratedText) == "" {
		return "", apperrors.NewUpstreamError("regeneration-api", fmt.Errorf("empty generated_text"))
	}

	c.logger.Debug("Regeneration API call succeeded",
		zap.String("contentID", req.ContentID),
		zap.Duration("elapsed", time.Since(start)),
	)

	return decoded.GeneratedText, nil
}
