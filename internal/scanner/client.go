package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

// Client is an HTTP client for the scorecard OCR service.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	BaseURL    string
}

// Ensure Client implements the ScannerClient interface.
var _ ScannerClient = (*Client)(nil)

const maxRetries = 3

// NewClient creates a new OCR service client. OCR runs are slow, so the
// timeout is generous and requests are rate limited to keep the sidecar
// from piling up work.
func NewClient(baseURL string) ScannerClient {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(time.Second), 2),
		BaseURL:    baseURL,
	}
}

func (c *Client) ExtractScores(ctx context.Context, imageBase64 string, expectedHoles int) (*ExtractResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(ExtractRequest{Image: imageBase64, ExpectedHoles: expectedHoles})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal extract request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
			log.Debug("Retrying scorecard scan", "attempt", attempt)
		}

		result, err := c.doExtract(ctx, payload)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("scorecard scan failed after %d attempts: %w", maxRetries, lastErr)
}

func (c *Client) doExtract(ctx context.Context, payload []byte) (*ExtractResponse, error) {
	url := c.BaseURL + "/extract_scores"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from OCR service", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var result ExtractResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("OCR service reported failure: %s", result.Error)
	}

	log.Info("Extracted scorecard scores",
		"holesFound", result.HolesFound, "confidence", result.Confidence, "processingTime", result.ProcessingTime)
	return &result, nil
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &health, nil
}
