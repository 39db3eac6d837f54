package scanner

import "context"

// ScannerClient talks to the scorecard OCR sidecar service.
type ScannerClient interface {
	// ExtractScores sends a base64 encoded scorecard photo for OCR and
	// returns the recognised hole scores.
	ExtractScores(ctx context.Context, imageBase64 string, expectedHoles int) (*ExtractResponse, error)
	// Health probes the sidecar's readiness.
	Health(ctx context.Context) (*HealthResponse, error)
}
