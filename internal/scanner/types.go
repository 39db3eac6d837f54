package scanner

// ExtractRequest is the payload sent to the scorecard OCR service.
type ExtractRequest struct {
	// Image is the base64 encoded scorecard photo.
	Image string `json:"image"`
	// ExpectedHoles is how many hole scores the scan should find.
	ExpectedHoles int `json:"expected_holes"`
}

// ExtractResponse is the OCR service's scan result.
type ExtractResponse struct {
	Success        bool    `json:"success"`
	Scores         []int   `json:"scores"`
	Total          int     `json:"total"`
	Confidence     float64 `json:"confidence"`
	HolesFound     int     `json:"holes_found"`
	ProcessingTime float64 `json:"processing_time"`
	Error          string  `json:"error,omitempty"`
}

// HealthResponse is the OCR service's health check result.
type HealthResponse struct {
	Status    string  `json:"status"`
	Message   string  `json:"message"`
	Timestamp float64 `json:"timestamp"`
}
