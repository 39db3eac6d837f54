package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncProcessorRuns()
	IncMatchesProcessed()
	ObserveProcessingDuration(duration float64)
	IncRatingsUpdated()
	IncScansRequested()
	IncScansFailed()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
