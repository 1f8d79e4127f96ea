package service

// MetricsRecorder counts business outcomes that are not visible at the HTTP layer.
type MetricsRecorder interface {
	// ProductEvent counts a committed product transition.
	ProductEvent(eventType string)

	// AuthAttempt counts a register or login outcome.
	AuthAttempt(operation string, success bool)
}
