package domain

// Perception defaults
const (
	// VisionRadius is used when an observer has no vision component.
	VisionRadius = 8
)
