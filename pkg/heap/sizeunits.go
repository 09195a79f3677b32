package heap

// Recommended units for expressing PageSize readably.
const (
	KB = 1024
	MB = 1024 * KB
	GB = 1024 * MB
)
