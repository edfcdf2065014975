// internal/app/system/limits/limits.go

// Package limits holds the request and upload size caps shared across
// handlers.
package limits

const (
	// MaxJSONBodySize caps JSON request bodies.
	MaxJSONBodySize = 1 << 20 // 1 MiB

	// MaxImageUploadSize caps a single image upload.
	MaxImageUploadSize = 50 << 20 // 50 MiB

	// DefaultMaxVideoUploadSize caps a single video upload unless
	// overridden by configuration.
	DefaultMaxVideoUploadSize = 200 << 20 // 200 MiB
)
