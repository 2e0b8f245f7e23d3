// Package server provides the HTTP surface the desktop shell calls to get
// thumbnails and clear the thumbnail cache.
// It includes handlers, middleware, routes, and DTOs separated from domain types.
package server

// ThumbnailRequest is the HTTP request body for producing a thumbnail.
type ThumbnailRequest struct {
	// SourceReference is the path of the video file.
	SourceReference string `json:"source_reference" validate:"required"`
}

// ThumbnailResponse is the HTTP response carrying a produced thumbnail.
type ThumbnailResponse struct {
	// DataURI is the JPEG thumbnail as "data:image/jpeg;base64,...".
	DataURI string `json:"data_uri"`
}

// ClearCacheResponse is the HTTP response after clearing the cache.
type ClearCacheResponse struct {
	// Report is the human-readable summary.
	Report string `json:"report"`
	// Entries is the number of cache files processed.
	Entries int `json:"entries"`
	// FreedBytes is the total size of those files.
	FreedBytes int64 `json:"freed_bytes"`
	// FreedMB is FreedBytes in mebibytes with two decimals.
	FreedMB string `json:"freed_mb"`
	// Failed is the number of files that could not be removed.
	Failed int `json:"failed"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	// Error is the human-readable error message.
	Error string `json:"error"`
	// Code is the error code for programmatic handling.
	Code string `json:"code"`
	// Placeholder is an image the client may show instead of the thumbnail.
	Placeholder string `json:"placeholder,omitempty"`
}

// HealthResponse is the HTTP response for the health check endpoint.
type HealthResponse struct {
	// Status is the health status of the service.
	Status string `json:"status"`
}
