package api

// APIResponse represents a standard API response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Tag is one decoded (group code, value) record in a listing.
type Tag struct {
	Code  int16       `json:"code"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// InspectResult is the payload returned by the tag-listing endpoint.
type InspectResult struct {
	RequestID string `json:"request_id"`
	Format    string `json:"format"`
	Count     int    `json:"count"`
	Truncated bool   `json:"truncated"`
	Tags      []Tag  `json:"tags"`
}

// ServerConfig holds configuration for the API server.
type ServerConfig struct {
	Port     int
	Bind     string
	APIKey   string
	CodePage string
	// MaxTags caps the number of records returned per inspection.
	MaxTags int
	// MaxBodyBytes caps the size of an uploaded file.
	MaxBodyBytes int64
}
