package types

// Envelope is the uniform response body every endpoint returns. Success
// responses carry Data (plus Total on list endpoints); failures carry Error
// with the underlying description. Message is populated for both outcomes.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}
