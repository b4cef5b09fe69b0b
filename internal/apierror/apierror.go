// Package apierror holds the JSON bodies written for 4xx/5xx responses.
// Database errors and panics are never copied into them.
package apierror

// APIError is the plain error body: {"error": "..."}.
type APIError struct {
	Error string `json:"error" example:"drug not found"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

// ValidationError is returned for rejected request bodies and queries.
// Fields maps each offending json field to the rule it failed.
type ValidationError struct {
	Error  string            `json:"error" example:"validation failed"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Error: "validation failed", Fields: fields}
}
