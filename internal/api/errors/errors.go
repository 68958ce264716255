package errors

import "net/http"

// Kind classifies an API error and decides its HTTP status.
type Kind string

const (
	KindBadRequest Kind = "bad_request"
	KindUpstream   Kind = "upstream"
	KindInternal   Kind = "internal"
)

// APIError is the JSON error body every failure path returns. The shape
// mirrors the worker result envelope: success is always false, the message
// sits under "error".
type APIError struct {
	Success   bool   `json:"success"`
	Kind      Kind   `json:"kind"`
	Message   string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus maps the error kind to a status code.
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewBadRequestError creates a bad request error.
func NewBadRequestError(message string) *APIError {
	return &APIError{Kind: KindBadRequest, Message: message}
}

// NewUpstreamError creates an error for a failure reported by the worker.
func NewUpstreamError(message string) *APIError {
	return &APIError{Kind: KindUpstream, Message: message}
}

// NewInternalError creates an internal server error.
func NewInternalError(message string) *APIError {
	return &APIError{Kind: KindInternal, Message: message}
}
