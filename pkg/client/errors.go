package client

import "fmt"

// GenericErrorMessage is shown when the backend returns no usable
// error body for a failed call.
const GenericErrorMessage = "Something went wrong. Please try again."

// apiErrorBody matches the error envelope the server writes.
type apiErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// APIError is returned for any non-2xx response. Message is always
// populated, falling back to GenericErrorMessage when the backend
// gave none.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

func newAPIError(statusCode int, body *apiErrorBody) *APIError {
	msg := GenericErrorMessage
	if body != nil && body.Error != "" {
		msg = body.Error
	}
	var fields map[string]string
	if body != nil {
		fields = body.Fields
	}
	return &APIError{StatusCode: statusCode, Message: msg, Fields: fields}
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == 404
}

// IsConflict reports whether err is an APIError with a 409 status,
// which the server uses for lifecycle violations such as editing a
// request that already reached a terminal status.
func IsConflict(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == 409
}
