package github

import "fmt"

// APIError is a failed call to the API. Error returns the message the API
// (or the transport) reported, unchanged, so it can be shown to the user as-is.
type APIError struct {
	DocumentationURL string
	Message          string
	StatusCode       int // 0 when the request never got a response
	Err              error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the API answered 404
func (e *APIError) NotFound() bool {
	return e.StatusCode == 404
}

// newStatusError builds an APIError from a non-2xx response.
// The body's message wins; otherwise a generic status text is used.
func newStatusError(status int, body errorBody) *APIError {
	msg := body.Message
	if msg == "" {
		msg = fmt.Sprintf("Request failed with status code %d", status)
	}
	return &APIError{
		DocumentationURL: body.DocumentationURL,
		Message:          msg,
		StatusCode:       status,
	}
}

// newTransportError wraps a failure that produced no usable response
func newTransportError(err error) *APIError {
	return &APIError{Message: err.Error(), Err: err}
}
