package practicum

import "fmt"

// ConnectionError indicates the request failed before an HTTP response was
// received: connection refused, timeout, DNS failure. It carries the request
// parameters for diagnostics.
type ConnectionError struct {
	Endpoint string
	From     int64
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed (from_date=%d): %v", e.Endpoint, e.From, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ServerError indicates the endpoint answered with a non-success HTTP status.
type ServerError struct {
	Endpoint   string
	From       int64
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server %s unavailable: status %d (from_date=%d)", e.Endpoint, e.StatusCode, e.From)
}

// APIError indicates the server embedded a rejection in an otherwise
// successful answer, via a top-level "error" or "code" key.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("api rejected request: %s (%s)", e.Message, e.Code)
	case e.Code != "":
		return fmt.Sprintf("api rejected request: code %s", e.Code)
	default:
		return fmt.Sprintf("api rejected request: %s", e.Message)
	}
}

// MalformedResponseError indicates the answer body cannot be interpreted as
// the expected structure: not JSON, empty, or missing a required key.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "malformed api answer: " + e.Reason
}

// TypeMismatchError indicates a field exists in the answer but holds a value
// of the wrong type.
type TypeMismatchError struct {
	Field string
	Got   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("api answer field %q has unexpected type %s", e.Field, e.Got)
}

// UnknownVerdictError indicates a homework carries a status code outside the
// fixed verdict set.
type UnknownVerdictError struct {
	Status string
}

func (e *UnknownVerdictError) Error() string {
	return fmt.Sprintf("unknown homework status %q", e.Status)
}
