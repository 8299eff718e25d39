package api

import "fmt"

// NetworkError reports a transport-level failure: the request never
// produced an HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError reports a non-200 HTTP response. Message carries the decoded
// {"error": ...} field when the body had one; Body keeps the raw payload
// for endpoints that answer with plain text.
type ServerError struct {
	Status  int
	Message string
	Body    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// DecodeError reports a successful response whose body could not be parsed.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode error: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
