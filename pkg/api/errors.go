package api

import "fmt"

// RequestError is the single failure condition surfaced by the clients. It
// carries either the HTTP status and server message, or the transport error
// for requests that never produced a response.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

func (e *RequestError) Unwrap() error { return e.Err }

// NotFound reports whether the error is a 404 from the server.
func (e *RequestError) NotFound() bool { return e.StatusCode == 404 }
