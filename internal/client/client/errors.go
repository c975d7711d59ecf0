package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// ResponseError is returned for any non-2xx reply. It carries the raw response
// so the caller can render the backend's diagnostics.
type ResponseError struct {
	Response *Response
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Response.Method, e.Response.Endpoint, e.Response.Status)
}
