package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/backuporganizer/internal/logging"
	"github.com/google/uuid"
)

// RequestIDHeader tags every outgoing request for correlation with backend logs.
const RequestIDHeader = "X-Request-ID"

// Response is a fully read HTTP reply.
type Response struct {
	Method     string
	Endpoint   string
	StatusCode int
	Status     string
	Body       []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnexpectedResponse, r.Method, r.Endpoint, err)
	}
	return nil
}

// Transport issues JSON requests against the API base URL.
type Transport struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
	newID   func() string
}

// NewTransport returns a Transport rooted at baseURL.
func NewTransport(baseURL string, timeout time.Duration, log logging.Logger) (*Transport, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	return &Transport{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		log:     log,
		newID:   uuid.NewString,
	}, nil
}

// Call sends one request and reads the whole reply.
//
// A non-nil body is JSON-encoded. On a 2xx reply the error is nil. Any other
// status returns the response together with a *ResponseError. When no reply
// was received the error wraps ErrUnavailable and the response is nil.
func (t *Transport) Call(ctx context.Context, method, endpoint string, query url.Values, body any) (*Response, error) {
	u := t.baseURL.JoinPath(endpoint)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", endpoint, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := t.newID()
	req.Header.Set(RequestIDHeader, requestID)
	log := t.log.With("request_id", requestID, "method", method, "endpoint", endpoint)

	start := time.Now()
	resp, err := t.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, endpoint, err)
	}

	r := &Response{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       data,
	}
	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(start))

	if !r.OK() {
		return r, &ResponseError{Response: r}
	}
	return r, nil
}
