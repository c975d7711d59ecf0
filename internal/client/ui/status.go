package ui

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/backuporganizer/internal/client/client"
	"github.com/dmitrijs2005/backuporganizer/internal/client/view"
	"github.com/dmitrijs2005/backuporganizer/internal/jsonx"
)

// StatusReporter renders failures into the page's status area.
type StatusReporter struct {
	area *view.StatusArea
}

func NewStatusReporter(area *view.StatusArea) *StatusReporter {
	return &StatusReporter{area: area}
}

type errorBody struct {
	Errors  jsonx.Object[json.RawMessage] `json:"errors"`
	Message json.RawMessage               `json:"message"`
}

// Report replaces the status area with one "<field>: <message>" line per
// member of the body's errors object, in body order. A body without such an
// object yields the HTTP status and, when present, the body's message.
func (s *StatusReporter) Report(resp *client.Response) {
	var body errorBody
	_ = json.Unmarshal(resp.Body, &body)

	lines := make([]string, 0, len(body.Errors))
	for _, f := range body.Errors {
		lines = append(lines, fmt.Sprintf("%s: %s", f.Key, rawText(f.Value)))
	}

	if len(lines) == 0 {
		lines = append(lines, "status: "+resp.Status)
		var msg string
		if json.Unmarshal(body.Message, &msg) == nil && msg != "" {
			lines = append(lines, "message: "+msg)
		}
	}

	s.area.Replace(lines...)
}

// Fail renders err. Backend replies go through Report; anything else is a
// transport failure.
func (s *StatusReporter) Fail(err error) {
	var respErr *client.ResponseError
	if errors.As(err, &respErr) && respErr.Response != nil {
		s.Report(respErr.Response)
		return
	}
	s.area.Replace("transport: " + err.Error())
}

func (s *StatusReporter) Clear() {
	s.area.Clear()
}

// rawText unquotes JSON strings and keeps any other value as written.
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
