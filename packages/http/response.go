package http

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

type Response struct {
	URL        string
	Method     string
	StatusCode int
	Status     string
	Headers    map[string]string
	Body       []byte
	Duration   time.Duration
	RequestID  string
}

func (r *Response) Header(key string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

// IsJSON reports whether the body is a valid JSON document.
func (r *Response) IsJSON() bool {
	return len(r.Body) > 0 && gjson.ValidBytes(r.Body)
}

// Field looks up a gjson path in the body. A body that is not JSON has no
// fields.
func (r *Response) Field(path string) gjson.Result {
	if !r.IsJSON() {
		return gjson.Result{}
	}
	return gjson.GetBytes(r.Body, path)
}

// Success returns the "response" field, or "failed" when it is missing.
func (r *Response) Success() string {
	return r.fieldOr("response", "failed")
}

// Data returns the raw "data" field, or "{}" when it is missing.
func (r *Response) Data() string {
	return r.fieldOr("data", "{}")
}

// Message returns the "message" field, or "" when it is missing.
func (r *Response) Message() string {
	return r.fieldOr("message", "")
}

func (r *Response) fieldOr(path, def string) string {
	f := r.Field(path)
	if !f.Exists() {
		return def
	}
	if f.Type == gjson.String {
		return f.Str
	}
	return f.Raw
}
