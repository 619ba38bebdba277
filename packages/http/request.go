package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/abdul-hamid-achik/apismoke/packages/domain"
)

// ErrFormAndJSON is returned when a request carries both a form and a JSON body.
var ErrFormAndJSON = errors.New("request has both form and json body")

// Request describes a call relative to the client's base URL.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Params  map[string]string
	Form    map[string]string
	JSON    any
}

// BuildURL resolves the request path against base and appends Params as the
// query string.
func (r *Request) BuildURL(base string) (string, error) {
	raw := r.Path
	if base != "" {
		raw = domain.Join(base, r.Path)
	}
	if len(r.Params) == 0 {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	q := u.Query()
	for k, v := range r.Params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// body returns the encoded body and its content type.
func (r *Request) body() (io.Reader, string, error) {
	hasJSON := !isNil(r.JSON)
	if r.Form != nil && hasJSON {
		return nil, "", ErrFormAndJSON
	}

	if hasJSON {
		data, err := json.Marshal(r.JSON)
		if err != nil {
			return nil, "", fmt.Errorf("encoding json body: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil
	}

	if r.Form != nil {
		values := url.Values{}
		for k, v := range r.Form {
			values.Set(k, v)
		}
		return strings.NewReader(values.Encode()), "application/x-www-form-urlencoded", nil
	}

	return nil, "", nil
}

// isNil reports whether v is nil or a nil map, slice or pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
