package mux

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Header is a single wire header field.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RawRequest is the wire request shape handed in by the host: the
// method token, the URL (path plus query string), the header list and
// the raw body bytes.
type RawRequest struct {
	Method  string   `json:"method"`
	URL     string   `json:"url"`
	Headers []Header `json:"headers"`
	Body    []byte   `json:"body"`
}

// Request is a RawRequest enriched by routing: Path holds the matched
// path without query string or trailing slash, and Params the values
// captured by the pattern's named parameters.
type Request struct {
	Method  string
	URL     string
	Headers []Header
	Body    []byte
	Path    string
	Params  map[string]string
}

func newRequest(raw *RawRequest, path string, params map[string]string) *Request {
	if path == "" {
		path = "/"
	}
	if params == nil {
		params = make(map[string]string)
	}
	return &Request{
		Method:  raw.Method,
		URL:     raw.URL,
		Headers: raw.Headers,
		Body:    raw.Body,
		Path:    path,
		Params:  params,
	}
}

// Header returns the first header with the given name. Names compare
// case-insensitively per RFC 7230 Section 3.2.
func (r *Request) Header(name string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

// Query parses the request's query string into a map, keeping the first
// value of repeated keys. Malformed pairs are skipped.
func (r *Request) Query() map[string]string {
	out := make(map[string]string)
	_, rawQuery, ok := strings.Cut(r.URL, "?")
	if !ok {
		return out
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return out
	}
	for key, vals := range values {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out
}

// DecodeBody unmarshals the JSON request body into v.
func (r *Request) DecodeBody(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("mux: decode body: %w", err)
	}
	return nil
}
