package mux

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
)

// poweredBy identifies the library on every wire response.
const poweredBy = "canhttp"

type bodyKind uint8

const (
	bodyText bodyKind = iota
	bodyJSON
	bodyRaw
)

// Body is a response payload: a JSON value, UTF-8 text, or raw bytes.
// The zero value is empty text.
type Body struct {
	kind  bodyKind
	value any
	text  string
	raw   []byte
}

// JSON returns a body that serializes v as JSON on the wire.
func JSON(v any) Body {
	return Body{kind: bodyJSON, value: v}
}

// Text returns a plain text body.
func Text(s string) Body {
	return Body{kind: bodyText, text: s}
}

// Raw returns a body of raw bytes.
func Raw(b []byte) Body {
	return Body{kind: bodyRaw, raw: b}
}

// Bytes renders the body for the wire. Rendering is total: a JSON value
// that cannot be marshalled degrades to a JSON error object instead of
// failing.
func (b Body) Bytes() []byte {
	switch b.kind {
	case bodyJSON:
		data, err := json.Marshal(b.value)
		if err != nil {
			data, _ = json.Marshal(map[string]string{"error": err.Error()})
		}
		return data
	case bodyRaw:
		return b.raw
	default:
		return []byte(b.text)
	}
}

// Response is the handler-level response: status, headers and body.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       Body
}

// NewResponse returns a response with the given status and body.
func NewResponse(status int, body Body) *Response {
	return &Response{
		StatusCode: status,
		Headers:    make(map[string]string),
		Body:       body,
	}
}

// SetHeader sets a header, replacing any existing value.
func (r *Response) SetHeader(name, value string) {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[name] = value
}

// RemoveHeader deletes a header.
func (r *Response) RemoveHeader(name string) {
	delete(r.Headers, name)
}

// RawResponse is the wire response shape returned to the host. Upgrade
// tells the host to retry the same call through the state-mutating
// entry point; it is false for ordinary completed calls.
type RawResponse struct {
	StatusCode uint16            `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
	Upgrade    *bool             `json:"upgrade,omitempty"`
}

// SetUpgrade sets the wire upgrade flag.
func (r *RawResponse) SetUpgrade(upgrade bool) {
	r.Upgrade = &upgrade
}

// Raw converts the response to wire form. A Content-Type of
// application/json is injected only when the response set none, the
// identifying header is always added, and the upgrade flag starts out
// false.
func (r *Response) Raw() *RawResponse {
	headers := make(map[string]string, len(r.Headers)+2)
	maps.Copy(headers, r.Headers)
	if _, ok := headers["Content-Type"]; !ok {
		headers["Content-Type"] = "application/json"
	}
	headers["X-Powered-By"] = poweredBy

	raw := &RawResponse{
		StatusCode: uint16(r.StatusCode),
		Headers:    headers,
		Body:       r.Body.Bytes(),
	}
	raw.SetUpgrade(false)
	return raw
}

// Error is an error that carries its own HTTP response. Handlers return
// it (usually through BadRequest, InternalServerError or NotFound) when
// the failure should reach the client with a specific status and body.
type Error struct {
	Response *Response
}

func (e *Error) Error() string {
	return fmt.Sprintf("mux: handler responded with status %d", e.Response.StatusCode)
}

// BadRequest returns a 400 error response. The detail value ends up
// under the "error" key of the JSON body.
func BadRequest(detail any) error {
	return &Error{Response: NewResponse(400, JSON(map[string]any{
		"statusCode": 400,
		"message":    "Bad Request",
		"error":      detail,
	}))}
}

// InternalServerError returns the generic 500 error response.
func InternalServerError() error {
	return &Error{Response: internalErrorResponse()}
}

// NotFound returns a 404 error response carrying the given message.
func NotFound(message string) error {
	return &Error{Response: NewResponse(404, JSON(map[string]any{
		"statusCode": 404,
		"message":    message,
		"error":      "Not Found",
	}))}
}

func internalErrorResponse() *Response {
	return NewResponse(500, JSON(map[string]any{
		"statusCode": 500,
		"message":    "Internal server error",
	}))
}

// responseFromError unwraps a handler error into a response. Errors
// without an attached response fold into the generic 500.
func responseFromError(err error) *Response {
	var herr *Error
	if errors.As(err, &herr) {
		return herr.Response
	}
	return internalErrorResponse()
}
