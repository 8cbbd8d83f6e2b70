package mux

import "fmt"

// Method is an HTTP request method. The set is closed: only the verbs
// listed below can carry routes, and parsing any other token fails.
type Method uint8

const (
	MethodGet Method = iota
	MethodHead
	MethodOptions
	MethodPost
	MethodPut
	MethodPatch
	MethodDelete
)

var methodNames = [...]string{
	MethodGet:     "GET",
	MethodHead:    "HEAD",
	MethodOptions: "OPTIONS",
	MethodPost:    "POST",
	MethodPut:     "PUT",
	MethodPatch:   "PATCH",
	MethodDelete:  "DELETE",
}

// String returns the method token as it appears on the wire,
// e.g. "GET". Unknown values render as "UNKNOWN(n)".
func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(m))
}

// ParseMethod parses a wire method token. Matching is exact and
// case-sensitive per RFC 7231 Section 4.1.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if s == name {
			return Method(m), nil
		}
	}
	return 0, fmt.Errorf("mux: unknown method %q", s)
}

// Methods returns every method that can carry routes, in a fixed order.
func Methods() []Method {
	return []Method{
		MethodGet, MethodHead, MethodOptions,
		MethodPost, MethodPut, MethodPatch, MethodDelete,
	}
}
