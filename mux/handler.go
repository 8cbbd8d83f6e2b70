package mux

import "context"

// Handler is the unit of application logic bound to a route.
//
// A handler returns either a success response or an error. Errors
// created through the response constructors (BadRequest,
// InternalServerError, NotFound, or any *Error) carry their own
// HTTP response and reach the client as-is; any other error folds into
// the generic 500.
//
// The same Handler value is reused for every matching request, possibly
// concurrently, so implementations must not keep per-invocation mutable
// state.
type Handler interface {
	Handle(ctx context.Context, req *Request) (*Response, error)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// Handle calls f(ctx, req).
func (f HandlerFunc) Handle(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
