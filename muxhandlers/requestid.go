package muxhandlers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wasmgate/canhttp/mux"
)

// RequestIDHeader is the header carrying the request ID.
const RequestIDHeader = "X-Request-Id"

// RequestID wraps a handler so its response carries a request ID. An ID
// sent by the client is echoed back; otherwise a UUIDv7 is generated,
// so fresh IDs sort by time. Error responses are stamped too.
func RequestID(next mux.Handler) mux.Handler {
	return mux.HandlerFunc(func(ctx context.Context, req *mux.Request) (*mux.Response, error) {
		id, ok := req.Header(RequestIDHeader)
		if !ok || id == "" {
			id = uuid.Must(uuid.NewV7()).String()
		}

		res, err := next.Handle(ctx, req)
		if res != nil {
			res.SetHeader(RequestIDHeader, id)
		}
		var herr *mux.Error
		if errors.As(err, &herr) {
			herr.Response.SetHeader(RequestIDHeader, id)
		}
		return res, err
	})
}
