package muxhandlers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wasmgate/canhttp/mux"
)

func TestRequestID(t *testing.T) {
	ok := mux.HandlerFunc(func(_ context.Context, _ *mux.Request) (*mux.Response, error) {
		return mux.NewResponse(200, mux.Text("ok")), nil
	})

	t.Run("stamps responses with a fresh uuid", func(t *testing.T) {
		res, err := RequestID(ok).Handle(context.Background(), &mux.Request{})
		require.NoError(t, err)

		id := res.Headers[RequestIDHeader]
		require.NotEmpty(t, id)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("echoes a client-provided id", func(t *testing.T) {
		req := &mux.Request{Headers: []mux.Header{{Name: RequestIDHeader, Value: "client-id-7"}}}
		res, err := RequestID(ok).Handle(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "client-id-7", res.Headers[RequestIDHeader])
	})

	t.Run("stamps error responses", func(t *testing.T) {
		failing := mux.HandlerFunc(func(_ context.Context, _ *mux.Request) (*mux.Response, error) {
			return nil, mux.BadRequest("nope")
		})

		_, err := RequestID(failing).Handle(context.Background(), &mux.Request{})
		var herr *mux.Error
		require.ErrorAs(t, err, &herr)
		assert.NotEmpty(t, herr.Response.Headers[RequestIDHeader])
	})
}
