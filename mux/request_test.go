package mux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestHeader(t *testing.T) {
	req := &Request{Headers: []Header{
		{Name: "Content-Type", Value: "application/json"},
		{Name: "X-Thing", Value: "first"},
		{Name: "X-Thing", Value: "second"},
	}}

	t.Run("matches case-insensitively", func(t *testing.T) {
		value, ok := req.Header("content-type")
		require.True(t, ok)
		assert.Equal(t, "application/json", value)
	})

	t.Run("returns the first of repeated headers", func(t *testing.T) {
		value, ok := req.Header("X-Thing")
		require.True(t, ok)
		assert.Equal(t, "first", value)
	})

	t.Run("reports absence", func(t *testing.T) {
		_, ok := req.Header("Authorization")
		assert.False(t, ok)
	})
}

func TestRequestQuery(t *testing.T) {
	t.Run("parses key-value pairs", func(t *testing.T) {
		req := &Request{URL: "/search?q=routers&page=2"}
		assert.Equal(t, map[string]string{"q": "routers", "page": "2"}, req.Query())
	})

	t.Run("unescapes values", func(t *testing.T) {
		req := &Request{URL: "/search?q=hello+world"}
		assert.Equal(t, "hello world", req.Query()["q"])
	})

	t.Run("no query string yields an empty map", func(t *testing.T) {
		req := &Request{URL: "/search"}
		assert.Empty(t, req.Query())
	})
}

func TestRequestDecodeBody(t *testing.T) {
	t.Run("decodes json", func(t *testing.T) {
		req := &Request{Body: []byte(`{"name":"demo","count":3}`)}

		var payload struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		}
		require.NoError(t, req.DecodeBody(&payload))
		assert.Equal(t, "demo", payload.Name)
		assert.Equal(t, 3, payload.Count)
	})

	t.Run("reports malformed bodies", func(t *testing.T) {
		req := &Request{Body: []byte("not json")}
		var payload map[string]any
		assert.Error(t, req.DecodeBody(&payload))
	})
}

func TestNewRequest(t *testing.T) {
	t.Run("carries the raw request through", func(t *testing.T) {
		raw := &RawRequest{
			Method:  "PUT",
			URL:     "/items/7?full=1",
			Headers: []Header{{Name: "Accept", Value: "*/*"}},
			Body:    []byte("payload"),
		}
		req := newRequest(raw, "/items/7", map[string]string{"id": "7"})

		assert.Equal(t, "PUT", req.Method)
		assert.Equal(t, "/items/7?full=1", req.URL)
		assert.Equal(t, raw.Headers, req.Headers)
		assert.Equal(t, []byte("payload"), req.Body)
		assert.Equal(t, "/items/7", req.Path)
		assert.Equal(t, "7", req.Params["id"])
	})

	t.Run("empty path becomes root and params are never nil", func(t *testing.T) {
		req := newRequest(&RawRequest{Method: "GET"}, "", nil)
		assert.Equal(t, "/", req.Path)
		assert.NotNil(t, req.Params)
	})
}
