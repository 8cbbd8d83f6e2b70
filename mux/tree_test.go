package mux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertPattern(t *testing.T, root *node, pattern string) *Record {
	t.Helper()
	record := &Record{Handler: HandlerFunc(nil)}
	root.insert(splitPath(pattern), pattern, record)
	return record
}

func TestSplitPath(t *testing.T) {
	t.Run("empty path has no segments", func(t *testing.T) {
		assert.Empty(t, splitPath(""))
	})

	t.Run("splits on slashes", func(t *testing.T) {
		assert.Equal(t, []string{"users", "42", "posts"}, splitPath("/users/42/posts"))
	})

	t.Run("percent-decodes segments", func(t *testing.T) {
		assert.Equal(t, []string{"files", "hello world"}, splitPath("/files/hello%20world"))
	})
}

func TestTreeMatch(t *testing.T) {
	t.Run("literal match", func(t *testing.T) {
		root := newNode()
		want := insertPattern(t, root, "/users/list")

		params := make(map[string]string)
		got := root.match(splitPath("/users/list"), params)
		require.NotNil(t, got)
		assert.Same(t, want, got)
		assert.Empty(t, params)
	})

	t.Run("captures parameter segments", func(t *testing.T) {
		root := newNode()
		want := insertPattern(t, root, "/users/:id/posts/:post")

		params := make(map[string]string)
		got := root.match(splitPath("/users/42/posts/7"), params)
		require.Same(t, want, got)
		assert.Equal(t, map[string]string{"id": "42", "post": "7"}, params)
	})

	t.Run("literal wins over parameter", func(t *testing.T) {
		root := newNode()
		literal := insertPattern(t, root, "/users/me")
		insertPattern(t, root, "/users/:id")

		params := make(map[string]string)
		assert.Same(t, literal, root.match(splitPath("/users/me"), params))
		assert.Empty(t, params)
	})

	t.Run("backtracks to parameter when literal subtree dead-ends", func(t *testing.T) {
		root := newNode()
		insertPattern(t, root, "/users/me")
		byID := insertPattern(t, root, "/users/:id/posts")

		params := make(map[string]string)
		got := root.match(splitPath("/users/me/posts"), params)
		require.Same(t, byID, got)
		assert.Equal(t, "me", params["id"])
	})

	t.Run("parameter captures exactly one segment", func(t *testing.T) {
		root := newNode()
		insertPattern(t, root, "/files/:name")

		assert.Nil(t, root.match(splitPath("/files/a/b"), make(map[string]string)))
	})

	t.Run("no match returns nil", func(t *testing.T) {
		root := newNode()
		insertPattern(t, root, "/users")

		assert.Nil(t, root.match(splitPath("/posts"), make(map[string]string)))
	})
}

func TestTreeInsertConflicts(t *testing.T) {
	t.Run("duplicate pattern panics", func(t *testing.T) {
		root := newNode()
		insertPattern(t, root, "/users/:id")

		assert.Panics(t, func() {
			insertPattern(t, root, "/users/:id")
		})
	})

	t.Run("parameter name mismatch panics", func(t *testing.T) {
		root := newNode()
		insertPattern(t, root, "/users/:id")

		assert.Panics(t, func() {
			insertPattern(t, root, "/users/:name/posts")
		})
	})

	t.Run("unnamed parameter panics", func(t *testing.T) {
		root := newNode()
		assert.Panics(t, func() {
			insertPattern(t, root, "/users/:")
		})
	})

	t.Run("distinct subtrees do not conflict", func(t *testing.T) {
		root := newNode()
		insertPattern(t, root, "/users/:id")
		assert.NotPanics(t, func() {
			insertPattern(t, root, "/users/:id/posts")
			insertPattern(t, root, "/users")
		})
	})
}
