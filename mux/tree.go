package mux

import (
	"fmt"
	"net/url"
	"strings"
)

// node is a single segment in a method's route trie. Literal children
// are keyed by their decoded segment; at most one parameter child may
// exist per node, and its name is fixed by the first pattern that
// registers it.
type node struct {
	children map[string]*node
	param    *node
	name     string
	record   *Record
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// splitPath breaks a normalized path (no query string, no trailing
// slash) into percent-decoded segments. The empty path has no segments
// and addresses the trie root.
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if decoded, err := url.PathUnescape(segment); err == nil {
			segments[i] = decoded
		}
	}
	return segments
}

// insert files a handler record under the given segments. Conflicting
// registrations are a programming error and panic: a duplicate pattern,
// a parameter segment colliding with a differently named parameter, or
// an empty parameter name.
func (n *node) insert(segments []string, pattern string, record *Record) {
	if len(segments) == 0 {
		if n.record != nil {
			panic(fmt.Sprintf("mux: a handler is already registered for pattern %q", pattern))
		}
		n.record = record
		return
	}

	segment := segments[0]
	if name, ok := strings.CutPrefix(segment, ":"); ok {
		if name == "" {
			panic(fmt.Sprintf("mux: parameter must have a name in pattern %q", pattern))
		}
		if n.param == nil {
			child := newNode()
			child.name = name
			n.param = child
		} else if n.param.name != name {
			panic(fmt.Sprintf("mux: parameter :%s conflicts with existing parameter :%s in pattern %q",
				name, n.param.name, pattern))
		}
		n.param.insert(segments[1:], pattern, record)
		return
	}

	child, ok := n.children[segment]
	if !ok {
		child = newNode()
		n.children[segment] = child
	}
	child.insert(segments[1:], pattern, record)
}

// match resolves segments to a handler record, filling params with the
// values captured by parameter segments. Literal children win; the
// parameter child is only tried when no literal subtree completes the
// match.
func (n *node) match(segments []string, params map[string]string) *Record {
	if len(segments) == 0 {
		return n.record
	}

	segment := segments[0]
	if child, ok := n.children[segment]; ok {
		if record := child.match(segments[1:], params); record != nil {
			return record
		}
	}
	if n.param != nil {
		if record := n.param.match(segments[1:], params); record != nil {
			params[n.param.name] = segment
			return record
		}
	}
	return nil
}
