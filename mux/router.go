package mux

import (
	"fmt"
	"strings"
)

// Record is the unit stored in the route table: the handler capability
// plus whether it must run on the state-mutating entry point.
type Record struct {
	Handler Handler
	Upgrade bool
}

// NoRouteError is returned by Lookup when no route matches the request.
type NoRouteError struct {
	Method Method
	Path   string
}

func (e *NoRouteError) Error() string {
	return fmt.Sprintf("cannot %s %s", e.Method, e.Path)
}

// Router maps (method, path pattern) pairs to handler records.
//
// Patterns are composed of literal segments and single-segment named
// parameters:
//
//	r := mux.NewRouter()
//	r.Get("/users/:id", false, handler)
//
// A Router is built once at setup time and treated as read-only
// afterwards; concurrent dispatches share it without locking. Replace
// the whole table through a RouterHolder when routes change.
type Router struct {
	prefix        string
	trees         map[Method]*node
	counts        map[Method]int
	handleOptions bool
	globalOptions *Record
}

// NewRouter returns an empty route table.
func NewRouter() *Router {
	return &Router{
		trees:  make(map[Method]*node),
		counts: make(map[Method]int),
	}
}

// SetGlobalPrefix prepends prefix to every pattern registered after the
// call. It applies at registration time only; lookups see the full
// prefixed path.
func (r *Router) SetGlobalPrefix(prefix string) *Router {
	r.prefix = prefix
	return r
}

// HandleOptions enables automatic OPTIONS synthesis: when an OPTIONS
// request matches no route but other verbs are registered at its path,
// the dispatcher answers the pre-flight itself.
func (r *Router) HandleOptions(enabled bool) *Router {
	r.handleOptions = enabled
	return r
}

// GlobalOptions installs a fallback handler for synthesized OPTIONS
// answers, replacing the default 204 response.
func (r *Router) GlobalOptions(upgrade bool, handler Handler) *Router {
	r.globalOptions = &Record{Handler: handler, Upgrade: upgrade}
	return r
}

// Handle registers a handler for the given method and path pattern.
// The pattern must begin with '/'; one trailing '/' is stripped so that
// "/foo" and "/foo/" are the same route. Handle panics when the pattern
// conflicts with an existing registration in the method's trie.
func (r *Router) Handle(method Method, path string, upgrade bool, handler Handler) *Router {
	if !strings.HasPrefix(path, "/") {
		panic(fmt.Sprintf("mux: expect path beginning with '/', found %q", path))
	}

	pattern := strings.TrimSuffix(r.prefix+path, "/")
	tree, ok := r.trees[method]
	if !ok {
		tree = newNode()
		r.trees[method] = tree
	}
	tree.insert(splitPath(pattern), pattern, &Record{Handler: handler, Upgrade: upgrade})
	r.counts[method]++
	return r
}

// Get registers a GET route.
func (r *Router) Get(path string, upgrade bool, handler Handler) *Router {
	return r.Handle(MethodGet, path, upgrade, handler)
}

// Head registers a HEAD route.
func (r *Router) Head(path string, upgrade bool, handler Handler) *Router {
	return r.Handle(MethodHead, path, upgrade, handler)
}

// Options registers an OPTIONS route.
func (r *Router) Options(path string, upgrade bool, handler Handler) *Router {
	return r.Handle(MethodOptions, path, upgrade, handler)
}

// Post registers a POST route.
func (r *Router) Post(path string, upgrade bool, handler Handler) *Router {
	return r.Handle(MethodPost, path, upgrade, handler)
}

// Put registers a PUT route.
func (r *Router) Put(path string, upgrade bool, handler Handler) *Router {
	return r.Handle(MethodPut, path, upgrade, handler)
}

// Patch registers a PATCH route.
func (r *Router) Patch(path string, upgrade bool, handler Handler) *Router {
	return r.Handle(MethodPatch, path, upgrade, handler)
}

// Delete registers a DELETE route.
func (r *Router) Delete(path string, upgrade bool, handler Handler) *Router {
	return r.Handle(MethodDelete, path, upgrade, handler)
}

// Lookup resolves a method and path to a handler record and the
// extracted parameter values. One trailing '/' is stripped before
// matching. On a miss it returns a *NoRouteError whose message reads
// "cannot <METHOD> <path>"; an empty path is reported as "/".
func (r *Router) Lookup(method Method, path string) (*Record, map[string]string, error) {
	path = strings.TrimSuffix(path, "/")
	if tree, ok := r.trees[method]; ok {
		params := make(map[string]string)
		if record := tree.match(splitPath(path), params); record != nil {
			return record, params, nil
		}
	}

	if path == "" {
		path = "/"
	}
	return nil, nil, &NoRouteError{Method: method, Path: path}
}

// Allowed reports which verbs have a matching route at the given path,
// with OPTIONS appended when the result is non-empty. The literal "*"
// matches every verb that has at least one registered route. OPTIONS
// routes themselves are excluded from the scan. Used to answer CORS
// pre-flight requests.
func (r *Router) Allowed(path string) []string {
	var allowed []string

	if path == "*" {
		for _, method := range Methods() {
			if method == MethodOptions {
				continue
			}
			if r.counts[method] > 0 {
				allowed = append(allowed, method.String())
			}
		}
	} else {
		segments := splitPath(strings.TrimSuffix(path, "/"))
		for _, method := range Methods() {
			if method == MethodOptions {
				continue
			}
			tree, ok := r.trees[method]
			if !ok {
				continue
			}
			params := make(map[string]string)
			if tree.match(segments, params) != nil {
				allowed = append(allowed, method.String())
			}
		}
	}

	if len(allowed) > 0 {
		allowed = append(allowed, MethodOptions.String())
	}
	return allowed
}
