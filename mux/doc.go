// Package mux implements HTTP request routing and dispatch for hosts
// that expose two entry points over a single handler table: a read-only
// query path and a state-mutating update path.
//
// Routes are registered per method against a trie of literal segments
// and single-segment named parameters:
//
//	router := mux.NewRouter().HandleOptions(true)
//	router.Get("/users/:id", false, mux.HandlerFunc(getUser))
//	router.Post("/users", true, mux.HandlerFunc(createUser))
//
// A handler registered with upgrade=true must run on the update entry
// point; dispatching it through the query path answers 500 with the
// wire upgrade flag set, telling the host to replay the call.
//
// The host wires one dispatcher per entry point over the same table:
//
//	holder := mux.NewRouterHolder(setup())
//
//	func httpRequest(ctx context.Context, req *mux.RawRequest) *mux.RawResponse {
//		return mux.NewServe(holder.Load(), mux.QueryCall).Serve(ctx, req)
//	}
//
//	func httpRequestUpdate(ctx context.Context, req *mux.RawRequest) *mux.RawResponse {
//		return mux.NewServe(holder.Load(), mux.UpdateCall).Serve(ctx, req)
//	}
//
// Pattern syntax:
//
//	/static/path     - literal segments, matched exactly
//	/users/:id       - :id captures exactly one path segment
//
// Trailing slashes are stripped at registration and lookup, so /foo and
// /foo/ name the same route. A global prefix set through
// SetGlobalPrefix is prepended once, at registration time.
//
// Conflicting registrations (duplicate patterns, or parameter segments
// with clashing names at the same position) panic at setup: misrouting
// in production is worse than a boot-time crash.
package mux
