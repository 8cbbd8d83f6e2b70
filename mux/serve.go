package mux

import (
	"context"
	"log/slog"
	"strings"
)

// CallMode records which host entry point a dispatch arrived on.
type CallMode uint8

const (
	// QueryCall is the read-only entry point. Handlers registered with
	// upgrade=true are refused here and the host is told to retry
	// through the update entry point.
	QueryCall CallMode = iota

	// UpdateCall is the state-mutating entry point.
	UpdateCall
)

// Serve resolves raw wire requests against a route table and drives the
// matched handler to completion. It is constructed per entry point with
// an explicit CallMode; the host exposes one Serve for query calls and
// one for update calls over the same Router.
//
// Serve never fails outward: malformed methods, missing routes, upgrade
// mismatches and handler panics all come back as well-formed wire
// responses.
type Serve struct {
	router *Router
	cors   *Cors
	mode   CallMode
	logger *slog.Logger
}

// NewServe returns a dispatcher over the given route table.
func NewServe(router *Router, mode CallMode) *Serve {
	return &Serve{router: router, mode: mode}
}

// UseCors installs a response policy applied to every handler and
// synthesized pre-flight response.
func (s *Serve) UseCors(policy *Cors) *Serve {
	s.cors = policy
	return s
}

// SetLogger enables per-dispatch debug logging.
func (s *Serve) SetLogger(logger *slog.Logger) *Serve {
	s.logger = logger
	return s
}

// normalizePath strips the query string and one trailing slash, so the
// root path and the empty path both normalize to "".
func normalizePath(url string) string {
	path, _, _ := strings.Cut(url, "?")
	return strings.TrimSuffix(path, "/")
}

// Serve dispatches one wire request:
//
//  1. parse the method; unknown verbs answer 500 immediately
//  2. normalize the path and look it up in the method's trie
//  3. on a match, refuse mutating handlers on the query path
//     (500, upgrade=true), otherwise run the handler
//  4. on a miss, synthesize the OPTIONS pre-flight when enabled,
//     otherwise answer 404 with the lookup message
//
// Every response carries the wire upgrade flag so the host knows
// whether to replay the call through the update entry point.
func (s *Serve) Serve(ctx context.Context, raw *RawRequest) (out *RawResponse) {
	defer func() {
		if rec := recover(); rec != nil {
			out = internalErrorResponse().Raw()
			if s.logger != nil {
				s.logger.ErrorContext(ctx, "handler panic", "method", raw.Method, "url", raw.URL, "panic", rec)
			}
		}
		if s.logger != nil {
			s.logger.DebugContext(ctx, "dispatch", "method", raw.Method, "url", raw.URL, "status", out.StatusCode)
		}
	}()

	method, err := ParseMethod(raw.Method)
	if err != nil {
		return internalErrorResponse().Raw()
	}

	path := normalizePath(raw.URL)
	record, params, lookupErr := s.router.Lookup(method, path)
	if lookupErr != nil {
		if method == MethodOptions && s.router.handleOptions {
			if res := s.answerPreflight(ctx, raw, path); res != nil {
				return res
			}
		}
		return responseFromError(NotFound(lookupErr.Error())).Raw()
	}

	if s.mode == QueryCall && record.Upgrade {
		res := internalErrorResponse().Raw()
		res.SetUpgrade(record.Upgrade)
		return res
	}

	return s.invoke(ctx, record, newRequest(raw, path, params))
}

// invoke runs a handler record to completion and post-processes the
// outcome: error unwrap, Cors merge, wire conversion, upgrade flag.
func (s *Serve) invoke(ctx context.Context, record *Record, req *Request) *RawResponse {
	res, err := record.Handler.Handle(ctx, req)
	switch {
	case err != nil:
		res = responseFromError(err)
	case res == nil:
		res = internalErrorResponse()
	}

	if s.cors != nil {
		s.cors.Merge(res)
	}
	raw := res.Raw()
	raw.SetUpgrade(record.Upgrade)
	return raw
}

// answerPreflight handles an OPTIONS request that matched no route. It
// returns nil when no verb is registered at the path, which folds the
// request into the ordinary 404.
func (s *Serve) answerPreflight(ctx context.Context, raw *RawRequest, path string) *RawResponse {
	allow := s.router.Allowed(path)
	if len(allow) == 0 {
		return nil
	}

	if record := s.router.globalOptions; record != nil {
		return s.invoke(ctx, record, newRequest(raw, path, nil))
	}

	res := NewResponse(204, Text(""))
	if s.cors != nil {
		s.cors.Merge(res)
	}
	if _, ok := res.Headers["Access-Control-Allow-Methods"]; !ok {
		res.SetHeader("Access-Control-Allow-Methods", strings.Join(allow, ","))
	}
	return res.Raw()
}
