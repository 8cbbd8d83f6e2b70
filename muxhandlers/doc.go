// Package muxhandlers provides optional helpers layered on mux: static
// file route registration, request-ID response decoration, basic auth
// gating and HTML template rendering.
//
// Helpers that wrap a handler return another handler, so they compose
// at registration time:
//
//	router.Get("/admin", false, muxhandlers.BasicAuth(authCfg,
//		muxhandlers.RequestID(adminHandler)))
package muxhandlers
