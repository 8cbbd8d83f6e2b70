package mux

import "sync/atomic"

// RouterHolder owns the current route table for a host whose routes are
// rebuilt on lifecycle upgrades. Dispatches load a snapshot and never
// see a partially built table; Replace swaps the whole table in one
// atomic store.
type RouterHolder struct {
	current atomic.Pointer[Router]
}

// NewRouterHolder returns a holder seeded with the given table.
func NewRouterHolder(router *Router) *RouterHolder {
	h := &RouterHolder{}
	h.current.Store(router)
	return h
}

// Load returns the current table snapshot.
func (h *RouterHolder) Load() *Router {
	return h.current.Load()
}

// Replace installs a new table wholesale.
func (h *RouterHolder) Replace(router *Router) {
	h.current.Store(router)
}

// OnUpgrade returns a lifecycle callback for the host's post-upgrade
// hook: each call rebuilds the table through setup and installs it.
func (h *RouterHolder) OnUpgrade(setup func() *Router) func() {
	return func() {
		h.Replace(setup())
	}
}
