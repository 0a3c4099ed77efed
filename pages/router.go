package pages

// Router resolves paths against the route table and tracks navigation via
// its history strategy.
type Router struct {
	routes  []Route
	history History
}

// NewRouter picks the history strategy for the environment. Server-side
// rendering gets a fresh in-memory history per router, since a server handles
// many concurrent requests with no shared notion of "current URL"; the client
// gets a history integrated with the host's navigation state so back/forward
// and the address bar work.
func NewRouter(serverSide bool) *Router {
	var h History
	if serverSide {
		h = NewMemoryHistory()
	} else {
		h = NewWebHistory(nil)
	}
	return &Router{routes: Routes(), history: h}
}

// NewRouterWithHistory is for callers that need an explicit strategy, such as
// a client wired to its own NavigationHost.
func NewRouterWithHistory(h History) *Router {
	return &Router{routes: Routes(), history: h}
}

// Resolve matches path without navigating.
func (r *Router) Resolve(path string) (Match, bool) {
	return resolve(r.routes, path)
}

// Push navigates to path. Unresolvable paths are rejected and do not touch
// the history.
func (r *Router) Push(path string) (Match, bool) {
	m, ok := resolve(r.routes, path)
	if !ok {
		return Match{}, false
	}
	r.history.Push(path)
	return m, true
}

// Current resolves whatever the history reports as the current path.
func (r *Router) Current() (Match, bool) {
	return resolve(r.routes, r.history.Current())
}

func (r *Router) Back() (string, bool)    { return r.history.Back() }
func (r *Router) Forward() (string, bool) { return r.history.Forward() }
