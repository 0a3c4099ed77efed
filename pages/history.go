package pages

import "sync"

// History tracks the current URL for a router. Back and Forward report the
// new current path and whether a move happened.
type History interface {
	Current() string
	Push(path string)
	Back() (string, bool)
	Forward() (string, bool)
}

// MemoryHistory is the server-side strategy: a private stack per instance,
// never shared, so concurrent render requests cannot observe each other.
type MemoryHistory struct {
	stack []string
	pos   int
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{stack: []string{"/"}}
}

func (h *MemoryHistory) Current() string {
	return h.stack[h.pos]
}

// Push drops any forward entries, like a browser does after navigating from
// a mid-stack position.
func (h *MemoryHistory) Push(path string) {
	h.stack = append(h.stack[:h.pos+1], path)
	h.pos++
}

func (h *MemoryHistory) Back() (string, bool) {
	if h.pos == 0 {
		return h.Current(), false
	}
	h.pos--
	return h.Current(), true
}

func (h *MemoryHistory) Forward() (string, bool) {
	if h.pos == len(h.stack)-1 {
		return h.Current(), false
	}
	h.pos++
	return h.Current(), true
}

// NavigationHost models the host environment's navigation state (the address
// bar). All WebHistory instances attached to the same host observe the same
// current URL, the way every router in a browser tab shares window.history.
type NavigationHost struct {
	mu    sync.Mutex
	stack []string
	pos   int
}

func NewNavigationHost() *NavigationHost {
	return &NavigationHost{stack: []string{"/"}}
}

func (n *NavigationHost) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[n.pos]
}

func (n *NavigationHost) Assign(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack = append(n.stack[:n.pos+1], path)
	n.pos++
}

func (n *NavigationHost) Back() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.pos == 0 {
		return n.stack[n.pos], false
	}
	n.pos--
	return n.stack[n.pos], true
}

func (n *NavigationHost) Forward() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.pos == len(n.stack)-1 {
		return n.stack[n.pos], false
	}
	n.pos++
	return n.stack[n.pos], true
}

var defaultHost = NewNavigationHost()

// WebHistory is the client-side strategy: it delegates to a NavigationHost
// so back/forward and the address bar stay in sync with every other router
// attached to the same host.
type WebHistory struct {
	host *NavigationHost
}

// NewWebHistory binds to host, or to the process-wide default host when host
// is nil.
func NewWebHistory(host *NavigationHost) *WebHistory {
	if host == nil {
		host = defaultHost
	}
	return &WebHistory{host: host}
}

func (h *WebHistory) Current() string         { return h.host.Location() }
func (h *WebHistory) Push(path string)        { h.host.Assign(path) }
func (h *WebHistory) Back() (string, bool)    { return h.host.Back() }
func (h *WebHistory) Forward() (string, bool) { return h.host.Forward() }
