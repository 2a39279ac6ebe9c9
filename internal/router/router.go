// Package router maps paths to page handlers with auth gating, mirroring the
// route table of a single-page app: public pages, protected pages behind a
// session guard, and a catch-all not-found page.
package router

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Well-known paths the router redirects to.
const (
	LoginPath    = "/login"
	NotFoundPath = "/404"
)

// Params holds values captured from :name pattern segments.
type Params map[string]string

// Request is what a page handler receives: the resolved path, captured
// params, and any state the navigating page attached.
type Request struct {
	Path   string
	Params Params
	State  map[string]any
}

// HandlerFunc renders one page. It returns when the page is done; any
// follow-up navigation is enqueued on the Navigator before returning.
type HandlerFunc func(ctx context.Context, req *Request)

// GuardFunc reports whether the current session may enter protected routes.
type GuardFunc func() bool

type route struct {
	segments  []string
	protected bool
	handler   HandlerFunc
}

// Router is the route table. Register routes up front, then drive it through
// a Navigator.
type Router struct {
	routes []route
	guard  GuardFunc
	log    *zap.Logger
}

// New creates a router. guard gates the protected routes; a nil guard treats
// every session as signed out.
func New(guard GuardFunc, log *zap.Logger) *Router {
	if guard == nil {
		guard = func() bool { return false }
	}
	return &Router{guard: guard, log: log}
}

// Handle registers a public route. Pattern segments starting with a colon
// capture the matched segment, e.g. /verify-email/:token.
func (r *Router) Handle(pattern string, h HandlerFunc) {
	r.routes = append(r.routes, route{segments: splitPath(pattern), handler: h})
}

// HandleProtected registers a route only reachable with an authenticated
// session; others are redirected to the login page.
func (r *Router) HandleProtected(pattern string, h HandlerFunc) {
	r.routes = append(r.routes, route{segments: splitPath(pattern), protected: true, handler: h})
}

// Resolve matches a path against the table. It returns the not-found
// fallback for unknown paths and reports whether the route is protected.
func (r *Router) Resolve(path string) (HandlerFunc, Params, bool, error) {
	segs := splitPath(path)
	for _, rt := range r.routes {
		if params, ok := match(rt.segments, segs); ok {
			return rt.handler, params, rt.protected, nil
		}
	}
	if path == NotFoundPath {
		return nil, nil, false, fmt.Errorf("router: no handler registered for %s", NotFoundPath)
	}
	return r.Resolve(NotFoundPath)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func match(pattern, segs []string) (Params, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}
	params := Params{}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			params[p[1:]] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}

type target struct {
	path  string
	state map[string]any
}

// Navigator drives the router: pages and background callers enqueue paths,
// Run dispatches them in order. It is safe for concurrent use.
type Navigator struct {
	router *Router
	log    *zap.Logger

	mu    sync.Mutex
	queue []target
}

// NewNavigator creates a navigator over the route table.
func NewNavigator(router *Router, log *zap.Logger) *Navigator {
	return &Navigator{router: router, log: log}
}

// Go enqueues a navigation to path.
func (n *Navigator) Go(path string) {
	n.GoWith(path, nil)
}

// GoWith enqueues a navigation carrying state for the destination page, such
// as the email shown on the verification-pending page.
func (n *Navigator) GoWith(path string, state map[string]any) {
	n.mu.Lock()
	n.queue = append(n.queue, target{path: path, state: state})
	n.mu.Unlock()
}

func (n *Navigator) next() (target, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.queue) == 0 {
		return target{}, false
	}
	t := n.queue[0]
	n.queue = n.queue[1:]
	return t, true
}

// Run dispatches from start until the queue drains or ctx is cancelled. A
// page that enqueues nothing ends the run, which is how the app exits.
func (n *Navigator) Run(ctx context.Context, start string) error {
	n.Go(start)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, ok := n.next()
		if !ok {
			return nil
		}
		if err := n.dispatch(ctx, t); err != nil {
			return err
		}
	}
}

func (n *Navigator) dispatch(ctx context.Context, t target) error {
	handler, params, protected, err := n.router.Resolve(t.path)
	if err != nil {
		return err
	}
	if protected && !n.router.guard() {
		n.log.Info("redirecting unauthenticated visit", zap.String("path", t.path))
		return n.dispatch(ctx, target{path: LoginPath})
	}
	n.log.Debug("navigating", zap.String("path", t.path))
	handler(ctx, &Request{Path: t.path, Params: params, State: t.state})
	return nil
}
