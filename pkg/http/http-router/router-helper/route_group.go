// Package router_helper prefixes a group of httprouter routes under a
// common base path, the small seam router.go uses to mount
// every controller's Routes() under "/api" without each controller
// hardcoding the prefix.
package router_helper

import "github.com/julienschmidt/httprouter"

// RouteGroup registers routes on the underlying router with prefix
// prepended to every path.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

// NewRouteGroup builds a RouteGroup rooted at prefix.
func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{router: router, prefix: prefix}
}

func (g *RouteGroup) GET(path string, handle httprouter.Handle) {
	g.router.GET(g.prefix+path, handle)
}

func (g *RouteGroup) POST(path string, handle httprouter.Handle) {
	g.router.POST(g.prefix+path, handle)
}

func (g *RouteGroup) DELETE(path string, handle httprouter.Handle) {
	g.router.DELETE(g.prefix+path, handle)
}
