package api

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
)

// Request is one parsed command line. Args holds the whitespace separated
// fields after the path.
type Request struct {
	Ctx    context.Context
	Params map[string]string
	Args   []string
}

// Payload rejoins Args with single spaces.
func (r *Request) Payload() string { return strings.Join(r.Args, " ") }

// Response carries the JSON line written back on success.
type Response struct {
	JSON string
}

// HandlerFunc serves one path. A returned error is sent to the client as
// {"error": ...}.
type HandlerFunc func(req *Request, res *Response, logger *slog.Logger) error

type route struct {
	segments []string
	handler  HandlerFunc
}

// Router matches slash separated paths against patterns registered in
// order. A "{name}" segment captures one path segment.
type Router struct {
	routes []route
}

func NewRouter() *Router { return &Router{} }

// Register adds a pattern. Patterns are lowercase like incoming paths.
func (r *Router) Register(pattern string, h HandlerFunc) {
	r.routes = append(r.routes, route{
		segments: strings.Split(strings.ToLower(strings.Trim(pattern, "/")), "/"),
		handler:  h,
	})
}

// Match returns the handler of the first pattern matching path and the
// captured parameters, URL-unescaped. It returns nil when nothing matches.
func (r *Router) Match(path string) (HandlerFunc, map[string]string) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for _, rt := range r.routes {
		if params, ok := rt.match(parts); ok {
			return rt.handler, params
		}
	}
	return nil, nil
}

func (rt route) match(parts []string) (map[string]string, bool) {
	if len(parts) != len(rt.segments) {
		return nil, false
	}
	params := map[string]string{}
	for i, seg := range rt.segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			v, err := url.PathUnescape(parts[i])
			if err != nil || v == "" {
				return nil, false
			}
			params[seg[1:len(seg)-1]] = v
			continue
		}
		if seg != parts[i] {
			return nil, false
		}
	}
	return params, true
}
