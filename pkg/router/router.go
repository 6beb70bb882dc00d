package router

import (
	"log/slog"

	"github.com/dshills/layoutkit/pkg/geom"
	"github.com/dshills/layoutkit/pkg/graph"
)

// Config holds the router's margin and gap parameters.
type Config struct {
	NodeMargin float64
	EdgeGap    float64
	OuterGap   float64
}

// DefaultConfig returns node_margin=8, edge_gap=4, outer_gap=8.
func DefaultConfig() Config {
	return Config{NodeMargin: 8, EdgeGap: 4, OuterGap: 8}
}

// Router converts straight-line edges into axis-aligned polylines by
// building a visibility graph once and running a bend-aware A* search per
// edge.
type Router struct {
	Config Config
	Logger *slog.Logger
}

// New constructs a Router with cfg. A nil logger falls back to slog's
// default logger.
func New(cfg Config, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{Config: cfg, Logger: logger}
}

// Route builds the visibility graph for s and rewrites every edge's path
// with a routed orthogonal polyline. Edges for which no route is found are
// logged and reset to their straight source-target line, per the router
// failure policy.
func (r *Router) Route(s *graph.Storage) {
	vg := buildVisibilityGraph(s, r.Config)
	for _, e := range s.Edges() {
		start := vg.portVertex[e.Source.Port]
		end := vg.portVertex[e.Target.Port]
		if start == nil {
			start = vg.centerOf[e.Source.Node]
		}
		if end == nil {
			end = vg.centerOf[e.Target.Node]
		}
		if start == nil || end == nil {
			r.Logger.Warn("router: no start/end vertex for edge", "edge", e.ID)
			e.ResetPath()
			continue
		}

		allowed := traversableSet(s, e)
		path := searchPath(start, end, allowed)
		if path == nil {
			r.Logger.Warn("router: no route found for edge", "edge", e.ID)
			e.ResetPath()
			continue
		}

		poly := make([]geom.Vector, len(path))
		for i, v := range path {
			poly[i] = v.point()
		}
		poly[0] = e.Source.Port.Point.Vector()
		poly[len(poly)-1] = e.Target.Port.Point.Vector()
		e.Path = poly
	}
}

// traversableSet computes, for e, the set of nodes whose vertices may be
// used by its route: both endpoints, their ancestors, and any node whose
// bounds contain either endpoint's port point.
func traversableSet(s *graph.Storage, e *graph.Edge) map[*graph.Node]bool {
	allowed := make(map[*graph.Node]bool)
	add := func(n *graph.Node) {
		allowed[n] = true
		for _, a := range s.Ancestors(n) {
			allowed[a] = true
		}
	}
	add(e.Source.Node)
	add(e.Target.Node)

	srcPoint := e.Source.Port.Point.Vector()
	dstPoint := e.Target.Port.Point.Vector()
	for _, n := range s.Nodes() {
		if allowed[n] {
			continue
		}
		if n.Shape.Contains(srcPoint, 0) || n.Shape.Contains(dstPoint, 0) {
			add(n)
		}
	}
	return allowed
}
