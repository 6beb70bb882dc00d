package graph

import (
	"fmt"

	"github.com/dshills/layoutkit/pkg/geom"
	"github.com/dshills/layoutkit/pkg/rng"
	"github.com/dshills/layoutkit/pkg/shape"
)

// portOffsetEpsilon bounds the tiny random offset an auto-allocated edge
// port gets from its node's center, so distinct auto ports on the same
// node don't coincide exactly.
const portOffsetEpsilon = 0.01

func directionForLocation(loc Location) geom.Vector {
	switch loc {
	case North:
		return geom.Vector{X: 0, Y: -1}
	case South:
		return geom.Vector{X: 0, Y: 1}
	case East:
		return geom.Vector{X: 1, Y: 0}
	case West:
		return geom.Vector{X: -1, Y: 0}
	default:
		return geom.Vector{}
	}
}

// FromSchema materializes a Storage from node and edge schemas. Centers
// omitted from a NodeSchema are drawn uniformly from [0,1]^2, seeded by
// masterSeed and the node's id so construction is deterministic. Nodes
// whose schema omits a shape get a default rectangle. Edge endpoints that
// don't name a port get a small private port allocated near the node's
// center, its offset likewise seeded by masterSeed and the edge's id.
func FromSchema(masterSeed uint64, nodeSchemas []NodeSchema, edgeSchemas []EdgeSchema) (*Storage, error) {
	s := newStorage()

	for _, ns := range nodeSchemas {
		if ns.ID == "" {
			return nil, fmt.Errorf("graph: node schema missing id")
		}
		node, err := buildNode(masterSeed, ns)
		if err != nil {
			return nil, fmt.Errorf("graph: node %q: %w", ns.ID, err)
		}
		if err := s.addNode(node); err != nil {
			return nil, err
		}
	}

	// Resolve children in a second pass so forward references work and
	// every node exists before parentage is assigned.
	for _, ns := range nodeSchemas {
		node := s.nodes[ns.ID]
		for _, childID := range ns.Children {
			if childID == ns.ID {
				return nil, fmt.Errorf("graph: node %q lists itself as a child", ns.ID)
			}
			child, ok := s.nodes[childID]
			if !ok {
				return nil, fmt.Errorf("graph: node %q references unknown child %q", ns.ID, childID)
			}
			if child.parent != nil {
				return nil, fmt.Errorf("graph: node %q cannot be a child of both %q and %q", childID, child.parent.ID, ns.ID)
			}
			child.parent = node
			node.Children = append(node.Children, child)
		}
	}
	for _, id := range s.nodeOrder {
		n := s.nodes[id]
		if n.parent == nil {
			s.roots = append(s.roots, n)
		}
	}

	for _, es := range edgeSchemas {
		if es.ID == "" {
			return nil, fmt.Errorf("graph: edge schema missing id")
		}
		edge, err := buildEdge(masterSeed, s, es)
		if err != nil {
			return nil, fmt.Errorf("graph: edge %q: %w", es.ID, err)
		}
		if err := s.addEdge(edge); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func buildNode(masterSeed uint64, ns NodeSchema) (*Node, error) {
	var center *geom.Point
	if ns.Center != nil {
		center = geom.NewPoint(ns.Center.X, ns.Center.Y)
	} else {
		r := rng.ForID(masterSeed, ns.ID, "center")
		center = geom.NewPoint(r.Float64Range(0, 1), r.Float64Range(0, 1))
	}

	var sh shape.Shape
	var err error
	if ns.Shape != nil {
		sh, err = shape.FromSchema(center, *ns.Shape)
	} else {
		sh, err = shape.FromSchema(center, shape.Schema{Kind: shape.KindRectangle, Width: defaultWidth, Height: defaultHeight})
	}
	if err != nil {
		return nil, err
	}

	node := &Node{
		ID:     ns.ID,
		Center: center,
		Shape:  sh,
		Fixed:  ns.Fixed,
		Ports:  make(map[string]*Port),
		Meta:   ns.Meta,
	}

	for name, ps := range ns.Ports {
		loc := Location(ps.Location)
		var point *geom.Point
		if ps.Point != nil {
			point = geom.NewPoint(ps.Point.X, ps.Point.Y)
		} else if loc == Center || loc == Unlocated {
			point = center.Clone()
		} else {
			b := sh.Boundary(directionForLocation(loc), 0)
			point = geom.NewPoint(b.X, b.Y)
		}
		node.Ports[name] = &Port{Name: name, Point: point, Location: loc, Order: ps.Order, node: node}
	}

	return node, nil
}

func buildEdge(masterSeed uint64, s *Storage, es EdgeSchema) (*Edge, error) {
	source, err := resolveEndpoint(masterSeed, s, es.ID, "src", es.Source)
	if err != nil {
		return nil, err
	}
	target, err := resolveEndpoint(masterSeed, s, es.ID, "tgt", es.Target)
	if err != nil {
		return nil, err
	}

	edge := &Edge{ID: es.ID, Source: source, Target: target, Meta: es.Meta}
	if len(es.Path) > 0 {
		path := make([]geom.Vector, len(es.Path))
		for i, p := range es.Path {
			path[i] = geom.Vector{X: p.X, Y: p.Y}
		}
		edge.Path = path
	} else {
		edge.ResetPath()
	}
	return edge, nil
}

func resolveEndpoint(masterSeed uint64, s *Storage, edgeID, role string, ep EndpointSchema) (Endpoint, error) {
	node, ok := s.nodes[ep.ID]
	if !ok {
		return Endpoint{}, fmt.Errorf("references unknown node %q", ep.ID)
	}
	if ep.Port != "" {
		port, ok := node.Ports[ep.Port]
		if !ok {
			return Endpoint{}, fmt.Errorf("node %q has no port %q", ep.ID, ep.Port)
		}
		return Endpoint{Node: node, Port: port}, nil
	}

	r := rng.ForID(masterSeed, edgeID, role)
	dx := r.Float64Range(-portOffsetEpsilon, portOffsetEpsilon)
	dy := r.Float64Range(-portOffsetEpsilon, portOffsetEpsilon)
	point := geom.NewPoint(node.Center.X+dx, node.Center.Y+dy)
	name := "__auto_" + edgeID + "_" + role
	port := &Port{Name: name, Point: point, Location: Unlocated, node: node}
	node.Ports[name] = port
	return Endpoint{Node: node, Port: port}, nil
}
