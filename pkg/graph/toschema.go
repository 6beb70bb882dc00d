package graph

import "strings"

// ToSchema serializes the storage's current state back to schemas, for
// persistence or re-loading. Auto-allocated edge ports are omitted from
// each node's port map since they aren't addressable by name on reload;
// edges re-derive them the same way on the next FromSchema call.
func (s *Storage) ToSchema() ([]NodeSchema, []EdgeSchema) {
	nodeSchemas := make([]NodeSchema, 0, len(s.nodeOrder))
	for _, id := range s.nodeOrder {
		n := s.nodes[id]
		ns := NodeSchema{
			ID:     n.ID,
			Center: &PointSchema{X: n.Center.X, Y: n.Center.Y},
			Fixed:  n.Fixed,
			Meta:   n.Meta,
		}
		shapeSchema := n.Shape.ToSchema()
		ns.Shape = &shapeSchema
		for _, c := range n.Children {
			ns.Children = append(ns.Children, c.ID)
		}
		for name, p := range n.Ports {
			if strings.HasPrefix(name, "__auto_") {
				continue
			}
			if ns.Ports == nil {
				ns.Ports = make(map[string]PortSchema)
			}
			ns.Ports[name] = PortSchema{
				Location: string(p.Location),
				Order:    p.Order,
				Point:    &PointSchema{X: p.Point.X, Y: p.Point.Y},
			}
		}
		nodeSchemas = append(nodeSchemas, ns)
	}

	edgeSchemas := make([]EdgeSchema, 0, len(s.edgeOrder))
	for _, id := range s.edgeOrder {
		e := s.edges[id]
		es := EdgeSchema{
			ID:     e.ID,
			Source: EndpointSchema{ID: e.Source.Node.ID, Port: portNameIfNamed(e.Source.Port)},
			Target: EndpointSchema{ID: e.Target.Node.ID, Port: portNameIfNamed(e.Target.Port)},
			Meta:   e.Meta,
		}
		for _, p := range e.Path {
			es.Path = append(es.Path, PointSchema{X: p.X, Y: p.Y})
		}
		edgeSchemas = append(edgeSchemas, es)
	}

	return nodeSchemas, edgeSchemas
}

func portNameIfNamed(p *Port) string {
	if strings.HasPrefix(p.Name, "__auto_") {
		return ""
	}
	return p.Name
}
