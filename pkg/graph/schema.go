package graph

import "github.com/dshills/layoutkit/pkg/shape"

// PointSchema is the serializable form of a 2D point.
type PointSchema struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// PortSchema describes one named port of a NodeSchema.
type PortSchema struct {
	Location string       `json:"location,omitempty" yaml:"location,omitempty"`
	Order    *int         `json:"order,omitempty" yaml:"order,omitempty"`
	Point    *PointSchema `json:"point,omitempty" yaml:"point,omitempty"`
}

// NodeSchema is the serializable description of a node.
type NodeSchema struct {
	ID       string                `json:"id" yaml:"id"`
	Center   *PointSchema          `json:"center,omitempty" yaml:"center,omitempty"`
	Shape    *shape.Schema         `json:"shape,omitempty" yaml:"shape,omitempty"`
	Fixed    bool                  `json:"fixed,omitempty" yaml:"fixed,omitempty"`
	Children []string              `json:"children,omitempty" yaml:"children,omitempty"`
	Ports    map[string]PortSchema `json:"ports,omitempty" yaml:"ports,omitempty"`
	Meta     map[string]any        `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// EndpointSchema names an edge endpoint: a node id and an optional named
// port on it. An empty Port means "allocate a private port near the
// node's center".
type EndpointSchema struct {
	ID   string `json:"id" yaml:"id"`
	Port string `json:"port,omitempty" yaml:"port,omitempty"`
}

// EdgeSchema is the serializable description of an edge.
type EdgeSchema struct {
	ID     string          `json:"id" yaml:"id"`
	Source EndpointSchema  `json:"source" yaml:"source"`
	Target EndpointSchema  `json:"target" yaml:"target"`
	Path   []PointSchema   `json:"path,omitempty" yaml:"path,omitempty"`
	Meta   map[string]any  `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// defaultWidth and defaultHeight size a node whose schema omits a shape.
const (
	defaultWidth  = 80.0
	defaultHeight = 40.0
)
