package shape

import (
	"fmt"

	"github.com/dshills/layoutkit/pkg/geom"
)

// FromSchema materializes a Shape anchored at center from its schema. An
// empty Preserve field is treated as PreserveNone.
func FromSchema(center *geom.Point, s Schema) (Shape, error) {
	preserve := s.Preserve
	if preserve == "" {
		preserve = PreserveNone
	}
	switch s.Kind {
	case KindRectangle:
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("shape: rectangle schema needs positive width and height, got %v x %v", s.Width, s.Height)
		}
		return NewRectangle(center, s.Width, s.Height, preserve), nil
	case KindCircle:
		if s.Radius <= 0 {
			return nil, fmt.Errorf("shape: circle schema needs positive radius, got %v", s.Radius)
		}
		return NewCircle(center, s.Radius, preserve), nil
	default:
		return nil, fmt.Errorf("shape: unknown kind %q", s.Kind)
	}
}
