package router

import "github.com/dshills/layoutkit/pkg/geom"

// Direction is one of the four cardinal directions a route segment can
// travel in. North is -Y and South is +Y, matching pkg/constraint's
// boundary-normal convention (y increases downward, as in rendering).
type Direction int

const (
	// None stands for "no established entry direction", used only for the
	// start vertex of an A* search, where every direction is free of bend
	// cost.
	None Direction = iota
	North
	South
	East
	West
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return None
	}
}

// Vector returns the unit vector d points in.
func (d Direction) Vector() geom.Vector {
	switch d {
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

// cardinalDirections is every real direction, excluding None.
var cardinalDirections = [4]Direction{North, South, East, West}
