package router

import (
	"container/heap"
	"math"

	"github.com/dshills/layoutkit/pkg/graph"
)

// bendCost is the penalty added whenever a path changes direction. It is
// large relative to typical segment lengths so the search always prefers
// fewer bends over a shorter but crooked route.
const bendCost = 1000.0

// state is a search node: a vertex reached while traveling in a given
// direction. Two paths arriving at the same vertex from different
// directions are distinct states, since the direction determines whether
// continuing straight or turning incurs bendCost next.
type state struct {
	v   *vertex
	dir Direction
}

type frontierEntry struct {
	st       state
	priority float64
	index    int
}

type frontier []*frontierEntry

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].priority < f[j].priority }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i]; f[i].index = i; f[j].index = j }
func (f *frontier) Push(x interface{}) {
	e := x.(*frontierEntry)
	e.index = len(*f)
	*f = append(*f, e)
}
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return e
}

func manhattan(a, b *vertex) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// traversable reports whether vert may be used by a path between the
// endpoints' owning nodes: it's free (no node, i.e. outside every shape) or
// belongs to a node in allowed.
func traversable(vert *vertex, allowed map[*graph.Node]bool) bool {
	return vert.Node == nil || allowed[vert.Node]
}

// searchPath runs a bend-aware A* from start to end, where only vertices
// passing traversable are expanded (start and end themselves are exempt).
// It returns the vertex sequence of the best path found, or nil if end is
// unreachable.
func searchPath(start, end *vertex, allowed map[*graph.Node]bool) []*vertex {
	startState := state{v: start, dir: None}
	gScore := map[state]float64{startState: 0}
	cameFrom := map[state]state{}

	fr := &frontier{}
	heap.Init(fr)
	heap.Push(fr, &frontierEntry{st: startState, priority: manhattan(start, end)})

	var goal state
	found := false

	for fr.Len() > 0 {
		cur := heap.Pop(fr).(*frontierEntry).st
		if cur.v == end {
			goal = cur
			found = true
			break
		}
		for _, d := range cardinalDirections {
			if cur.dir != None && d == cur.dir.Reverse() {
				continue
			}
			next := cur.v.neighbor(d)
			if next == nil {
				continue
			}
			if next != end && next != start && !traversable(next, allowed) {
				continue
			}
			step := manhattan(cur.v, next)
			if cur.dir != None && cur.dir != d {
				step += bendCost
			}
			ns := state{v: next, dir: d}
			cand := gScore[cur] + step
			if existing, ok := gScore[ns]; !ok || cand < existing {
				gScore[ns] = cand
				cameFrom[ns] = cur
				heap.Push(fr, &frontierEntry{st: ns, priority: cand + manhattan(next, end)})
			}
		}
	}
	if !found {
		return nil
	}

	var path []*vertex
	for st := goal; ; {
		path = append([]*vertex{st.v}, path...)
		prev, ok := cameFrom[st]
		if !ok {
			break
		}
		st = prev
	}
	return path
}
