package force

import (
	"testing"

	"github.com/dshills/layoutkit/pkg/graph"
	"github.com/dshills/layoutkit/pkg/shape"
)

func rectSchema(w, h float64) *shape.Schema {
	return &shape.Schema{Kind: shape.KindRectangle, Width: w, Height: h}
}

func drain(next Next) int {
	count := 0
	for {
		_, ok := next()
		if !ok {
			break
		}
		count++
	}
	return count
}

func TestSpring_AttractsConnectedPairBeyondIdealDistance(t *testing.T) {
	nodes := []graph.NodeSchema{
		{ID: "u", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: rectSchema(2, 2)},
		{ID: "v", Center: &graph.PointSchema{X: 100, Y: 0}, Shape: rectSchema(2, 2)},
	}
	edges := []graph.EdgeSchema{
		{ID: "e", Source: graph.EndpointSchema{ID: "u"}, Target: graph.EndpointSchema{ID: "v"}},
	}
	s, err := graph.FromSchema(1, nodes, edges)
	if err != nil {
		t.Fatalf("FromSchema: %v", err)
	}
	u, _ := s.Node("u")
	v, _ := s.Node("v")
	startDist := v.Center.Sub(u.Center).Length()

	gen := Spring(SpringConfig{IdealLength: ConstantIdealLength(10), MaxAttraction: 1000})
	next := gen(s)
	for {
		batch, ok := next()
		if !ok {
			break
		}
		batch.Apply(1)
	}

	endDist := v.Center.Sub(u.Center).Length()
	if endDist >= startDist {
		t.Errorf("expected the connected pair to move closer together: start=%v end=%v", startDist, endDist)
	}
}

func TestSpring_RepelsSiblingsCloserThanIdeal(t *testing.T) {
	nodes := []graph.NodeSchema{
		{ID: "parent", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: rectSchema(200, 200), Children: []string{"u", "v"}},
		{ID: "u", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: rectSchema(2, 2)},
		{ID: "v", Center: &graph.PointSchema{X: 1, Y: 0}, Shape: rectSchema(2, 2)},
	}
	// Spring only acts on pairs with a finite shortest path, so the siblings
	// are joined by an edge (one hop, ideal length 50).
	edges := []graph.EdgeSchema{{ID: "e", Source: graph.EndpointSchema{ID: "u"}, Target: graph.EndpointSchema{ID: "v"}}}
	s, err := graph.FromSchema(1, nodes, edges)
	if err != nil {
		t.Fatalf("FromSchema: %v", err)
	}
	u, _ := s.Node("u")
	v, _ := s.Node("v")
	startDist := v.Center.Sub(u.Center).Length()

	gen := Spring(SpringConfig{IdealLength: ConstantIdealLength(50), MaxAttraction: 1000})
	next := gen(s)
	for {
		batch, ok := next()
		if !ok {
			break
		}
		batch.Apply(1)
	}

	endDist := v.Center.Sub(u.Center).Length()
	if endDist <= startDist {
		t.Errorf("expected repulsion to increase sibling distance: start=%v end=%v", startDist, endDist)
	}
}

func TestSpring_FixedPairSkipped(t *testing.T) {
	nodes := []graph.NodeSchema{
		{ID: "u", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: rectSchema(2, 2), Fixed: true},
		{ID: "v", Center: &graph.PointSchema{X: 100, Y: 0}, Shape: rectSchema(2, 2), Fixed: true},
	}
	edges := []graph.EdgeSchema{
		{ID: "e", Source: graph.EndpointSchema{ID: "u"}, Target: graph.EndpointSchema{ID: "v"}},
	}
	s, err := graph.FromSchema(1, nodes, edges)
	if err != nil {
		t.Fatalf("FromSchema: %v", err)
	}
	gen := Spring(SpringConfig{IdealLength: ConstantIdealLength(10), MaxAttraction: 1000})
	if n := drain(gen(s)); n != 0 {
		t.Errorf("expected no batches for an all-fixed pair, got %d", n)
	}
}

func TestSpring_IsRestartable(t *testing.T) {
	nodes := []graph.NodeSchema{
		{ID: "u", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: rectSchema(2, 2)},
		{ID: "v", Center: &graph.PointSchema{X: 100, Y: 0}, Shape: rectSchema(2, 2)},
	}
	edges := []graph.EdgeSchema{
		{ID: "e", Source: graph.EndpointSchema{ID: "u"}, Target: graph.EndpointSchema{ID: "v"}},
	}
	s, err := graph.FromSchema(1, nodes, edges)
	if err != nil {
		t.Fatalf("FromSchema: %v", err)
	}
	gen := Spring(SpringConfig{IdealLength: ConstantIdealLength(10), MaxAttraction: 1000})
	first := drain(gen(s))
	second := drain(gen(s))
	if first != second {
		t.Errorf("expected restarting the generator to yield the same batch count, got %d then %d", first, second)
	}
}

func TestCentering_SkipsFixedRoots(t *testing.T) {
	nodes := []graph.NodeSchema{
		{ID: "u", Center: &graph.PointSchema{X: 50, Y: 50}, Shape: rectSchema(2, 2), Fixed: true},
	}
	s, err := graph.FromSchema(1, nodes, nil)
	if err != nil {
		t.Fatalf("FromSchema: %v", err)
	}
	gen := Centering(1)
	if n := drain(gen(s)); n != 0 {
		t.Errorf("expected a fixed root to be skipped, got %d batches", n)
	}
}

func TestCompactness_PullsChildTowardParent(t *testing.T) {
	nodes := []graph.NodeSchema{
		{ID: "parent", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: rectSchema(200, 200), Children: []string{"child"}},
		{ID: "child", Center: &graph.PointSchema{X: 50, Y: 0}, Shape: rectSchema(2, 2)},
	}
	s, err := graph.FromSchema(1, nodes, nil)
	if err != nil {
		t.Fatalf("FromSchema: %v", err)
	}
	child, _ := s.Node("child")
	startX := child.Center.X

	gen := Compactness(5)
	next := gen(s)
	for {
		batch, ok := next()
		if !ok {
			break
		}
		batch.Apply(1)
	}
	if child.Center.X >= startX {
		t.Errorf("expected child to move toward parent, start=%v end=%v", startX, child.Center.X)
	}
}

func TestSpringElectrical_AttractsConnectedPairBeyondIdealDistance(t *testing.T) {
	nodes := []graph.NodeSchema{
		{ID: "u", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: rectSchema(2, 2)},
		{ID: "v", Center: &graph.PointSchema{X: 100, Y: 0}, Shape: rectSchema(2, 2)},
	}
	edges := []graph.EdgeSchema{
		{ID: "e", Source: graph.EndpointSchema{ID: "u"}, Target: graph.EndpointSchema{ID: "v"}},
	}
	s, err := graph.FromSchema(1, nodes, edges)
	if err != nil {
		t.Fatalf("FromSchema: %v", err)
	}
	u, _ := s.Node("u")
	v, _ := s.Node("v")
	startDist := v.Center.Sub(u.Center).Length()

	gen := SpringElectrical(SpringElectricalConfig{
		IdealLength:       ConstantIdealLength(10),
		EdgeStrength:      1,
		RepulsiveStrength: 1,
	})
	next := gen(s)
	for {
		batch, ok := next()
		if !ok {
			break
		}
		batch.Apply(1)
	}

	endDist := v.Center.Sub(u.Center).Length()
	if endDist >= startDist {
		t.Errorf("expected the connected pair to move closer together: start=%v end=%v", startDist, endDist)
	}
}

func TestSpringElectrical_RepelsUnconnectedPair(t *testing.T) {
	nodes := []graph.NodeSchema{
		{ID: "u", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: rectSchema(2, 2)},
		{ID: "v", Center: &graph.PointSchema{X: 10, Y: 0}, Shape: rectSchema(2, 2)},
	}
	s, err := graph.FromSchema(1, nodes, nil)
	if err != nil {
		t.Fatalf("FromSchema: %v", err)
	}
	u, _ := s.Node("u")
	v, _ := s.Node("v")
	startDist := v.Center.Sub(u.Center).Length()

	gen := SpringElectrical(SpringElectricalConfig{
		IdealLength:       ConstantIdealLength(10),
		EdgeStrength:      1,
		RepulsiveStrength: 100,
	})
	next := gen(s)
	for {
		batch, ok := next()
		if !ok {
			break
		}
		batch.Apply(1)
	}

	endDist := v.Center.Sub(u.Center).Length()
	if endDist <= startDist {
		t.Errorf("expected the unconnected pair to push apart: start=%v end=%v", startDist, endDist)
	}
}

// TestSpringElectrical_RepelsOverlappingPair covers the case where two
// unconnected shapes already overlap (boundaryToBoundary is negative): the
// repulsion must still push them apart, not pull the overlap tighter.
func TestSpringElectrical_RepelsOverlappingPair(t *testing.T) {
	nodes := []graph.NodeSchema{
		{ID: "u", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: rectSchema(10, 10)},
		{ID: "v", Center: &graph.PointSchema{X: 2, Y: 0}, Shape: rectSchema(10, 10)},
	}
	s, err := graph.FromSchema(1, nodes, nil)
	if err != nil {
		t.Fatalf("FromSchema: %v", err)
	}
	u, _ := s.Node("u")
	v, _ := s.Node("v")
	if boundaryToBoundary(u, v) >= 0 {
		t.Fatalf("test setup: expected the shapes to already overlap")
	}
	startDist := v.Center.Sub(u.Center).Length()

	gen := SpringElectrical(SpringElectricalConfig{
		IdealLength:       ConstantIdealLength(10),
		EdgeStrength:      1,
		RepulsiveStrength: 100,
	})
	next := gen(s)
	for {
		batch, ok := next()
		if !ok {
			break
		}
		batch.Apply(1)
	}

	endDist := v.Center.Sub(u.Center).Length()
	if endDist <= startDist {
		t.Errorf("expected overlap repulsion to push the pair apart, not together: start=%v end=%v", startDist, endDist)
	}
}

func TestCompoundSpring_RepelsSiblingsCloserThanIdeal(t *testing.T) {
	nodes := []graph.NodeSchema{
		{ID: "parent", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: rectSchema(200, 200), Children: []string{"u", "v"}},
		{ID: "u", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: rectSchema(2, 2)},
		{ID: "v", Center: &graph.PointSchema{X: 1, Y: 0}, Shape: rectSchema(2, 2)},
	}
	s, err := graph.FromSchema(1, nodes, nil)
	if err != nil {
		t.Fatalf("FromSchema: %v", err)
	}
	u, _ := s.Node("u")
	v, _ := s.Node("v")
	startDist := v.Center.Sub(u.Center).Length()

	gen := CompoundSpring(SpringConfig{IdealLength: ConstantIdealLength(50), MaxAttraction: 1000})
	next := gen(s)
	for {
		batch, ok := next()
		if !ok {
			break
		}
		batch.Apply(1)
	}

	endDist := v.Center.Sub(u.Center).Length()
	if endDist <= startDist {
		t.Errorf("expected sibling repulsion to increase distance: start=%v end=%v", startDist, endDist)
	}
}

func TestCompoundSpring_AttractsGreatestDifferentAncestors(t *testing.T) {
	nodes := []graph.NodeSchema{
		{ID: "groupA", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: rectSchema(20, 20), Children: []string{"a1"}},
		{ID: "a1", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: rectSchema(2, 2)},
		{ID: "groupB", Center: &graph.PointSchema{X: 200, Y: 0}, Shape: rectSchema(20, 20), Children: []string{"b1"}},
		{ID: "b1", Center: &graph.PointSchema{X: 200, Y: 0}, Shape: rectSchema(2, 2)},
	}
	edges := []graph.EdgeSchema{
		{ID: "e", Source: graph.EndpointSchema{ID: "a1"}, Target: graph.EndpointSchema{ID: "b1"}},
	}
	s, err := graph.FromSchema(1, nodes, edges)
	if err != nil {
		t.Fatalf("FromSchema: %v", err)
	}
	groupA, _ := s.Node("groupA")
	groupB, _ := s.Node("groupB")
	startDist := groupB.Center.Sub(groupA.Center).Length()

	gen := CompoundSpring(SpringConfig{IdealLength: ConstantIdealLength(10), MaxAttraction: 1000})
	next := gen(s)
	for {
		batch, ok := next()
		if !ok {
			break
		}
		batch.Apply(1)
	}

	endDist := groupB.Center.Sub(groupA.Center).Length()
	if endDist >= startDist {
		t.Errorf("expected the greatest-different-ancestor groups to pull together: start=%v end=%v", startDist, endDist)
	}
}

func TestChildContainment_GrowsParentToEncloseChild(t *testing.T) {
	nodes := []graph.NodeSchema{
		{ID: "parent", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: rectSchema(4, 4), Children: []string{"child"}},
		{ID: "child", Center: &graph.PointSchema{X: 10, Y: 0}, Shape: rectSchema(2, 2)},
	}
	s, err := graph.FromSchema(1, nodes, nil)
	if err != nil {
		t.Fatalf("FromSchema: %v", err)
	}
	parent, _ := s.Node("parent")
	child, _ := s.Node("child")

	gen := ChildContainment(1)
	for i := 0; i < 50; i++ {
		next := gen(s)
		for {
			batch, ok := next()
			if !ok {
				break
			}
			batch.Apply(1)
		}
	}
	if !parent.Shape.Bounds().Overlaps(child.Shape.Bounds()) {
		t.Fatal("expected parent to grow toward enclosing its child")
	}
	pb := parent.Shape.Bounds()
	cb := child.Shape.Bounds()
	if cb.MinX < pb.MinX || cb.MaxX > pb.MaxX || cb.MinY < pb.MinY || cb.MaxY > pb.MaxY {
		t.Errorf("expected child bounds %v within parent bounds %v after convergence", cb, pb)
	}
}
