package layout

import (
	"testing"

	"github.com/dshills/layoutkit/pkg/force"
	"github.com/dshills/layoutkit/pkg/geom"
	"github.com/dshills/layoutkit/pkg/graph"
	"github.com/dshills/layoutkit/pkg/optim"
	"github.com/dshills/layoutkit/pkg/shape"
)

func twoNodeStorage(t *testing.T) *graph.Storage {
	t.Helper()
	nodes := []graph.NodeSchema{
		{ID: "u", Center: &graph.PointSchema{X: 0, Y: 0}, Shape: &shape.Schema{Kind: shape.KindRectangle, Width: 2, Height: 2}},
		{ID: "v", Center: &graph.PointSchema{X: 100, Y: 0}, Shape: &shape.Schema{Kind: shape.KindRectangle, Width: 2, Height: 2}},
	}
	edges := []graph.EdgeSchema{
		{ID: "e", Source: graph.EndpointSchema{ID: "u"}, Target: graph.EndpointSchema{ID: "v"}},
	}
	s, err := graph.FromSchema(1, nodes, edges)
	if err != nil {
		t.Fatalf("FromSchema: %v", err)
	}
	return s
}

func TestDriver_StartRunsAllSteps(t *testing.T) {
	s := twoNodeStorage(t)
	stage := Stage{
		Name:       "spring",
		Iterations: 1,
		Optimizer:  optim.NewFixed(&optim.FixedConfig{LR: 0.1, Decay: 1}),
		Generator:  force.Spring(force.SpringConfig{IdealLength: force.ConstantIdealLength(10), MaxAttraction: 1000}),
	}
	d := NewDriver(s, 5, []Stage{stage})
	d.Start()
	if d.Finished() != 5 {
		t.Errorf("expected 5 finished steps, got %d", d.Finished())
	}
}

func TestDriver_OnStartFalseAbortsBeforeAnyStep(t *testing.T) {
	s := twoNodeStorage(t)
	d := NewDriver(s, 3, nil)
	d.OnStart = func(*graph.Storage, int) bool { return false }
	endCalled := false
	d.OnEnd = func(*graph.Storage, int) bool { endCalled = true; return true }
	d.Start()
	if d.Finished() != 0 {
		t.Errorf("expected no steps to run, got %d", d.Finished())
	}
	if endCalled {
		t.Error("OnEnd should not be called when OnStart aborts")
	}
}

func TestDriver_OnStepFalseStopsEarlyAndSuppressesOnEnd(t *testing.T) {
	s := twoNodeStorage(t)
	d := NewDriver(s, 5, nil)
	stepCount := 0
	d.OnStep = func(*graph.Storage, int) bool {
		stepCount++
		return stepCount < 2
	}
	endCalled := false
	d.OnEnd = func(*graph.Storage, int) bool { endCalled = true; return true }
	d.Start()
	if d.Finished() != 2 {
		t.Errorf("expected exactly 2 steps before abort, got %d", d.Finished())
	}
	if endCalled {
		t.Error("OnEnd should not be called after an early OnStep abort")
	}
}

func TestDriver_EmptyGradientBatchDoesNotMovePoints(t *testing.T) {
	s := twoNodeStorage(t)
	u, _ := s.Node("u")
	before := u.Center.Vector()
	noop := func(*graph.Storage) force.Next {
		return func() (geom.Batch, bool) { return nil, false }
	}
	stage := Stage{Iterations: 3, Optimizer: optim.NewFixed(nil), Generator: noop}
	d := NewDriver(s, 2, []Stage{stage})
	d.Start()
	if u.Center.Vector() != before {
		t.Errorf("expected point to stay at %v with no gradients, got %v", before, u.Center.Vector())
	}
}

func TestDriver_StagesRunInDeclarationOrder(t *testing.T) {
	s := twoNodeStorage(t)
	var order []string
	mkGen := func(name string) force.Generator {
		return func(storage *graph.Storage) force.Next {
			order = append(order, name)
			return func() (geom.Batch, bool) { return nil, false }
		}
	}
	stages := []Stage{
		{Name: "first", Iterations: 1, Optimizer: optim.NewFixed(nil), Generator: mkGen("first")},
		{Name: "second", Iterations: 1, Optimizer: optim.NewFixed(nil), Generator: mkGen("second")},
	}
	d := NewDriver(s, 1, stages)
	d.Start()
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected stages to run in declaration order, got %v", order)
	}
}
