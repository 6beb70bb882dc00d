package main

import (
	"fmt"

	"github.com/dshills/layoutkit/pkg/force"
	"github.com/dshills/layoutkit/pkg/layout"
	"github.com/dshills/layoutkit/pkg/optim"
	"github.com/dshills/layoutkit/pkg/schedule"
)

// buildOptimizer constructs the optim.Optimizer named by cfg.Kind, wired
// with whichever of cfg's fields that variant uses.
func buildOptimizer(cfg OptimizerConfig) (optim.Optimizer, error) {
	switch cfg.Kind {
	case "fixed":
		return optim.NewFixed(&optim.FixedConfig{LR: cfg.LR, Decay: cfg.Decay}), nil
	case "scheduled":
		sched := schedule.NewNumberScheduler(cfg.LR)
		for _, r := range cfg.Schedule {
			sched = sched.To(r.End, schedule.Linear(r.From, r.To))
		}
		return optim.NewScheduled(sched), nil
	case "energy_adaptive":
		return optim.NewEnergyAdaptive(&optim.EnergyAdaptiveConfig{
			LRInitial: cfg.LR, LRMax: cfg.LRMax, LRMin: cfg.LRMin,
			Wait: cfg.Wait, Decay: cfg.Decay, Growth: cfg.Growth, Smoothing: cfg.Smoothing,
		}), nil
	case "rmsprop":
		return optim.NewRMSProp(&optim.RMSPropConfig{LR: cfg.LR, Smoothing: cfg.Smoothing}), nil
	case "trust_region":
		return optim.NewTrustRegion(&optim.TrustRegionConfig{
			LR: cfg.LR, Adaption: cfg.Adaption, Smoothing: cfg.Smoothing,
			LRMax: cfg.LRMax, LRMin: cfg.LRMin,
		}), nil
	default:
		return nil, fmt.Errorf("build: unknown optimizer kind %q", cfg.Kind)
	}
}

// buildGenerator constructs the force.Generator named by cfg.Kind, wired
// with whichever of cfg's fields that variant uses.
func buildGenerator(cfg GeneratorConfig) (force.Generator, error) {
	ideal := force.ConstantIdealLength(cfg.IdealLength)
	switch cfg.Kind {
	case "spring":
		return force.Spring(force.SpringConfig{IdealLength: ideal, MaxAttraction: cfg.MaxAttraction}), nil
	case "compound_spring":
		return force.CompoundSpring(force.SpringConfig{IdealLength: ideal, MaxAttraction: cfg.MaxAttraction}), nil
	case "spring_electrical":
		return force.SpringElectrical(force.SpringElectricalConfig{
			IdealLength: ideal, EdgeStrength: cfg.EdgeStrength, RepulsiveStrength: cfg.RepulsiveStrength,
		}), nil
	case "compactness":
		return force.Compactness(cfg.Strength), nil
	case "centering":
		return force.Centering(cfg.Strength), nil
	case "child_containment":
		return force.ChildContainment(cfg.Padding), nil
	default:
		return nil, fmt.Errorf("build: unknown generator kind %q", cfg.Kind)
	}
}

// buildStages translates every StageConfig in order into a layout.Stage.
func buildStages(cfgs []StageConfig) ([]layout.Stage, error) {
	stages := make([]layout.Stage, 0, len(cfgs))
	for i, sc := range cfgs {
		o, err := buildOptimizer(sc.Optimizer)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, sc.Name, err)
		}
		g, err := buildGenerator(sc.Generator)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, sc.Name, err)
		}
		stages = append(stages, layout.Stage{
			Name:       sc.Name,
			Iterations: sc.Iterations,
			Optimizer:  o,
			Generator:  g,
		})
	}
	return stages, nil
}
