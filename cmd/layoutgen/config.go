package main

import (
	"fmt"
	"os"

	"github.com/dshills/layoutkit/pkg/graph"
	"github.com/dshills/layoutkit/pkg/router"
	"gopkg.in/yaml.v3"
)

// PipelineConfig is the YAML/JSON description of one layout run: the graph
// to build, the stages to run over it, and whether to route its edges
// afterward.
type PipelineConfig struct {
	Seed   uint64            `yaml:"seed" json:"seed"`
	Nodes  []graph.NodeSchema `yaml:"nodes" json:"nodes"`
	Edges  []graph.EdgeSchema `yaml:"edges" json:"edges"`
	Steps  int               `yaml:"steps" json:"steps"`
	Stages []StageConfig     `yaml:"stages" json:"stages"`
	Route  bool              `yaml:"route" json:"route"`
	Router *router.Config    `yaml:"router,omitempty" json:"router,omitempty"`
}

// StageConfig describes one layout.Stage: how many inner iterations it
// runs, which optimizer drives it, and which force/constraint generator it
// pulls gradients from.
type StageConfig struct {
	Name       string          `yaml:"name" json:"name"`
	Iterations int             `yaml:"iterations" json:"iterations"`
	Optimizer  OptimizerConfig `yaml:"optimizer" json:"optimizer"`
	Generator  GeneratorConfig `yaml:"generator" json:"generator"`
}

// OptimizerConfig names an optim variant and its fields. Only the fields
// relevant to Kind need to be set; the rest are ignored.
type OptimizerConfig struct {
	Kind string `yaml:"kind" json:"kind"`

	LR        float64 `yaml:"lr,omitempty" json:"lr,omitempty"`
	Decay     float64 `yaml:"decay,omitempty" json:"decay,omitempty"`
	LRMax     float64 `yaml:"lr_max,omitempty" json:"lr_max,omitempty"`
	LRMin     float64 `yaml:"lr_min,omitempty" json:"lr_min,omitempty"`
	Wait      int     `yaml:"wait,omitempty" json:"wait,omitempty"`
	Growth    float64 `yaml:"growth,omitempty" json:"growth,omitempty"`
	Smoothing float64 `yaml:"smoothing,omitempty" json:"smoothing,omitempty"`
	Adaption  float64 `yaml:"adaption,omitempty" json:"adaption,omitempty"`

	// Schedule configures kind "scheduled": a default value plus a list of
	// linearly interpolated ranges, each ending at timestep End with the
	// value moving from that range's own From to its To.
	Schedule []ScheduleRange `yaml:"schedule,omitempty" json:"schedule,omitempty"`
}

// ScheduleRange is one linearly interpolated range of a NumberScheduler.
type ScheduleRange struct {
	End  int     `yaml:"end" json:"end"`
	From float64 `yaml:"from" json:"from"`
	To   float64 `yaml:"to" json:"to"`
}

// GeneratorConfig names a force/constraint generator and its fields. Only
// the fields relevant to Kind need to be set.
type GeneratorConfig struct {
	Kind string `yaml:"kind" json:"kind"`

	IdealLength       float64 `yaml:"ideal_length,omitempty" json:"ideal_length,omitempty"`
	MaxAttraction     float64 `yaml:"max_attraction,omitempty" json:"max_attraction,omitempty"`
	EdgeStrength      float64 `yaml:"edge_strength,omitempty" json:"edge_strength,omitempty"`
	RepulsiveStrength float64 `yaml:"repulsive_strength,omitempty" json:"repulsive_strength,omitempty"`
	Strength          float64 `yaml:"strength,omitempty" json:"strength,omitempty"`
	Padding           float64 `yaml:"padding,omitempty" json:"padding,omitempty"`
}

// LoadPipelineConfig reads and validates a YAML or JSON pipeline file.
// gopkg.in/yaml.v3 parses JSON documents too, since JSON is a subset of
// YAML, so both formats share this one loader.
func LoadPipelineConfig(path string) (*PipelineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pipeline file: %w", err)
	}
	return LoadPipelineConfigFromBytes(data)
}

// LoadPipelineConfigFromBytes parses and validates pipeline YAML or JSON
// from memory; useful for testing and programmatic config generation.
func LoadPipelineConfigFromBytes(data []byte) (*PipelineConfig, error) {
	var cfg PipelineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing pipeline file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating pipeline: %w", err)
	}
	return &cfg, nil
}

// Validate checks the structural requirements LoadPipelineConfig's caller
// relies on: at least one node, a positive step count, and every stage
// naming a known optimizer/generator kind.
func (c *PipelineConfig) Validate() error {
	if len(c.Nodes) == 0 {
		return fmt.Errorf("pipeline: at least one node is required")
	}
	if c.Steps <= 0 {
		return fmt.Errorf("pipeline: steps must be > 0, got %d", c.Steps)
	}
	for i, st := range c.Stages {
		if st.Iterations <= 0 {
			return fmt.Errorf("pipeline: stage %d (%s): iterations must be > 0", i, st.Name)
		}
		if !knownOptimizerKinds[st.Optimizer.Kind] {
			return fmt.Errorf("pipeline: stage %d (%s): unknown optimizer kind %q", i, st.Name, st.Optimizer.Kind)
		}
		if !knownGeneratorKinds[st.Generator.Kind] {
			return fmt.Errorf("pipeline: stage %d (%s): unknown generator kind %q", i, st.Name, st.Generator.Kind)
		}
	}
	return nil
}

var knownOptimizerKinds = map[string]bool{
	"fixed": true, "scheduled": true, "energy_adaptive": true,
	"rmsprop": true, "trust_region": true,
}

var knownGeneratorKinds = map[string]bool{
	"spring": true, "compound_spring": true, "spring_electrical": true,
	"compactness": true, "centering": true, "child_containment": true,
}
