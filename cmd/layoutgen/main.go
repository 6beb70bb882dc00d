package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dshills/layoutkit/pkg/graph"
	"github.com/dshills/layoutkit/pkg/layout"
	"github.com/dshills/layoutkit/pkg/router"
	"gopkg.in/yaml.v3"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML/JSON pipeline file (required)")
	output     = flag.String("output", "", "Output file path (default: stdout)")
	format     = flag.String("format", "yaml", "Output format: yaml or json")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("layoutgen version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}
	if *format != "yaml" && *format != "json" {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: yaml, json\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if *verbose {
		logger.Info("loading pipeline", "path", *configPath)
	}
	cfg, err := LoadPipelineConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load pipeline: %w", err)
	}

	s, err := graph.FromSchema(cfg.Seed, cfg.Nodes, cfg.Edges)
	if err != nil {
		return fmt.Errorf("failed to materialize graph: %w", err)
	}
	if *verbose {
		logger.Info("materialized graph", "nodes", len(s.Nodes()), "edges", len(s.Edges()))
	}

	stages, err := buildStages(cfg.Stages)
	if err != nil {
		return fmt.Errorf("failed to build stages: %w", err)
	}

	driver := layout.NewDriver(s, cfg.Steps, stages)
	if *verbose {
		driver.OnStep = func(storage *graph.Storage, step int) bool {
			logger.Info("step finished", "step", step, "of", cfg.Steps)
			return true
		}
	}

	start := time.Now()
	driver.Start()
	elapsed := time.Since(start)
	if *verbose {
		logger.Info("layout finished", "elapsed", elapsed.String(), "steps", driver.Finished())
	}

	if cfg.Route {
		routerCfg := router.DefaultConfig()
		if cfg.Router != nil {
			routerCfg = *cfg.Router
		}
		if *verbose {
			logger.Info("routing edges", "node_margin", routerCfg.NodeMargin, "edge_gap", routerCfg.EdgeGap, "outer_gap", routerCfg.OuterGap)
		}
		router.New(routerCfg, logger).Route(s)
	}

	nodes, edges := s.ToSchema()
	return writeResult(nodes, edges)
}

func writeResult(nodes []graph.NodeSchema, edges []graph.EdgeSchema) error {
	result := struct {
		Nodes []graph.NodeSchema `yaml:"nodes" json:"nodes"`
		Edges []graph.EdgeSchema `yaml:"edges" json:"edges"`
	}{Nodes: nodes, Edges: edges}

	var data []byte
	var err error
	switch *format {
	case "json":
		data, err = json.MarshalIndent(result, "", "  ")
	default:
		data, err = yaml.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if *output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "Wrote %d bytes to %s\n", len(data), *output)
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: layoutgen -config <pipeline.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'layoutgen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("layoutgen version %s\n\n", version)
	fmt.Println("A command-line driver for the layoutkit constraint/force layout engine.")
	fmt.Println("\nUsage:")
	fmt.Println("  layoutgen -config <pipeline.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to a YAML or JSON pipeline file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output file path (default: stdout)")
	fmt.Println("  -format string")
	fmt.Println("        Output format: yaml or json (default: yaml)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nPipeline File:")
	fmt.Println("  The pipeline file specifies the graph (nodes, edges), the number of")
	fmt.Println("  driver steps, an ordered list of stages (each an optimizer paired with")
	fmt.Println("  a force/constraint generator), and whether to run the orthogonal router")
	fmt.Println("  afterward.")
}
