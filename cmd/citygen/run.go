package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonhef/city-generator/pkg/gen"
	"github.com/jonhef/city-generator/pkg/render"
	"github.com/jonhef/city-generator/pkg/spec"
	"github.com/jonhef/city-generator/pkg/validation"
)

type generateOptions struct {
	project   string
	output    string
	mapPath   string
	mapCellPx int

	population     int
	hospitals      int
	schools        int
	transport      string
	seed           int64
	gridSize       int
	radiusFraction float64
}

// resolveConfig builds the effective config: project city.yaml (or the
// defaults when no project is given), overridden by any flag the user
// set explicitly.
func resolveConfig(cmd *cobra.Command, opts *generateOptions) (*spec.CityConfig, error) {
	cfg := spec.Default()
	if opts.project != "" {
		loaded, err := spec.LoadProject(opts.project)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("population") {
		cfg.Population = opts.population
	}
	if flags.Changed("hospitals") {
		cfg.Hospitals = opts.hospitals
	}
	if flags.Changed("schools") {
		cfg.Schools = opts.schools
	}
	if flags.Changed("transport") {
		mode, err := spec.ParseTransportMode(opts.transport)
		if err != nil {
			return nil, err
		}
		cfg.Transport = mode
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("grid-size") {
		cfg.GridSize = opts.gridSize
	}
	if flags.Changed("radius-fraction") {
		cfg.RadiusFraction = opts.radiusFraction
	}

	return cfg, nil
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return fmt.Errorf("resolving config: %w", err)
	}

	result, report, err := gen.Generate(cfg)
	if err != nil {
		printValidationReport(report)
		return err
	}

	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	summaryPath := filepath.Join(opts.output, "city_summary.json")
	if err := writeSummary(summaryPath, result); err != nil {
		return err
	}

	if opts.mapPath != "" {
		if err := render.SavePNG(result.Grid, opts.mapCellPx, opts.mapPath); err != nil {
			return err
		}
	}

	printSummary(result.Summary)
	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	fmt.Printf("\nSummary written to %s\n", summaryPath)
	if opts.mapPath != "" {
		fmt.Printf("Map written to %s\n", opts.mapPath)
	}
	return nil
}

func writeSummary(path string, result *gen.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result.Summary); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return nil
}

func runValidate(projectPath string) error {
	cfg, err := spec.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	report := validation.ValidateConfig(cfg)
	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}
