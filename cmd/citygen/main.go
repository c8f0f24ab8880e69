package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonhef/city-generator/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "citygen",
		Short: "Deterministic procedural city generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a city and write its summary",
		Long: `Generate synthesizes a city from the supplied parameters and writes
city_summary.json to the output directory. Parameters may come from a
project directory containing city.yaml, from flags, or both (flags
win).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.project, "project", "", "project directory containing city.yaml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "output", "directory to write results")
	cmd.Flags().StringVar(&opts.mapPath, "map", "", "also write a PNG zoning map to this path")
	cmd.Flags().IntVar(&opts.mapCellPx, "map-cell-px", 4, "map cell size in pixels")

	cmd.Flags().IntVar(&opts.population, "population", 0, "number of inhabitants")
	cmd.Flags().IntVar(&opts.hospitals, "hospitals", 0, "number of hospitals to place")
	cmd.Flags().IntVar(&opts.schools, "schools", 0, "number of schools to place")
	cmd.Flags().StringVar(&opts.transport, "transport", "", "primary transport mode (car|transit|walk)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for deterministic output")
	cmd.Flags().IntVar(&opts.gridSize, "grid-size", 0, "grid dimension (square)")
	cmd.Flags().Float64Var(&opts.radiusFraction, "radius-fraction", 0, "fraction of half grid forming city radius")

	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a city config without generating",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server exposing the generator over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
