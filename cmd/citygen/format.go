package main

import (
	"fmt"

	"github.com/jonhef/city-generator/pkg/analytics"
	"github.com/jonhef/city-generator/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Field != "" {
				fmt.Printf("    -> %s = %v\n", e.Field, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printSummary(s *analytics.Summary) {
	fmt.Println("City Summary")
	fmt.Println("============")
	fmt.Printf("  Grid:                  %d x %d\n", s.GridSize, s.GridSize)
	fmt.Printf("  Total buildings:       %d\n", s.TotalBuildings)
	fmt.Println()
	fmt.Printf("  Residential cells:     %d (max height %d)\n", s.ResidentialCells, s.MaxResidentialHeight)
	fmt.Printf("  Commercial cells:      %d (max height %d)\n", s.CommercialCells, s.MaxCommercialHeight)
	fmt.Printf("  Industrial cells:      %d (max height %d)\n", s.IndustrialCells, s.MaxIndustrialHeight)
	fmt.Printf("  Green cells:           %d\n", s.GreenCells)
	fmt.Printf("  Undeveloped cells:     %d\n", s.UndevelopedCells)
	fmt.Println()
	fmt.Printf("  Hospitals:             %d (max distance %s)\n", s.NumHospitals, formatDistance(s.MaxDistanceToHospital))
	fmt.Printf("  Schools:               %d (max distance %s)\n", s.NumSchools, formatDistance(s.MaxDistanceToSchool))
}

func formatDistance(d float64) string {
	if d == analytics.NoFacility {
		return "n/a"
	}
	return fmt.Sprintf("%.1f cells", d)
}
