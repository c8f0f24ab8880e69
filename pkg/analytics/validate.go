package analytics

import (
	"fmt"

	"github.com/jonhef/city-generator/pkg/layout"
	"github.com/jonhef/city-generator/pkg/spec"
	"github.com/jonhef/city-generator/pkg/validation"
)

// ValidateTargets checks an achieved summary against the config's soft
// targets and records shortfalls as analytical warnings. Shortfalls
// never invalidate the report; the Summary's counts remain the source
// of truth for callers.
func ValidateTargets(cfg *spec.CityConfig, s *Summary, report *validation.Report) {
	validateGreenQuota(cfg, s, report)
	validateFacilityCounts(cfg, s, report)
}

func validateGreenQuota(cfg *spec.CityConfig, s *Summary, report *validation.Report) {
	target := layout.GreenTarget(cfg.Population)
	if s.GreenCells >= target {
		return
	}
	report.AddWarning(validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     fmt.Sprintf("green cells %d below the quota of %d for population %d", s.GreenCells, target, cfg.Population),
		Field:       "population",
		ActualValue: s.GreenCells,
		Expected:    fmt.Sprintf(">= %d", target),
		Suggestions: []string{
			"Increase grid_size or radius_fraction to add convertible cells",
			"Reduce population",
		},
	})
}

func validateFacilityCounts(cfg *spec.CityConfig, s *Summary, report *validation.Report) {
	if s.NumHospitals < cfg.Hospitals {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("placed %d of %d requested hospitals", s.NumHospitals, cfg.Hospitals),
			Field:       "hospitals",
			ActualValue: s.NumHospitals,
			Expected:    fmt.Sprintf("%d", cfg.Hospitals),
		})
	}
	if s.NumSchools < cfg.Schools {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("placed %d of %d requested schools", s.NumSchools, cfg.Schools),
			Field:       "schools",
			ActualValue: s.NumSchools,
			Expected:    fmt.Sprintf("%d", cfg.Schools),
		})
	}
}
