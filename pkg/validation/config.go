package validation

import (
	"fmt"

	"github.com/jonhef/city-generator/pkg/spec"
)

// ValidateConfig performs structural validation on a city config.
// It runs before any grid allocation; an invalid report here means the
// generator must not start.
func ValidateConfig(cfg *spec.CityConfig) *Report {
	r := NewReport()

	validateGrid(cfg, r)
	validateCounts(cfg, r)
	validateTransport(cfg, r)

	return r
}

func validateGrid(cfg *spec.CityConfig, r *Report) {
	if cfg.GridSize <= 0 {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     "grid_size must be greater than 0",
			Field:       "grid_size",
			ActualValue: cfg.GridSize,
			Expected:    ">= 1",
		})
	}

	if cfg.RadiusFraction <= 0 || cfg.RadiusFraction > 1 {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     fmt.Sprintf("radius_fraction %v is outside (0, 1]", cfg.RadiusFraction),
			Field:       "radius_fraction",
			ActualValue: cfg.RadiusFraction,
			Expected:    "in (0, 1]",
		})
	}
}

func validateCounts(cfg *spec.CityConfig, r *Report) {
	counts := []struct {
		field string
		value int
	}{
		{"population", cfg.Population},
		{"hospitals", cfg.Hospitals},
		{"schools", cfg.Schools},
	}

	for _, c := range counts {
		if c.value < 0 {
			r.AddError(Result{
				Level:       LevelConfig,
				Message:     fmt.Sprintf("%s must be non-negative", c.field),
				Field:       c.field,
				ActualValue: c.value,
				Expected:    ">= 0",
			})
		}
	}
}

func validateTransport(cfg *spec.CityConfig, r *Report) {
	switch cfg.Transport {
	case spec.TransportCar, spec.TransportTransit, spec.TransportWalk:
	default:
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     fmt.Sprintf("unknown transport mode %q", cfg.Transport),
			Field:       "transport",
			ActualValue: string(cfg.Transport),
			Expected:    "car | transit | walk",
			Suggestions: []string{"Use spec.ParseTransportMode to normalize user input"},
		})
	}
}
