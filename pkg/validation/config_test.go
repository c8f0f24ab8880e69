package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonhef/city-generator/pkg/spec"
)

func TestValidateConfigDefaults(t *testing.T) {
	r := ValidateConfig(spec.Default())
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
	require.NoError(t, r.Err())
}

func TestValidateConfigHardErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*spec.CityConfig)
		field  string
	}{
		{"zero grid", func(c *spec.CityConfig) { c.GridSize = 0 }, "grid_size"},
		{"negative grid", func(c *spec.CityConfig) { c.GridSize = -5 }, "grid_size"},
		{"zero radius", func(c *spec.CityConfig) { c.RadiusFraction = 0 }, "radius_fraction"},
		{"radius above one", func(c *spec.CityConfig) { c.RadiusFraction = 1.5 }, "radius_fraction"},
		{"negative population", func(c *spec.CityConfig) { c.Population = -1 }, "population"},
		{"negative hospitals", func(c *spec.CityConfig) { c.Hospitals = -1 }, "hospitals"},
		{"negative schools", func(c *spec.CityConfig) { c.Schools = -2 }, "schools"},
		{"unknown transport", func(c *spec.CityConfig) { c.Transport = "teleport" }, "transport"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := spec.Default()
			tc.mutate(cfg)
			r := ValidateConfig(cfg)
			require.False(t, r.Valid)
			require.Error(t, r.Err())
			require.Len(t, r.Errors, 1)
			assert.Equal(t, tc.field, r.Errors[0].Field)
			assert.Equal(t, LevelConfig, r.Errors[0].Level)
		})
	}
}

func TestValidateConfigRadiusOneIsValid(t *testing.T) {
	cfg := spec.Default()
	cfg.RadiusFraction = 1.0
	assert.True(t, ValidateConfig(cfg).Valid)
}

func TestReportMerge(t *testing.T) {
	a := NewReport()
	a.AddWarning(Result{Level: LevelAnalytical, Message: "short on green space"})

	b := NewReport()
	b.AddError(Result{Level: LevelConfig, Message: "grid_size must be greater than 0"})

	a.Merge(b)
	assert.False(t, a.Valid)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, "1 errors, 1 warnings, 0 info", a.Summary)
}
