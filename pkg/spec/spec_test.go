package spec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`population: 50000
hospitals: 2
schools: 3
transport: transit
seed: 123
grid_size: 100
radius_fraction: 0.8
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "city.yaml"), content, 0o644))

	cfg, err := LoadProject(dir)
	require.NoError(t, err)

	assert.Equal(t, 50000, cfg.Population)
	assert.Equal(t, 2, cfg.Hospitals)
	assert.Equal(t, 3, cfg.Schools)
	assert.Equal(t, TransportTransit, cfg.Transport)
	assert.Equal(t, int64(123), cfg.Seed)
	assert.Equal(t, 100, cfg.GridSize)
	assert.Equal(t, 0.8, cfg.RadiusFraction)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	content := []byte("population: 20000\nseed: 42\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "city.yaml"), content, 0o644))

	cfg, err := LoadProject(dir)
	require.NoError(t, err)

	assert.Equal(t, 20000, cfg.Population)
	assert.Equal(t, int64(42), cfg.Seed)
	// Untouched fields come from Default.
	assert.Equal(t, 100, cfg.GridSize)
	assert.Equal(t, 0.8, cfg.RadiusFraction)
	assert.Equal(t, TransportCar, cfg.Transport)
}

func TestLoadProjectMissingFile(t *testing.T) {
	_, err := LoadProject(t.TempDir())
	require.Error(t, err)
}

func TestParseTransportMode(t *testing.T) {
	cases := []struct {
		in   string
		want TransportMode
	}{
		{"car", TransportCar},
		{"CAR", TransportCar},
		{"transit", TransportTransit},
		{"public", TransportTransit},
		{"public_transit", TransportTransit},
		{"walk", TransportWalk},
		{"pedestrian", TransportWalk},
	}
	for _, c := range cases {
		got, err := ParseTransportMode(c.in)
		require.NoError(t, err, "mode %q", c.in)
		assert.Equal(t, c.want, got, "mode %q", c.in)
	}

	_, err := ParseTransportMode("teleport")
	assert.Error(t, err)
}
