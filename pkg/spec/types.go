package spec

import (
	"fmt"
	"strings"
)

// TransportMode identifies the primary transport mode of the city.
// It is carried through generation for downstream collaborators but
// does not influence the zoning pipeline.
type TransportMode string

const (
	TransportCar     TransportMode = "car"
	TransportTransit TransportMode = "transit"
	TransportWalk    TransportMode = "walk"
)

// ParseTransportMode converts a user-supplied string into a TransportMode.
// Common synonyms are accepted.
func ParseTransportMode(s string) (TransportMode, error) {
	switch strings.ToLower(s) {
	case "car":
		return TransportCar, nil
	case "transit", "public", "public_transit":
		return TransportTransit, nil
	case "walk", "pedestrian":
		return TransportWalk, nil
	}
	return "", fmt.Errorf("unknown transport mode: %q", s)
}

// CityConfig is the top-level configuration for a generation run.
// It is supplied by the caller and never mutated by the pipeline.
type CityConfig struct {
	Population     int           `yaml:"population" json:"population"`
	Hospitals      int           `yaml:"hospitals" json:"hospitals"`
	Schools        int           `yaml:"schools" json:"schools"`
	Transport      TransportMode `yaml:"transport" json:"transport"`
	Seed           int64         `yaml:"seed" json:"seed"`
	GridSize       int           `yaml:"grid_size" json:"grid_size"`
	RadiusFraction float64       `yaml:"radius_fraction" json:"radius_fraction"`
}

// Default returns a config with the generator's stock parameters.
func Default() *CityConfig {
	return &CityConfig{
		Population:     100000,
		Hospitals:      1,
		Schools:        1,
		Transport:      TransportCar,
		Seed:           0,
		GridSize:       100,
		RadiusFraction: 0.8,
	}
}
