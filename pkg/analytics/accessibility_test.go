package analytics

import (
	"math"
	"testing"

	"github.com/jonhef/city-generator/pkg/layout"
)

func TestMaxFacilityDistances(t *testing.T) {
	g := layout.NewGrid(5)
	// Residential at (0,0) and (1,0); school at (4,4); hospital at (4,0).
	g.Cells[g.Index(0, 0)] = layout.Cell{Zone: layout.ZoneResidential, Height: 2}
	g.Cells[g.Index(1, 0)] = layout.Cell{Zone: layout.ZoneResidential, Height: 2}
	g.Cells[g.Index(4, 4)] = layout.Cell{Zone: layout.ZoneCommercial, Height: 6, Facility: layout.FacilitySchool}
	g.Cells[g.Index(4, 0)] = layout.Cell{Zone: layout.ZoneCommercial, Height: 6, Facility: layout.FacilityHospital}

	school, hospital := maxFacilityDistances(g)

	// Farthest residential from the school is (0,0): centre (0.5,0.5)
	// to (4.5,4.5).
	wantSchool := math.Hypot(4, 4)
	if math.Abs(school-wantSchool) > 1e-12 {
		t.Errorf("maxToSchool = %v, want %v", school, wantSchool)
	}

	// Farthest residential from the hospital at (4,0) is also (0,0),
	// a straight 4-cell run.
	if math.Abs(hospital-4) > 1e-12 {
		t.Errorf("maxToHospital = %v, want 4", hospital)
	}
}

func TestMaxFacilityDistancesSentinel(t *testing.T) {
	g := layout.NewGrid(4)
	g.Cells[0] = layout.Cell{Zone: layout.ZoneResidential, Height: 3}
	g.Cells[1] = layout.Cell{Zone: layout.ZoneCommercial, Height: 7, Facility: layout.FacilityHospital}

	school, hospital := maxFacilityDistances(g)
	if school != NoFacility {
		t.Errorf("maxToSchool = %v, want sentinel %v with no schools", school, NoFacility)
	}
	if hospital < 0 {
		t.Errorf("maxToHospital = %v, want >= 0 with a hospital present", hospital)
	}
}

func TestMaxFacilityDistancesNoResidential(t *testing.T) {
	g := layout.NewGrid(3)
	g.Cells[0] = layout.Cell{Zone: layout.ZoneCommercial, Height: 5, Facility: layout.FacilitySchool}

	school, hospital := maxFacilityDistances(g)
	if school != NoFacility || hospital != NoFacility {
		t.Errorf("distances = (%v, %v), want sentinels with no residential cells", school, hospital)
	}
}

func TestMaxFacilityDistancesPicksNearest(t *testing.T) {
	g := layout.NewGrid(7)
	// One residential in the middle, schools close and far.
	g.Cells[g.Index(3, 3)] = layout.Cell{Zone: layout.ZoneResidential, Height: 2}
	g.Cells[g.Index(4, 3)] = layout.Cell{Zone: layout.ZoneCommercial, Height: 5, Facility: layout.FacilitySchool}
	g.Cells[g.Index(0, 0)] = layout.Cell{Zone: layout.ZoneCommercial, Height: 5, Facility: layout.FacilitySchool}

	school, _ := maxFacilityDistances(g)
	if math.Abs(school-1) > 1e-12 {
		t.Errorf("maxToSchool = %v, want 1 (nearest school, not farthest)", school)
	}
}
