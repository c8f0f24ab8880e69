// Package layout owns the zoning grid and the passes that populate it:
// noise-driven zone assignment, green-quota correction and facility
// placement. The grid belongs to a single generation run and is handed
// to analytics for reduction once the passes complete.
package layout

import "github.com/jonhef/city-generator/pkg/geo"

// Zone classifies the land use of a single grid cell.
type Zone uint8

const (
	ZoneNone Zone = iota // outside the developable city footprint
	ZoneResidential
	ZoneCommercial
	ZoneIndustrial
	ZoneGreen
)

// String returns the lowercase zone name.
func (z Zone) String() string {
	switch z {
	case ZoneNone:
		return "none"
	case ZoneResidential:
		return "residential"
	case ZoneCommercial:
		return "commercial"
	case ZoneIndustrial:
		return "industrial"
	case ZoneGreen:
		return "green"
	}
	return "unknown"
}

// Facility is a public-facility label attached to an eligible cell.
type Facility uint8

const (
	FacilityNone Facility = iota
	FacilityHospital
	FacilitySchool
)

// String returns the lowercase facility name.
func (f Facility) String() string {
	switch f {
	case FacilityNone:
		return "none"
	case FacilityHospital:
		return "hospital"
	case FacilitySchool:
		return "school"
	}
	return "unknown"
}

// Cell is one grid cell. Green and None cells always have height 0,
// and only Residential or Commercial cells ever carry a facility.
type Cell struct {
	Zone     Zone
	Height   int
	Facility Facility
}

// Grid is a flat row-major Size×Size cell array owned by one
// generation run.
type Grid struct {
	Size  int
	Cells []Cell
}

// NewGrid allocates a size×size grid of undeveloped cells.
func NewGrid(size int) *Grid {
	return &Grid{
		Size:  size,
		Cells: make([]Cell, size*size),
	}
}

// Index returns the flat index for (x, y).
func (g *Grid) Index(x, y int) int {
	return y*g.Size + x
}

// At returns the cell at (x, y). No bounds checking is performed.
func (g *Grid) At(x, y int) *Cell {
	return &g.Cells[g.Index(x, y)]
}

// Center returns the centre point of the cell at flat index idx,
// in cell units.
func (g *Grid) Center(idx int) geo.Point2D {
	return geo.Pt(float64(idx%g.Size)+0.5, float64(idx/g.Size)+0.5)
}

// CountZone returns the number of cells classified as z.
func (g *Grid) CountZone(z Zone) int {
	n := 0
	for i := range g.Cells {
		if g.Cells[i].Zone == z {
			n++
		}
	}
	return n
}
