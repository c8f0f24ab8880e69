package analytics

import (
	"math"

	"github.com/jonhef/city-generator/pkg/geo"
	"github.com/jonhef/city-generator/pkg/layout"
)

// maxFacilityDistances computes, over all residential cells, the
// maximum cell-centre distance to the nearest school and the nearest
// hospital. A facility type with no placements reports NoFacility.
//
// This is a direct O(residential × facilities) scan; at the grid sizes
// the generator targets no spatial index is warranted.
func maxFacilityDistances(g *layout.Grid) (maxToSchool, maxToHospital float64) {
	var schools, hospitals []geo.Point2D
	for i := range g.Cells {
		switch g.Cells[i].Facility {
		case layout.FacilitySchool:
			schools = append(schools, g.Center(i))
		case layout.FacilityHospital:
			hospitals = append(hospitals, g.Center(i))
		}
	}

	maxToSchool = NoFacility
	maxToHospital = NoFacility
	for i := range g.Cells {
		if g.Cells[i].Zone != layout.ZoneResidential {
			continue
		}
		centre := g.Center(i)
		if len(schools) > 0 {
			if d := nearest(centre, schools); d > maxToSchool {
				maxToSchool = d
			}
		}
		if len(hospitals) > 0 {
			if d := nearest(centre, hospitals); d > maxToHospital {
				maxToHospital = d
			}
		}
	}
	return maxToSchool, maxToHospital
}

// nearest returns the distance from p to the closest of the given
// points. Callers guarantee points is non-empty.
func nearest(p geo.Point2D, points []geo.Point2D) float64 {
	best := math.Inf(1)
	for _, q := range points {
		if d := p.Dist(q); d < best {
			best = d
		}
	}
	return best
}
