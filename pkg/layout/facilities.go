package layout

import "math/rand"

// PlaceFacilities labels hospital and school cells. Eligible cells are
// those currently zoned Residential or Commercial; a single seeded
// permutation of them is walked once, assigning Hospital to the first
// unlabeled cells up to hospitals, then School to the next unlabeled
// cells up to schools. A cell receives at most one label.
//
// Returns the number of hospitals and schools actually placed, which
// fall short of the requested counts when eligible cells run out.
func PlaceFacilities(g *Grid, hospitals, schools int, rng *rand.Rand) (placedHospitals, placedSchools int) {
	eligible := make([]int, 0, len(g.Cells))
	for i := range g.Cells {
		if z := g.Cells[i].Zone; z == ZoneResidential || z == ZoneCommercial {
			eligible = append(eligible, i)
		}
	}
	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	place := func(count int, f Facility) int {
		placed := 0
		for _, idx := range eligible {
			if placed == count {
				break
			}
			if g.Cells[idx].Facility != FacilityNone {
				continue
			}
			g.Cells[idx].Facility = f
			placed++
		}
		return placed
	}

	placedHospitals = place(hospitals, FacilityHospital)
	placedSchools = place(schools, FacilitySchool)
	return placedHospitals, placedSchools
}
