package layout

import (
	"math"
	"math/rand"
)

// Urban planning policy: minimum green area per inhabitant, and the
// fixed ground area represented by one grid cell (100 m × 100 m).
const (
	greenM2PerCapita = 8.0
	cellAreaM2       = 100.0 * 100.0
)

// GreenTarget returns the number of green cells required to provide
// the minimum green area for the given population.
func GreenTarget(population int) int {
	return int(math.Ceil(float64(population) * greenM2PerCapita / cellAreaM2))
}

// EnforceGreenQuota converts Residential and Industrial cells to Green
// until the grid meets the green target for the population. Candidates
// are taken in the order of a seeded permutation so the correction is
// reproducible. Commercial and undeveloped cells are never converted.
//
// Returns the remaining shortfall: 0 when the quota was met, otherwise
// the number of green cells the grid could not provide. A shortfall is
// a soft outcome, not an error.
func EnforceGreenQuota(g *Grid, population int, rng *rand.Rand) int {
	target := GreenTarget(population)
	current := g.CountZone(ZoneGreen)
	if current >= target {
		return 0
	}

	candidates := make([]int, 0, len(g.Cells))
	for i := range g.Cells {
		if z := g.Cells[i].Zone; z == ZoneResidential || z == ZoneIndustrial {
			candidates = append(candidates, i)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	needed := target - current
	converted := 0
	for _, idx := range candidates {
		if converted == needed {
			break
		}
		g.Cells[idx].Zone = ZoneGreen
		g.Cells[idx].Height = 0
		converted++
	}

	return needed - converted
}
