package layout

import (
	"math/rand"

	"github.com/jonhef/city-generator/pkg/geo"
	"github.com/jonhef/city-generator/pkg/noise"
)

// Noise thresholds partitioning [0, 1) into zone classes.
const (
	residentialBelow = 0.55
	commercialBelow  = 0.75
	industrialBelow  = 0.90
)

// Storey draw ranges per zone, inclusive.
const (
	residentialMinHeight = 2
	residentialMaxHeight = 6
	commercialMinHeight  = 5
	commercialMaxHeight  = 20
	industrialMinHeight  = 3
	industrialMaxHeight  = 6
)

// intn draws uniformly from [lo, hi].
func intn(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// AssignZones classifies every cell of the grid. Cells whose centre
// lies beyond radiusFraction of the half grid stay undeveloped; the
// rest are classified by fractal noise thresholds and receive a storey
// count drawn from rng.
//
// Heights are drawn in strict row-major order (y outer, x inner). The
// scan order is part of the reproducibility contract: the stream
// position of every later draw, including the shuffles of subsequent
// passes, depends on it.
func AssignZones(g *Grid, seed int64, radiusFraction float64, rng *rand.Rand) {
	radius := float64(g.Size) * radiusFraction / 2
	centre := geo.Pt(float64(g.Size)/2, float64(g.Size)/2)

	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			cellCentre := geo.Pt(float64(x)+0.5, float64(y)+0.5)
			if cellCentre.Dist(centre) > radius {
				continue // zero value is ZoneNone, height 0
			}

			cell := g.At(x, y)
			switch v := noise.Fractal(x, y, seed, noise.DefaultOctaves); {
			case v < residentialBelow:
				cell.Zone = ZoneResidential
				cell.Height = intn(rng, residentialMinHeight, residentialMaxHeight)
			case v < commercialBelow:
				cell.Zone = ZoneCommercial
				cell.Height = intn(rng, commercialMinHeight, commercialMaxHeight)
			case v < industrialBelow:
				cell.Zone = ZoneIndustrial
				cell.Height = intn(rng, industrialMinHeight, industrialMaxHeight)
			default:
				cell.Zone = ZoneGreen
			}
		}
	}
}
