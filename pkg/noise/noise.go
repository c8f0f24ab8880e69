// Package noise provides the deterministic scalar noise that drives
// zone classification. Values depend only on the cell coordinates and
// the seed, never on evaluation order, so the same seed always yields
// the same zoning field.
package noise

// DefaultOctaves is the octave count used by the zoning pass.
const DefaultOctaves = 4

// octaveSeedOffset decorrelates the per-octave hash streams.
const octaveSeedOffset = 17

// Hash returns a deterministic value in [0, 1) for an integer cell
// coordinate and seed. The combined bits are scrambled with
// multiplicative mixing and XOR-shifts over 32-bit wraparound
// arithmetic so adjacent coordinates are uncorrelated.
func Hash(x, y int, seed int64) float64 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h ^= uint32(seed) + 0x9e3779b9 + h<<6 + h>>2
	h ^= h >> 17
	h *= 0xED5AD4BB
	h ^= h >> 11
	h *= 0xAC4C1B51
	h ^= h >> 15
	return float64(h&0xFFFFFF) / float64(0x1000000)
}

// Fractal sums octaves of Hash at geometrically scaled coordinates:
// frequency doubles and amplitude halves per octave, and each octave
// draws from its own seed offset. The total is normalized by the
// amplitude sum so the result stays in [0, 1).
func Fractal(x, y int, seed int64, octaves int) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	amplitudeSum := 0.0

	for i := 0; i < octaves; i++ {
		sx := int(float64(x) * frequency)
		sy := int(float64(y) * frequency)
		total += amplitude * Hash(sx, sy, seed+int64(i)*octaveSeedOffset)
		amplitudeSum += amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}

	return total / amplitudeSum
}
