package render

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonhef/city-generator/pkg/layout"
)

func testGrid() *layout.Grid {
	g := layout.NewGrid(4)
	g.Cells[0] = layout.Cell{Zone: layout.ZoneResidential, Height: 3}
	g.Cells[1] = layout.Cell{Zone: layout.ZoneCommercial, Height: 10, Facility: layout.FacilityHospital}
	g.Cells[2] = layout.Cell{Zone: layout.ZoneGreen}
	g.Cells[3] = layout.Cell{Zone: layout.ZoneIndustrial, Height: 4}
	return g
}

func TestMapDimensions(t *testing.T) {
	img := Map(testGrid(), 8)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
}

func TestMapClampsCellSize(t *testing.T) {
	img := Map(testGrid(), 0)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
}

func TestMapZoneColours(t *testing.T) {
	scheme := DefaultScheme()
	img := MapWithScheme(testGrid(), 4, scheme)

	// Centre pixel of cell (0,0): residential.
	r, gr, b, _ := img.At(2, 2).RGBA()
	wr, wg, wb, _ := scheme.Residential.RGBA()
	assert.Equal(t, []uint32{wr, wg, wb}, []uint32{r, gr, b})

	// Cell (0,1) is undeveloped background.
	r, gr, b, _ = img.At(2, 6).RGBA()
	wr, wg, wb, _ = scheme.Undeveloped.RGBA()
	assert.Equal(t, []uint32{wr, wg, wb}, []uint32{r, gr, b})
}

func TestMapFacilityMarker(t *testing.T) {
	scheme := DefaultScheme()
	img := MapWithScheme(testGrid(), 8, scheme)

	// Centre of cell (1,0) carries the hospital marker.
	r, gr, b, _ := img.At(12, 4).RGBA()
	wr, wg, wb, _ := scheme.Hospital.RGBA()
	assert.Equal(t, []uint32{wr, wg, wb}, []uint32{r, gr, b})
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "city_map.png")
	require.NoError(t, SavePNG(testGrid(), 4, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
