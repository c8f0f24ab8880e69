// Package render draws a generated grid as a 2D raster map, one
// coloured block per cell. It is a debugging and inspection aid; the
// summary record remains the canonical output of a run.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/jonhef/city-generator/pkg/layout"
)

// ColourScheme maps zones and facility markers to map colours.
type ColourScheme struct {
	Undeveloped color.Color
	Residential color.Color
	Commercial  color.Color
	Industrial  color.Color
	Green       color.Color
	Hospital    color.Color
	School      color.Color
}

// DefaultScheme returns the stock palette: warm residential tones,
// glassy commercial grey, muted industrial, park green.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Undeveloped: color.RGBA{26, 26, 26, 255},
		Residential: color.RGBA{212, 184, 158, 255},
		Commercial:  color.RGBA{153, 166, 184, 255},
		Industrial:  color.RGBA{82, 87, 92, 255},
		Green:       color.RGBA{77, 158, 87, 255},
		Hospital:    color.RGBA{201, 58, 58, 255},
		School:      color.RGBA{232, 182, 62, 255},
	}
}

func (c *ColourScheme) zoneColour(z layout.Zone) color.Color {
	switch z {
	case layout.ZoneResidential:
		return c.Residential
	case layout.ZoneCommercial:
		return c.Commercial
	case layout.ZoneIndustrial:
		return c.Industrial
	case layout.ZoneGreen:
		return c.Green
	}
	return c.Undeveloped
}

// Map renders the grid with the default scheme at the given cell size
// in pixels.
func Map(g *layout.Grid, cellPx int) image.Image {
	return MapWithScheme(g, cellPx, DefaultScheme())
}

// MapWithScheme renders the grid with a custom palette. Facility cells
// are overdrawn with a centred marker so hospitals and schools stand
// out at small cell sizes.
func MapWithScheme(g *layout.Grid, cellPx int, scheme *ColourScheme) image.Image {
	if cellPx < 1 {
		cellPx = 1
	}
	ctx := gg.NewContext(g.Size*cellPx, g.Size*cellPx)
	ctx.SetColor(scheme.Undeveloped)
	ctx.Clear()

	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			cell := g.At(x, y)
			if cell.Zone == layout.ZoneNone {
				continue
			}
			ctx.SetColor(scheme.zoneColour(cell.Zone))
			ctx.DrawRectangle(float64(x*cellPx), float64(y*cellPx), float64(cellPx), float64(cellPx))
			ctx.Fill()

			if cell.Facility == layout.FacilityNone {
				continue
			}
			if cell.Facility == layout.FacilityHospital {
				ctx.SetColor(scheme.Hospital)
			} else {
				ctx.SetColor(scheme.School)
			}
			marker := float64(cellPx) / 2
			offset := (float64(cellPx) - marker) / 2
			ctx.DrawRectangle(float64(x*cellPx)+offset, float64(y*cellPx)+offset, marker, marker)
			ctx.Fill()
		}
	}

	return ctx.Image()
}

// SavePNG renders the grid and writes it to path.
func SavePNG(g *layout.Grid, cellPx int, path string) error {
	if err := gg.SavePNG(path, Map(g, cellPx)); err != nil {
		return fmt.Errorf("writing map PNG: %w", err)
	}
	return nil
}
