// Package analytics reduces a populated zoning grid into the flat
// summary record consumed by external collaborators, and checks the
// result against the configuration's soft targets.
package analytics

import "github.com/jonhef/city-generator/pkg/layout"

// Summarize reduces the final grid into a Summary. It is a pure
// reduction: the grid is not modified and repeated calls yield the
// same record.
func Summarize(g *layout.Grid) *Summary {
	s := &Summary{GridSize: g.Size}

	for i := range g.Cells {
		cell := &g.Cells[i]
		switch cell.Zone {
		case layout.ZoneNone:
			s.UndevelopedCells++
		case layout.ZoneResidential:
			s.ResidentialCells++
			if cell.Height > s.MaxResidentialHeight {
				s.MaxResidentialHeight = cell.Height
			}
		case layout.ZoneCommercial:
			s.CommercialCells++
			if cell.Height > s.MaxCommercialHeight {
				s.MaxCommercialHeight = cell.Height
			}
		case layout.ZoneIndustrial:
			s.IndustrialCells++
			if cell.Height > s.MaxIndustrialHeight {
				s.MaxIndustrialHeight = cell.Height
			}
		case layout.ZoneGreen:
			s.GreenCells++
		}

		switch cell.Facility {
		case layout.FacilityHospital:
			s.NumHospitals++
		case layout.FacilitySchool:
			s.NumSchools++
		}
	}

	s.TotalBuildings = s.ResidentialCells + s.CommercialCells + s.IndustrialCells
	s.MaxDistanceToSchool, s.MaxDistanceToHospital = maxFacilityDistances(g)

	return s
}
