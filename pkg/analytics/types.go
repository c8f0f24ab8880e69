package analytics

// NoFacility is the sentinel distance reported when no facility of a
// given type exists in the city.
const NoFacility = -1.0

// Summary is the flat statistics record produced once per generation
// run. The JSON keys are stable and relied upon by external
// collaborators; do not rename them.
type Summary struct {
	GridSize              int     `json:"gridSize"`
	TotalBuildings        int     `json:"totalBuildings"`
	ResidentialCells      int     `json:"residentialCells"`
	CommercialCells       int     `json:"commercialCells"`
	IndustrialCells       int     `json:"industrialCells"`
	GreenCells            int     `json:"greenCells"`
	UndevelopedCells      int     `json:"undevelopedCells"`
	NumHospitals          int     `json:"numHospitals"`
	NumSchools            int     `json:"numSchools"`
	MaxDistanceToSchool   float64 `json:"maxDistanceToSchool"`
	MaxDistanceToHospital float64 `json:"maxDistanceToHospital"`
	MaxResidentialHeight  int     `json:"maxResidentialHeight"`
	MaxCommercialHeight   int     `json:"maxCommercialHeight"`
	MaxIndustrialHeight   int     `json:"maxIndustrialHeight"`
}
