package app

import (
	"strconv"
	"strings"

	"welltwin/domain/slurry"
	"welltwin/internal/profiling"
	"welltwin/ports"
)

// ProfileService computes statistical profiles over the loaded catalog.
type ProfileService struct {
	catalog  ports.SlurryCatalog
	analyzer *profiling.DistributionAnalyzer
}

// NewProfileService creates a catalog profile service
func NewProfileService(catalog ports.SlurryCatalog) *ProfileService {
	return &ProfileService{
		catalog:  catalog,
		analyzer: profiling.NewDistributionAnalyzer(),
	}
}

// ProfileCatalog profiles every numeric column across the catalog: the
// required property columns plus any extra metadata column whose values
// all parse as numbers.
func (s *ProfileService) ProfileCatalog() map[string]profiling.ColumnProfile {
	return s.analyzer.ProfileColumns(s.numericColumns())
}

func (s *ProfileService) numericColumns() map[string][]float64 {
	slurries := s.catalog.List()

	dataset := map[string][]float64{
		slurry.ColDensityPPG:       make([]float64, 0, len(slurries)),
		slurry.ColPlasticViscosity: make([]float64, 0, len(slurries)),
		slurry.ColYieldPoint:       make([]float64, 0, len(slurries)),
		slurry.ColBHCT:             make([]float64, 0, len(slurries)),
	}
	for _, sl := range slurries {
		dataset[slurry.ColDensityPPG] = append(dataset[slurry.ColDensityPPG], sl.DensityPPG)
		dataset[slurry.ColPlasticViscosity] = append(dataset[slurry.ColPlasticViscosity], sl.PlasticViscosity)
		dataset[slurry.ColYieldPoint] = append(dataset[slurry.ColYieldPoint], sl.YieldPoint)
		dataset[slurry.ColBHCT] = append(dataset[slurry.ColBHCT], sl.BHCT)
	}

	// Metadata columns come in as strings; keep the fully numeric ones.
	for column, values := range metadataColumns(slurries) {
		if len(values) == len(slurries) {
			dataset[column] = values
		}
	}
	return dataset
}

func metadataColumns(slurries []slurry.Slurry) map[string][]float64 {
	columns := make(map[string][]float64)
	for _, sl := range slurries {
		for column, raw := range sl.Metadata {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				continue
			}
			columns[column] = append(columns[column], v)
		}
	}
	return columns
}
