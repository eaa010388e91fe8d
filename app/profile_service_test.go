package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"welltwin/domain/slurry"
)

func TestProfileCatalog(t *testing.T) {
	catalog := &stubCatalog{slurries: []slurry.Slurry{
		{Key: "A", Name: "A", DensityPPG: 12.5, PlasticViscosity: 35, YieldPoint: 8, BHCT: 150},
		{Key: "B", Name: "B", DensityPPG: 15.8, PlasticViscosity: 55, YieldPoint: 12, BHCT: 180},
		{Key: "C", Name: "C", DensityPPG: 16.4, PlasticViscosity: 48, YieldPoint: 15, BHCT: 210},
	}}

	profiles := NewProfileService(catalog).ProfileCatalog()

	require.Contains(t, profiles, slurry.ColDensityPPG)
	density := profiles[slurry.ColDensityPPG]
	assert.Equal(t, 3, density.SampleSize)
	assert.Equal(t, 12.5, density.Summary.Min)
	assert.Equal(t, 16.4, density.Summary.Max)

	assert.Contains(t, profiles, slurry.ColPlasticViscosity)
	assert.Contains(t, profiles, slurry.ColYieldPoint)
	assert.Contains(t, profiles, slurry.ColBHCT)
}

func TestProfileCatalogNumericMetadata(t *testing.T) {
	catalog := &stubCatalog{slurries: []slurry.Slurry{
		{Key: "A", Name: "A", DensityPPG: 12.5, PlasticViscosity: 35, YieldPoint: 8, BHCT: 150,
			Metadata: map[string]string{"cost_usd_bbl": "42.5", "supplier": "Cemex"}},
		{Key: "B", Name: "B", DensityPPG: 15.8, PlasticViscosity: 55, YieldPoint: 12, BHCT: 180,
			Metadata: map[string]string{"cost_usd_bbl": "51.0", "supplier": "Lafarge"}},
		{Key: "C", Name: "C", DensityPPG: 16.4, PlasticViscosity: 48, YieldPoint: 15, BHCT: 210,
			Metadata: map[string]string{"cost_usd_bbl": "48.2", "supplier": "Dyckerhoff"}},
	}}

	profiles := NewProfileService(catalog).ProfileCatalog()

	assert.Contains(t, profiles, "cost_usd_bbl")
	assert.NotContains(t, profiles, "supplier")
}
