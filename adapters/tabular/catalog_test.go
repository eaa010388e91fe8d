package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"welltwin/domain/core"
)

const validCatalogCSV = "name,density_ppg,plastic_viscosity_cP,yield_point_lb100ft2,BHCT_F,supplier\n" +
	"Class G Neat,15.8,55,12,180,Dyckerhoff\n" +
	"Class H Tail,16.4,48,15,210,Lafarge\n" +
	"Lite Lead,12.5,35,8,150,Halliburton\n"

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slurries.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog(writeCatalog(t, validCatalogCSV))
	require.NoError(t, err)

	list := catalog.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Class G Neat", list[0].Name)
	assert.Equal(t, 15.8, list[0].DensityPPG)
	assert.Equal(t, 55.0, list[0].PlasticViscosity)
	assert.Equal(t, "Dyckerhoff", list[0].Metadata["supplier"])

	s, ok := catalog.Get(core.SlurryKey("Lite Lead"))
	require.True(t, ok)
	assert.Equal(t, 12.5, s.DensityPPG)

	_, ok = catalog.Get(core.SlurryKey("No Such Blend"))
	assert.False(t, ok)
}

func TestLoadCatalogHeadersPreserveOrder(t *testing.T) {
	catalog, err := LoadCatalog(writeCatalog(t, validCatalogCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "density_ppg", "plastic_viscosity_cP", "yield_point_lb100ft2", "BHCT_F", "supplier"}, catalog.Headers())
}

func TestLoadCatalogFingerprintStable(t *testing.T) {
	path := writeCatalog(t, validCatalogCSV)

	first, err := LoadCatalog(path)
	require.NoError(t, err)
	second, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
	assert.Len(t, first.Fingerprint().Short(), 12)
}

func TestLoadCatalogFingerprintChangesWithContent(t *testing.T) {
	first, err := LoadCatalog(writeCatalog(t, validCatalogCSV))
	require.NoError(t, err)

	changed := validCatalogCSV + "Extra Blend,14.0,40,10,160,Cemex\n"
	second, err := LoadCatalog(writeCatalog(t, changed))
	require.NoError(t, err)

	assert.NotEqual(t, first.Fingerprint(), second.Fingerprint())
}

func TestLoadCatalogMissingRequiredColumn(t *testing.T) {
	csv := "name,density_ppg,plastic_viscosity_cP,yield_point_lb100ft2\n" +
		"Class G,15.8,55,12\n"

	_, err := LoadCatalog(writeCatalog(t, csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BHCT_F")
}

func TestLoadCatalogBadRow(t *testing.T) {
	csv := "name,density_ppg,plastic_viscosity_cP,yield_point_lb100ft2,BHCT_F\n" +
		"Class G,15.8,55,12,180\n" +
		"Broken,not-a-number,55,12,180\n"

	_, err := LoadCatalog(writeCatalog(t, csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestLoadCatalogDuplicateName(t *testing.T) {
	csv := "name,density_ppg,plastic_viscosity_cP,yield_point_lb100ft2,BHCT_F\n" +
		"Class G,15.8,55,12,180\n" +
		"Class G,16.0,50,11,190\n"

	_, err := LoadCatalog(writeCatalog(t, csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestLoadCatalogColumnTypes(t *testing.T) {
	catalog, err := LoadCatalog(writeCatalog(t, validCatalogCSV))
	require.NoError(t, err)

	types := catalog.ColumnTypes()
	assert.Equal(t, TypeNumeric, types["density_ppg"])
	assert.Equal(t, TypeString, types["name"])
}
