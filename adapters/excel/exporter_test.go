package excel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"welltwin/app"
	"welltwin/domain/core"
	"welltwin/domain/hydraulics"
	"welltwin/domain/slurry"
	"welltwin/domain/wellbore"
	"welltwin/ports"
)

type singleSlurryCatalog struct {
	s slurry.Slurry
}

func (c *singleSlurryCatalog) List() []slurry.Slurry { return []slurry.Slurry{c.s} }

func (c *singleSlurryCatalog) Get(key core.SlurryKey) (slurry.Slurry, bool) {
	if key == c.s.Key {
		return c.s, true
	}
	return slurry.Slurry{}, false
}

func (c *singleSlurryCatalog) Headers() []string { return slurry.RequiredColumns() }

func (c *singleSlurryCatalog) Fingerprint() core.DatasetFingerprint {
	return core.NewDatasetFingerprint([]byte("test"))
}

type discardJobs struct{}

func (discardJobs) Create(ctx context.Context, run *ports.JobRun) error { return nil }
func (discardJobs) GetByID(ctx context.Context, id core.JobID) (*ports.JobRun, error) {
	return nil, nil
}
func (discardJobs) ListRecent(ctx context.Context, limit int) ([]*ports.JobRun, error) {
	return nil, nil
}
func (discardJobs) CountBySlurry(ctx context.Context) (map[string]int, error) { return nil, nil }

func sampleResult(t *testing.T) *app.JobResult {
	t.Helper()
	catalog := &singleSlurryCatalog{s: slurry.Slurry{
		Key:              "Class G Neat",
		Name:             "Class G Neat",
		DensityPPG:       15.8,
		PlasticViscosity: 20,
		YieldPoint:       10,
		BHCT:             180,
	}}
	svc := app.NewSimulationService(catalog, discardJobs{})

	result, err := svc.Evaluate(app.SimulationInput{
		SlurryKey: "Class G Neat",
		Geometry: wellbore.Geometry{
			HoleDiameterIn: 8.5,
			CasingODIn:     5.5,
			DepthFt:        3000,
			TopOfCementFt:  1500,
		},
		Plan: hydraulics.PumpingPlan{
			PumpRateBblMin:  4,
			FractureGradPPG: 19,
			PorePressurePPG: 13.5,
			BHCTF:           180,
		},
	})
	require.NoError(t, err)
	return result
}

func TestExportWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	result := sampleResult(t)

	require.NoError(t, NewReportExporter().Export(result, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "ECD Profile")
	assert.Contains(t, sheets, "Rheology")
	assert.Contains(t, sheets, "Placement")

	name, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Class G Neat", name)

	rows, err := f.GetRows("ECD Profile")
	require.NoError(t, err)
	assert.Len(t, rows, hydraulics.ProfileStations+1)

	rheo, err := f.GetRows("Rheology")
	require.NoError(t, err)
	assert.Len(t, rheo, hydraulics.RheologyPoints+1)
}

func TestExportBadPath(t *testing.T) {
	result := sampleResult(t)
	err := NewReportExporter().Export(result, "/nonexistent-dir/report.xlsx")
	assert.Error(t, err)
}
