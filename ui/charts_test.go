package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"welltwin/app"
	"welltwin/domain/core"
	"welltwin/domain/hydraulics"
	"welltwin/domain/slurry"
	"welltwin/domain/wellbore"
	"welltwin/ports"
)

type chartCatalog struct{ s slurry.Slurry }

func (c *chartCatalog) List() []slurry.Slurry { return []slurry.Slurry{c.s} }
func (c *chartCatalog) Get(key core.SlurryKey) (slurry.Slurry, bool) {
	if key == c.s.Key {
		return c.s, true
	}
	return slurry.Slurry{}, false
}
func (c *chartCatalog) Headers() []string { return slurry.RequiredColumns() }
func (c *chartCatalog) Fingerprint() core.DatasetFingerprint {
	return core.NewDatasetFingerprint([]byte("charts"))
}

type nopJobs struct{}

func (nopJobs) Create(ctx context.Context, run *ports.JobRun) error { return nil }
func (nopJobs) GetByID(ctx context.Context, id core.JobID) (*ports.JobRun, error) {
	return nil, nil
}
func (nopJobs) ListRecent(ctx context.Context, limit int) ([]*ports.JobRun, error) {
	return nil, nil
}
func (nopJobs) CountBySlurry(ctx context.Context) (map[string]int, error) { return nil, nil }

func chartResult(t *testing.T) *app.JobResult {
	t.Helper()
	catalog := &chartCatalog{s: slurry.Slurry{
		Key: "Class G Neat", Name: "Class G Neat",
		DensityPPG: 15.8, PlasticViscosity: 20, YieldPoint: 10, BHCT: 180,
	}}
	svc := app.NewSimulationService(catalog, nopJobs{})
	result, err := svc.Evaluate(app.SimulationInput{
		SlurryKey: "Class G Neat",
		Geometry:  wellbore.Geometry{HoleDiameterIn: 8.5, CasingODIn: 5.5, DepthFt: 3000, TopOfCementFt: 1500},
		Plan:      hydraulics.PumpingPlan{PumpRateBblMin: 4, FractureGradPPG: 19, PorePressurePPG: 13.5, BHCTF: 180},
	})
	require.NoError(t, err)
	return result
}

func TestBuildECDChart(t *testing.T) {
	chart := BuildECDChart(chartResult(t))

	require.Len(t, chart.Series, 3)
	assert.Equal(t, "line", chart.ChartType)
	assert.LessOrEqual(t, len(chart.Series[0].Data), chartStations)

	// Reference lines carry the window bounds
	assert.True(t, chart.Series[1].Dashed)
	assert.Equal(t, 13.5, chart.Series[1].Data[0].Y)
	assert.Equal(t, 19.0, chart.Series[2].Data[0].Y)
}

func TestBuildPressureChart(t *testing.T) {
	chart := BuildPressureChart(chartResult(t))

	require.Len(t, chart.Series, 3)
	hydro := chart.Series[0].Data
	total := chart.Series[2].Data
	require.Equal(t, len(hydro), len(total))
	for i := range hydro {
		assert.GreaterOrEqual(t, total[i].Y, hydro[i].Y)
	}
}

func TestBuildRheologyChart(t *testing.T) {
	chart := BuildRheologyChart(chartResult(t))

	require.Len(t, chart.Series, 1)
	assert.Len(t, chart.Series[0].Data, hydraulics.RheologyPoints)
	assert.Equal(t, "Class G Neat", chart.Series[0].Name)
}

func TestBuildPlacementChart(t *testing.T) {
	chart := BuildPlacementChart(chartResult(t))

	data := chart.Series[0].Data
	require.NotEmpty(t, data)
	assert.Equal(t, 3000.0, data[0].Y)
	assert.Equal(t, 1500.0, data[len(data)-1].Y)
}

func TestDecimate(t *testing.T) {
	xs := make([]float64, 400)
	ys := make([]float64, 400)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = float64(i * 2)
	}

	points := decimate(xs, ys, 100)
	require.Len(t, points, 100)
	assert.Equal(t, 0.0, points[0].X)
	assert.Equal(t, 399.0, points[99].X)

	// Fewer samples than requested come back untouched
	short := decimate(xs[:10], ys[:10], 100)
	assert.Len(t, short, 10)
}
