package ui

import (
	"math"

	"welltwin/app"
)

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// ChartPoint is one x/y sample on a chart series.
type ChartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChartSeries is a named line on a chart.
type ChartSeries struct {
	Name   string       `json:"name"`
	Color  string       `json:"color"`
	Dashed bool         `json:"dashed,omitempty"`
	Data   []ChartPoint `json:"data"`
}

// ChartConfig is the JSON payload the dashboard canvas renderer consumes.
type ChartConfig struct {
	ChartType  string        `json:"chart_type"`
	Title      string        `json:"title"`
	XAxis      string        `json:"x_axis"`
	YAxis      string        `json:"y_axis"`
	ShowLegend bool          `json:"show_legend"`
	ShowGrid   bool          `json:"show_grid"`
	Series     []ChartSeries `json:"series"`
}

// Stations plotted on the dashboard. The full profile resolution is kept
// for exports, the browser only needs enough points to draw a smooth line.
const chartStations = 100

// BuildECDChart plots ECD vs depth with the pore-pressure and
// fracture-gradient window as dashed reference lines.
func BuildECDChart(result *app.JobResult) *ChartConfig {
	p := result.Profile
	ecd := decimate(p.DepthFt, p.ECDPPG, chartStations)

	td := result.Run.Geometry.DepthFt
	pore := result.Run.Plan.PorePressurePPG
	fracture := result.Run.Plan.FractureGradPPG

	return &ChartConfig{
		ChartType:  "line",
		Title:      "Equivalent Circulating Density",
		XAxis:      "Depth (ft)",
		YAxis:      "ECD (ppg)",
		ShowLegend: true,
		ShowGrid:   true,
		Series: []ChartSeries{
			{Name: "ECD", Color: defaultColors[0], Data: ecd},
			{Name: "Pore pressure", Color: defaultColors[1], Dashed: true, Data: horizontalLine(pore, td)},
			{Name: "Fracture gradient", Color: defaultColors[3], Dashed: true, Data: horizontalLine(fracture, td)},
		},
	}
}

// BuildPressureChart plots hydrostatic, friction and total pressure vs depth.
func BuildPressureChart(result *app.JobResult) *ChartConfig {
	p := result.Profile
	return &ChartConfig{
		ChartType:  "line",
		Title:      "Annular Pressure",
		XAxis:      "Depth (ft)",
		YAxis:      "Pressure (psi)",
		ShowLegend: true,
		ShowGrid:   true,
		Series: []ChartSeries{
			{Name: "Hydrostatic", Color: defaultColors[0], Data: decimate(p.DepthFt, p.HydrostaticPsi, chartStations)},
			{Name: "Friction", Color: defaultColors[2], Data: decimate(p.DepthFt, p.FrictionPsi, chartStations)},
			{Name: "Total", Color: defaultColors[3], Data: decimate(p.DepthFt, p.TotalPsi, chartStations)},
		},
	}
}

// BuildRheologyChart plots the Bingham flow curve.
func BuildRheologyChart(result *app.JobResult) *ChartConfig {
	points := make([]ChartPoint, len(result.Rheology))
	for i, rp := range result.Rheology {
		points[i] = ChartPoint{X: rp.ShearRate, Y: rp.ShearStress}
	}
	return &ChartConfig{
		ChartType:  "line",
		Title:      "Bingham Flow Curve",
		XAxis:      "Shear rate (1/s)",
		YAxis:      "Shear stress (Pa)",
		ShowLegend: false,
		ShowGrid:   true,
		Series: []ChartSeries{
			{Name: result.Effective.Name, Color: defaultColors[4], Data: points},
		},
	}
}

// BuildPlacementChart plots the cement front position over pump time.
func BuildPlacementChart(result *app.JobResult) *ChartConfig {
	times, fronts := result.Placement.FrontSeries(chartStations)
	points := make([]ChartPoint, len(times))
	for i := range times {
		points[i] = ChartPoint{X: times[i], Y: fronts[i]}
	}
	return &ChartConfig{
		ChartType:  "line",
		Title:      "Cement Placement",
		XAxis:      "Time (min)",
		YAxis:      "Front depth (ft)",
		ShowLegend: false,
		ShowGrid:   true,
		Series: []ChartSeries{
			{Name: "Cement front", Color: defaultColors[5], Data: points},
		},
	}
}

// BuildSweepChart plots max ECD against pump rate across a sweep.
func BuildSweepChart(result *app.SweepResult, porePPG, fracturePPG float64) *ChartConfig {
	points := make([]ChartPoint, len(result.Points))
	var maxRate float64
	for i, p := range result.Points {
		points[i] = ChartPoint{X: p.PumpRateBblMin, Y: p.MaxECDPPG}
		maxRate = math.Max(maxRate, p.PumpRateBblMin)
	}
	return &ChartConfig{
		ChartType:  "line",
		Title:      "Pump Rate Sweep",
		XAxis:      "Pump rate (bbl/min)",
		YAxis:      "Max ECD (ppg)",
		ShowLegend: true,
		ShowGrid:   true,
		Series: []ChartSeries{
			{Name: "Max ECD", Color: defaultColors[0], Data: points},
			{Name: "Pore pressure", Color: defaultColors[1], Dashed: true, Data: horizontalLine(porePPG, maxRate)},
			{Name: "Fracture gradient", Color: defaultColors[3], Dashed: true, Data: horizontalLine(fracturePPG, maxRate)},
		},
	}
}

// decimate resamples a profile down to at most n evenly spaced points.
func decimate(xs, ys []float64, n int) []ChartPoint {
	if len(xs) == 0 {
		return nil
	}
	if n >= len(xs) {
		points := make([]ChartPoint, len(xs))
		for i := range xs {
			points[i] = ChartPoint{X: xs[i], Y: ys[i]}
		}
		return points
	}

	points := make([]ChartPoint, 0, n)
	step := float64(len(xs)-1) / float64(n-1)
	for i := 0; i < n; i++ {
		idx := int(math.Round(float64(i) * step))
		points = append(points, ChartPoint{X: xs[idx], Y: ys[idx]})
	}
	return points
}

func horizontalLine(y, xMax float64) []ChartPoint {
	return []ChartPoint{{X: 0, Y: y}, {X: xMax, Y: y}}
}
