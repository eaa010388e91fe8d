// Package excel writes job reports as XLSX workbooks.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"welltwin/app"
)

const (
	summarySheet   = "Summary"
	profileSheet   = "ECD Profile"
	rheologySheet  = "Rheology"
	placementSheet = "Placement"
)

// Points sampled onto the placement sheet.
const placementSamples = 50

// ReportExporter writes a simulated job to an Excel workbook with one
// sheet per result family.
type ReportExporter struct{}

// NewReportExporter creates an exporter
func NewReportExporter() *ReportExporter {
	return &ReportExporter{}
}

// Export writes the job result workbook to the given path.
func (e *ReportExporter) Export(result *app.JobResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeSummary(f, result); err != nil {
		return err
	}
	if err := e.writeProfile(f, result); err != nil {
		return err
	}
	if err := e.writeRheology(f, result); err != nil {
		return err
	}
	if err := e.writePlacement(f, result); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report workbook: %w", err)
	}
	return nil
}

func (e *ReportExporter) writeSummary(f *excelize.File, result *app.JobResult) error {
	// The default sheet becomes the summary
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	run := result.Run
	rows := [][]interface{}{
		{"Job ID", run.ID.String()},
		{"Slurry", run.SlurryName},
		{"Created", run.CreatedAt.String()},
		{"", ""},
		{"Hole diameter (in)", run.Geometry.HoleDiameterIn},
		{"Casing OD (in)", run.Geometry.CasingODIn},
		{"Depth (ft)", run.Geometry.DepthFt},
		{"Top of cement (ft)", run.Geometry.TopOfCementFt},
		{"", ""},
		{"Pump rate (bbl/min)", run.Plan.PumpRateBblMin},
		{"BHCT (°F)", run.Plan.BHCTF},
		{"Thermal correction", run.Plan.ApplyThermalCorr},
		{"Density used (ppg)", run.DensityUsedPPG},
		{"Plastic viscosity used (cP)", run.ViscosityUsedCP},
		{"Yield point used (lb/100ft²)", run.YieldPointUsed},
		{"", ""},
		{"Annulus volume (bbl)", run.AnnulusVolumeBbl},
		{"Pump time (min)", run.PumpTimeMin},
		{"Max ECD (ppg)", run.MaxECDPPG},
		{"Pore pressure (ppg)", run.Plan.PorePressurePPG},
		{"Fracture gradient (ppg)", run.Plan.FractureGradPPG},
		{"Window safe", run.WindowSafe},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}

	if breach := result.Verdict.Breach; breach != nil {
		note := fmt.Sprintf("%s breach at %.0f ft (ECD %.2f ppg)", breach.Kind, breach.DepthFt, breach.ECDPPG)
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", len(rows)+1), note); err != nil {
			return err
		}
	}
	return nil
}

func (e *ReportExporter) writeProfile(f *excelize.File, result *app.JobResult) error {
	if _, err := f.NewSheet(profileSheet); err != nil {
		return fmt.Errorf("failed to create profile sheet: %w", err)
	}

	header := []interface{}{"Depth (ft)", "Hydrostatic (psi)", "Friction (psi)", "Total (psi)", "ECD (ppg)"}
	if err := f.SetSheetRow(profileSheet, "A1", &header); err != nil {
		return err
	}

	p := result.Profile
	for i := range p.DepthFt {
		row := []interface{}{p.DepthFt[i], p.HydrostaticPsi[i], p.FrictionPsi[i], p.TotalPsi[i], p.ECDPPG[i]}
		if err := f.SetSheetRow(profileSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return fmt.Errorf("failed to write profile row %d: %w", i+2, err)
		}
	}
	return nil
}

func (e *ReportExporter) writeRheology(f *excelize.File, result *app.JobResult) error {
	if _, err := f.NewSheet(rheologySheet); err != nil {
		return fmt.Errorf("failed to create rheology sheet: %w", err)
	}

	header := []interface{}{"Shear rate (1/s)", "Shear stress (Pa)"}
	if err := f.SetSheetRow(rheologySheet, "A1", &header); err != nil {
		return err
	}

	for i, point := range result.Rheology {
		row := []interface{}{point.ShearRate, point.ShearStress}
		if err := f.SetSheetRow(rheologySheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return fmt.Errorf("failed to write rheology row %d: %w", i+2, err)
		}
	}
	return nil
}

func (e *ReportExporter) writePlacement(f *excelize.File, result *app.JobResult) error {
	if _, err := f.NewSheet(placementSheet); err != nil {
		return fmt.Errorf("failed to create placement sheet: %w", err)
	}

	header := []interface{}{"Time (min)", "Cement front (ft)"}
	if err := f.SetSheetRow(placementSheet, "A1", &header); err != nil {
		return err
	}

	times, fronts := result.Placement.FrontSeries(placementSamples)
	for i := range times {
		row := []interface{}{times[i], fronts[i]}
		if err := f.SetSheetRow(placementSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return fmt.Errorf("failed to write placement row %d: %w", i+2, err)
		}
	}
	return nil
}
