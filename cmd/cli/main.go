// welltwin-cli runs simulations, sweeps, catalog profiles and report
// exports from the command line.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"welltwin/adapters/excel"
	"welltwin/adapters/memory"
	"welltwin/adapters/tabular"
	"welltwin/app"
	"welltwin/domain/core"
	"welltwin/domain/hydraulics"
	"welltwin/domain/wellbore"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "welltwin-cli",
		Short: "WellTwin CLI for cementing simulations and catalog analysis",
	}

	rootCmd.PersistentFlags().String("catalog", "data/sample_slurries.csv", "slurry catalog file (CSV or XLSX)")

	rootCmd.AddCommand(
		newSimulateCmd(),
		newSweepCmd(),
		newProfileCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// jobFlags holds the shared geometry and pumping plan flags.
type jobFlags struct {
	hole, casing, depth, toc   float64
	rate, fracture, pore, bhct float64
	thermal                    bool
}

func addJobFlags(cmd *cobra.Command, f *jobFlags) {
	cmd.Flags().Float64Var(&f.hole, "hole", 8.5, "hole diameter (in)")
	cmd.Flags().Float64Var(&f.casing, "casing", 5.5, "casing OD (in)")
	cmd.Flags().Float64Var(&f.depth, "depth", 3000, "depth TD (ft)")
	cmd.Flags().Float64Var(&f.toc, "toc", 1500, "top of cement (ft)")
	cmd.Flags().Float64Var(&f.rate, "rate", 4, "pump rate (bbl/min)")
	cmd.Flags().Float64Var(&f.fracture, "fracture", 16.5, "fracture gradient (ppg)")
	cmd.Flags().Float64Var(&f.pore, "pore", 12, "pore pressure (ppg)")
	cmd.Flags().Float64Var(&f.bhct, "bhct", 180, "bottom-hole circulating temperature (°F)")
	cmd.Flags().BoolVar(&f.thermal, "thermal", false, "apply thermal corrections")
}

func (f jobFlags) input(slurryName string) app.SimulationInput {
	return app.SimulationInput{
		SlurryKey: core.SlurryKey(slurryName),
		Geometry: wellbore.Geometry{
			HoleDiameterIn: f.hole,
			CasingODIn:     f.casing,
			DepthFt:        f.depth,
			TopOfCementFt:  f.toc,
		},
		Plan: hydraulics.PumpingPlan{
			PumpRateBblMin:   f.rate,
			FractureGradPPG:  f.fracture,
			PorePressurePPG:  f.pore,
			BHCTF:            f.bhct,
			ApplyThermalCorr: f.thermal,
		},
	}
}

func loadServices(cmd *cobra.Command) (*tabular.Catalog, *app.SimulationService, error) {
	catalogPath, _ := cmd.Flags().GetString("catalog")
	catalog, err := tabular.LoadCatalog(catalogPath)
	if err != nil {
		return nil, nil, err
	}
	return catalog, app.NewSimulationService(catalog, memory.NewJobRepository()), nil
}

func newSimulateCmd() *cobra.Command {
	var flags jobFlags

	cmd := &cobra.Command{
		Use:   "simulate [slurry-name]",
		Short: "Simulate one cementing job and print the verdict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sims, err := loadServices(cmd)
			if err != nil {
				return err
			}

			result, err := sims.Simulate(context.Background(), flags.input(args[0]))
			if err != nil {
				return err
			}

			printVerdict(cmd, result)
			return nil
		},
	}
	addJobFlags(cmd, &flags)
	return cmd
}

func newSweepCmd() *cobra.Command {
	var flags jobFlags
	var from, to float64
	var points int

	cmd := &cobra.Command{
		Use:   "sweep [slurry-name]",
		Short: "Sweep pump rates and report the fastest safe rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sims, err := loadServices(cmd)
			if err != nil {
				return err
			}

			result, err := app.NewSweepService(sims).Sweep(
				context.Background(), flags.input(args[0]), from, to, points)
			if err != nil {
				return err
			}

			for _, p := range result.Points {
				status := "breach"
				if p.Safe {
					status = "ok"
				}
				cmd.Printf("%6.2f bbl/min  max ECD %6.2f ppg  pump time %6.1f min  %s\n",
					p.PumpRateBblMin, p.MaxECDPPG, p.PumpTimeMin, status)
			}
			if result.MaxSafeRate != nil {
				cmd.Printf("\nMax safe rate: %.2f bbl/min (pump time %.1f min)\n",
					result.MaxSafeRate.PumpRateBblMin, result.MaxSafeRate.PumpTimeMin)
			} else {
				cmd.Println("\nNo safe rate on the grid")
			}
			return nil
		},
	}
	addJobFlags(cmd, &flags)
	cmd.Flags().Float64Var(&from, "from", 1, "sweep start rate (bbl/min)")
	cmd.Flags().Float64Var(&to, "to", 10, "sweep end rate (bbl/min)")
	cmd.Flags().IntVar(&points, "points", 20, "grid points")
	return cmd
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Print the statistical profile of the catalog as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogPath, _ := cmd.Flags().GetString("catalog")
			catalog, err := tabular.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}

			profiles := app.NewProfileService(catalog).ProfileCatalog()
			out, err := json.MarshalIndent(profiles, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var flags jobFlags
	var output string

	cmd := &cobra.Command{
		Use:   "export [slurry-name]",
		Short: "Simulate a job and write the report workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sims, err := loadServices(cmd)
			if err != nil {
				return err
			}

			result, err := sims.Simulate(context.Background(), flags.input(args[0]))
			if err != nil {
				return err
			}

			if err := excel.NewReportExporter().Export(result, output); err != nil {
				return err
			}

			printVerdict(cmd, result)
			cmd.Printf("Report written to %s\n", output)
			return nil
		},
	}
	addJobFlags(cmd, &flags)
	cmd.Flags().StringVarP(&output, "output", "o", "job_report.xlsx", "output workbook path")
	return cmd
}

func printVerdict(cmd *cobra.Command, result *app.JobResult) {
	run := result.Run
	cmd.Printf("Slurry:          %s\n", run.SlurryName)
	cmd.Printf("Density used:    %.2f ppg\n", run.DensityUsedPPG)
	cmd.Printf("PV used:         %.2f cP\n", run.ViscosityUsedCP)
	cmd.Printf("Annulus volume:  %.1f bbl\n", run.AnnulusVolumeBbl)
	cmd.Printf("Pump time:       %.1f min\n", run.PumpTimeMin)
	cmd.Printf("Max ECD:         %.2f ppg at %.0f ft\n", result.Verdict.MaxECDPPG, result.Verdict.MaxECDDepth)
	if result.Verdict.Safe {
		cmd.Println("Window:          SAFE")
	} else {
		b := result.Verdict.Breach
		cmd.Printf("Window:          %s BREACH at %.0f ft (ECD %.2f ppg)\n", b.Kind, b.DepthFt, b.ECDPPG)
	}
}
