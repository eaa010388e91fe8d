package ui

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"welltwin/app"
	"welltwin/domain/core"
	"welltwin/domain/hydraulics"
	"welltwin/domain/wellbore"
)

// indexData feeds the main dashboard template.
type indexData struct {
	Slurries    interface{}
	Headers     []string
	Fingerprint string
	Usage       map[string]int
	UsageLoaded bool
	Defaults    app.SimulationInput
}

func (s *Server) handleIndex(c *gin.Context) {
	usage, loaded := s.usageSnapshot()

	s.renderTemplate(c, "index.html", indexData{
		Slurries:    s.catalog.List(),
		Headers:     s.catalog.Headers(),
		Fingerprint: s.catalog.Fingerprint().Short(),
		Usage:       usage,
		UsageLoaded: loaded,
		Defaults:    defaultInput(),
	})
}

func defaultInput() app.SimulationInput {
	return app.SimulationInput{
		Geometry: wellbore.Geometry{
			HoleDiameterIn: 8.5,
			CasingODIn:     5.5,
			DepthFt:        3000,
			TopOfCementFt:  1500,
		},
		Plan: hydraulics.PumpingPlan{
			PumpRateBblMin:  4,
			FractureGradPPG: 16.5,
			PorePressurePPG: 12,
			BHCTF:           180,
		},
	}
}

// resultsData feeds the simulation results fragment.
type resultsData struct {
	Result    *app.JobResult
	ECDChart  *ChartConfig
	Pressure  *ChartConfig
	Rheology  *ChartConfig
	Placement *ChartConfig
}

func (s *Server) handleSimulate(c *gin.Context) {
	input, err := parseSimulationForm(c)
	if err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	result, err := s.sims.Simulate(c.Request.Context(), input)
	if err != nil {
		s.renderError(c, http.StatusUnprocessableEntity, err)
		return
	}

	s.renderTemplate(c, "results.html", resultsData{
		Result:    result,
		ECDChart:  BuildECDChart(result),
		Pressure:  BuildPressureChart(result),
		Rheology:  BuildRheologyChart(result),
		Placement: BuildPlacementChart(result),
	})
}

// sweepData feeds the sweep results fragment.
type sweepData struct {
	Result *app.SweepResult
	Chart  *ChartConfig
}

func (s *Server) handleSweep(c *gin.Context) {
	input, err := parseSimulationForm(c)
	if err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	from := formFloat(c, "rate_from", 1)
	to := formFloat(c, "rate_to", 10)
	points := int(formFloat(c, "points", 20))

	result, err := s.sweeps.Sweep(c.Request.Context(), input, from, to, points)
	if err != nil {
		s.renderError(c, http.StatusUnprocessableEntity, err)
		return
	}

	s.renderTemplate(c, "sweep.html", sweepData{
		Result: result,
		Chart:  BuildSweepChart(result, input.Plan.PorePressurePPG, input.Plan.FractureGradPPG),
	})
}

func (s *Server) handleHistory(c *gin.Context) {
	runs, err := s.sims.Recent(c.Request.Context(), 20)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	s.renderTemplate(c, "history.html", gin.H{"Runs": runs})
}

func (s *Server) handleCatalogProfile(c *gin.Context) {
	profiles := s.prof.ProfileCatalog()
	s.renderTemplate(c, "profile.html", gin.H{
		"Profiles":    profiles,
		"Fingerprint": s.catalog.Fingerprint().Short(),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"catalog": s.catalog.Fingerprint().Short(),
	})
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	log.Printf("[Dashboard] Request failed: %v", err)
	c.Status(status)
	c.Header("Content-Type", "text/html")
	if terr := s.templates.ExecuteTemplate(c.Writer, "error.html", gin.H{"Error": err.Error()}); terr != nil {
		c.String(status, "error: %v", err)
	}
}

// parseSimulationForm reads the dashboard form controls into a SimulationInput.
func parseSimulationForm(c *gin.Context) (app.SimulationInput, error) {
	key, err := core.ParseSlurryKey(c.PostForm("slurry"))
	if err != nil {
		return app.SimulationInput{}, fmt.Errorf("slurry selection required: %w", err)
	}

	input := app.SimulationInput{
		SlurryKey: key,
		Geometry: wellbore.Geometry{
			HoleDiameterIn: formFloat(c, "hole_diameter_in", 8.5),
			CasingODIn:     formFloat(c, "casing_od_in", 5.5),
			DepthFt:        formFloat(c, "depth_ft", 3000),
			TopOfCementFt:  formFloat(c, "top_of_cement_ft", 1500),
		},
		Plan: hydraulics.PumpingPlan{
			PumpRateBblMin:   formFloat(c, "pump_rate_bbl_min", 4),
			FractureGradPPG:  formFloat(c, "fracture_grad_ppg", 16.5),
			PorePressurePPG:  formFloat(c, "pore_pressure_ppg", 12),
			BHCTF:            formFloat(c, "bhct_f", 180),
			ApplyThermalCorr: c.PostForm("thermal") == "on",
		},
	}
	return input, nil
}

func formFloat(c *gin.Context, field string, fallback float64) float64 {
	raw := c.PostForm(field)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
