package slurry

import (
	"fmt"
	"strconv"
	"strings"

	"welltwin/domain/core"
)

// Required catalog columns. A catalog file missing any of these is rejected
// before the dashboard starts.
const (
	ColName             = "name"
	ColDensityPPG       = "density_ppg"
	ColPlasticViscosity = "plastic_viscosity_cP"
	ColYieldPoint       = "yield_point_lb100ft2"
	ColBHCT             = "BHCT_F"
)

// RequiredColumns lists the header contract for a slurry catalog file.
func RequiredColumns() []string {
	return []string{ColName, ColDensityPPG, ColPlasticViscosity, ColYieldPoint, ColBHCT}
}

// Slurry is one cementing-slurry sample from the catalog.
type Slurry struct {
	Key              core.SlurryKey `json:"key"`
	Name             string         `json:"name"`
	DensityPPG       float64        `json:"density_ppg"`
	PlasticViscosity float64        `json:"plastic_viscosity_cP"`
	YieldPoint       float64        `json:"yield_point_lb100ft2"`
	BHCT             float64        `json:"bhct_f"`

	// Extra catalog columns beyond the required set, preserved verbatim.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate checks the slurry holds physically plausible values.
func (s Slurry) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("slurry name cannot be empty")
	}
	if s.DensityPPG <= 0 {
		return fmt.Errorf("slurry %q: density must be positive, got %.3f", s.Name, s.DensityPPG)
	}
	if s.PlasticViscosity < 0 {
		return fmt.Errorf("slurry %q: plastic viscosity cannot be negative, got %.3f", s.Name, s.PlasticViscosity)
	}
	if s.YieldPoint < 0 {
		return fmt.Errorf("slurry %q: yield point cannot be negative, got %.3f", s.Name, s.YieldPoint)
	}
	return nil
}

// FromRow builds a Slurry from one catalog row (column name → raw string value).
// Numeric parsing failures are reported with the offending column and value so
// a bad catalog line is diagnosable from the error alone.
func FromRow(row map[string]string) (Slurry, error) {
	name := strings.TrimSpace(row[ColName])
	if name == "" {
		return Slurry{}, fmt.Errorf("row has empty %q column", ColName)
	}

	density, err := parseField(row, ColDensityPPG)
	if err != nil {
		return Slurry{}, err
	}
	pv, err := parseField(row, ColPlasticViscosity)
	if err != nil {
		return Slurry{}, err
	}
	yp, err := parseField(row, ColYieldPoint)
	if err != nil {
		return Slurry{}, err
	}
	bhct, err := parseField(row, ColBHCT)
	if err != nil {
		return Slurry{}, err
	}

	required := make(map[string]bool, 5)
	for _, c := range RequiredColumns() {
		required[c] = true
	}
	var metadata map[string]string
	for k, v := range row {
		if required[k] {
			continue
		}
		if metadata == nil {
			metadata = make(map[string]string)
		}
		metadata[k] = v
	}

	s := Slurry{
		Key:              core.SlurryKey(name),
		Name:             name,
		DensityPPG:       density,
		PlasticViscosity: pv,
		YieldPoint:       yp,
		BHCT:             bhct,
		Metadata:         metadata,
	}
	if err := s.Validate(); err != nil {
		return Slurry{}, err
	}
	return s, nil
}

func parseField(row map[string]string, col string) (float64, error) {
	raw, ok := row[col]
	if !ok {
		return 0, fmt.Errorf("row missing required column %q", col)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: cannot parse %q as number", col, raw)
	}
	return v, nil
}
