package tabular

import (
	"fmt"
	"log"
	"os"

	"welltwin/domain/core"
	"welltwin/domain/slurry"
	"welltwin/internal/errors"
	"welltwin/ports"
)

// Catalog is an in-memory slurry catalog backed by a CSV/XLSX file.
// It implements ports.SlurryCatalog and never mutates after load.
type Catalog struct {
	slurries    []slurry.Slurry
	byKey       map[core.SlurryKey]slurry.Slurry
	headers     []string
	fingerprint core.DatasetFingerprint
	columnTypes map[string]string
}

// LoadCatalog reads the catalog file, validates the header contract and
// parses every row. Any bad row fails the whole load: a partially loaded
// catalog would silently change simulation results.
func LoadCatalog(filePath string) (*Catalog, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", filePath)
	}

	reader := NewDataReader(filePath)
	data, err := reader.ReadData()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load slurry catalog")
	}

	if err := validateHeaders(data.Headers); err != nil {
		return nil, err
	}

	slurries := make([]slurry.Slurry, 0, len(data.Rows))
	byKey := make(map[core.SlurryKey]slurry.Slurry, len(data.Rows))
	for i, row := range data.Rows {
		s, err := slurry.FromRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "catalog row %d invalid", i+2) // +2: header row, 1-indexed
		}
		if _, dup := byKey[s.Key]; dup {
			return nil, errors.DatasetInvalid(fmt.Sprintf("duplicate slurry name %q", s.Name))
		}
		slurries = append(slurries, s)
		byKey[s.Key] = s
	}

	log.Printf("[Catalog] Loaded %d slurries from %s", len(slurries), filePath)

	return &Catalog{
		slurries:    slurries,
		byKey:       byKey,
		headers:     data.Headers,
		fingerprint: core.NewDatasetFingerprint(raw),
		columnTypes: reader.InferColumnTypes(data),
	}, nil
}

func validateHeaders(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for _, required := range slurry.RequiredColumns() {
		if !present[required] {
			return errors.DatasetInvalid(fmt.Sprintf("catalog missing required column %q", required))
		}
	}
	return nil
}

// List returns all slurries in catalog file order
func (c *Catalog) List() []slurry.Slurry {
	out := make([]slurry.Slurry, len(c.slurries))
	copy(out, c.slurries)
	return out
}

// Get returns the slurry with the given name
func (c *Catalog) Get(key core.SlurryKey) (slurry.Slurry, bool) {
	s, ok := c.byKey[key]
	return s, ok
}

// Headers returns the catalog file's column headers in file order
func (c *Catalog) Headers() []string {
	out := make([]string, len(c.headers))
	copy(out, c.headers)
	return out
}

// Fingerprint identifies the exact catalog file bytes loaded
func (c *Catalog) Fingerprint() core.DatasetFingerprint {
	return c.fingerprint
}

// ColumnTypes returns the inferred type label per column
func (c *Catalog) ColumnTypes() map[string]string {
	out := make(map[string]string, len(c.columnTypes))
	for k, v := range c.columnTypes {
		out[k] = v
	}
	return out
}

var _ ports.SlurryCatalog = (*Catalog)(nil)
