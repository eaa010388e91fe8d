package ports

import (
	"welltwin/domain/core"
	"welltwin/domain/slurry"
)

// SlurryCatalog exposes the loaded slurry sample set to services and handlers.
// Implementations are read-only for the lifetime of a session.
type SlurryCatalog interface {
	// List returns all slurries in catalog file order.
	List() []slurry.Slurry

	// Get returns the slurry with the given name.
	Get(key core.SlurryKey) (slurry.Slurry, bool)

	// Headers returns the catalog file's column headers in file order.
	Headers() []string

	// Fingerprint identifies the exact catalog file bytes loaded.
	Fingerprint() core.DatasetFingerprint
}
