package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"welltwin/app"
	"welltwin/domain/core"
	"welltwin/internal/errors"
)

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"catalog": a.catalog.Fingerprint().Short(),
	})
}

func (a *App) handleListSlurries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"slurries":    a.catalog.List(),
		"headers":     a.catalog.Headers(),
		"fingerprint": a.catalog.Fingerprint().Short(),
	})
}

func (a *App) handleGetSlurry(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	key, err := core.ParseSlurryKey(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s, ok := a.catalog.Get(key)
	if !ok {
		writeError(w, http.StatusNotFound, "slurry not found: "+name)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (a *App) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var input app.SimulationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := a.sims.Simulate(r.Context(), input)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// sweepRequest extends the simulation input with the rate grid.
type sweepRequest struct {
	app.SimulationInput
	RateFrom float64 `json:"rate_from"`
	RateTo   float64 `json:"rate_to"`
	Points   int     `json:"points"`
}

func (a *App) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req sweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Points == 0 {
		req.Points = 20
	}

	result, err := a.sweeps.Sweep(r.Context(), req.SimulationInput, req.RateFrom, req.RateTo, req.Points)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *App) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.prof.ProfileCatalog())
}

func (a *App) handleRecentJobs(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	runs, err := a.sims.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"jobs": runs})
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
