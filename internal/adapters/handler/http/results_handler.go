package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/secureballot/secureballot/internal/adapters/repository/memory"
)

type ResultsHandler struct {
	store *memory.Store
}

func NewResultsHandler(store *memory.Store) *ResultsHandler {
	return &ResultsHandler{store: store}
}

func (h *ResultsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.store.Results(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "election not found")
		return
	}
	writeData(w, http.StatusOK, snapshot)
}

// Live serves the same computation as Summary; on the real backend the live
// variant reads a faster, less complete aggregation.
func (h *ResultsHandler) Live(w http.ResponseWriter, r *http.Request) {
	h.Summary(w, r)
}

func (h *ResultsHandler) Regional(w http.ResponseWriter, r *http.Request) {
	regions, ok := h.store.RegionalResults(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "election not found")
		return
	}
	writeData(w, http.StatusOK, regions)
}

func (h *ResultsHandler) History(w http.ResponseWriter, r *http.Request) {
	points, ok := h.store.HistoricalResults(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "election not found")
		return
	}
	writeData(w, http.StatusOK, points)
}
