package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/secureballot/secureballot/internal/adapters/repository/memory"
)

type ElectionHandler struct {
	store *memory.Store
}

func NewElectionHandler(store *memory.Store) *ElectionHandler {
	return &ElectionHandler{store: store}
}

func (h *ElectionHandler) List(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.store.ListElections())
}

func (h *ElectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	election, ok := h.store.GetElection(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "election not found")
		return
	}
	writeData(w, http.StatusOK, election)
}

func (h *ElectionHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	candidates, ok := h.store.Candidates(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "election not found")
		return
	}
	writeData(w, http.StatusOK, candidates)
}

func (h *ElectionHandler) VotingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := voterID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing voter context")
		return
	}
	status, found := h.store.VotingStatus(id, chi.URLParam(r, "id"))
	if !found {
		writeError(w, http.StatusNotFound, "election not found")
		return
	}
	writeData(w, http.StatusOK, status)
}

func (h *ElectionHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	electionID := chi.URLParam(r, "id")
	election, ok := h.store.GetElection(electionID)
	if !ok {
		writeError(w, http.StatusNotFound, "election not found")
		return
	}
	results, _ := h.store.Results(electionID)
	stats := map[string]any{
		"election_id":        electionID,
		"registered_voters":  election.RegisteredVoters,
		"accredited_voters":  results.TotalVotesCast,
		"votes_cast":         results.TotalVotesCast,
		"turnout_percentage": results.Turnout,
	}
	writeData(w, http.StatusOK, stats)
}

func (h *ElectionHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	id, ok := voterID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing voter context")
		return
	}
	eligibility, found := h.store.Eligibility(id, chi.URLParam(r, "id"))
	if !found {
		writeError(w, http.StatusNotFound, "election not found")
		return
	}
	writeData(w, http.StatusOK, eligibility)
}
