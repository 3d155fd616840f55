package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/secureballot/secureballot/internal/adapters/repository/memory"
	"github.com/secureballot/secureballot/internal/core/domain"
)

type AdminHandler struct {
	store *memory.Store
}

func NewAdminHandler(store *memory.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

type createElectionRequest struct {
	Name         string `json:"name"`
	ElectionType string `json:"election_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

func (h *AdminHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	var req createElectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.ElectionType == "" {
		writeError(w, http.StatusBadRequest, "name and election_type are required")
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date")
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil || !end.After(start) {
		writeError(w, http.StatusBadRequest, "invalid end_date")
		return
	}

	election := h.store.CreateElection(req.Name, req.ElectionType, start, end)
	writeData(w, http.StatusCreated, election)
}

type addCandidateRequest struct {
	FullName  string `json:"full_name"`
	PartyCode string `json:"party_code"`
	PartyName string `json:"party_name"`
	Bio       string `json:"bio"`
	Manifesto string `json:"manifesto"`
}

func (h *AdminHandler) AddCandidates(w http.ResponseWriter, r *http.Request) {
	var reqs []addCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil || len(reqs) == 0 {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	electionID := chi.URLParam(r, "id")
	added := make([]*domain.Candidate, 0, len(reqs))
	for _, req := range reqs {
		if req.FullName == "" || req.PartyCode == "" {
			writeError(w, http.StatusBadRequest, "full_name and party_code are required")
			return
		}
		candidate := &domain.Candidate{
			FullName:  req.FullName,
			PartyCode: req.PartyCode,
			PartyName: req.PartyName,
			Bio:       req.Bio,
			Manifesto: req.Manifesto,
		}
		if !h.store.AddCandidate(electionID, candidate) {
			writeError(w, http.StatusNotFound, "election not found")
			return
		}
		added = append(added, candidate)
	}
	writeData(w, http.StatusCreated, added)
}

type publishRequest struct {
	Level domain.PublishLevel `json:"level"`
}

func (h *AdminHandler) PublishResults(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Level != domain.PublishPreliminary && req.Level != domain.PublishFinal {
		writeError(w, http.StatusBadRequest, "level must be preliminary or final")
		return
	}
	if !h.store.PublishResults(chi.URLParam(r, "id"), req.Level) {
		writeError(w, http.StatusNotFound, "election not found")
		return
	}
	writeData(w, http.StatusOK, nil)
}
