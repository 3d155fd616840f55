package http

import (
	"encoding/json"
	"net/http"

	"github.com/secureballot/secureballot/internal/adapters/repository/memory"
	"github.com/secureballot/secureballot/internal/core/domain"
)

type ProfileHandler struct {
	store *memory.Store
}

func NewProfileHandler(store *memory.Store) *ProfileHandler {
	return &ProfileHandler{store: store}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := voterID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing voter context")
		return
	}
	voter, ok := h.store.GetVoter(id)
	if !ok {
		writeError(w, http.StatusNotFound, "voter not found")
		return
	}
	writeData(w, http.StatusOK, voter.Profile)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := voterID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing voter context")
		return
	}

	var update domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, ok := h.store.UpdateProfile(id, update)
	if !ok {
		writeError(w, http.StatusNotFound, "voter not found")
		return
	}
	writeData(w, http.StatusOK, profile)
}

func (h *ProfileHandler) PollingUnit(w http.ResponseWriter, r *http.Request) {
	id, ok := voterID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing voter context")
		return
	}
	voter, ok := h.store.GetVoter(id)
	if !ok || voter.PollingUnit == nil {
		writeError(w, http.StatusNotFound, "polling unit not assigned")
		return
	}
	writeData(w, http.StatusOK, voter.PollingUnit)
}
