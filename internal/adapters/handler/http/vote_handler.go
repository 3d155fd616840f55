package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/secureballot/secureballot/internal/adapters/repository/memory"
)

type VoteHandler struct {
	store   *memory.Store
	metrics *metrics
}

func NewVoteHandler(store *memory.Store, m *metrics) *VoteHandler {
	return &VoteHandler{store: store, metrics: m}
}

type castVoteRequest struct {
	CandidateID string `json:"candidate_id"`
}

func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	id, ok := voterID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing voter context")
		return
	}

	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CandidateID == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	electionID := chi.URLParam(r, "id")
	eligibility, found := h.store.Eligibility(id, electionID)
	if !found {
		writeError(w, http.StatusNotFound, "election not found")
		return
	}
	if !eligibility.Eligible {
		writeError(w, http.StatusForbidden, eligibility.Reason)
		return
	}

	receipt, found, alreadyVoted, validCandidate := h.store.CastVote(id, electionID, req.CandidateID)
	switch {
	case !found:
		writeError(w, http.StatusNotFound, "election not found")
	case alreadyVoted:
		writeError(w, http.StatusConflict, "you have already voted in this election")
	case !validCandidate:
		writeError(w, http.StatusBadRequest, "candidate does not belong to this election")
	default:
		if h.metrics != nil {
			h.metrics.votesCast.Inc()
		}
		writeData(w, http.StatusCreated, receipt)
	}
}

func (h *VoteHandler) Verify(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	receipt, ok := h.store.Receipt(code)
	if !ok {
		writeError(w, http.StatusNotFound, "receipt not found")
		return
	}
	writeData(w, http.StatusOK, map[string]any{
		"receipt_code": receipt.ReceiptCode,
		"is_valid":     true,
		"verified_at":  time.Now(),
	})
}
