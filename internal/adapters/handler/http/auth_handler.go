package http

import (
	"encoding/json"
	"net/http"

	"github.com/secureballot/secureballot/internal/adapters/repository/memory"
)

type AuthHandler struct {
	store  *memory.Store
	secret []byte
}

func NewAuthHandler(store *memory.Store, secret []byte) *AuthHandler {
	return &AuthHandler{store: store, secret: secret}
}

type loginRequest struct {
	VoterID  string `json:"voter_id"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, ok := h.store.Authenticate(req.VoterID, req.Password)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := issueToken(h.secret, req.VoterID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeData(w, http.StatusOK, map[string]any{
		"user":  profile,
		"token": token,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := voterID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing voter context")
		return
	}
	voter, ok := h.store.GetVoter(id)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unknown voter")
		return
	}
	writeData(w, http.StatusOK, voter.Profile)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless; logout succeeds as long as the caller held a
	// valid one.
	writeData(w, http.StatusOK, nil)
}
