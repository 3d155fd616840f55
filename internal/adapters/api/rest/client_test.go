package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureballot/secureballot/internal/core/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(server.URL, time.Second, func() string { return token }, log)
}

func writeEnvelope(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": status < 400,
		"data":    data,
		"message": message,
	})
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, []*domain.Election{}, "")
	}, "session-token")

	_, err := client.ListElections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", gotAuth)
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, []*domain.Election{}, "")
	}, "")

	_, err := client.ListElections(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientLogin(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login must not send a stale token")

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "VIN10000000001", req.VoterID)

		writeEnvelope(w, http.StatusOK, loginResponse{
			User:  &domain.UserProfile{VoterID: req.VoterID, FullName: "Adaeze Okafor"},
			Token: "fresh-token",
		}, "")
	}, "old-token")

	user, token, err := client.Login(context.Background(), "VIN10000000001", "password1")
	require.NoError(t, err)
	assert.Equal(t, "Adaeze Okafor", user.FullName)
	assert.Equal(t, "fresh-token", token)
}

func TestClientRestoreSessionUsesExplicitToken(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer cached-token", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, &domain.UserProfile{VoterID: "VIN10000000001"}, "")
	}, "")

	user, err := client.RestoreSession(context.Background(), "cached-token")
	require.NoError(t, err)
	assert.Equal(t, "VIN10000000001", user.VoterID)
}

func TestClientUnauthorized(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, nil, "token expired")
	}, "tok")

	_, err := client.ListElections(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestClientRateLimited(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "42")
		w.WriteHeader(http.StatusTooManyRequests)
	}, "tok")

	_, err := client.ListElections(context.Background())
	var rateErr *domain.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 42*time.Second, rateErr.RetryAfter)
}

func TestClientRateLimitedWithoutHeader(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}, "tok")

	_, err := client.ListElections(context.Background())
	var rateErr *domain.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Zero(t, rateErr.RetryAfter)
}

func TestClientEnvelopeFailure(t *testing.T) {
	// A 200 carrying success=false is still a failure.
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"data":null,"message":"something went wrong"}`))
	}, "tok")

	_, err := client.ListElections(context.Background())
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.Status)
	assert.Equal(t, "something went wrong", apiErr.Message)
}

func TestClientMalformedResponse(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}, "tok")

	_, err := client.ListElections(context.Background())
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "malformed response", apiErr.Message)
}

func TestClientElectionNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, nil, "no such election")
	}, "tok")

	_, err := client.GetElection(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrElectionNotFound)
}

func TestClientCastVoteStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"conflict means already voted", http.StatusConflict, domain.ErrAlreadyVoted},
		{"forbidden means not eligible", http.StatusForbidden, domain.ErrNotEligible},
		{"not found means no election", http.StatusNotFound, domain.ErrElectionNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, tt.status, nil, "rejected")
			}, "tok")

			_, err := client.CastVote(context.Background(), "e1", "c1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientCastVoteSuccess(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/elections/e1/vote", r.URL.Path)
		var req castVoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "c1", req.CandidateID)

		writeEnvelope(w, http.StatusCreated, &domain.VoteReceipt{
			ReceiptCode: "RC-1",
			ElectionID:  "e1",
			CandidateID: "c1",
		}, "")
	}, "tok")

	receipt, err := client.CastVote(context.Background(), "e1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "RC-1", receipt.ReceiptCode)
}

func TestClientVerifyReceiptNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, nil, "unknown receipt")
	}, "tok")

	_, err := client.VerifyReceipt(context.Background(), "bogus")
	assert.ErrorIs(t, err, domain.ErrReceiptNotFound)
}
