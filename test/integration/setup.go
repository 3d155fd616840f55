package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/secureballot/secureballot/internal/adapters/api/rest"
	stubhttp "github.com/secureballot/secureballot/internal/adapters/handler/http"
	"github.com/secureballot/secureballot/internal/adapters/repository/memory"
	"github.com/secureballot/secureballot/internal/adapters/tokencache"
	"github.com/secureballot/secureballot/internal/core/ports"
	"github.com/secureballot/secureballot/internal/core/services"
)

const (
	eligibleVoterID   = "VIN10000000001"
	eligiblePassword  = "password1"
	ineligibleVoterID = "VIN10000000002"
	ineligiblePass    = "password2"
)

// testApp runs the whole stack in-process: the seeded stub backend behind an
// httptest server, with the client services wired against it the same way
// the CLI wires them.
type testApp struct {
	Server *httptest.Server
	Store  *memory.Store
	Client *rest.Client

	Session   ports.SessionStore
	Elections ports.ElectionService
	Votes     ports.VoteService
	Results   ports.ResultsService
	Dashboard ports.DashboardService
	Profile   ports.ProfileService

	cachePath string
	log       *slog.Logger
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore()
	memory.Seed(store)
	server := httptest.NewServer(stubhttp.NewHandler(store, stubhttp.RouterConfig{
		JWTSecret: "integration-secret",
	}, log))
	t.Cleanup(server.Close)

	app := &testApp{
		Server:    server,
		Store:     store,
		cachePath: filepath.Join(t.TempDir(), "token"),
		log:       log,
	}
	app.wireServices()
	return app
}

func createLocalElectionInput() ports.CreateElectionInput {
	return ports.CreateElectionInput{
		Name:         "Local Government Election",
		ElectionType: "Local Government Election",
		StartDate:    time.Now().Add(time.Hour).Format(time.RFC3339),
		EndDate:      time.Now().Add(2 * time.Hour).Format(time.RFC3339),
	}
}

func localCandidateInput() []ports.CandidateInput {
	return []ports.CandidateInput{{
		FullName:  "Bola Adekunle",
		PartyCode: "GRA",
		PartyName: "Green Alliance",
	}}
}

// wireServices builds a fresh set of client services against the running
// server, sharing the token cache path. Calling it again simulates a client
// restart.
func (a *testApp) wireServices() {
	cache := tokencache.NewFileCache(a.cachePath)
	a.Client = rest.NewClient(a.Server.URL, 5*time.Second, func() string {
		return a.Session.Token()
	}, a.log)
	a.Session = services.NewSessionStore(a.Client, cache, a.log)
	a.Elections = services.NewElectionService(a.Client, a.Client, a.log)
	a.Votes = services.NewVoteService(a.Client, a.Client, a.log)
	a.Results = services.NewResultsService(a.Client, a.log)
	a.Dashboard = services.NewDashboardService(a.Session, a.Elections, a.log)
	a.Profile = services.NewProfileService(a.Client, a.log)
}
