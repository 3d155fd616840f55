// Command ballotctl drives the Secure Ballot client layer from the
// terminal: sessions, elections, voting and live results.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/secureballot/secureballot/internal/adapters/api/rest"
	"github.com/secureballot/secureballot/internal/adapters/tokencache"
	"github.com/secureballot/secureballot/internal/config"
	"github.com/secureballot/secureballot/internal/core/ports"
	"github.com/secureballot/secureballot/internal/core/services"
)

var (
	flagConfig string
	flagDebug  bool
)

// app wires the client layer together the way a page wires its hooks: one
// session store shared by every service, services owned per invocation.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	client    *rest.Client
	session   ports.SessionStore
	elections ports.ElectionService
	votes     ports.VoteService
	results   ports.ResultsService
	dashboard ports.DashboardService
	profile   ports.ProfileService
	admin     ports.AdminAPI
}

func newApp() (*app, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := slog.LevelWarn
	if flagDebug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	a := &app{cfg: cfg, log: log}

	cache := tokencache.NewFileCache(cfg.API.ResolvedTokenCachePath())
	a.client = rest.NewClient(cfg.API.BaseURL, cfg.API.Timeout, func() string {
		return a.session.Token()
	}, log)

	a.session = services.NewSessionStore(a.client, cache, log)
	a.elections = services.NewElectionService(a.client, a.client, log)
	a.votes = services.NewVoteService(a.client, a.client, log)
	a.results = services.NewResultsService(a.client, log)
	a.dashboard = services.NewDashboardService(a.session, a.elections, log)
	a.profile = services.NewProfileService(a.client, log)
	a.admin = a.client
	return a, nil
}

// requireAuth restores the persisted session and fails when nobody is
// logged in.
func (a *app) requireAuth(cmd *cobra.Command) error {
	if err := a.session.Initialize(cmd.Context()); err != nil {
		return err
	}
	if !a.session.Session().Authenticated {
		return fmt.Errorf("not logged in; run `ballotctl login` first")
	}
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "ballotctl",
		Short:         "Secure Ballot voter and admin client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		loginCommand(),
		logoutCommand(),
		electionsCommand(),
		statusCommand(),
		voteCommand(),
		verifyCommand(),
		resultsCommand(),
		profileCommand(),
		adminCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
