package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/secureballot/secureballot/internal/core/domain"
)

func electionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "elections",
		Short: "List available elections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireAuth(cmd); err != nil {
				return err
			}

			elections, err := a.elections.FetchElections(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTATUS\tVOTES CAST")
			for _, e := range elections {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
					e.ID, e.Name, e.ElectionType, e.Status, e.VotesCast)
			}
			return w.Flush()
		},
	}
}

func statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <election-type>",
		Short: "Show the dashboard view for an election type",
		Long:  "Election types: presidential, gubernatorial, house-of-reps, senatorial, local.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireAuth(cmd); err != nil {
				return err
			}

			overview, err := a.dashboard.Overview(cmd.Context(), domain.ElectionTypeKey(args[0]))
			if err != nil {
				if errors.Is(err, domain.ErrNoMatchingType) {
					return fmt.Errorf("no %s election found", args[0])
				}
				return err
			}

			e := overview.Election
			color.New(color.Bold).Printf("%s (%s)\n", e.Name, e.Status)
			fmt.Printf("Votes cast: %d  Turnout: %.1f%%\n", overview.TotalVotes, overview.Turnout)
			if overview.Leader != nil {
				fmt.Printf("Leading: %s (%s) with %d votes\n",
					overview.Leader.FullName, overview.Leader.PartyCode, overview.Leader.Votes)
			}
			if overview.VotingStatus != nil {
				if overview.VotingStatus.HasVoted {
					color.Green("You have voted in this election.")
				} else {
					fmt.Println("You have not voted in this election.")
				}
			}
			warnings := []struct {
				slice string
				err   error
			}{
				{"candidates", overview.CandidatesErr},
				{"results", overview.ResultsErr},
				{"status", overview.StatusErr},
				{"statistics", overview.StatsErr},
			}
			for _, w := range warnings {
				if w.err != nil {
					color.Yellow("warning: %s unavailable: %v", w.slice, w.err)
				}
			}
			return nil
		},
	}
}
