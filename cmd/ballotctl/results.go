package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/secureballot/secureballot/internal/core/domain"
)

func resultsCommand() *cobra.Command {
	var (
		watch    bool
		interval time.Duration
		regional bool
		history  bool
	)

	cmd := &cobra.Command{
		Use:   "results <election-type>",
		Short: "Show election results, optionally refreshing live",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireAuth(cmd); err != nil {
				return err
			}

			if _, err := a.elections.FetchElections(cmd.Context()); err != nil {
				return err
			}
			election, err := a.elections.SelectByType(domain.ElectionTypeKey(args[0]))
			if err != nil {
				return fmt.Errorf("no %s election found", args[0])
			}

			ctx := cmd.Context()
			switch {
			case regional:
				regions, err := a.results.FetchRegional(ctx, election.ID)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "REGION\tVOTES\tTURNOUT\tLEADING")
				for _, region := range regions {
					fmt.Fprintf(w, "%s\t%d\t%.1f%%\t%s\n",
						region.Region, region.VotesCast, region.Turnout, region.LeadingParty)
				}
				return w.Flush()
			case history:
				points, err := a.results.FetchHistory(ctx, election.ID)
				if err != nil {
					return err
				}
				for _, p := range points {
					fmt.Printf("%s  %d votes (%.1f%%)\n",
						p.Timestamp.Format(time.RFC822), p.VotesCast, p.Turnout)
				}
				return nil
			}

			snapshot, err := a.results.Fetch(ctx, election.ID)
			if err != nil {
				return err
			}
			printSnapshot(election, snapshot)

			if !watch {
				return nil
			}

			if err := a.results.StartAutoRefresh(ctx, election.ID, interval); err != nil {
				return err
			}
			defer a.results.StopAutoRefresh()

			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if latest := a.results.Snapshot(); latest != nil {
						printSnapshot(election, latest)
					}
				}
			}
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep refreshing live results")
	cmd.Flags().DurationVarP(&interval, "interval", "i", 10*time.Second, "refresh interval")
	cmd.Flags().BoolVar(&regional, "regional", false, "show the regional breakdown")
	cmd.Flags().BoolVar(&history, "history", false, "show the historical series")
	return cmd
}

func printSnapshot(election *domain.Election, snapshot *domain.ResultsSnapshot) {
	color.New(color.Bold).Printf("\n%s as of %s\n", election.Name, snapshot.FetchedAt.Format(time.Kitchen))
	fmt.Printf("Total votes: %d  Turnout: %.1f%%\n", snapshot.TotalVotesCast, snapshot.Turnout)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CANDIDATE\tPARTY\tVOTES\tSHARE")
	for _, c := range snapshot.Candidates {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.1f%%\n", c.FullName, c.PartyCode, c.Votes, c.Percentage)
	}
	_ = w.Flush()
}
