package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/secureballot/secureballot/internal/core/domain"
	"github.com/secureballot/secureballot/internal/core/ports"
)

func voteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <election-type> [candidate-id]",
		Short: "Cast a vote, or list candidates when no candidate is given",
		Args:  cobra.RangeArgs(1, 2),
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

			report, err := a.votes.Load(cmd.Context(), election.ID)
			if err != nil {
				return fmt.Errorf("failed to check eligibility: %w", err)
			}
			if report.CandidatesErr != nil {
				color.Yellow("warning: candidate list unavailable: %v", report.CandidatesErr)
			}

			state := report.State
			if len(args) == 1 {
				return printBallot(election, state)
			}

			candidateID := args[1]
			if err := a.votes.SelectCandidate(election.ID, candidateID); err != nil {
				return err
			}
			receipt, err := a.votes.CastVote(cmd.Context(), election.ID, candidateID)
			if err != nil {
				return err
			}
			color.Green("Vote recorded.")
			fmt.Printf("Receipt code: %s\n", receipt.ReceiptCode)
			fmt.Println("Keep this code to verify your vote later.")
			return nil
		},
	}
}

func printBallot(election *domain.Election, state ports.VoteState) error {
	fmt.Printf("%s\n\n", election.Name)
	switch state.Phase {
	case ports.PhaseVoted:
		color.Green("You have already voted in this election.")
		if state.Status != nil && state.Status.CandidateName != "" {
			fmt.Printf("Your vote: %s (%s)\n", state.Status.CandidateName, state.Status.CandidateParty)
		}
		return nil
	case ports.PhaseIneligible:
		return fmt.Errorf("not eligible: %s", state.IneligibleReason)
	}
	fmt.Println("Candidates:")
	for _, c := range state.Candidates {
		fmt.Printf("  %s  %s (%s)\n", c.ID, c.FullName, c.PartyCode)
	}
	fmt.Println("\nRun `ballotctl vote <election-type> <candidate-id>` to cast your vote.")
	return nil
}

func verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <receipt-code>",
		Short: "Verify a vote receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireAuth(cmd); err != nil {
				return err
			}

			verification, err := a.votes.VerifyReceipt(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if verification.IsValid {
				color.Green("Receipt %s is valid.", verification.ReceiptCode)
			} else {
				color.Red("Receipt %s is NOT valid.", verification.ReceiptCode)
			}
			return nil
		},
	}
}
