package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/secureballot/secureballot/internal/core/domain"
	"github.com/secureballot/secureballot/internal/core/ports"
)

func adminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Election management commands",
	}
	cmd.AddCommand(createElectionCommand(), addCandidateCommand(), publishCommand())
	return cmd
}

func createElectionCommand() *cobra.Command {
	var (
		electionType string
		start        string
		end          string
	)

	cmd := &cobra.Command{
		Use:   "create-election <name>",
		Short: "Create a new election",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireAuth(cmd); err != nil {
				return err
			}

			election, err := a.admin.CreateElection(cmd.Context(), ports.CreateElectionInput{
				Name:         args[0],
				ElectionType: electionType,
				StartDate:    start,
				EndDate:      end,
			})
			if err != nil {
				return err
			}
			color.Green("Election created: %s", election.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&electionType, "type", "", "election type, e.g. \"Presidential Election\"")
	cmd.Flags().StringVar(&start, "start", "", "start date (RFC 3339)")
	cmd.Flags().StringVar(&end, "end", "", "end date (RFC 3339)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func addCandidateCommand() *cobra.Command {
	var (
		partyCode string
		partyName string
	)

	cmd := &cobra.Command{
		Use:   "add-candidate <election-id> <full-name>",
		Short: "Register a candidate for an election",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireAuth(cmd); err != nil {
				return err
			}

			added, err := a.admin.AddCandidates(cmd.Context(), args[0], []ports.CandidateInput{{
				FullName:  args[1],
				PartyCode: partyCode,
				PartyName: partyName,
			}})
			if err != nil {
				return err
			}
			for _, c := range added {
				fmt.Printf("Candidate added: %s (%s)\n", c.ID, c.FullName)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&partyCode, "party", "", "party code")
	cmd.Flags().StringVar(&partyName, "party-name", "", "party name")
	_ = cmd.MarkFlagRequired("party")
	return cmd
}

func publishCommand() *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "publish <election-id>",
		Short: "Publish election results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireAuth(cmd); err != nil {
				return err
			}

			if err := a.admin.PublishResults(cmd.Context(), args[0], domain.PublishLevel(level)); err != nil {
				return err
			}
			color.Green("Results published (%s).", level)
			return nil
		},
	}
	cmd.Flags().StringVar(&level, "level", string(domain.PublishPreliminary), "preliminary or final")
	return cmd
}
