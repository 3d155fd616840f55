package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secureballot/secureballot/internal/core/domain"
)

func profileCommand() *cobra.Command {
	var (
		email string
		phone string
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the voter profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireAuth(cmd); err != nil {
				return err
			}

			ctx := cmd.Context()
			if email != "" || phone != "" {
				update := domain.ProfileUpdate{}
				if email != "" {
					update.Email = &email
				}
				if phone != "" {
					update.PhoneNumber = &phone
				}
				profile, err := a.profile.UpdateProfile(ctx, update)
				if err != nil {
					return err
				}
				fmt.Println("Profile updated.")
				printProfile(profile)
				return nil
			}

			profile, err := a.profile.FetchProfile(ctx)
			if err != nil {
				return err
			}
			printProfile(profile)

			unit, err := a.profile.FetchPollingUnit(ctx)
			if err != nil {
				// A voter without an assigned unit is not an error worth
				// failing the whole command for.
				return nil
			}
			fmt.Printf("Polling unit: %s (%s), %s ward, %s, %s\n",
				unit.Name, unit.Code, unit.Ward, unit.LGA, unit.State)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "new email address")
	cmd.Flags().StringVar(&phone, "phone", "", "new phone number")
	return cmd
}

func printProfile(p *domain.UserProfile) {
	fmt.Printf("%s\nVoter ID: %s\nEmail: %s\n", p.FullName, p.VoterID, p.Email)
	if p.PhoneNumber != "" {
		fmt.Printf("Phone: %s\n", p.PhoneNumber)
	}
	if p.State != "" {
		fmt.Printf("State: %s  LGA: %s\n", p.State, p.LGA)
	}
}
