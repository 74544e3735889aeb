package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nyunja/fity-cli/internal/api"
	"github.com/nyunja/fity-cli/internal/cli"
	"github.com/nyunja/fity-cli/internal/session"
)

func registerCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a FityBudget account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if name, err = flagOrPrompt(name, "Name"); err != nil {
				return err
			}
			if email, err = flagOrPrompt(email, "Email"); err != nil {
				return err
			}
			if password, err = flagOrPrompt(password, "Password"); err != nil {
				return err
			}

			client := newAnonClient()
			result, err := client.Register(cmd.Context(), name, email, password)
			if err != nil {
				return fmt.Errorf("registration failed: %s", api.Message(err))
			}

			if _, err := session.Save(result.Token, result.User.Email); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Welcome, %s! Run `fity onboard` to finish setting up.", result.User.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if email, err = flagOrPrompt(email, "Email"); err != nil {
				return err
			}
			if password, err = flagOrPrompt(password, "Password"); err != nil {
				return err
			}

			client := newAnonClient()
			result, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %s", api.Message(err))
			}

			if _, err := session.Save(result.Token, result.User.Email); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged in as %s", result.User.Email)))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the saved session token",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := session.Clear(); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Logged out"))
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			user, err := client.Me(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch profile: %s", api.Message(err))
			}

			fmt.Printf("%s <%s>\n", cli.BoldStyle.Render(user.Name), user.Email)
			if !user.IsOnboarded {
				fmt.Println(cli.SubtleStyle.Render("Onboarding incomplete; run `fity onboard`."))
			}
			return nil
		},
	}
}

func profileCmd() *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the account name or email",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var req api.UpdateProfileRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}
			if req.Name == nil && req.Email == nil {
				return fmt.Errorf("nothing to update: pass --name or --email")
			}

			user, err := client.UpdateProfile(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to update profile: %s", api.Message(err))
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Profile updated: %s <%s>", user.Name, user.Email)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&email, "email", "", "new email address")
	return cmd
}

func onboardCmd() *cobra.Command {
	var income float64
	var currency string
	var goals []string

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Complete first-run setup (income, currency, goals)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			req := api.OnboardingRequest{
				MonthlyIncome:  income,
				Currency:       strings.ToUpper(currency),
				FinancialGoals: goals,
			}
			if err := client.CompleteOnboarding(cmd.Context(), req); err != nil {
				return fmt.Errorf("onboarding failed: %s", api.Message(err))
			}

			fmt.Println(cli.FormatSuccess("Onboarding complete"))
			return nil
		},
	}

	cmd.Flags().Float64Var(&income, "income", 0, "monthly income")
	cmd.Flags().StringVar(&currency, "currency", "USD", "preferred currency code")
	cmd.Flags().StringSliceVar(&goals, "goal", nil, "financial goal (repeatable)")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}
