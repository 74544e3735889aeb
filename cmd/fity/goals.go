package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nyunja/fity-cli/internal/api"
	"github.com/nyunja/fity-cli/internal/cli"
	"github.com/nyunja/fity-cli/internal/ledger"
	"github.com/nyunja/fity-cli/internal/model"
	"github.com/nyunja/fity-cli/internal/resource"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(goalsListCmd())
	cmd.AddCommand(goalsAddCmd())
	cmd.AddCommand(goalsFundCmd())
	cmd.AddCommand(goalsStatusCmd("pause", model.GoalPaused))
	cmd.AddCommand(goalsStatusCmd("resume", model.GoalActive))
	cmd.AddCommand(goalsDeleteCmd())
	return cmd
}

func goalsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show savings goals with progress and monthly suggestions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			goals, err := client.ListGoals(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch goals: %s", api.Message(err))
			}

			portfolio := ledger.SummarizeGoals(goals)
			fmt.Printf("%s  saved $%.2f of $%.2f (%.0f%%), %d active\n\n",
				cli.SubtitleStyle.Render("Portfolio"),
				portfolio.TotalSaved, portfolio.TotalTarget, portfolio.AverageProgress, portfolio.ActiveCount)

			fmt.Print(cli.RenderGoals(goals, time.Now()))
			return nil
		},
	}
}

func goalsAddCmd() *cobra.Command {
	var (
		name     string
		target   float64
		deadline string
		category string
		priority string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a savings goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if target <= 0 {
				return fmt.Errorf("target must be positive, got %.2f", target)
			}
			if deadline != "" {
				if _, err := time.Parse("2006-01-02", deadline); err != nil {
					return fmt.Errorf("invalid deadline %q: use YYYY-MM-DD", deadline)
				}
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			goal, err := client.CreateGoal(cmd.Context(), api.CreateGoalRequest{
				Name:         name,
				Deadline:     deadline,
				Category:     category,
				Priority:     priority,
				TargetAmount: target,
			})
			if err != nil {
				return fmt.Errorf("failed to create goal: %s", api.Message(err))
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s Goal %q created, target $%.2f", cli.GoalIcon, goal.Name, goal.Target)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "goal name")
	cmd.Flags().Float64Var(&target, "target", 0, "target amount")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	cmd.Flags().StringVar(&priority, "priority", "Medium", "High, Medium or Low")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func goalsFundCmd() *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "fund <id>",
		Short: "Add money toward a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if amount <= 0 {
				return fmt.Errorf("amount must be positive, got %.2f", amount)
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			fund := resource.NewMutation(func(ctx context.Context, amount float64) (model.SavingGoal, error) {
				return client.UpdateGoalProgress(ctx, args[0], amount)
			})
			result := fund.Mutate(cmd.Context(), amount)
			if !result.Success {
				return fmt.Errorf("failed to update goal: %s", result.Error)
			}

			goal := result.Data
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s now at $%.2f of $%.2f (%.0f%%)",
				goal.Name, goal.Current, goal.Target, goal.Progress()*100)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to add")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func goalsStatusCmd(verb string, status model.GoalStatus) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>",
		Short: fmt.Sprintf("%s a goal", verb),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			s := string(status)
			goal, err := client.UpdateGoal(cmd.Context(), args[0], api.UpdateGoalRequest{Status: &s})
			if err != nil {
				return fmt.Errorf("failed to %s goal: %s", verb, api.Message(err))
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s is now %s", goal.Name, goal.Status)))
			return nil
		},
	}
}

func goalsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.DeleteGoal(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete goal: %s", api.Message(err))
			}
			fmt.Println(cli.FormatSuccess("Goal deleted"))
			return nil
		},
	}
}
