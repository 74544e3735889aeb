package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nyunja/fity-cli/internal/api"
	"github.com/nyunja/fity-cli/internal/cli"
	"github.com/nyunja/fity-cli/internal/ledger"
	"github.com/nyunja/fity-cli/internal/model"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage category budgets",
	}

	cmd.AddCommand(budgetsListCmd())
	cmd.AddCommand(budgetsAddCmd())
	cmd.AddCommand(budgetsUpdateCmd())
	cmd.AddCommand(budgetsDeleteCmd())
	cmd.AddCommand(budgetsSummaryCmd())
	return cmd
}

func budgetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show budgets with spend progress and alerts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var budgets []model.Budget
			var transactions []model.Transaction

			g, gctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				budgets, err = client.ListBudgets(gctx)
				return err
			})
			g.Go(func() error {
				var err error
				transactions, _, err = client.ListTransactions(gctx, api.ListTransactionsParams{Limit: 500})
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("failed to fetch budgets: %s", api.Message(err))
			}

			analyses := ledger.AnalyzeBudgets(budgets, transactions)
			fmt.Print(cli.RenderBudgets(analyses))

			metrics := ledger.ComputeMetrics(transactions)
			health := ledger.HealthScore(metrics.SavingsRate, budgets, transactions)
			fmt.Printf("\nHealth: %s (%d/100)", cli.BoldStyle.Render(health.Label), health.Score)
			if health.Overspent > 0 {
				fmt.Printf("  %s", cli.ErrorStyle.Render(fmt.Sprintf("%d overspent", health.Overspent)))
			}
			fmt.Println()
			return nil
		},
	}
}

func budgetsAddCmd() *cobra.Command {
	var (
		category  string
		period    string
		limit     float64
		threshold int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a category budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return fmt.Errorf("limit must be positive, got %.2f", limit)
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			budget, err := client.CreateBudget(cmd.Context(), api.CreateBudgetRequest{
				Category:       category,
				Period:         period,
				Limit:          limit,
				AlertThreshold: threshold,
			})
			if err != nil {
				return fmt.Errorf("failed to create budget: %s", api.Message(err))
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s set to $%.2f", budget.Category, budget.Limit)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category to cap")
	cmd.Flags().StringVar(&period, "period", "monthly", "budget period")
	cmd.Flags().Float64Var(&limit, "limit", 0, "spending limit")
	cmd.Flags().IntVar(&threshold, "alert-at", model.DefaultAlertThreshold, "warn at this percent of the limit")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("limit")
	return cmd
}

func budgetsUpdateCmd() *cobra.Command {
	var (
		limit     float64
		threshold int
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a budget's limit or alert threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var req api.UpdateBudgetRequest
			if cmd.Flags().Changed("limit") {
				req.Limit = &limit
			}
			if cmd.Flags().Changed("alert-at") {
				req.AlertThreshold = &threshold
			}
			if req.Limit == nil && req.AlertThreshold == nil {
				return fmt.Errorf("nothing to update: pass --limit or --alert-at")
			}

			budget, err := client.UpdateBudget(cmd.Context(), args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update budget: %s", api.Message(err))
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s updated", budget.Category)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&limit, "limit", 0, "new spending limit")
	cmd.Flags().IntVar(&threshold, "alert-at", 0, "new alert threshold percent")
	return cmd
}

func budgetsSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the backend's category spending split",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			slices, err := client.GetBudgetSummary(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch summary: %s", api.Message(err))
			}
			if len(slices) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No spending recorded yet."))
				return nil
			}

			var total float64
			for _, s := range slices {
				total += s.Value
			}
			for _, s := range slices {
				share := 0.0
				if total > 0 {
					share = s.Value / total * 100
				}
				fmt.Printf("  %-20s $%10.2f  %5.1f%%\n", s.Name, s.Value, share)
			}
			return nil
		},
	}
}

func budgetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.DeleteBudget(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete budget: %s", api.Message(err))
			}
			fmt.Println(cli.FormatSuccess("Budget deleted"))
			return nil
		},
	}
}
