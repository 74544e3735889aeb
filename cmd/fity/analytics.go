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

func analyticsCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Savings rate, health score and spending breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var (
				spending     api.SpendingAnalysis
				transactions []model.Transaction
				budgets      []model.Budget
			)
			g, gctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				spending, err = client.GetSpending(gctx, period)
				return err
			})
			g.Go(func() error {
				var err error
				transactions, _, err = client.ListTransactions(gctx, api.ListTransactionsParams{Limit: 500})
				return err
			})
			g.Go(func() error {
				var err error
				budgets, err = client.ListBudgets(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("failed to fetch analytics: %s", api.Message(err))
			}

			metrics := ledger.ComputeMetrics(transactions)
			health := ledger.HealthScore(metrics.SavingsRate, budgets, transactions)

			fmt.Println(cli.TitleStyle.Render(cli.ChartIcon + " Analytics"))
			fmt.Printf("%s   %s   Net $%.2f   Savings rate %.1f%%\n",
				cli.IncomeStyle.Render(fmt.Sprintf("Income $%.2f", metrics.TotalIncome)),
				cli.ExpenseStyle.Render(fmt.Sprintf("Expense $%.2f", metrics.TotalExpense)),
				metrics.NetSavings, metrics.SavingsRate)

			fmt.Printf("Health: %s (%d/100)", cli.BoldStyle.Render(health.Label), health.Score)
			if health.Overspent > 0 {
				fmt.Printf("  %s", cli.ErrorStyle.Render(fmt.Sprintf("%d budget(s) overspent", health.Overspent)))
			}
			fmt.Println()

			if breakdown := ledger.CategoryBreakdown(transactions); len(breakdown) > 0 {
				fmt.Printf("\n%s\n", cli.SubtitleStyle.Render("Top spending categories"))
				for _, c := range breakdown {
					fmt.Printf("  %-20s %s\n", c.Name, cli.ExpenseStyle.Render(fmt.Sprintf("$%.2f", c.Value)))
				}
			}

			if recurring := ledger.RecurringExpenses(transactions); len(recurring) > 0 {
				fmt.Printf("\n%s\n", cli.SubtitleStyle.Render("Recurring expenses"))
				for _, r := range recurring {
					fmt.Printf("  %-24s %-14s %s\n", r.Name, r.Category,
						cli.ExpenseStyle.Render(fmt.Sprintf("$%.2f/month", r.Amount)))
				}
			}

			if spending.TotalSpending > 0 {
				fmt.Printf("\n%s $%.2f", cli.SubtitleStyle.Render("Backend spending total"), spending.TotalSpending)
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "spending period (7days, 1month, 6months, 1year)")
	return cmd
}
