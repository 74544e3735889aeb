package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/nyunja/fity-cli/internal/api"
	"github.com/nyunja/fity-cli/internal/cli"
	"github.com/nyunja/fity-cli/internal/ledger"
	"github.com/nyunja/fity-cli/internal/model"
	"github.com/nyunja/fity-cli/internal/resource"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "List, add and delete transactions",
	}

	cmd.AddCommand(transactionsListCmd())
	cmd.AddCommand(transactionsShowCmd())
	cmd.AddCommand(transactionsAddCmd())
	cmd.AddCommand(transactionsEditCmd())
	cmd.AddCommand(transactionsDeleteCmd())
	cmd.AddCommand(transactionsStatsCmd())
	return cmd
}

func transactionsListCmd() *cobra.Command {
	var (
		filterType   string
		filterWallet string
		search       string
		limit        int
		fetchAll     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show transactions grouped by day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var transactions []model.Transaction
			if fetchAll {
				transactions, err = fetchAllTransactions(cmd.Context(), client)
			} else {
				transactions, _, err = client.ListTransactions(cmd.Context(), api.ListTransactionsParams{Limit: limit})
			}
			if err != nil {
				return fmt.Errorf("failed to fetch transactions: %s", api.Message(err))
			}

			typeFilter, err := parseTypeFilter(filterType)
			if err != nil {
				return err
			}
			filtered := ledger.Apply(transactions, ledger.Filter{
				Type:   typeFilter,
				Wallet: filterWallet,
				Search: search,
			})

			fmt.Println(cli.RenderSummary(ledger.Summarize(filtered)))
			fmt.Println()
			fmt.Print(cli.RenderGroupedTransactions(ledger.GroupByDay(filtered)))
			return nil
		},
	}

	cmd.Flags().StringVar(&filterType, "type", "all", "filter by type (all, income, expense)")
	cmd.Flags().StringVar(&filterWallet, "wallet", "All", "filter by wallet name or method")
	cmd.Flags().StringVar(&search, "search", "", "free-text search over name, category, method and notes")
	cmd.Flags().IntVar(&limit, "limit", 50, "page size")
	cmd.Flags().BoolVar(&fetchAll, "all", false, "page through the entire history")
	return cmd
}

func parseTypeFilter(s string) (ledger.TypeFilter, error) {
	switch strings.ToLower(s) {
	case "", "all":
		return ledger.TypeAll, nil
	case "income":
		return ledger.TypeIncome, nil
	case "expense":
		return ledger.TypeExpense, nil
	}
	return "", fmt.Errorf("invalid type filter %q: must be all, income or expense", s)
}

// fetchAllTransactions pages through the full history with a progress bar.
// The backend exposes no total count, so the bar is indeterminate.
func fetchAllTransactions(ctx context.Context, client *api.Client) ([]model.Transaction, error) {
	const pageSize = 100

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Fetching transactions..."),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	defer func() { _ = bar.Finish() }()

	var all []model.Transaction
	for page := 1; ; page++ {
		transactions, _, err := client.ListTransactions(ctx, api.ListTransactionsParams{Page: page, Limit: pageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, transactions...)
		_ = bar.Add(len(transactions))
		if len(transactions) < pageSize {
			return all, nil
		}
	}
}

func transactionsAddCmd() *cobra.Command {
	var (
		txType   string
		name     string
		amount   float64
		category string
		method   string
		walletID string
		date     string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			txType = strings.ToLower(txType)
			if txType != "income" && txType != "expense" {
				return fmt.Errorf("invalid type %q: must be income or expense", txType)
			}
			if amount <= 0 {
				return fmt.Errorf("amount must be positive, got %.2f", amount)
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			create := resource.NewMutation(client.CreateTransaction)
			result := create.Mutate(cmd.Context(), api.CreateTransactionRequest{
				Type:            txType,
				Name:            name,
				Amount:          amount,
				Category:        category,
				Method:          method,
				WalletID:        walletID,
				TransactionDate: date,
				Notes:           notes,
			})
			if !result.Success {
				return fmt.Errorf("failed to create transaction: %s", result.Error)
			}

			tx := result.Data
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s", tx.Name, cli.FormatAmount(tx.Amount))))
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&name, "name", "", "description")
	cmd.Flags().Float64Var(&amount, "amount", 0, "unsigned amount")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	cmd.Flags().StringVar(&method, "method", "", "payment method")
	cmd.Flags().StringVar(&walletID, "wallet", "", "wallet id")
	cmd.Flags().StringVar(&date, "date", "", "timestamp (RFC 3339, defaults to now)")
	cmd.Flags().StringVar(&notes, "notes", "", "optional notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func transactionsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			tx, err := client.GetTransaction(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch transaction: %s", api.Message(err))
			}

			fmt.Printf("%s  %s\n", cli.BoldStyle.Render(tx.Name), cli.FormatAmount(tx.Amount))
			fmt.Printf("  %s  %s  %s  [%s]\n", tx.DisplayDate, tx.Category, tx.Method, tx.Status)
			if tx.Notes != "" {
				fmt.Println(cli.SubtleStyle.Render("  " + tx.Notes))
			}
			return nil
		},
	}
}

func transactionsEditCmd() *cobra.Command {
	var (
		name     string
		amount   float64
		category string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var req api.UpdateTransactionRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("amount") {
				req.Amount = &amount
			}
			if cmd.Flags().Changed("category") {
				req.Category = &category
			}
			if cmd.Flags().Changed("notes") {
				req.Notes = &notes
			}
			if req.Name == nil && req.Amount == nil && req.Category == nil && req.Notes == nil {
				return fmt.Errorf("nothing to update: pass --name, --amount, --category or --notes")
			}

			tx, err := client.UpdateTransaction(cmd.Context(), args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update transaction: %s", api.Message(err))
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated %s %s", tx.Name, cli.FormatAmount(tx.Amount))))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new description")
	cmd.Flags().Float64Var(&amount, "amount", 0, "new signed amount")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")
	return cmd
}

func transactionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.DeleteTransaction(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete transaction: %s", api.Message(err))
			}
			fmt.Println(cli.FormatSuccess("Transaction deleted"))
			return nil
		},
	}
}

func transactionsStatsCmd() *cobra.Command {
	var startDate, endDate string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show backend aggregates for a date range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			stats, err := client.GetTransactionStats(cmd.Context(), startDate, endDate)
			if err != nil {
				return fmt.Errorf("failed to fetch stats: %s", api.Message(err))
			}

			fmt.Printf("%s   %s\n",
				cli.IncomeStyle.Render(fmt.Sprintf("Income  $%.2f", stats.TotalIncome)),
				cli.ExpenseStyle.Render(fmt.Sprintf("Expense $%.2f", stats.TotalExpense)))
			fmt.Printf("Net $%.2f over %d transactions\n", stats.NetBalance, stats.TransactionCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "to", "", "end date (YYYY-MM-DD)")
	return cmd
}
