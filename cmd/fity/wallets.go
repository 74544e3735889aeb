package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nyunja/fity-cli/internal/api"
	"github.com/nyunja/fity-cli/internal/cli"
	"github.com/nyunja/fity-cli/internal/model"
)

func walletsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallets",
		Short: "Manage wallet accounts",
	}

	cmd.AddCommand(walletsListCmd())
	cmd.AddCommand(walletsAddCmd())
	cmd.AddCommand(walletsDefaultCmd())
	cmd.AddCommand(walletsTransferCmd())
	cmd.AddCommand(walletsDeleteCmd())
	return cmd
}

func walletsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show wallets and balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			wallets, err := client.ListWallets(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch wallets: %s", api.Message(err))
			}

			fmt.Print(cli.RenderWallets(wallets))

			// Savings wallets count toward total but not available funds.
			var total, available float64
			for _, w := range wallets {
				total += w.Balance
				if w.Type != model.WalletSavings {
					available += w.Balance
				}
			}
			fmt.Printf("\n%s   %s\n",
				cli.BoldStyle.Render(fmt.Sprintf("Total $%.2f", total)),
				cli.SubtleStyle.Render(fmt.Sprintf("Available $%.2f", available)))
			return nil
		},
	}
}

func walletsAddCmd() *cobra.Command {
	var (
		name       string
		walletType string
		currency   string
		color      string
		account    string
		balance    float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a wallet account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			wallet, err := client.CreateWallet(cmd.Context(), api.CreateWalletRequest{
				Name:          name,
				Type:          walletType,
				Currency:      strings.ToUpper(currency),
				Color:         color,
				AccountNumber: account,
				Balance:       balance,
			})
			if err != nil {
				return fmt.Errorf("failed to create wallet: %s", api.Message(err))
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s Wallet %q created with %s %.2f",
				cli.WalletIcon, wallet.Name, wallet.Currency, wallet.Balance)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "wallet name")
	cmd.Flags().StringVar(&walletType, "type", string(model.WalletBank), "wallet type")
	cmd.Flags().StringVar(&currency, "currency", "USD", "currency code")
	cmd.Flags().StringVar(&color, "color", "#6366F1", "display color")
	cmd.Flags().StringVar(&account, "account", "", "account number")
	cmd.Flags().Float64Var(&balance, "balance", 0, "opening balance")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func walletsDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <id>",
		Short: "Mark a wallet as the default funding source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.SetDefaultWallet(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to set default wallet: %s", api.Message(err))
			}
			fmt.Println(cli.FormatSuccess("Default wallet updated"))
			return nil
		},
	}
}

func walletsTransferCmd() *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "transfer <from-id> <to-id>",
		Short: "Move money between two wallets",
		Long: `Move money between two wallets.

The transfer runs as two balance updates, a debit then a credit. If the
credit fails the debit is not rolled back; run "fity wallets list" to see
the current balances and reconcile by hand.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			from, err := client.GetWallet(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch source wallet: %s", api.Message(err))
			}
			to, err := client.GetWallet(cmd.Context(), args[1])
			if err != nil {
				return fmt.Errorf("failed to fetch destination wallet: %s", api.Message(err))
			}

			// Transfer errors carry their own context (validation, which leg
			// failed), so they are surfaced as-is.
			if err := client.Transfer(cmd.Context(), from, to, amount); err != nil {
				return fmt.Errorf("transfer failed: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Moved $%.2f from %s to %s", amount, from.Name, to.Name)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to move")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func walletsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.DeleteWallet(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete wallet: %s", api.Message(err))
			}
			fmt.Println(cli.FormatSuccess("Wallet deleted"))
			return nil
		},
	}
}
