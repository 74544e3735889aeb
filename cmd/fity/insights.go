package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/nyunja/fity-cli/internal/api"
	"github.com/nyunja/fity-cli/internal/cli"
	"github.com/nyunja/fity-cli/internal/insights"
	"github.com/nyunja/fity-cli/internal/model"
)

func insightsCmd() *cobra.Command {
	var withAI bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show spending insights, optionally with an AI tip",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			insight, err := client.GetInsights(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch insights: %s", api.Message(err))
			}

			fmt.Println(cli.SubtitleStyle.Render("Insight"))
			fmt.Println(insight.Message)
			if insight.GeneratedAt != "" {
				fmt.Println(cli.SubtleStyle.Render("generated " + insight.GeneratedAt))
			}

			if !withAI {
				return nil
			}

			var (
				user         model.User
				stats        []model.StatMetric
				transactions []model.Transaction
				goals        []model.SavingGoal
			)
			g, gctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				user, err = client.Me(gctx)
				return err
			})
			g.Go(func() error {
				var err error
				stats, err = client.GetDashboard(gctx)
				return err
			})
			g.Go(func() error {
				var err error
				transactions, _, err = client.ListTransactions(gctx, api.ListTransactionsParams{Limit: 20})
				return err
			})
			g.Go(func() error {
				var err error
				goals, err = client.ListGoals(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("failed to fetch dashboard data: %s", api.Message(err))
			}

			generator := insights.NewGenerator(viper.GetString("gemini.api_key"), user.Name)
			fmt.Printf("\n%s\n%s\n",
				cli.SubtitleStyle.Render(cli.SparkIcon+" AI tip"),
				generator.Tip(cmd.Context(), stats, transactions, goals))
			return nil
		},
	}

	cmd.Flags().BoolVar(&withAI, "ai", false, "also generate a Gemini-powered tip")
	return cmd
}
