// Package tui implements the interactive dashboard screen.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/nyunja/fity-cli/internal/api"
	"github.com/nyunja/fity-cli/internal/cli"
	"github.com/nyunja/fity-cli/internal/ledger"
	"github.com/nyunja/fity-cli/internal/model"
	"github.com/nyunja/fity-cli/internal/resource"
)

// dashboardLoadedMsg signals that the fetch round finished; the fetchers
// hold the per-resource outcomes.
type dashboardLoadedMsg struct{}

// DashboardModel is the bubbletea model for `fity dashboard`. Each resource
// keeps its own fetcher, so one failing endpoint does not blank the others
// and stale data stays visible across a failed refresh.
type DashboardModel struct {
	stats        *resource.Fetcher[[]model.StatMetric]
	flow         *resource.Fetcher[[]model.MoneyFlowPoint]
	slices       *resource.Fetcher[[]model.BudgetSlice]
	transactions *resource.Fetcher[[]model.Transaction]
	goals        *resource.Fetcher[[]model.SavingGoal]
	spinner      spinner.Model
	width        int
	loading      bool
}

// NewDashboard creates the dashboard model.
func NewDashboard(client *api.Client) DashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cli.PrimaryColor)

	return DashboardModel{
		stats: resource.NewFetcher(func(ctx context.Context) ([]model.StatMetric, error) {
			return client.GetDashboard(ctx)
		}),
		flow: resource.NewFetcher(func(ctx context.Context) ([]model.MoneyFlowPoint, error) {
			return client.GetMoneyFlow(ctx, "")
		}),
		slices: resource.NewFetcher(func(ctx context.Context) ([]model.BudgetSlice, error) {
			return client.GetBudgetSummary(ctx)
		}),
		transactions: resource.NewFetcher(func(ctx context.Context) ([]model.Transaction, error) {
			transactions, _, err := client.ListTransactions(ctx, api.ListTransactionsParams{Limit: 5})
			return transactions, err
		}),
		goals: resource.NewFetcher(func(ctx context.Context) ([]model.SavingGoal, error) {
			return client.ListGoals(ctx)
		}),
		spinner: sp,
		loading: true,
		width:   80,
	}
}

// Init starts the spinner and the first fetch.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

// loadCmd runs all five fetchers concurrently. Each records its own
// loading/error/data state; one failure never sinks the other resources.
func (m DashboardModel) loadCmd() tea.Cmd {
	fetches := []func(context.Context){
		m.stats.Fetch,
		m.flow.Fetch,
		m.slices.Fetch,
		m.transactions.Fetch,
		m.goals.Fetch,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		g, gctx := errgroup.WithContext(ctx)
		for _, fetch := range fetches {
			fetch := fetch
			g.Go(func() error {
				fetch(gctx)
				return nil
			})
		}
		_ = g.Wait()

		return dashboardLoadedMsg{}
	}
}

// firstErr returns the first fetcher failure message, empty when the whole
// round succeeded.
func (m DashboardModel) firstErr() string {
	for _, errMsg := range []string{
		m.stats.Err(),
		m.flow.Err(),
		m.slices.Err(),
		m.transactions.Err(),
		m.goals.Err(),
	} {
		if errMsg != "" {
			return errMsg
		}
	}
	return ""
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadCmd())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case dashboardLoadedMsg:
		m.loading = false

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render(cli.ChartIcon + " FityBudget dashboard"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("%s Loading your finances...\n", m.spinner.View()))
		return b.String()
	}

	if errMsg := m.firstErr(); errMsg != "" {
		b.WriteString(cli.FormatError(errMsg))
		b.WriteString(cli.SubtleStyle.Render("  press r to retry"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderStats())
	b.WriteString("\n")

	if flow, ok := m.flow.Data(); ok && len(flow) > 0 {
		b.WriteString(cli.SubtitleStyle.Render("Money flow"))
		b.WriteString("\n")
		b.WriteString(renderFlow(flow))
		b.WriteString("\n")
	}

	if slices, ok := m.slices.Data(); ok && len(slices) > 0 {
		b.WriteString(cli.SubtitleStyle.Render("Budget split"))
		b.WriteString("\n")
		b.WriteString(renderSlices(slices))
		b.WriteString("\n")
	}

	if transactions, ok := m.transactions.Data(); ok && len(transactions) > 0 {
		b.WriteString(cli.SubtitleStyle.Render("Recent transactions"))
		b.WriteString("\n")
		b.WriteString(cli.RenderGroupedTransactions(ledger.GroupByDay(transactions)))
	}

	if goals, ok := m.goals.Data(); ok && len(goals) > 0 {
		b.WriteString(cli.SubtitleStyle.Render("Savings goals"))
		b.WriteString("\n")
		b.WriteString(cli.RenderGoals(goals, time.Now()))
	}

	b.WriteString(cli.SubtleStyle.Render("r refresh • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m DashboardModel) renderStats() string {
	stats, ok := m.stats.Data()
	if !ok || len(stats) == 0 {
		stats = model.DefaultStats()
	}

	cards := make([]string, 0, len(stats))
	for _, s := range stats {
		trend := fmt.Sprintf("▲ %.1f%%", s.Trend)
		style := cli.IncomeStyle
		if s.TrendDirection == "down" {
			trend = fmt.Sprintf("▼ %.1f%%", s.Trend)
			style = cli.ExpenseStyle
		}
		card := fmt.Sprintf("%s\n%s%s\n%s",
			cli.SubtleStyle.Render(s.Label),
			s.Prefix,
			cli.BoldStyle.Render(fmt.Sprintf("%.2f", s.Value)),
			style.Render(trend))
		cards = append(cards, cli.BoxStyle.Render(card))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderFlow(flow []model.MoneyFlowPoint) string {
	var b strings.Builder
	for _, p := range flow {
		b.WriteString(fmt.Sprintf("  %-10s %s  %s\n",
			p.Month,
			cli.IncomeStyle.Render(fmt.Sprintf("+%.0f", p.Income)),
			cli.ExpenseStyle.Render(fmt.Sprintf("-%.0f", p.Expense))))
	}
	return b.String()
}

func renderSlices(slices []model.BudgetSlice) string {
	var b strings.Builder
	for _, s := range slices {
		b.WriteString(fmt.Sprintf("  %-20s %s\n",
			s.Name, cli.ExpenseStyle.Render(fmt.Sprintf("$%.2f", s.Value))))
	}
	return b.String()
}
