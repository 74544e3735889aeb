package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/nyunja/fity-cli/internal/ledger"
	"github.com/nyunja/fity-cli/internal/model"
)

// FormatAmount renders a signed amount with its income/expense color.
func FormatAmount(amount float64) string {
	if amount >= 0 {
		return IncomeStyle.Render(fmt.Sprintf("+$%.2f", amount))
	}
	return ExpenseStyle.Render(fmt.Sprintf("-$%.2f", -amount))
}

// RenderSummary renders the income/expense/net line shown above a
// transaction list.
func RenderSummary(s ledger.Summary) string {
	return fmt.Sprintf("%s  %s  %s",
		IncomeStyle.Render(fmt.Sprintf("In $%.2f", s.Income)),
		ExpenseStyle.Render(fmt.Sprintf("Out $%.2f", s.Expense)),
		BoldStyle.Render(fmt.Sprintf("Net $%.2f", s.Net)))
}

// RenderGroupedTransactions renders day buckets newest-first with their
// per-day subtotals.
func RenderGroupedTransactions(buckets []ledger.Bucket) string {
	if len(buckets) == 0 {
		return SubtleStyle.Render("No transactions found.")
	}

	var b strings.Builder
	for _, bucket := range buckets {
		b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s  (%s)", bucket.Date, FormatAmount(bucket.Total))))
		b.WriteString("\n")
		for _, tx := range bucket.Items {
			notes := ""
			if tx.Notes != "" {
				notes = SubtleStyle.Render("  " + tx.Notes)
			}
			b.WriteString(fmt.Sprintf("  %-12s %-28s %-18s %s%s\n",
				tx.DisplayDate, truncate(tx.Name, 28), truncate(tx.Category, 18), FormatAmount(tx.Amount), notes))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderBudgets renders each analysis with a progress bar and alert state.
func RenderBudgets(analyses []ledger.BudgetAnalysis) string {
	if len(analyses) == 0 {
		return SubtleStyle.Render("No budgets configured.")
	}

	var b strings.Builder
	for _, a := range analyses {
		line := fmt.Sprintf("%-20s $%.2f / $%.2f  %s %3.0f%%",
			truncate(a.Budget.Category, 20), a.Spent, a.Budget.Limit, progressBar(a.Progress), a.Progress)
		switch {
		case a.Overspent:
			line += "  " + ErrorStyle.Render(fmt.Sprintf("overspent by $%.2f", -a.Remaining))
		case a.Warning:
			line += "  " + WarningStyle.Render("approaching limit")
		default:
			line += "  " + SubtleStyle.Render(fmt.Sprintf("$%.2f left", a.Remaining))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderGoals renders each goal with progress and the suggested monthly
// saving.
func RenderGoals(goals []model.SavingGoal, now time.Time) string {
	if len(goals) == 0 {
		return SubtleStyle.Render("No savings goals yet.")
	}

	var b strings.Builder
	for _, g := range goals {
		pct := g.Progress() * 100
		b.WriteString(fmt.Sprintf("%s %-24s $%.2f / $%.2f  %s %3.0f%%  [%s/%s]\n",
			GoalIcon, truncate(g.Name, 24), g.Current, g.Target, progressBar(pct), pct, g.Priority, g.Status))
		if suggestion := ledger.MonthlySuggestion(g, now); suggestion > 0 {
			b.WriteString(SubtleStyle.Render(fmt.Sprintf("   save $%.2f/month to hit %s", suggestion, g.Deadline.Format("2 Jan 2006"))))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderWallets renders the wallet list with balances.
func RenderWallets(wallets []model.WalletAccount) string {
	if len(wallets) == 0 {
		return SubtleStyle.Render("No wallets yet.")
	}

	var b strings.Builder
	for _, w := range wallets {
		def := ""
		if w.IsDefault {
			def = SuccessStyle.Render(" (default)")
		}
		b.WriteString(fmt.Sprintf("%s %-20s %-14s %s %.2f%s\n",
			WalletIcon, truncate(w.Name, 20), w.Type, w.Currency, w.Balance, def))
	}
	return b.String()
}

// progressBar renders a 20-cell bar for a percentage already clamped to
// [0,100].
func progressBar(pct float64) string {
	const width = 20
	filled := int(pct / 100 * width)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// truncate shortens to max runes, never splitting a multibyte character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
