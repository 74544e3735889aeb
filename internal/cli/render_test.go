package cli

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/nyunja/fity-cli/internal/ledger"
	"github.com/nyunja/fity-cli/internal/model"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{
			name:  "short string unchanged",
			input: "Coffee",
			max:   10,
			want:  "Coffee",
		},
		{
			name:  "exact length unchanged",
			input: "Coffee",
			max:   6,
			want:  "Coffee",
		},
		{
			name:  "long string gets ellipsis",
			input: "Monthly subscription",
			max:   10,
			want:  "Monthly s…",
		},
		{
			name:  "cyrillic name cut at a rune boundary",
			input: "Yaposhka кафе на углу",
			max:   12,
			want:  "Yaposhka ка…",
		},
		{
			name:  "max of one",
			input: "abc",
			max:   1,
			want:  "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.max)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, len([]rune(got)), tt.max)
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Contains(t, FormatAmount(12.5), "+$12.50")
	assert.Contains(t, FormatAmount(-12.5), "-$12.50")
	assert.Contains(t, FormatAmount(0), "+$0.00")
}

func TestRenderGroupedTransactionsMultibyteName(t *testing.T) {
	buckets := []ledger.Bucket{
		{
			Date: "25 Jul",
			Items: []model.Transaction{
				{Name: "Оплата за интернет и телевидение дома", Category: "Internet", Amount: -30},
			},
			Total: -30,
		},
	}

	out := RenderGroupedTransactions(buckets)
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "25 Jul")
}

func TestRenderGroupedTransactionsEmpty(t *testing.T) {
	assert.Contains(t, RenderGroupedTransactions(nil), "No transactions found.")
}
