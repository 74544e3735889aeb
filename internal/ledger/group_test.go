package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyunja/fity-cli/internal/model"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		transactions []model.Transaction
		want         Summary
	}{
		{
			name: "mixed amounts",
			transactions: []model.Transaction{
				{Amount: 3000},
				{Amount: -120.50},
				{Amount: -15.99},
				{Amount: 40},
			},
			want: Summary{Income: 3040, Expense: 136.49, Net: 2903.51},
		},
		{
			name:         "empty input",
			transactions: nil,
			want:         Summary{},
		},
		{
			name:         "zero amount counts as neither",
			transactions: []model.Transaction{{Amount: 0}},
			want:         Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.transactions)
			assert.InDelta(t, tt.want.Income, got.Income, 0.001)
			assert.InDelta(t, tt.want.Expense, got.Expense, 0.001)
			assert.InDelta(t, tt.want.Net, got.Net, 0.001)
		})
	}
}

func TestGroupByDay(t *testing.T) {
	transactions := []model.Transaction{
		{ID: "1", Date: day(t, "2025-07-25T09:00:00Z"), Amount: -10},
		{ID: "2", Date: day(t, "2025-07-24T12:00:00Z"), Amount: 100},
		{ID: "3", Date: day(t, "2025-07-25T18:30:00Z"), Amount: -5},
	}

	buckets := GroupByDay(transactions)
	require.Len(t, buckets, 2)

	// Newest day first.
	assert.Equal(t, "25 Jul", buckets[0].Date)
	assert.Equal(t, "24 Jul", buckets[1].Date)

	// Same-day transactions keep input order and sum into the day total.
	require.Len(t, buckets[0].Items, 2)
	assert.Equal(t, "1", buckets[0].Items[0].ID)
	assert.Equal(t, "3", buckets[0].Items[1].ID)
	assert.InDelta(t, -15, buckets[0].Total, 0.001)

	require.Len(t, buckets[1].Items, 1)
	assert.InDelta(t, 100, buckets[1].Total, 0.001)
}

func TestGroupByDayPartition(t *testing.T) {
	transactions := []model.Transaction{
		{ID: "1", Date: day(t, "2025-01-01T00:00:00Z"), Amount: 1},
		{ID: "2", Date: day(t, "2025-03-15T10:00:00Z"), Amount: 2},
		{ID: "3", Date: day(t, "2025-03-15T11:00:00Z"), Amount: 3},
		{ID: "4", Date: day(t, "2025-06-30T23:59:00Z"), Amount: 4},
	}

	buckets := GroupByDay(transactions)

	total := 0
	for _, b := range buckets {
		assert.NotEmpty(t, b.Items, "no bucket may be empty")
		total += len(b.Items)
	}
	assert.Equal(t, len(transactions), total, "every transaction lands in exactly one bucket")
}

func TestGroupByDayEmptyInput(t *testing.T) {
	assert.Empty(t, GroupByDay(nil))
	assert.Empty(t, GroupByDay([]model.Transaction{}))
}
