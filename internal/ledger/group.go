package ledger

import (
	"math"
	"sort"
	"time"

	"github.com/nyunja/fity-cli/internal/model"
)

// dayKeyLayout renders the calendar-day grouping key, e.g. "25 Jul".
const dayKeyLayout = "2 Jan"

// Summary is the income/expense/net aggregate over one transaction set.
type Summary struct {
	Income  float64
	Expense float64
	Net     float64
}

// Summarize totals the signed amounts: income is the sum of positive
// amounts, expense the sum of magnitudes of negative ones.
func Summarize(transactions []model.Transaction) Summary {
	var s Summary
	for _, tx := range transactions {
		if tx.Amount > 0 {
			s.Income += tx.Amount
		}
		if tx.Amount < 0 {
			s.Expense += math.Abs(tx.Amount)
		}
	}
	s.Net = s.Income - s.Expense
	return s
}

// Bucket is one calendar day of transactions with its running signed total.
// Buckets exist only for display; they are never persisted.
type Bucket struct {
	Day   time.Time
	Date  string
	Items []model.Transaction
	Total float64
}

// GroupByDay partitions transactions into day buckets sorted newest-first.
// Every input transaction lands in exactly one bucket and no bucket is
// empty; an empty input yields zero buckets. Transactions keep their input
// order within a bucket.
func GroupByDay(transactions []model.Transaction) []Bucket {
	groups := make(map[string]*Bucket)
	order := make([]string, 0)

	for _, tx := range transactions {
		key := tx.Date.Format(dayKeyLayout)
		b, ok := groups[key]
		if !ok {
			day := time.Date(tx.Date.Year(), tx.Date.Month(), tx.Date.Day(), 0, 0, 0, 0, tx.Date.Location())
			b = &Bucket{Date: key, Day: day}
			groups[key] = b
			order = append(order, key)
		}
		b.Items = append(b.Items, tx)
		b.Total += tx.Amount
	}

	buckets := make([]Bucket, 0, len(groups))
	for _, key := range order {
		buckets = append(buckets, *groups[key])
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Day.After(buckets[j].Day)
	})
	return buckets
}
