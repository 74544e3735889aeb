package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyunja/fity-cli/internal/model"
)

func TestNormalizeTransactionSign(t *testing.T) {
	tests := []struct {
		name string
		raw  rawTransaction
		want float64
	}{
		{
			name: "no type keeps signed amount",
			raw:  rawTransaction{Amount: -42.50},
			want: -42.50,
		},
		{
			name: "no type keeps positive amount",
			raw:  rawTransaction{Amount: 100},
			want: 100,
		},
		{
			name: "income type keeps magnitude",
			raw:  rawTransaction{Type: "income", Amount: 100},
			want: 100,
		},
		{
			name: "expense type negates",
			raw:  rawTransaction{Type: "expense", Amount: 42.50},
			want: -42.50,
		},
		{
			name: "any non-income type negates",
			raw:  rawTransaction{Type: "transfer", Amount: 10},
			want: -10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeTransaction(tt.raw)
			assert.InDelta(t, tt.want, got.Amount, 0.001)
		})
	}
}

func TestNormalizeTransactionFallbacks(t *testing.T) {
	tests := []struct {
		name string
		raw  rawTransaction
		want model.Transaction
	}{
		{
			name: "description fills a missing name",
			raw:  rawTransaction{Description: "Coffee"},
			want: model.Transaction{Name: "Coffee", Status: model.StatusCompleted},
		},
		{
			name: "name wins over description",
			raw:  rawTransaction{Name: "Lunch", Description: "Coffee"},
			want: model.Transaction{Name: "Lunch", Status: model.StatusCompleted},
		},
		{
			name: "wallet id fills a missing method",
			raw:  rawTransaction{WalletID: "w1"},
			want: model.Transaction{Method: "w1", Wallet: "w1", Status: model.StatusCompleted},
		},
		{
			name: "explicit status is kept",
			raw:  rawTransaction{Status: "Pending"},
			want: model.Transaction{Status: model.StatusPending},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeTransaction(tt.raw)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.Method, got.Method)
			assert.Equal(t, tt.want.Status, got.Status)
		})
	}
}

func TestNormalizeTransactionDates(t *testing.T) {
	tests := []struct {
		name        string
		raw         rawTransaction
		wantDisplay string
		wantZero    bool
	}{
		{
			name:        "rfc3339 transaction_date",
			raw:         rawTransaction{TransactionDate: "2025-12-09T14:30:00Z"},
			wantDisplay: "9 Dec 14:30",
		},
		{
			name:        "sql timestamp",
			raw:         rawTransaction{TransactionDate: "2025-12-09 14:30:00"},
			wantDisplay: "9 Dec 14:30",
		},
		{
			name:        "date-only",
			raw:         rawTransaction{TransactionDate: "2025-12-09"},
			wantDisplay: "9 Dec 00:00",
		},
		{
			name:        "date key used when transaction_date is absent",
			raw:         rawTransaction{Date: "2025-07-25T08:00:00Z"},
			wantDisplay: "25 Jul 08:00",
		},
		{
			name:     "unparseable leaves zero date",
			raw:      rawTransaction{TransactionDate: "next tuesday"},
			wantZero: true,
		},
		{
			name:     "absent leaves zero date",
			raw:      rawTransaction{},
			wantZero: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeTransaction(tt.raw)
			if tt.wantZero {
				assert.True(t, got.Date.IsZero())
				assert.Empty(t, got.DisplayDate)
				return
			}
			assert.Equal(t, tt.wantDisplay, got.DisplayDate)
			assert.False(t, got.Date.IsZero())
		})
	}
}

func TestListTransactionsPayloadKeys(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "data key",
			body: `{"success":true,"data":{"data":[{"id":"1","amount":-10}],"pagination":{"page":1,"limit":20}}}`,
		},
		{
			name: "transactions key",
			body: `{"success":true,"data":{"transactions":[{"id":"1","amount":-10}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL, nil)
			transactions, _, err := c.ListTransactions(context.Background(), ListTransactionsParams{})
			require.NoError(t, err)
			require.Len(t, transactions, 1)
			assert.Equal(t, "1", transactions[0].ID)
			assert.InDelta(t, -10, transactions[0].Amount, 0.001)
		})
	}
}

func TestListTransactionsQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"success":true,"data":{"data":[]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, _, err := c.ListTransactions(context.Background(), ListTransactionsParams{
		Page:     2,
		Limit:    50,
		Type:     "expense",
		Category: "Food",
	})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "limit=50")
	assert.Contains(t, gotQuery, "type=expense")
	assert.Contains(t, gotQuery, "category=Food")
}

func TestCreateTransactionResignsExpenseEcho(t *testing.T) {
	// Some revisions echo the created record back unsigned and without the
	// type discriminator.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"transaction":{"id":"9","name":"Taxi","amount":25}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	tx, err := c.CreateTransaction(context.Background(), CreateTransactionRequest{
		Type:   "expense",
		Name:   "Taxi",
		Amount: 25,
	})
	require.NoError(t, err)
	assert.InDelta(t, -25, tx.Amount, 0.001)
}

func TestGetTransactionStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"stats":{"total_income":2000,"total_expense":800,"net_balance":1200,"transaction_count":14}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	stats, err := c.GetTransactionStats(context.Background(), "", "")
	require.NoError(t, err)
	assert.InDelta(t, 2000, stats.TotalIncome, 0.001)
	assert.InDelta(t, 800, stats.TotalExpense, 0.001)
	assert.InDelta(t, 1200, stats.NetBalance, 0.001)
	assert.Equal(t, 14, stats.TransactionCount)
}
