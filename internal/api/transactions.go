package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nyunja/fity-cli/internal/model"
)

// displayDateLayout matches the en-GB day/short-month/hour/minute rendering
// with the comma separator stripped, e.g. "9 Dec 14:30".
const displayDateLayout = "2 Jan 15:04"

// dayKeyLayout is the calendar-day portion of the display date.
const dayKeyLayout = "2 Jan"

// rawTransaction accepts every transaction shape observed across backend
// revisions: some responses carry a signed amount with no type, others an
// unsigned amount plus a type discriminator; the record text arrives as
// either name or description, and the timestamp as transaction_date or date.
type rawTransaction struct {
	ID              string  `json:"id"`
	Type            string  `json:"type,omitempty"`
	Name            string  `json:"name,omitempty"`
	Description     string  `json:"description,omitempty"`
	Method          string  `json:"method,omitempty"`
	Category        string  `json:"category"`
	Status          string  `json:"status,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	WalletID        string  `json:"wallet_id,omitempty"`
	TransactionDate string  `json:"transaction_date,omitempty"`
	Date            string  `json:"date,omitempty"`
	Amount          float64 `json:"amount"`
}

// timestampLayouts are tried in order when parsing raw timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// normalizeTransaction maps one raw record to the canonical model. It is
// total: missing optional fields degrade to defaults, unparseable
// timestamps leave a zero date rather than failing the whole fetch.
func normalizeTransaction(raw rawTransaction) model.Transaction {
	tx := model.Transaction{
		ID:       raw.ID,
		Category: raw.Category,
		Wallet:   raw.WalletID,
		Notes:    raw.Notes,
		Status:   model.StatusCompleted,
	}

	// Signed-amount synthesis: income keeps its magnitude, any other
	// declared type negates it. Records without a type are already signed.
	switch raw.Type {
	case "":
		tx.Amount = raw.Amount
	case "income":
		tx.Amount = raw.Amount
	default:
		tx.Amount = -raw.Amount
	}

	tx.Name = raw.Name
	if tx.Name == "" {
		tx.Name = raw.Description
	}

	tx.Method = raw.Method
	if tx.Method == "" {
		tx.Method = raw.WalletID
	}

	if raw.Status != "" {
		tx.Status = model.TransactionStatus(raw.Status)
	}

	rawDate := raw.TransactionDate
	if rawDate == "" {
		rawDate = raw.Date
	}
	if t, ok := parseTimestamp(rawDate); ok {
		tx.Date = t
		tx.DisplayDate = t.Format(displayDateLayout)
	}

	return tx
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Pagination echoes the backend's page cursor.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ListTransactionsParams are the optional query parameters for the list
// endpoint. Zero values are omitted from the request.
type ListTransactionsParams struct {
	Type      string
	Category  string
	WalletID  string
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}

func (p ListTransactionsParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.WalletID != "" {
		q.Set("wallet_id", p.WalletID)
	}
	if p.StartDate != "" {
		q.Set("start_date", p.StartDate)
	}
	if p.EndDate != "" {
		q.Set("end_date", p.EndDate)
	}
	return q
}

// transactionsPayload accepts both list payload keys seen across backend
// revisions.
type transactionsPayload struct {
	Pagination   *Pagination      `json:"pagination,omitempty"`
	Data         []rawTransaction `json:"data,omitempty"`
	Transactions []rawTransaction `json:"transactions,omitempty"`
}

// ListTransactions fetches one page of normalized transactions.
func (c *Client) ListTransactions(ctx context.Context, params ListTransactionsParams) ([]model.Transaction, *Pagination, error) {
	var payload transactionsPayload
	if err := c.do(ctx, http.MethodGet, "/transactions", params.query(), nil, &payload); err != nil {
		return nil, nil, err
	}

	rows := payload.Data
	if len(rows) == 0 && len(payload.Transactions) > 0 {
		rows = payload.Transactions
	}

	transactions := make([]model.Transaction, 0, len(rows))
	for _, raw := range rows {
		transactions = append(transactions, normalizeTransaction(raw))
	}
	return transactions, payload.Pagination, nil
}

// GetTransaction fetches a single transaction by id.
func (c *Client) GetTransaction(ctx context.Context, id string) (model.Transaction, error) {
	var payload struct {
		Transaction rawTransaction `json:"transaction"`
	}
	if err := c.do(ctx, http.MethodGet, "/transactions/"+id, nil, nil, &payload); err != nil {
		return model.Transaction{}, err
	}
	return normalizeTransaction(payload.Transaction), nil
}

// CreateTransactionRequest is the single wire schema for creation. Amount
// is unsigned; Type carries the income/expense discriminator.
type CreateTransactionRequest struct {
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	Method          string  `json:"method"`
	Category        string  `json:"category"`
	WalletID        string  `json:"wallet_id,omitempty"`
	TransactionDate string  `json:"transaction_date,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	Status          string  `json:"status,omitempty"`
	Amount          float64 `json:"amount"`
}

// CreateTransaction records a new transaction and returns the normalized
// result.
func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (model.Transaction, error) {
	var payload struct {
		Transaction rawTransaction `json:"transaction"`
	}
	if err := c.do(ctx, http.MethodPost, "/transactions", nil, req, &payload); err != nil {
		return model.Transaction{}, err
	}
	tx := normalizeTransaction(payload.Transaction)
	// Created records echo back without the type discriminator in some
	// revisions; re-sign from the request so the caller sees the invariant.
	if req.Type == "expense" && tx.Amount > 0 {
		tx.Amount = -tx.Amount
	}
	return tx, nil
}

// UpdateTransactionRequest carries the mutable fields; nil members are
// omitted.
type UpdateTransactionRequest struct {
	Amount          *float64 `json:"amount,omitempty"`
	Name            *string  `json:"name,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	TransactionDate *string  `json:"transaction_date,omitempty"`
}

// UpdateTransaction applies a partial update.
func (c *Client) UpdateTransaction(ctx context.Context, id string, req UpdateTransactionRequest) (model.Transaction, error) {
	var payload struct {
		Transaction rawTransaction `json:"transaction"`
	}
	if err := c.do(ctx, http.MethodPut, "/transactions/"+id, nil, req, &payload); err != nil {
		return model.Transaction{}, err
	}
	return normalizeTransaction(payload.Transaction), nil
}

// DeleteTransaction removes a transaction. The local copy disappears on the
// caller's next refetch.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/transactions/"+id, nil, nil, nil)
}

// GetTransactionStats returns the backend aggregate for the current month.
func (c *Client) GetTransactionStats(ctx context.Context, startDate, endDate string) (model.TransactionStats, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("start_date", startDate)
	}
	if endDate != "" {
		q.Set("end_date", endDate)
	}

	var payload struct {
		Stats struct {
			TotalIncome      float64 `json:"total_income"`
			TotalExpense     float64 `json:"total_expense"`
			NetBalance       float64 `json:"net_balance"`
			TransactionCount int     `json:"transaction_count"`
		} `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/transactions/stats", q, nil, &payload); err != nil {
		return model.TransactionStats{}, err
	}
	return model.TransactionStats{
		TotalIncome:      payload.Stats.TotalIncome,
		TotalExpense:     payload.Stats.TotalExpense,
		NetBalance:       payload.Stats.NetBalance,
		TransactionCount: payload.Stats.TransactionCount,
	}, nil
}
