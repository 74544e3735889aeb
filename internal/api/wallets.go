package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nyunja/fity-cli/internal/model"
)

type rawWallet struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Currency      string  `json:"currency,omitempty"`
	Color         string  `json:"color,omitempty"`
	AccountNumber string  `json:"account_number,omitempty"`
	LastSynced    string  `json:"last_synced,omitempty"`
	Balance       float64 `json:"balance"`
	IsDefault     bool    `json:"is_default"`
}

func normalizeWallet(raw rawWallet) model.WalletAccount {
	w := model.WalletAccount{
		ID:            raw.ID,
		Name:          raw.Name,
		Type:          model.WalletType(raw.Type),
		Balance:       raw.Balance,
		Currency:      raw.Currency,
		Color:         raw.Color,
		AccountNumber: raw.AccountNumber,
		IsDefault:     raw.IsDefault,
	}
	if t, ok := parseTimestamp(raw.LastSynced); ok {
		w.LastSynced = t.Format(displayDateLayout)
	}
	return w
}

// ListWallets fetches all wallet accounts.
func (c *Client) ListWallets(ctx context.Context) ([]model.WalletAccount, error) {
	var payload struct {
		Wallets []rawWallet `json:"wallets"`
	}
	if err := c.do(ctx, http.MethodGet, "/wallets", nil, nil, &payload); err != nil {
		return nil, err
	}
	wallets := make([]model.WalletAccount, 0, len(payload.Wallets))
	for _, raw := range payload.Wallets {
		wallets = append(wallets, normalizeWallet(raw))
	}
	return wallets, nil
}

// GetWallet fetches a single wallet by id.
func (c *Client) GetWallet(ctx context.Context, id string) (model.WalletAccount, error) {
	var payload struct {
		Wallet rawWallet `json:"wallet"`
	}
	if err := c.do(ctx, http.MethodGet, "/wallets/"+id, nil, nil, &payload); err != nil {
		return model.WalletAccount{}, err
	}
	return normalizeWallet(payload.Wallet), nil
}

// CreateWalletRequest is the creation schema.
type CreateWalletRequest struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Currency      string  `json:"currency"`
	Color         string  `json:"color"`
	AccountNumber string  `json:"account_number,omitempty"`
	Balance       float64 `json:"balance"`
}

// CreateWallet adds a wallet account.
func (c *Client) CreateWallet(ctx context.Context, req CreateWalletRequest) (model.WalletAccount, error) {
	var payload struct {
		Wallet rawWallet `json:"wallet"`
	}
	if err := c.do(ctx, http.MethodPost, "/wallets", nil, req, &payload); err != nil {
		return model.WalletAccount{}, err
	}
	return normalizeWallet(payload.Wallet), nil
}

// UpdateWalletRequest carries the mutable wallet fields.
type UpdateWalletRequest struct {
	Name      *string  `json:"name,omitempty"`
	Balance   *float64 `json:"balance,omitempty"`
	IsDefault *bool    `json:"is_default,omitempty"`
}

// UpdateWallet applies a partial update.
func (c *Client) UpdateWallet(ctx context.Context, id string, req UpdateWalletRequest) (model.WalletAccount, error) {
	var payload struct {
		Wallet rawWallet `json:"wallet"`
	}
	if err := c.do(ctx, http.MethodPut, "/wallets/"+id, nil, req, &payload); err != nil {
		return model.WalletAccount{}, err
	}
	return normalizeWallet(payload.Wallet), nil
}

// SetDefaultWallet marks one wallet as the default funding source.
func (c *Client) SetDefaultWallet(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/wallets/"+id+"/set-default", nil, nil, nil)
}

// DeleteWallet removes a wallet.
func (c *Client) DeleteWallet(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/wallets/"+id, nil, nil, nil)
}

// Transfer moves amount between wallets as two independent balance updates:
// a debit on the source, then a credit on the destination. The backend
// offers no atomic transfer endpoint, so a failed credit leaves the debit
// in place; callers should tell the user to refetch and reconcile.
func (c *Client) Transfer(ctx context.Context, from, to model.WalletAccount, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("transfer amount must be positive, got %.2f", amount)
	}
	if from.Balance < amount {
		return fmt.Errorf("insufficient funds in %s: have %.2f, need %.2f", from.Name, from.Balance, amount)
	}

	debited := from.Balance - amount
	if _, err := c.UpdateWallet(ctx, from.ID, UpdateWalletRequest{Balance: &debited}); err != nil {
		return fmt.Errorf("debit of %s failed: %w", from.Name, err)
	}

	credited := to.Balance + amount
	if _, err := c.UpdateWallet(ctx, to.ID, UpdateWalletRequest{Balance: &credited}); err != nil {
		// No compensating action: the source has already been debited.
		return fmt.Errorf("credit of %s failed after debiting %s: %w", to.Name, from.Name, err)
	}

	return nil
}
