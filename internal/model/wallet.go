package model

// WalletType is the kind of account backing a wallet.
type WalletType string

const (
	// WalletMobileMoney is a mobile money account (e.g. M-Pesa).
	WalletMobileMoney WalletType = "Mobile Money"
	// WalletBank is a checking account.
	WalletBank WalletType = "Bank"
	// WalletCash is physical cash on hand.
	WalletCash WalletType = "Cash"
	// WalletCredit is a credit line.
	WalletCredit WalletType = "Credit"
	// WalletSavings is a savings account excluded from available balance.
	WalletSavings WalletType = "Savings"
)

// WalletAccount is one balance-holding account.
type WalletAccount struct {
	ID            string
	Name          string
	Type          WalletType
	Currency      string
	Color         string
	AccountNumber string
	LastSynced    string
	Balance       float64
	IsDefault     bool
}
