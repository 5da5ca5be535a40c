package pricedassets

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -package=pricedassets -destination=mock_provider_test.go -source=provider.go

// LedgerAsset is an asset as listed by the Ledger.
type LedgerAsset struct {
	ID       int64
	Name     string
	Currency string // lowercase, possibly empty
	Balance  decimal.Decimal
}

// AssetUpdate holds the new values of a ledger asset.
type AssetUpdate struct {
	ID       int64
	Name     string
	Currency string  // lowercase, empty to leave unset
	Balance  float64 // the ledger only stores floating point balances
}

// Ledger is the personal-finance ledger holding the assets.
type Ledger interface {
	// ListAssets returns all the assets of the ledger.
	ListAssets(ctx context.Context) ([]LedgerAsset, error)
	// UpdateAsset overwrites the name, currency and balance of an asset.
	UpdateAsset(ctx context.Context, update AssetUpdate) error
}

// Quote is the current market price of a symbol.
//
// Both fields are best effort: a provider may return no currency, or no price.
type Quote struct {
	Symbol   string
	Currency string
	Price    decimal.NullDecimal
}

// QuoteProvider returns current market quotes.
type QuoteProvider interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}
