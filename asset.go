package pricedassets

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MaxLength is the maximum number of characters of a ledger asset name.
const MaxLength = 45

// Asset is a priced asset, as decoded from a ledger asset name.
//
// The canonical string format is:
//
//	"<label> [<symbol>]: <quantity>"
//	"<label> [<symbol>]: <quantity> @ <currency> <price>"
type Asset struct {
	Label    string
	Symbol   string // as known by the quote provider
	Quantity decimal.Decimal
	Price    *Price // nil until a price is loaded
}

// Price is the unit price of an Asset.
type Price struct {
	Currency string // 3 letters code, possibly empty
	Amount   decimal.Decimal
}

// Value returns the asset value, quantity times price.
//
// It returns false if no price is known.
func (a Asset) Value() (decimal.Decimal, bool) {
	if a.Price == nil {
		return decimal.Zero, false
	}
	return a.Quantity.Mul(a.Price.Amount), true
}

// Currency returns the price currency, or "" if unknown.
func (a Asset) Currency() string {
	if a.Price == nil {
		return ""
	}
	return a.Price.Currency
}

// WithQuote returns a copy of the asset priced with q.
//
// A quote without price prices the asset at zero.
func (a Asset) WithQuote(q Quote) Asset {
	amount := decimal.Zero
	if q.Price.Valid {
		amount = q.Price.Decimal
	}
	a.Price = &Price{Currency: q.Currency, Amount: amount}
	return a
}

// Update returns the ledger update for asset id, to reflect this asset.
func (a Asset) Update(id int64) AssetUpdate {
	value, _ := a.Value()
	return AssetUpdate{
		ID:       id,
		Name:     a.String(),
		Currency: strings.ToLower(a.Currency()),
		Balance:  value.InexactFloat64(),
	}
}

// metadata returns the part of the string format that follows the label.
func (a Asset) metadata() string {
	var b strings.Builder
	fmt.Fprintf(&b, " [%s]: %s", a.Symbol, formatQuantity(a.Quantity))
	if a.Price != nil {
		b.WriteString(" @")
		if a.Price.Currency != "" {
			b.WriteString(" " + a.Price.Currency)
		}
		b.WriteString(" " + a.Price.Amount.StringFixedBank(2))
	}
	return b.String()
}

// String returns the canonical string format of the asset.
//
// The label is truncated so that the result fits in MaxLength characters. The
// metadata is never truncated, so if the metadata alone is longer than
// MaxLength, the label is dropped and the result is longer than MaxLength.
func (a Asset) String() string {
	metadata := a.metadata()
	room := MaxLength - utf8.RuneCountInString(metadata)
	return truncate(a.Label, room) + metadata
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// formatQuantity prints q with the number of decimals it was parsed with.
func formatQuantity(q decimal.Decimal) string {
	if q.Exponent() < 0 {
		return q.StringFixed(-q.Exponent())
	}
	return q.String()
}
