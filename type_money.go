package pricedassets

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value, for display.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// NewMoney returns value in currency.
func NewMoney(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: strings.ToUpper(currency)}
}

func (m Money) Currency() string        { return m.cur }
func (m Money) Value() decimal.Decimal { return m.value }

// String returns the money value formatted according to its currency.
//
// Unknown currencies are printed as "<code> <value>" with 2 decimals.
func (m Money) String() string {
	cur := money.GetCurrency(m.cur)
	if cur == nil {
		return strings.TrimSpace(m.cur + " " + m.value.StringFixedBank(2))
	}
	dec := m.value.Shift(int32(cur.Fraction)).RoundBank(0)
	return cur.Formatter().Format(dec.IntPart())
}

// Money returns the asset value, if priced.
func (a Asset) Money() (Money, bool) {
	value, ok := a.Value()
	if !ok {
		return Money{}, false
	}
	return NewMoney(value, a.Currency()), true
}
