package pricedassets

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsset_String(t *testing.T) {
	tests := []struct {
		name  string
		asset Asset
		want  string
	}{
		{
			name:  "without price",
			asset: Asset{Label: "Apple", Symbol: "AAPL", Quantity: decimal.NewFromInt(10)},
			want:  "Apple [AAPL]: 10",
		},
		{
			name: "with price",
			asset: Asset{Label: "Apple", Symbol: "AAPL", Quantity: decimal.NewFromInt(10),
				Price: &Price{Currency: "USD", Amount: decimal.NewFromInt(100)}},
			want: "Apple [AAPL]: 10 @ USD 100.00",
		},
		{
			name: "price without currency",
			asset: Asset{Label: "Apple", Symbol: "AAPL", Quantity: decimal.NewFromInt(10),
				Price: &Price{Amount: decimal.RequireFromString("99.5")}},
			want: "Apple [AAPL]: 10 @ 99.50",
		},
		{
			name: "price rounded half to even",
			asset: Asset{Label: "X", Symbol: "X", Quantity: decimal.NewFromInt(1),
				Price: &Price{Currency: "USD", Amount: decimal.RequireFromString("2.125")}},
			want: "X [X]: 1 @ USD 2.12",
		},
		{
			name:  "quantity keeps its decimals",
			asset: Asset{Label: "Fund", Symbol: "F", Quantity: decimal.RequireFromString("10.50")},
			want:  "Fund [F]: 10.50",
		},
		{
			name:  "zero quantity",
			asset: Asset{Label: "Fund", Symbol: "F"},
			want:  "Fund [F]: 0",
		},
		{
			name: "long label is truncated",
			asset: Asset{Label: "Apple Incorporated Common Stock Class A", Symbol: "AAPL", Quantity: decimal.NewFromInt(10),
				Price: &Price{Currency: "USD", Amount: decimal.NewFromInt(100)}},
			want: "Apple Incorporated Co [AAPL]: 10 @ USD 100.00",
		},
		{
			name: "unicode label is truncated by characters",
			asset: Asset{Label: "Société Générale Société Générale Société", Symbol: "GLE.PA", Quantity: decimal.NewFromInt(3),
				Price: &Price{Currency: "EUR", Amount: decimal.NewFromInt(25)}},
			want: "Société Générale Soci [GLE.PA]: 3 @ EUR 25.00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.asset.String()
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), MaxLength)
		})
	}
}

func TestAsset_String_MetadataNeverTruncated(t *testing.T) {
	a := Asset{
		Label:    "Label",
		Symbol:   "A-VERY-LONG-SYMBOL-THAT-DOES-NOT-FIT.EXCHANGE",
		Quantity: decimal.NewFromInt(10),
		Price:    &Price{Currency: "USD", Amount: decimal.NewFromInt(100)},
	}
	want := " [A-VERY-LONG-SYMBOL-THAT-DOES-NOT-FIT.EXCHANGE]: 10 @ USD 100.00"
	assert.Equal(t, want, a.String(), "label must be dropped, metadata kept verbatim")
}

func TestAsset_String_TruncatesOnlyTheLabel(t *testing.T) {
	metadata := " [AAPL]: 10 @ USD 100.00"
	for n := 0; n < 40; n++ {
		a := Asset{
			Label:    strings.Repeat("x", n),
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(10),
			Price:    &Price{Currency: "USD", Amount: decimal.NewFromInt(100)},
		}
		got := a.String()
		require.True(t, strings.HasSuffix(got, metadata), "%q has no metadata suffix", got)
		require.LessOrEqual(t, len(got), MaxLength)
		require.Equal(t, min(n, MaxLength-len(metadata)), len(got)-len(metadata))
	}
}

func TestAsset_RoundTrip(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Apple [AAPL]: 10", "Apple [AAPL]: 10"},
		{"Apple [AAPL]: 10 @ USD 100.00", "Apple [AAPL]: 10 @ USD 100.00"},
		{"World ETF [IWDA.AS]: 12.345 @ EUR 98.76", "World ETF [IWDA.AS]: 12.345 @ EUR 98.76"},
		// metadata always starts with a space, even after an empty label.
		{"[BTC-USD]: 0.5 @ USD 60000.00", " [BTC-USD]: 0.5 @ USD 60000.00"},
	}
	for _, tt := range tests {
		a, err := Parse(tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.want, a.String())

		b, err := Parse(a.String())
		require.NoError(t, err)
		assert.Equal(t, a.Label, b.Label)
		assert.Equal(t, a.Symbol, b.Symbol)
		assert.True(t, a.Quantity.Equal(b.Quantity))
		if a.Price == nil {
			assert.Nil(t, b.Price)
			continue
		}
		require.NotNil(t, b.Price)
		assert.Equal(t, a.Price.Currency, b.Price.Currency)
		assert.True(t, a.Price.Amount.Equal(b.Price.Amount))
	}
}

func TestAsset_WithQuote(t *testing.T) {
	a := Asset{Label: "Apple", Symbol: "AAPL", Quantity: decimal.NewFromInt(10)}

	priced := a.WithQuote(Quote{Symbol: "AAPL", Currency: "USD", Price: decimal.NewNullDecimal(decimal.RequireFromString("227.52"))})
	assert.Nil(t, a.Price, "WithQuote must not modify the receiver")
	value, ok := priced.Value()
	require.True(t, ok)
	assert.Equal(t, "2275.20", value.StringFixed(2))
	assert.Equal(t, "Apple [AAPL]: 10 @ USD 227.52", priced.String())

	update := priced.Update(42)
	assert.Equal(t, AssetUpdate{ID: 42, Name: "Apple [AAPL]: 10 @ USD 227.52", Currency: "usd", Balance: 2275.2}, update)
}

func TestAsset_WithQuote_MissingFields(t *testing.T) {
	// zero quantity and missing price, value is zero, not undefined.
	a := Asset{Label: "Nothing", Symbol: "NONE"}.WithQuote(Quote{Symbol: "NONE"})

	value, ok := a.Value()
	require.True(t, ok)
	assert.True(t, value.IsZero())
	assert.Equal(t, "", a.Currency())
	assert.Equal(t, "Nothing [NONE]: 0 @ 0.00", a.String())
	assert.Equal(t, AssetUpdate{ID: 1, Name: "Nothing [NONE]: 0 @ 0.00"}, a.Update(1))
}
