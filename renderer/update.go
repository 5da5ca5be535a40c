// Package renderer renders pas reports as markdown.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/pricedassets"
	md "github.com/nao1215/markdown"
)

// cell escapes s for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// ResultsMarkdown renders the results of an update run.
func ResultsMarkdown(results []pricedassets.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Priced Assets Update")

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		if res.Priced == nil {
			continue // not priced assets are not worth a line
		}
		value := ""
		if m, ok := res.Priced.Money(); ok {
			value = m.String()
		}
		detail := ""
		if res.Err != nil {
			detail = res.Err.Error()
		}
		rows = append(rows, []string{
			cell(res.Priced.Label),
			cell(res.Priced.Symbol),
			res.Outcome.String(),
			value,
			cell(detail),
		})
	}
	if len(rows) == 0 {
		doc.PlainText("No priced asset found in the ledger.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"Asset", "Symbol", "Outcome", "Value", "Detail"},
		Rows:   rows,
	})
	return doc.String()
}

// AssetsMarkdown renders the ledger assets, and whether they are priced assets.
func AssetsMarkdown(assets []pricedassets.LedgerAsset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ledger Assets")
	if len(assets) == 0 {
		doc.PlainText("The ledger has no asset.")
		return doc.String()
	}

	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		priced := "no"
		if p, err := pricedassets.Parse(a.Name); err == nil {
			priced = p.Symbol
		}
		rows = append(rows, []string{
			fmt.Sprint(a.ID),
			cell(a.Name),
			cell(priced),
			pricedassets.NewMoney(a.Balance, a.Currency).String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Priced", "Balance"},
		Rows:   rows,
	})
	return doc.String()
}

// QuotesMarkdown renders market quotes.
func QuotesMarkdown(quotes []pricedassets.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Quotes")
	rows := make([][]string, 0, len(quotes))
	for _, q := range quotes {
		price := "-"
		if q.Price.Valid {
			price = pricedassets.NewMoney(q.Price.Decimal, q.Currency).String()
		}
		rows = append(rows, []string{cell(q.Symbol), q.Currency, price})
	}
	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Currency", "Price"},
		Rows:   rows,
	})
	return doc.String()
}
