package pricedassets

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Parse decodes an asset from its string format.
//
// The whole text must match:
//
//	descriptor := label "[" symbol "]:" quantity [ "@" currency price ]
//
// where currency is exactly 3 uppercase letters, and quantity and price are
// made of digits and '.'. Whitespace is allowed before "[", after "]:",
// around "@" and between currency and price.
//
// It returns a *FormatError if text is not an asset descriptor.
func Parse(text string) (Asset, error) {
	p := parser{text: text, src: []rune(text)}
	return p.descriptor()
}

// parser is a recursive descent parser of the asset string format.
type parser struct {
	text string
	src  []rune
	pos  int
}

func (p *parser) fail(reason string) error {
	return &FormatError{Text: p.text, Reason: reason}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) skipSpaces() {
	for !p.eof() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

// descriptor parses the whole text.
func (p *parser) descriptor() (Asset, error) {
	open := -1
	for i, r := range p.src {
		if r == '[' {
			open = i
			break
		}
	}
	if open < 0 {
		return Asset{}, p.fail(`missing "["`)
	}
	label := strings.TrimRightFunc(string(p.src[:open]), unicode.IsSpace)
	if strings.ContainsRune(label, '\n') {
		return Asset{}, p.fail("label spans multiple lines")
	}

	// The symbol ends at the first "]:" that is followed by a valid tail.
	var err error = p.fail(`missing "]:"`)
	for i := open + 1; i+1 < len(p.src); i++ {
		if p.src[i] == '\n' {
			break
		}
		if p.src[i] != ']' || p.src[i+1] != ':' {
			continue
		}
		p.pos = i + 2
		asset, tailErr := p.tail()
		if tailErr == nil {
			asset.Label = label
			asset.Symbol = string(p.src[open+1 : i])
			return asset, nil
		}
		err = tailErr
	}
	return Asset{}, err
}

// tail parses everything after "]:".
func (p *parser) tail() (Asset, error) {
	var a Asset

	p.skipSpaces()
	quantity, err := p.number("quantity")
	if err != nil {
		return a, err
	}
	a.Quantity = quantity
	if p.eof() {
		return a, nil
	}

	p.skipSpaces()
	if p.eof() || p.src[p.pos] != '@' {
		return a, p.fail("unexpected characters after quantity")
	}
	p.pos++
	p.skipSpaces()

	currency, err := p.currency()
	if err != nil {
		return a, err
	}
	p.skipSpaces()
	amount, err := p.number("price")
	if err != nil {
		return a, err
	}
	if !p.eof() {
		return a, p.fail("unexpected characters after price")
	}
	a.Price = &Price{Currency: currency, Amount: amount}
	return a, nil
}

// currency parses exactly 3 uppercase ASCII letters.
func (p *parser) currency() (string, error) {
	if p.pos+3 > len(p.src) {
		return "", p.fail("currency must be 3 uppercase letters")
	}
	code := p.src[p.pos : p.pos+3]
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", p.fail("currency must be 3 uppercase letters")
		}
	}
	p.pos += 3
	return string(code), nil
}

// number parses the longest run of digits and '.' as an exact decimal.
func (p *parser) number(field string) (decimal.Decimal, error) {
	start := p.pos
	digits, dots := 0, 0
	for ; !p.eof(); p.pos++ {
		r := p.src[p.pos]
		if r == '.' {
			dots++
		} else if r >= '0' && r <= '9' {
			digits++
		} else {
			break
		}
	}
	if p.pos == start {
		return decimal.Zero, p.fail("missing " + field)
	}
	numeral := string(p.src[start:p.pos])
	if digits == 0 || dots > 1 {
		return decimal.Zero, p.fail("invalid " + field + " " + numeral)
	}
	d, err := decimal.NewFromString(numeral)
	if err != nil {
		return decimal.Zero, &FormatError{Text: p.text, Reason: "invalid " + field + " " + numeral, Err: err}
	}
	return d, nil
}
