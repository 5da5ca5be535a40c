// Package yahoo implements a pricedassets.QuoteProvider on top of Yahoo Finance.
//
// Symbols are Yahoo Finance tickers, as found in
// https://finance.yahoo.com/quote/<symbol>, e.g. "AAPL", "IWDA.AS" or "BTC-USD".
package yahoo

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/pricedassets"
	"github.com/etnz/pricedassets/httpjson"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the base URL of the Yahoo Finance query API.
	DefaultBaseURL = "https://query1.finance.yahoo.com"
	// DefaultUserAgent is sent with each request, Yahoo rejects Go's default one.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
)

// Client is a Yahoo Finance client.
type Client struct {
	baseURL   string
	userAgent string
	http      httpjson.Doer
	logger    *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithHTTPClient sets the HTTP client used to reach the API.
func WithHTTPClient(client httpjson.Doer) Option {
	return func(c *Client) { c.http = client }
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) { c.userAgent = userAgent }
}

// WithLogger sets the logger for HTTP exchanges.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New returns a new Yahoo Finance client.
func New(options ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		http:      http.DefaultClient,
		logger:    zap.NewNop(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

/*
The chart endpoint returns the latest market data in the "meta" object:

	{
	    "chart": {
	        "result": [
	            {
	                "meta": {
	                    "currency": "USD",
	                    "symbol": "AAPL",
	                    "exchangeName": "NMS",
	                    "regularMarketPrice": 227.52,
	                    ...
	                },
	                ...
	            }
	        ],
	        "error": null
	    }
	}

Unknown symbols get a 404 with:

	{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}
*/

const (
	metaPath  = "$.chart.result[0].meta"
	errorPath = "$.chart.error.description"
)

// Quote returns the current market price of symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (pricedassets.Quote, error) {
	q := pricedassets.Quote{Symbol: symbol}
	if symbol == "" {
		return q, errors.New("empty symbol")
	}

	addr := c.baseURL + "/v8/finance/chart/" + url.PathEscape(symbol) + "?" + url.Values{
		"range":    {"1d"},
		"interval": {"1d"},
	}.Encode()
	body, err := httpjson.Do(ctx, c.http, c.logger, httpjson.Request{
		Method: http.MethodGet,
		URL:    addr,
		Header: http.Header{"User-Agent": {c.userAgent}},
	})

	jobj, jsonErr := decode(body)
	if err != nil {
		if jsonErr == nil {
			if desc, ok := get(jobj, errorPath).(string); ok && desc != "" {
				return q, errors.Wrap(err, desc)
			}
		}
		return q, err
	}
	if jsonErr != nil {
		return q, errors.Wrapf(jsonErr, "invalid JSON response for %q", symbol)
	}

	meta, ok := get(jobj, metaPath).(map[string]any)
	if !ok {
		if desc, ok := get(jobj, errorPath).(string); ok && desc != "" {
			return q, errors.Errorf("no quote for %q: %s", symbol, desc)
		}
		return q, errors.Errorf("no quote for %q", symbol)
	}

	if cur, ok := meta["currency"].(string); ok {
		q.Currency = cur
	}
	if raw, ok := meta["regularMarketPrice"]; ok && raw != nil {
		price, err := toDecimal(raw)
		if err != nil {
			return q, errors.Wrapf(err, "invalid regularMarketPrice for %q", symbol)
		}
		q.Price = decimal.NewNullDecimal(price)
	}
	return q, nil
}

// decode parses a JSON document, keeping numbers exact.
func decode(body []byte) (any, error) {
	if len(body) == 0 {
		return nil, errors.New("empty response")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var jobj any
	if err := dec.Decode(&jobj); err != nil {
		return nil, err
	}
	return jobj, nil
}

// get returns the value at path in jobj, or nil.
func get(jobj any, path string) any {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch v := v.(type) {
	case json.Number:
		return decimal.NewFromString(v.String())
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		return decimal.NewFromString(v)
	default:
		return decimal.Zero, errors.Errorf("not a number: %v", v)
	}
}
