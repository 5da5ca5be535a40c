// Package lunchmoney implements a pricedassets.Ledger on top of the Lunch Money API.
//
// See https://lunchmoney.dev/ for the API documentation. Access tokens are
// created in the Lunch Money developer settings.
package lunchmoney

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/etnz/pricedassets"
	"github.com/etnz/pricedassets/httpjson"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultBaseURL is the base URL of the Lunch Money v1 API.
const DefaultBaseURL = "https://dev.lunchmoney.app/v1"

// Client is a Lunch Money API client.
type Client struct {
	token   string
	baseURL string
	http    httpjson.Doer
	logger  *zap.Logger
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

// WithLogger sets the logger for HTTP exchanges.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New returns a client authenticated with the access token.
func New(token string, options ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: DefaultBaseURL,
		http:    http.DefaultClient,
		logger:  zap.NewNop(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// asset is an asset as returned by the API.
type asset struct {
	ID          int64           `json:"id"`
	TypeName    string          `json:"type_name"`
	Name        string          `json:"name"`
	DisplayName *string         `json:"display_name"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	Institution *string         `json:"institution_name"`
}

// assetUpdate is the body of an asset update. Omitted fields are left unchanged.
type assetUpdate struct {
	Name     string  `json:"name"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency,omitempty"`
}

// apiError is the error payload that the API may send, even with a 200 status.
type apiError struct {
	Error  json.RawMessage `json:"error"`
	Errors json.RawMessage `json:"errors"`
}

// message returns the error message in e, or "" if there is none.
func (e apiError) message() string {
	var msgs []string
	for _, raw := range []json.RawMessage{e.Error, e.Errors} {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}
		var s string
		if json.Unmarshal(raw, &s) == nil {
			if s != "" {
				msgs = append(msgs, s)
			}
			continue
		}
		var list []string
		if json.Unmarshal(raw, &list) == nil {
			msgs = append(msgs, list...)
			continue
		}
		msgs = append(msgs, string(raw))
	}
	return strings.Join(msgs, "; ")
}

func (c *Client) request(method, path string, body any) httpjson.Request {
	return httpjson.Request{
		Method: method,
		URL:    c.baseURL + path,
		Header: http.Header{"Authorization": {"Bearer " + c.token}},
		Body:   body,
	}
}

// do sends the request and decodes the response into data, turning API
// errors into Go errors.
func (c *Client) do(ctx context.Context, r httpjson.Request, data any) error {
	body, err := httpjson.Do(ctx, c.http, c.logger, r)
	var apiErr apiError
	if len(body) > 0 && json.Unmarshal(body, &apiErr) == nil {
		if msg := apiErr.message(); msg != "" {
			if err != nil {
				return errors.Wrap(err, msg)
			}
			return errors.New(msg)
		}
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, data); err != nil {
		return errors.Wrapf(err, "invalid JSON response from %s %s", r.Method, r.URL)
	}
	return nil
}

// ListAssets returns all the manually-managed assets.
func (c *Client) ListAssets(ctx context.Context) ([]pricedassets.LedgerAsset, error) {
	var resp struct {
		Assets []asset `json:"assets"`
	}
	if err := c.do(ctx, c.request(http.MethodGet, "/assets", nil), &resp); err != nil {
		return nil, errors.Wrap(err, "cannot list lunch money assets")
	}
	assets := make([]pricedassets.LedgerAsset, 0, len(resp.Assets))
	for _, a := range resp.Assets {
		assets = append(assets, pricedassets.LedgerAsset{
			ID:       a.ID,
			Name:     a.Name,
			Currency: a.Currency,
			Balance:  a.Balance,
		})
	}
	return assets, nil
}

// UpdateAsset updates the name, balance and currency of an asset.
//
// The currency is left unchanged if update.Currency is empty.
func (c *Client) UpdateAsset(ctx context.Context, update pricedassets.AssetUpdate) error {
	body := assetUpdate{
		Name:     update.Name,
		Balance:  update.Balance,
		Currency: strings.ToLower(update.Currency),
	}
	path := "/assets/" + strconv.FormatInt(update.ID, 10)
	var resp asset
	if err := c.do(ctx, c.request(http.MethodPut, path, body), &resp); err != nil {
		return errors.Wrapf(err, "cannot update lunch money asset %d", update.ID)
	}
	return nil
}
