// Package httpjson contains http utils to deal with remote JSON services.
package httpjson

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Doer executes HTTP requests, *http.Client is a Doer.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned for responses with a non 2xx status.
type StatusError struct {
	Method     string
	Addr       string // host/path
	Status     string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return "cannot http " + e.Method + " " + e.Addr + ": " + e.Status
}

// Request is a JSON request to send.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   any // marshaled to JSON if not nil
}

// NewRequest builds the *http.Request for r.
func (r Request) NewRequest(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, errors.Wrap(err, "cannot marshal request body")
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid request %s %s", r.Method, r.URL)
	}
	for k, values := range r.Header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// Do sends r and returns the response body.
//
// A response with a non 2xx status is returned as a *StatusError.
func Do(ctx context.Context, client Doer, logger *zap.Logger, r Request) ([]byte, error) {
	req, err := r.NewRequest(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	addr := req.URL.Host + req.URL.Path
	if logger != nil {
		logger.Debug("http", zap.String("method", req.Method), zap.String("addr", addr), zap.String("status", resp.Status))
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, errors.Wrapf(err, "cannot read response of %s %s", req.Method, addr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return buf.Bytes(), &StatusError{
			Method:     req.Method,
			Addr:       addr,
			Status:     resp.Status,
			StatusCode: resp.StatusCode,
			Body:       buf.Bytes(),
		}
	}
	return buf.Bytes(), nil
}

// DoJSON sends r and unmarshals the JSON response body into data.
func DoJSON(ctx context.Context, client Doer, logger *zap.Logger, r Request, data any) error {
	body, err := Do(ctx, client, logger, r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, data); err != nil {
		return errors.Wrapf(err, "invalid JSON response from %s", r.URL)
	}
	return nil
}
