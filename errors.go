package pricedassets

import "fmt"

// FormatError is returned when a text is not a valid asset descriptor.
//
// It is the expected outcome for ledger assets that are not priced assets.
type FormatError struct {
	Text   string // the offending text
	Reason string
	Err    error // underlying cause, if any
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid asset descriptor %q: %s: %v", e.Text, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid asset descriptor %q: %s", e.Text, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// QuoteFetchError is returned when the quote provider failed to price a symbol.
type QuoteFetchError struct {
	Symbol string
	Err    error
}

func (e *QuoteFetchError) Error() string {
	return fmt.Sprintf("cannot fetch quote for %q: %v", e.Symbol, e.Err)
}

func (e *QuoteFetchError) Unwrap() error { return e.Err }

// WriteBackError is returned when the ledger rejected an asset update.
type WriteBackError struct {
	ID  int64
	Err error
}

func (e *WriteBackError) Error() string {
	return fmt.Sprintf("cannot update ledger asset %d: %v", e.ID, e.Err)
}

func (e *WriteBackError) Unwrap() error { return e.Err }

// ListingError is returned when the ledger assets could not be listed.
type ListingError struct {
	Err error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("cannot list ledger assets: %v", e.Err)
}

func (e *ListingError) Unwrap() error { return e.Err }
