// Package pricedassets keeps externally priced assets of a personal-finance
// ledger in sync with live market quotes.
//
// A priced asset is a ledger asset whose name follows a compact descriptor
// format:
//
//	<label> [<symbol>]: <quantity>
//	<label> [<symbol>]: <quantity> @ <currency> <price>
//
// e.g. "Apple [AAPL]: 10 @ USD 100.00". The descriptor carries everything
// needed to value the asset: the ticker symbol to look up, and the quantity
// held. The price and currency are rewritten on every update.
//
// The core functionalities include:
//   - Descriptor codec: Parse decodes a ledger asset name into an Asset, and
//     Asset.String encodes it back, within the ledger's name length limit.
//   - Update pipeline: an Updater parses each ledger asset, fetches its quote
//     from a QuoteProvider, and writes the new name, currency and balance back
//     to the Ledger. Every asset is processed independently: one failure never
//     prevents the others from being updated.
//
// This package serves as the foundational logic for the `pas` command-line
// tool. Concrete Ledger and QuoteProvider implementations live in the
// lunchmoney and yahoo packages.
package pricedassets
