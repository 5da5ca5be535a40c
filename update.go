package pricedassets

import (
	"context"

	"go.uber.org/zap"
)

// This file contains the pipeline that updates ledger assets with latest prices.

// Outcome tells how far the update of a single asset went.
type Outcome int

const (
	Skipped     Outcome = iota // not a priced asset
	QuoteFailed                // the price could not be loaded
	WriteFailed                // the ledger update failed
	Updated
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case QuoteFailed:
		return "quote failed"
	case WriteFailed:
		return "write failed"
	case Updated:
		return "updated"
	default:
		return "unknown"
	}
}

// Result is the result of the update of a single ledger asset.
type Result struct {
	Asset   LedgerAsset // as listed in the ledger
	Priced  *Asset      // nil if the asset is not a priced asset
	Outcome Outcome
	// Err is a *FormatError, a *QuoteFetchError or a *WriteBackError, or nil
	// when the asset was updated.
	Err error
}

// Updater updates priced assets of a Ledger with quotes from a QuoteProvider.
type Updater struct {
	Ledger Ledger
	Quotes QuoteProvider
	Logger *zap.Logger
	// DryRun skips the ledger writes.
	DryRun bool
}

func (u *Updater) logger() *zap.Logger {
	if u.Logger == nil {
		return zap.NewNop()
	}
	return u.Logger
}

// UpdateAsset updates a single ledger asset.
//
// The asset name is parsed, its quote is fetched and its new name, currency and
// balance are written back to the ledger. The first failing stage stops the
// update, and is reported in the Result. The Result is logged before being
// returned.
func (u *Updater) UpdateAsset(ctx context.Context, la LedgerAsset) Result {
	res := u.updateAsset(ctx, la)
	u.log(res)
	return res
}

func (u *Updater) updateAsset(ctx context.Context, la LedgerAsset) Result {
	res := Result{Asset: la}

	asset, err := Parse(la.Name)
	if err != nil {
		res.Outcome, res.Err = Skipped, err
		return res
	}
	res.Priced = &asset

	quote, err := u.Quotes.Quote(ctx, asset.Symbol)
	if err != nil {
		res.Outcome, res.Err = QuoteFailed, &QuoteFetchError{Symbol: asset.Symbol, Err: err}
		return res
	}
	asset = asset.WithQuote(quote)

	if !u.DryRun {
		if err := u.Ledger.UpdateAsset(ctx, asset.Update(la.ID)); err != nil {
			res.Outcome, res.Err = WriteFailed, &WriteBackError{ID: la.ID, Err: err}
			return res
		}
	}
	res.Outcome = Updated
	return res
}

// UpdateAll updates every asset of the ledger, one after the other.
//
// A failure on one asset never stops the update of the others. It returns a
// *ListingError if the ledger assets cannot be listed, in which case no asset
// is updated.
func (u *Updater) UpdateAll(ctx context.Context) ([]Result, error) {
	assets, err := u.Ledger.ListAssets(ctx)
	if err != nil {
		return nil, &ListingError{Err: err}
	}

	results := make([]Result, 0, len(assets))
	for _, la := range assets {
		res := u.UpdateAsset(ctx, la)
		results = append(results, res)
	}
	return results, nil
}

// log reports a Result according to its error kind.
func (u *Updater) log(res Result) {
	log := u.logger()
	switch err := res.Err.(type) {
	case nil:
		if u.DryRun {
			update := res.Priced.Update(res.Asset.ID)
			log.Info("dry run, ledger not updated",
				zap.Int64("id", update.ID),
				zap.String("name", update.Name),
				zap.String("currency", update.Currency),
				zap.Float64("balance", update.Balance),
			)
			return
		}
		value, _ := res.Priced.Value()
		log.Info("asset updated",
			zap.Stringer("asset", res.Priced),
			zap.String("currency", res.Priced.Currency()),
			zap.String("value", value.StringFixedBank(2)),
		)
	case *FormatError:
		log.Debug("not a priced asset", zap.String("name", res.Asset.Name))
	case *QuoteFetchError:
		log.Error("cannot load price",
			zap.String("label", res.Priced.Label),
			zap.String("symbol", err.Symbol),
			zap.Error(err.Err),
		)
	case *WriteBackError:
		log.Error("cannot update asset",
			zap.Int64("id", err.ID),
			zap.String("label", res.Priced.Label),
			zap.String("symbol", res.Priced.Symbol),
			zap.Error(err.Err),
		)
	default:
		log.Error("unexpected update failure", zap.String("name", res.Asset.Name), zap.Error(err))
	}
}
