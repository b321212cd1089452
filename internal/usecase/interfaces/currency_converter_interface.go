package interfaces

import "context"

// ICurrencyConverter converts quoted AUD amounts into sen, the smallest
// MYR unit Billplz bills in. Implementations decide where the exchange
// rate comes from (static config, live source, last-resort fallback).
type ICurrencyConverter interface {
	AUDToSen(ctx context.Context, aud float64) (int64, error)
}
