package payments

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"agency_billing/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// fallbackAUDToMYRRate is the last-resort AUD→MYR rate. Stale by nature;
// it is only consulted when the converter was explicitly told to allow it.
var fallbackAUDToMYRRate = decimal.RequireFromString("3.10")

var ErrNoExchangeRate = errors.New("no AUD to MYR exchange rate available")

// RateSource supplies the current AUD→MYR exchange rate.
type RateSource interface {
	AUDToMYR(ctx context.Context) (decimal.Decimal, error)
}

// StaticRateSource returns a fixed rate, typically configured via env.
type StaticRateSource struct {
	Rate decimal.Decimal
}

func (s StaticRateSource) AUDToMYR(ctx context.Context) (decimal.Decimal, error) {
	if s.Rate.IsZero() {
		return decimal.Decimal{}, ErrNoExchangeRate
	}
	return s.Rate, nil
}

// Converter turns quoted AUD amounts into sen for Billplz. All
// arithmetic is decimal so the sen rounding is exact rather than
// float-dependent; rounding is half-away-from-zero.
type Converter struct {
	Source RateSource
	// AllowFallback permits the hardcoded rate when the source is
	// missing or fails. Off unless explicitly enabled.
	AllowFallback bool
}

var _ interfaces.ICurrencyConverter = Converter{}

// ConverterFromEnv builds a Converter from EXCHANGE_RATE_AUD_MYR and
// BILLPLZ_ALLOW_FALLBACK_RATE.
func ConverterFromEnv() Converter {
	c := Converter{}
	if raw := strings.TrimSpace(os.Getenv("EXCHANGE_RATE_AUD_MYR")); raw != "" {
		if rate, err := decimal.NewFromString(raw); err == nil && rate.IsPositive() {
			c.Source = StaticRateSource{Rate: rate}
		}
	}
	if allow, _ := strconv.ParseBool(os.Getenv("BILLPLZ_ALLOW_FALLBACK_RATE")); allow {
		c.AllowFallback = true
	}
	return c
}

func (c Converter) rate(ctx context.Context) (decimal.Decimal, error) {
	if c.Source != nil {
		rate, err := c.Source.AUDToMYR(ctx)
		if err == nil && rate.IsPositive() {
			return rate, nil
		}
		if !c.AllowFallback {
			if err != nil {
				return decimal.Decimal{}, err
			}
			return decimal.Decimal{}, ErrNoExchangeRate
		}
	}
	if c.AllowFallback {
		return fallbackAUDToMYRRate, nil
	}
	return decimal.Decimal{}, ErrNoExchangeRate
}

// AUDToMYR converts an AUD amount using the configured rate source.
func (c Converter) AUDToMYR(ctx context.Context, aud decimal.Decimal) (decimal.Decimal, error) {
	rate, err := c.rate(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return aud.Mul(rate), nil
}

// AUDToSen converts an AUD amount to sen: AUD→MYR unrounded, then a
// single rounding step at the sen boundary.
func (c Converter) AUDToSen(ctx context.Context, aud float64) (int64, error) {
	myr, err := c.AUDToMYR(ctx, decimal.NewFromFloat(aud))
	if err != nil {
		return 0, err
	}
	return MYRToSen(myr), nil
}

// MYRToSen converts MYR to sen: multiply by 100, round half away from
// zero to the nearest integer.
func MYRToSen(myr decimal.Decimal) int64 {
	return myr.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// ConvertMYRToSen is the float-input convenience form of MYRToSen.
// The float is first lifted to its shortest decimal representation, so
// ConvertMYRToSen(10.005) is exactly 1000.5 sen before rounding → 1001.
func ConvertMYRToSen(myr float64) int64 {
	return MYRToSen(decimal.NewFromFloat(myr))
}
