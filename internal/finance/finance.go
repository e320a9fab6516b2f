// Package finance holds the pure time-value-of-money calculators:
// compound-growth projection, fixed-installment (Price) amortization and
// the CLT net-salary computation. No I/O, no state.
package finance

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDurationTooLong rejects compound projections beyond 50 years.
var ErrDurationTooLong = errors.New("duração máxima de 50 anos")

// ErrInvalidPeriods rejects amortizations without at least one period.
var ErrInvalidPeriods = errors.New("número de meses deve ser maior que zero")

// round2 returns v rounded half-up to 2 decimal places. Every monetary
// output goes through here so emitted figures are exact 2-decimal values.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
