// Package commission prices the brokerage cost of fills. The model in use is
// pluggable so venue-specific fee schedules can be swapped in without touching
// the fill event's shape.
package commission

import (
	"fmt"

	"github.com/shopspring/decimal"

	"backtest-core/pkg/config"
)

// Fill is the execution context a model prices.
type Fill struct {
	Symbol   string
	Exchange string
	Quantity int64
	Price    decimal.Decimal
}

// Notional returns price times quantity.
func (f Fill) Notional() decimal.Decimal {
	return f.Price.Mul(decimal.NewFromInt(f.Quantity))
}

// Model computes the commission charged for a single fill.
type Model interface {
	Charge(f Fill) (decimal.Decimal, error)
}

// Zero charges nothing. It is the default model.
type Zero struct{}

func (Zero) Charge(Fill) (decimal.Decimal, error) { return decimal.Zero, nil }

// FixedPerShare charges Rate per unit of filled quantity.
type FixedPerShare struct {
	Rate decimal.Decimal
}

func (m FixedPerShare) Charge(f Fill) (decimal.Decimal, error) {
	return m.Rate.Mul(decimal.NewFromInt(f.Quantity)), nil
}

// PercentOfNotional charges Rate times notional (e.g. 0.001 = 10 bps).
type PercentOfNotional struct {
	Rate decimal.Decimal
}

func (m PercentOfNotional) Charge(f Fill) (decimal.Decimal, error) {
	return f.Notional().Mul(m.Rate), nil
}

// Func adapts an arbitrary fee function into a Model. Errors from the
// function propagate unchanged to the caller resolving the fill.
type Func func(f Fill) (decimal.Decimal, error)

func (fn Func) Charge(f Fill) (decimal.Decimal, error) { return fn(f) }

// Schedule wraps a model with optional minimum and maximum fee clamps.
type Schedule struct {
	Model  Model
	MinFee *decimal.Decimal
	MaxFee *decimal.Decimal
}

func (s Schedule) Charge(f Fill) (decimal.Decimal, error) {
	fee, err := s.Model.Charge(f)
	if err != nil {
		return decimal.Zero, err
	}
	if s.MinFee != nil && fee.LessThan(*s.MinFee) {
		fee = *s.MinFee
	}
	if s.MaxFee != nil && fee.GreaterThan(*s.MaxFee) {
		fee = *s.MaxFee
	}
	return fee, nil
}

// FromConfig builds the process-wide default model from environment
// configuration.
func FromConfig(cfg *config.Config) (Model, error) {
	var base Model
	switch cfg.CommissionModel {
	case "", "zero":
		base = Zero{}
	case "fixed":
		base = FixedPerShare{Rate: decimal.NewFromFloat(cfg.CommissionRate)}
	case "percent":
		base = PercentOfNotional{Rate: decimal.NewFromFloat(cfg.CommissionRate)}
	default:
		return nil, fmt.Errorf("commission: unknown model %q", cfg.CommissionModel)
	}

	if cfg.CommissionMinFee <= 0 && cfg.CommissionMaxFee <= 0 {
		return base, nil
	}
	s := Schedule{Model: base}
	if cfg.CommissionMinFee > 0 {
		min := decimal.NewFromFloat(cfg.CommissionMinFee)
		s.MinFee = &min
	}
	if cfg.CommissionMaxFee > 0 {
		max := decimal.NewFromFloat(cfg.CommissionMaxFee)
		s.MaxFee = &max
	}
	return s, nil
}
