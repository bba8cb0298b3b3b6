package event

import (
	"time"

	"github.com/shopspring/decimal"
)

// SignalKind is the trade intent of a signal.
type SignalKind string

const (
	SignalLong  SignalKind = "LONG"
	SignalShort SignalKind = "SHORT"
	SignalExit  SignalKind = "EXIT"
)

func (k SignalKind) IsValid() bool {
	switch k {
	case SignalLong, SignalShort, SignalExit:
		return true
	}
	return false
}

// OrderKind is the routing type of an order.
type OrderKind string

const (
	OrderMarket OrderKind = "MKT"
	OrderLimit  OrderKind = "LMT"
	OrderStop   OrderKind = "STP"
)

func (k OrderKind) IsValid() bool {
	switch k {
	case OrderMarket, OrderLimit, OrderStop:
		return true
	}
	return false
}

// Defaults applied by NewSignal when the strategy leaves the option unset.
const (
	DefaultQuantity   int64 = 10000
	DefaultStrategyID       = 1
)

// SignalEvent is a strategy's trade intent, consumed by the portfolio/risk
// collaborator. Immutable once created.
type SignalEvent struct {
	Symbol       string
	At           time.Time
	Kind         SignalKind
	OrderKind    OrderKind
	LimitPrice   *decimal.Decimal // present iff OrderKind == OrderLimit
	StopPrice    *decimal.Decimal // present iff OrderKind == OrderStop
	StopLoss     *decimal.Decimal
	ProfitTarget *decimal.Decimal
	Quantity     int64
	StrategyID   int
}

func (*SignalEvent) Type() Type { return TypeSignal }

// SignalOptions carries the defaulted parameters of a signal. The zero value
// yields a market order for DefaultQuantity units from strategy
// DefaultStrategyID.
type SignalOptions struct {
	OrderKind    OrderKind // default OrderMarket
	LimitPrice   *decimal.Decimal
	StopPrice    *decimal.Decimal
	StopLoss     *decimal.Decimal
	ProfitTarget *decimal.Decimal
	Quantity     int64 // default DefaultQuantity
	StrategyID   int   // default DefaultStrategyID
}

// NewSignal creates a SignalEvent, validating every field contract.
func NewSignal(symbol string, at time.Time, kind SignalKind, opts SignalOptions) (*SignalEvent, error) {
	if symbol == "" {
		return nil, &ValidationError{Field: "symbol", Reason: "must not be empty"}
	}
	if !kind.IsValid() {
		return nil, &ValidationError{Field: "signal_type", Reason: "must be LONG, SHORT or EXIT"}
	}

	orderKind := opts.OrderKind
	if orderKind == "" {
		orderKind = OrderMarket
	}
	if !orderKind.IsValid() {
		return nil, &ValidationError{Field: "order_type", Reason: "must be MKT, LMT or STP"}
	}
	if err := checkConditionalPrices(orderKind, opts.LimitPrice, opts.StopPrice); err != nil {
		return nil, err
	}

	quantity := opts.Quantity
	if quantity == 0 {
		quantity = DefaultQuantity
	}
	if quantity < 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must be non-negative"}
	}

	strategyID := opts.StrategyID
	if strategyID == 0 {
		strategyID = DefaultStrategyID
	}

	return &SignalEvent{
		Symbol:       symbol,
		At:           at,
		Kind:         kind,
		OrderKind:    orderKind,
		LimitPrice:   cloneDecimal(opts.LimitPrice),
		StopPrice:    cloneDecimal(opts.StopPrice),
		StopLoss:     cloneDecimal(opts.StopLoss),
		ProfitTarget: cloneDecimal(opts.ProfitTarget),
		Quantity:     quantity,
		StrategyID:   strategyID,
	}, nil
}

// checkConditionalPrices enforces that a limit price travels with LMT orders
// only, and a stop price with STP orders only.
func checkConditionalPrices(kind OrderKind, limitPrice, stopPrice *decimal.Decimal) error {
	if kind == OrderLimit && limitPrice == nil {
		return &ValidationError{Field: "limit_price", Reason: "required for LMT orders"}
	}
	if kind != OrderLimit && limitPrice != nil {
		return &ValidationError{Field: "limit_price", Reason: "only valid for LMT orders"}
	}
	if kind == OrderStop && stopPrice == nil {
		return &ValidationError{Field: "stop_price", Reason: "required for STP orders"}
	}
	if kind != OrderStop && stopPrice != nil {
		return &ValidationError{Field: "stop_price", Reason: "only valid for STP orders"}
	}
	return nil
}
