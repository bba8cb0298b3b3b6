package event

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"backtest-core/internal/ident"
)

// Direction is the side of an order or fill.
type Direction string

const (
	DirectionBuy  Direction = "BUY"
	DirectionSell Direction = "SELL"
)

func (d Direction) IsValid() bool {
	return d == DirectionBuy || d == DirectionSell
}

// Sign returns +1 for BUY and -1 for SELL.
func (d Direction) Sign() int64 {
	if d == DirectionSell {
		return -1
	}
	return 1
}

// OrderEvent is a sizing- and routing-ready instruction sent for execution.
// Its intent region (symbol, order kind, prices, direction, quantity) is
// fixed at construction, copied from exactly one SignalEvent. The outcome
// region (entry, exit, profit) starts absent and is written once per field by
// the execution/portfolio collaborators through RecordEntry and RecordExit.
type OrderEvent struct {
	ID           ident.ID
	Symbol       string
	OrderKind    OrderKind
	Direction    Direction
	Quantity     int64
	StopLoss     *decimal.Decimal
	ProfitTarget *decimal.Decimal
	LimitPrice   *decimal.Decimal
	StopPrice    *decimal.Decimal

	// mu serializes writes to the outcome region. Each order carries its
	// own lock so concurrent execution reports for different orders never
	// contend.
	mu         sync.Mutex
	entryPrice *decimal.Decimal
	exitPrice  *decimal.Decimal
	entryTime  *time.Time
	exitTime   *time.Time
	profit     *decimal.Decimal
}

func (*OrderEvent) Type() Type { return TypeOrder }

// NewOrder creates an OrderEvent from a signal. Quantity and direction are
// the portfolio/risk collaborator's decision and may differ from the
// signal's suggested size; everything else is copied verbatim from the
// signal.
func NewOrder(signal *SignalEvent, quantity int64, direction Direction) (*OrderEvent, error) {
	if signal == nil {
		return nil, &ValidationError{Field: "signal", Reason: "must not be nil"}
	}
	if !direction.IsValid() {
		return nil, &ValidationError{Field: "direction", Reason: "must be BUY or SELL"}
	}
	if quantity < 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must be non-negative"}
	}
	// The signal's fields are exported, so re-check the price contract here
	// rather than trusting that the signal came through NewSignal.
	if err := checkConditionalPrices(signal.OrderKind, signal.LimitPrice, signal.StopPrice); err != nil {
		return nil, err
	}

	return &OrderEvent{
		ID:           ident.New(),
		Symbol:       signal.Symbol,
		OrderKind:    signal.OrderKind,
		Direction:    direction,
		Quantity:     quantity,
		StopLoss:     cloneDecimal(signal.StopLoss),
		ProfitTarget: cloneDecimal(signal.ProfitTarget),
		LimitPrice:   cloneDecimal(signal.LimitPrice),
		StopPrice:    cloneDecimal(signal.StopPrice),
	}, nil
}

// RecordEntry stamps the order's entry price and time from its first
// matching fill. It succeeds exactly once; a second call fails with
// AlreadySetError.
func (o *OrderEvent) RecordEntry(price decimal.Decimal, at time.Time) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.entryPrice != nil {
		return &AlreadySetError{Field: "entry_price"}
	}
	o.entryPrice = &price
	o.entryTime = &at
	return nil
}

// RecordExit stamps the order's exit price and time from its closing fill,
// then computes and stores profit as (exit - entry) * quantity, signed
// positive for BUY. Exit is only valid after entry has been recorded, and
// succeeds exactly once.
func (o *OrderEvent) RecordExit(price decimal.Decimal, at time.Time) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.entryPrice == nil {
		return &InvalidStateError{Op: "record_exit", Reason: "entry not recorded"}
	}
	if o.exitPrice != nil {
		return &AlreadySetError{Field: "exit_price"}
	}
	o.exitPrice = &price
	o.exitTime = &at

	profit := price.Sub(*o.entryPrice).
		Mul(decimal.NewFromInt(o.Quantity)).
		Mul(decimal.NewFromInt(o.Direction.Sign()))
	o.profit = &profit
	return nil
}

// Outcome is a point-in-time copy of an order's lifecycle region. Absent
// fields are nil.
type Outcome struct {
	EntryPrice *decimal.Decimal
	ExitPrice  *decimal.Decimal
	EntryTime  *time.Time
	ExitTime   *time.Time
	Profit     *decimal.Decimal
}

// Outcome returns a copy of the lifecycle region. Mutating the copy has no
// effect on the order.
func (o *OrderEvent) Outcome() Outcome {
	o.mu.Lock()
	defer o.mu.Unlock()

	return Outcome{
		EntryPrice: cloneDecimal(o.entryPrice),
		ExitPrice:  cloneDecimal(o.exitPrice),
		EntryTime:  cloneTime(o.entryTime),
		ExitTime:   cloneTime(o.exitTime),
		Profit:     cloneDecimal(o.profit),
	}
}
