package event

import (
	"time"

	"github.com/shopspring/decimal"

	"backtest-core/internal/commission"
	"backtest-core/internal/ident"
)

// FillEvent is a confirmed (partial or full) execution of an order, as
// reported by the execution/broker collaborator. The Order reference is a
// non-owning association; the order itself is usually retained by the
// portfolio ledger and reachable by ID. Commission is resolved exactly once
// at construction and immutable thereafter.
type FillEvent struct {
	ID         ident.ID
	Order      *OrderEvent
	TimeIndex  time.Time
	Price      decimal.Decimal
	Symbol     string
	Exchange   string
	Quantity   int64
	Direction  Direction
	Commission decimal.Decimal
}

func (*FillEvent) Type() Type { return TypeFill }

// FillOptions controls commission resolution. An explicit Commission (as
// reported by the brokerage) wins unchanged; otherwise Model is invoked,
// and a nil Model means the zero-commission default.
type FillOptions struct {
	Commission *decimal.Decimal
	Model      commission.Model
}

// NewFill creates a FillEvent, resolving its commission.
func NewFill(order *OrderEvent, timeIndex time.Time, price decimal.Decimal, symbol, exchange string, quantity int64, direction Direction, opts FillOptions) (*FillEvent, error) {
	if order == nil {
		return nil, &ValidationError{Field: "order", Reason: "must not be nil"}
	}
	if symbol == "" {
		return nil, &ValidationError{Field: "symbol", Reason: "must not be empty"}
	}
	if !direction.IsValid() {
		return nil, &ValidationError{Field: "direction", Reason: "must be BUY or SELL"}
	}
	if quantity < 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must be non-negative"}
	}
	if price.IsNegative() {
		return nil, &ValidationError{Field: "price", Reason: "must be non-negative"}
	}

	var fee decimal.Decimal
	if opts.Commission != nil {
		fee = *opts.Commission
	} else {
		model := opts.Model
		if model == nil {
			model = commission.Zero{}
		}
		var err error
		fee, err = model.Charge(commission.Fill{
			Symbol:   symbol,
			Exchange: exchange,
			Quantity: quantity,
			Price:    price,
		})
		if err != nil {
			// A custom model's failure belongs to the caller, unchanged.
			return nil, err
		}
	}

	return &FillEvent{
		ID:         ident.New(),
		Order:      order,
		TimeIndex:  timeIndex,
		Price:      price,
		Symbol:     symbol,
		Exchange:   exchange,
		Quantity:   quantity,
		Direction:  direction,
		Commission: fee,
	}, nil
}
