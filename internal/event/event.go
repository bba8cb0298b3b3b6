// Package event defines the message vocabulary of the backtest pipeline: a
// market update becomes a strategy signal, a signal becomes an order, and an
// order becomes one or more fills. Constructors are the only way to obtain an
// instance; every constructor validates its field contracts before returning.
package event

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type is the immutable discriminant identifying an event variant. Consumers
// must dispatch on it (or type-switch over the concrete variants), never on
// runtime reflection.
type Type string

const (
	TypeMarket Type = "MARKET"
	TypeAction Type = "ACTION"
	TypeSignal Type = "SIGNAL"
	TypeOrder  Type = "ORDER"
	TypeFill   Type = "FILL"
)

// Event is implemented by every variant in the taxonomy. The set of variants
// is closed: MarketEvent, ActionEvent, SignalEvent, OrderEvent, FillEvent.
type Event interface {
	Type() Type
}

// MarketEvent signals that a new bar or tick is available. It carries no
// payload; the market data itself travels out of band.
type MarketEvent struct{}

func (MarketEvent) Type() Type { return TypeMarket }

// NewMarket creates a MarketEvent.
func NewMarket() MarketEvent { return MarketEvent{} }

// ActionKind names an out-of-band control instruction. The set is open so
// deployments can add venue-specific actions.
type ActionKind string

// ActionCloseAll closes all unfilled and open orders, typically before the
// end of a session or a weekend to avoid overnight exposure.
const ActionCloseAll ActionKind = "CLOSE_ALL"

// ActionEvent is an out-of-band control instruction consumed directly by the
// portfolio or execution collaborators. It participates in no lifecycle chain.
type ActionEvent struct {
	Symbol string
	Action ActionKind
}

func (ActionEvent) Type() Type { return TypeAction }

// NewAction creates an ActionEvent.
func NewAction(symbol string, action ActionKind) (*ActionEvent, error) {
	if symbol == "" {
		return nil, &ValidationError{Field: "symbol", Reason: "must not be empty"}
	}
	if action == "" {
		return nil, &ValidationError{Field: "action_type", Reason: "must not be empty"}
	}
	return &ActionEvent{Symbol: symbol, Action: action}, nil
}

// cloneDecimal copies an optional price so the event owns its value.
func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
