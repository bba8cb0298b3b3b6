package event

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNewSignalDefaults(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	sig, err := NewSignal("GOOG", at, SignalLong, SignalOptions{})
	if err != nil {
		t.Fatalf("NewSignal returned error: %v", err)
	}

	if sig.Type() != TypeSignal {
		t.Fatalf("Type()=%s, expected SIGNAL", sig.Type())
	}
	if sig.OrderKind != OrderMarket {
		t.Fatalf("OrderKind=%s, expected MKT", sig.OrderKind)
	}
	if sig.Quantity != DefaultQuantity {
		t.Fatalf("Quantity=%d, expected %d", sig.Quantity, DefaultQuantity)
	}
	if sig.StrategyID != DefaultStrategyID {
		t.Fatalf("StrategyID=%d, expected %d", sig.StrategyID, DefaultStrategyID)
	}
	if !sig.At.Equal(at) {
		t.Fatalf("At=%v, expected %v", sig.At, at)
	}
	if sig.LimitPrice != nil || sig.StopPrice != nil || sig.StopLoss != nil || sig.ProfitTarget != nil {
		t.Fatalf("optional prices should be absent on a default signal")
	}
}

func TestNewSignalFieldsMatchInputs(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	sig, err := NewSignal("AAPL", at, SignalShort, SignalOptions{
		OrderKind:    OrderLimit,
		LimitPrice:   dec("189.20"),
		StopLoss:     dec("195.00"),
		ProfitTarget: dec("180.00"),
		Quantity:     250,
		StrategyID:   7,
	})
	if err != nil {
		t.Fatalf("NewSignal returned error: %v", err)
	}

	if sig.Symbol != "AAPL" || sig.Kind != SignalShort || sig.OrderKind != OrderLimit {
		t.Fatalf("unexpected signal: %+v", sig)
	}
	if !sig.LimitPrice.Equal(decimal.RequireFromString("189.20")) {
		t.Fatalf("LimitPrice=%s, expected 189.20", sig.LimitPrice)
	}
	if !sig.StopLoss.Equal(decimal.RequireFromString("195.00")) {
		t.Fatalf("StopLoss=%s, expected 195.00", sig.StopLoss)
	}
	if !sig.ProfitTarget.Equal(decimal.RequireFromString("180.00")) {
		t.Fatalf("ProfitTarget=%s, expected 180.00", sig.ProfitTarget)
	}
	if sig.Quantity != 250 || sig.StrategyID != 7 {
		t.Fatalf("Quantity=%d StrategyID=%d, expected 250/7", sig.Quantity, sig.StrategyID)
	}
}

// Limit and stop prices must travel with their order kind and no other.
func TestNewSignalConditionalPrices(t *testing.T) {
	tests := []struct {
		name      string
		opts      SignalOptions
		wantField string
	}{
		{
			name:      "LMT without limit price",
			opts:      SignalOptions{OrderKind: OrderLimit},
			wantField: "limit_price",
		},
		{
			name:      "STP without stop price",
			opts:      SignalOptions{OrderKind: OrderStop},
			wantField: "stop_price",
		},
		{
			name:      "MKT with limit price",
			opts:      SignalOptions{OrderKind: OrderMarket, LimitPrice: dec("10")},
			wantField: "limit_price",
		},
		{
			name:      "MKT with stop price",
			opts:      SignalOptions{StopPrice: dec("10")},
			wantField: "stop_price",
		},
		{
			name:      "LMT with stop price",
			opts:      SignalOptions{OrderKind: OrderLimit, LimitPrice: dec("10"), StopPrice: dec("9")},
			wantField: "stop_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSignal("GOOG", time.Now(), SignalLong, tt.opts)
			if err == nil {
				t.Fatalf("expected ValidationError, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if verr.Field != tt.wantField {
				t.Fatalf("Field=%s, expected %s", verr.Field, tt.wantField)
			}
		})
	}
}

func TestNewSignalRejectsBadInput(t *testing.T) {
	tests := []struct {
		name      string
		symbol    string
		kind      SignalKind
		opts      SignalOptions
		wantField string
	}{
		{"empty symbol", "", SignalLong, SignalOptions{}, "symbol"},
		{"unknown signal kind", "GOOG", SignalKind("HOLD"), SignalOptions{}, "signal_type"},
		{"unknown order kind", "GOOG", SignalLong, SignalOptions{OrderKind: OrderKind("FOK")}, "order_type"},
		{"negative quantity", "GOOG", SignalLong, SignalOptions{Quantity: -1}, "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSignal(tt.symbol, time.Now(), tt.kind, tt.opts)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if verr.Field != tt.wantField {
				t.Fatalf("Field=%s, expected %s", verr.Field, tt.wantField)
			}
		})
	}
}

// A signal must own its optional prices; mutating the caller's copy after
// construction must not leak into the event.
func TestNewSignalCopiesOptionalPrices(t *testing.T) {
	limit := decimal.RequireFromString("100.50")
	sig, err := NewSignal("GOOG", time.Now(), SignalLong, SignalOptions{
		OrderKind:  OrderLimit,
		LimitPrice: &limit,
	})
	if err != nil {
		t.Fatalf("NewSignal returned error: %v", err)
	}

	limit = decimal.RequireFromString("999")
	if !sig.LimitPrice.Equal(decimal.RequireFromString("100.50")) {
		t.Fatalf("LimitPrice changed after construction: %s", sig.LimitPrice)
	}
}
