package event

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// Every variant reports its own discriminant, and the set is dispatchable
// with an exhaustive switch.
func TestDiscriminants(t *testing.T) {
	sig, err := NewSignal("GOOG", time.Now(), SignalLong, SignalOptions{})
	if err != nil {
		t.Fatalf("NewSignal returned error: %v", err)
	}
	ord, err := NewOrder(sig, 10, DirectionBuy)
	if err != nil {
		t.Fatalf("NewOrder returned error: %v", err)
	}
	act, err := NewAction("GOOG", ActionCloseAll)
	if err != nil {
		t.Fatalf("NewAction returned error: %v", err)
	}
	fil, err := NewFill(ord, time.Now(), decimal.RequireFromString("100.25"), "GOOG", "ARCA", 10, DirectionBuy, FillOptions{})
	if err != nil {
		t.Fatalf("NewFill returned error: %v", err)
	}

	events := []struct {
		ev   Event
		want Type
	}{
		{NewMarket(), TypeMarket},
		{act, TypeAction},
		{sig, TypeSignal},
		{ord, TypeOrder},
		{fil, TypeFill},
	}

	for _, tt := range events {
		if got := tt.ev.Type(); got != tt.want {
			t.Fatalf("Type()=%s, expected %s", got, tt.want)
		}

		switch tt.ev.(type) {
		case MarketEvent, *ActionEvent, *SignalEvent, *OrderEvent, *FillEvent:
		default:
			t.Fatalf("variant %T is outside the closed taxonomy", tt.ev)
		}
	}
}

func TestNewActionValidation(t *testing.T) {
	if _, err := NewAction("", ActionCloseAll); err == nil {
		t.Fatalf("expected error for empty symbol")
	}
	var verr *ValidationError
	if _, err := NewAction("GOOG", ActionKind("")); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty action, got %v", err)
	} else if verr.Field != "action_type" {
		t.Fatalf("Field=%s, expected action_type", verr.Field)
	}
}
