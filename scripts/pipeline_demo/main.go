package main

import (
	"log"
	"time"

	"github.com/shopspring/decimal"

	"backtest-core/internal/commission"
	"backtest-core/internal/event"
	"backtest-core/pkg/config"
)

// pipeline_demo walks one trade through the event vocabulary: a market bar
// triggers a LONG limit signal, the signal is sized into an order, the order
// is filled twice (entry and exit), and the order's lifecycle ledger ends up
// with a realized profit.
//
// Usage:
//   go run ./scripts/pipeline_demo
//
// Commission behaviour follows the environment (COMMISSION_MODEL etc.), so
//   COMMISSION_MODEL=percent COMMISSION_RATE=0.001 go run ./scripts/pipeline_demo
// prices the fills at 10 bps of notional, and COMMISSION_SCHEDULE_FILE points
// at a YAML file of per-exchange schedules that override the default model.

func main() {
	log.Println("=== pipeline demo starting ===")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config error: %v", err)
	}
	book, err := commission.BookFromConfig(cfg)
	if err != nil {
		log.Fatalf("commission config error: %v", err)
	}
	model := book.For(cfg.DefaultExchange)

	bus := event.NewBus()
	fills, unsub := bus.Subscribe(event.TypeFill, 4)
	defer unsub()

	log.Println("[MARKET] new bar available")
	bus.Publish(event.NewMarket())

	limit := decimal.RequireFromString("100.50")
	sig, err := event.NewSignal("GOOG", time.Now(), event.SignalLong, event.SignalOptions{
		OrderKind:  event.OrderLimit,
		LimitPrice: &limit,
		Quantity:   cfg.DefaultQuantity,
		StrategyID: cfg.DefaultStrategyID,
	})
	if err != nil {
		log.Fatalf("signal error: %v", err)
	}
	log.Printf("[SIGNAL] %s %s %s limit=%s suggested_qty=%d", sig.Kind, sig.Symbol, sig.OrderKind, sig.LimitPrice, sig.Quantity)

	// The portfolio sizes the order independently of the signal's hint.
	ord, err := event.NewOrder(sig, 50, event.DirectionBuy)
	if err != nil {
		log.Fatalf("order error: %v", err)
	}
	log.Printf("[ORDER] id=%s %s %s qty=%d", ord.ID, ord.Direction, ord.Symbol, ord.Quantity)

	entryPrice := decimal.RequireFromString("100.25")
	entryFill, err := event.NewFill(ord, time.Now(), entryPrice, ord.Symbol, cfg.DefaultExchange, ord.Quantity, ord.Direction, event.FillOptions{Model: model})
	if err != nil {
		log.Fatalf("entry fill error: %v", err)
	}
	bus.Publish(entryFill)
	if err := ord.RecordEntry(entryFill.Price, entryFill.TimeIndex); err != nil {
		log.Fatalf("record entry error: %v", err)
	}

	exitPrice := decimal.RequireFromString("105.00")
	exitFill, err := event.NewFill(ord, time.Now(), exitPrice, ord.Symbol, cfg.DefaultExchange, ord.Quantity, event.DirectionSell, event.FillOptions{Model: model})
	if err != nil {
		log.Fatalf("exit fill error: %v", err)
	}
	bus.Publish(exitFill)
	if err := ord.RecordExit(exitFill.Price, exitFill.TimeIndex); err != nil {
		log.Fatalf("record exit error: %v", err)
	}

drain:
	for {
		select {
		case ev := <-fills:
			f := ev.(*event.FillEvent)
			log.Printf("[FILL] id=%s %s %d %s @ %s commission=%s", f.ID, f.Direction, f.Quantity, f.Symbol, f.Price, f.Commission)
		default:
			break drain
		}
	}

	out := ord.Outcome()
	log.Printf("[LEDGER] entry=%s exit=%s profit=%s", out.EntryPrice, out.ExitPrice, out.Profit)

	log.Println("=== pipeline demo finished ===")
}
