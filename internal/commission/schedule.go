package commission

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"backtest-core/pkg/config"
)

// scheduleEntry is one per-exchange fee schedule in YAML.
type scheduleEntry struct {
	Exchange string  `yaml:"exchange"`
	Model    string  `yaml:"model"` // zero, fixed, percent
	Rate     string  `yaml:"rate"`
	MinFee   *string `yaml:"min_fee"`
	MaxFee   *string `yaml:"max_fee"`
}

// scheduleFile is the top-level YAML structure.
type scheduleFile struct {
	Schedules []scheduleEntry `yaml:"schedules"`
}

// Book maps exchanges to their commission schedules. Lookups for unknown
// exchanges fall back to the book's fallback model, or Zero when none is
// set.
type Book struct {
	byExchange map[string]Model
	fallback   Model
}

// LoadSchedules reads per-exchange commission schedules from a YAML file.
func LoadSchedules(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file scheduleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	book := &Book{byExchange: make(map[string]Model, len(file.Schedules))}
	for _, entry := range file.Schedules {
		if entry.Exchange == "" {
			return nil, fmt.Errorf("commission: schedule entry missing exchange")
		}
		model, err := entry.build()
		if err != nil {
			return nil, fmt.Errorf("commission: schedule for %s: %w", entry.Exchange, err)
		}
		book.byExchange[entry.Exchange] = model
	}
	return book, nil
}

// For returns the model configured for an exchange, falling back to the
// book's default when the exchange has no schedule.
func (b *Book) For(exchange string) Model {
	if m, ok := b.byExchange[exchange]; ok {
		return m
	}
	if b.fallback != nil {
		return b.fallback
	}
	return Zero{}
}

// BookFromConfig builds the per-exchange schedule book for the process.
// When the configuration names a schedule file its entries take precedence;
// every other exchange gets the configured default model.
func BookFromConfig(cfg *config.Config) (*Book, error) {
	fallback, err := FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.CommissionScheduleFile == "" {
		return &Book{fallback: fallback}, nil
	}
	book, err := LoadSchedules(cfg.CommissionScheduleFile)
	if err != nil {
		return nil, err
	}
	book.fallback = fallback
	return book, nil
}

func (e scheduleEntry) build() (Model, error) {
	var base Model
	switch e.Model {
	case "", "zero":
		base = Zero{}
	case "fixed", "percent":
		rate, err := decimal.NewFromString(e.Rate)
		if err != nil {
			return nil, fmt.Errorf("bad rate %q: %w", e.Rate, err)
		}
		if e.Model == "fixed" {
			base = FixedPerShare{Rate: rate}
		} else {
			base = PercentOfNotional{Rate: rate}
		}
	default:
		return nil, fmt.Errorf("unknown model %q", e.Model)
	}

	if e.MinFee == nil && e.MaxFee == nil {
		return base, nil
	}
	s := Schedule{Model: base}
	if e.MinFee != nil {
		min, err := decimal.NewFromString(*e.MinFee)
		if err != nil {
			return nil, fmt.Errorf("bad min_fee %q: %w", *e.MinFee, err)
		}
		s.MinFee = &min
	}
	if e.MaxFee != nil {
		max, err := decimal.NewFromString(*e.MaxFee)
		if err != nil {
			return nil, fmt.Errorf("bad max_fee %q: %w", *e.MaxFee, err)
		}
		s.MaxFee = &max
	}
	return s, nil
}
