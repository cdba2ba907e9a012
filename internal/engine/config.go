package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Config controls one simulation run. StopLossPct and TakeProfitPct are
// fractions of the entry price; zero disables the corresponding exit.
type Config struct {
	InitialCapital decimal.Decimal
	CommissionRate float64
	SlippageRate   float64
	StopLossPct    float64
	TakeProfitPct  float64
	BarsPerYear    float64
}

func DefaultConfig() Config {
	return Config{
		InitialCapital: decimal.NewFromInt(100000),
		CommissionRate: 0.001,  // 0.1% fee
		SlippageRate:   0.0005, // 0.05% slippage
		BarsPerYear:    252,
	}
}

func (c Config) Validate() error {
	if !c.InitialCapital.IsPositive() {
		return fmt.Errorf("%w: initial capital must be positive, got %s", ErrInvalidConfig, c.InitialCapital)
	}
	if c.CommissionRate < 0 || c.CommissionRate >= 1 {
		return fmt.Errorf("%w: commission rate must be in [0,1), got %v", ErrInvalidConfig, c.CommissionRate)
	}
	if c.SlippageRate < 0 || c.SlippageRate >= 1 {
		return fmt.Errorf("%w: slippage rate must be in [0,1), got %v", ErrInvalidConfig, c.SlippageRate)
	}
	if c.StopLossPct != 0 && (c.StopLossPct <= 0 || c.StopLossPct >= 1) {
		return fmt.Errorf("%w: stop loss pct must be in (0,1), got %v", ErrInvalidConfig, c.StopLossPct)
	}
	if c.TakeProfitPct != 0 && (c.TakeProfitPct <= 0 || c.TakeProfitPct >= 1) {
		return fmt.Errorf("%w: take profit pct must be in (0,1), got %v", ErrInvalidConfig, c.TakeProfitPct)
	}
	if c.BarsPerYear <= 0 {
		return fmt.Errorf("%w: bars per year must be positive, got %v", ErrInvalidConfig, c.BarsPerYear)
	}
	return nil
}
