package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Signal is a per-bar directive from a strategy, index-aligned with the bars.
type Signal string

const (
	SignalBuy  Signal = "buy"
	SignalSell Signal = "sell"
	SignalHold Signal = "hold"
)

func (s Signal) Valid() bool {
	switch s {
	case SignalBuy, SignalSell, SignalHold:
		return true
	}
	return false
}

// Side of a position.
type Side string

const (
	SideLong  Side = "long"
	SideShort Side = "short"
)

// ExitReason records why a position was closed. The set is closed; the
// simulator never emits anything outside it.
type ExitReason string

const (
	ExitSignal     ExitReason = "signal"
	ExitStopLoss   ExitReason = "stop_loss"
	ExitTakeProfit ExitReason = "take_profit"
	ExitEndOfData  ExitReason = "end_of_data"
)

// Trade is one completed entry/exit round trip. Immutable once recorded.
type Trade struct {
	EntryTime  time.Time       `json:"entry_time"`
	EntryPrice decimal.Decimal `json:"entry_price"`
	ExitTime   time.Time       `json:"exit_time"`
	ExitPrice  decimal.Decimal `json:"exit_price"`
	Side       Side            `json:"side"`
	Quantity   decimal.Decimal `json:"quantity"`
	Commission decimal.Decimal `json:"commission_paid"`
	PnL        decimal.Decimal `json:"pnl"`
	ReturnPct  float64         `json:"return_pct"`
	ExitReason ExitReason      `json:"exit_reason"`
}

// EquityPoint is one sample of total simulated portfolio value.
type EquityPoint struct {
	Timestamp time.Time       `json:"timestamp"`
	Equity    decimal.Decimal `json:"equity_value"`
}

// BacktestResult aggregates one simulation run. Ratio fields are pointers:
// nil means the statistic is undefined for this run (too few samples, zero
// variance, no trades), which is distinct from a value of zero.
type BacktestResult struct {
	StrategyName   string          `json:"strategy_name,omitempty"`
	InitialCapital decimal.Decimal `json:"initial_capital"`
	FinalEquity    decimal.Decimal `json:"final_equity"`
	TotalReturnPct float64         `json:"total_return_pct"`
	SharpeRatio    *float64        `json:"sharpe_ratio,omitempty"`
	SortinoRatio   *float64        `json:"sortino_ratio,omitempty"`
	MaxDrawdownPct float64         `json:"max_drawdown_pct"`
	CalmarRatio    *float64        `json:"calmar_ratio,omitempty"`
	NumTrades      int             `json:"num_trades"`
	WinRatePct     *float64        `json:"win_rate_pct,omitempty"`
	ProfitFactor   *float64        `json:"profit_factor,omitempty"`
	EquityCurve    []EquityPoint   `json:"equity_curve"`
	Trades         []Trade         `json:"trades"`
}

// BarRange is a half-open index range [Start, End) into a bar sequence.
type BarRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Fold is one walk-forward train/test split with its out-of-sample result.
type Fold struct {
	Index      int             `json:"fold"`
	TrainRange BarRange        `json:"train_range"`
	TestRange  BarRange        `json:"test_range"`
	Result     *BacktestResult `json:"fold_result"`
}

// WalkForwardSummary holds cross-fold statistics. Each field is computed
// over the folds where the underlying metric is defined; nil when fewer
// than one (means) or two (standard deviations) such folds exist.
type WalkForwardSummary struct {
	NumFolds       int      `json:"num_folds"`
	MeanSharpe     *float64 `json:"mean_sharpe,omitempty"`
	StdevSharpe    *float64 `json:"stdev_sharpe,omitempty"`
	MeanReturnPct  *float64 `json:"mean_return_pct,omitempty"`
	StdevReturnPct *float64 `json:"stdev_return_pct,omitempty"`
}

// WalkForwardReport is the full output of a walk-forward run.
type WalkForwardReport struct {
	StrategyName string             `json:"strategy_name,omitempty"`
	Folds        []Fold             `json:"folds"`
	Summary      WalkForwardSummary `json:"summary"`
}
