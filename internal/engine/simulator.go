package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/learn2codblog/AITradingLab-sub000/internal/model"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Simulator replays bars against index-aligned signals and produces an
// equity curve, a trade ledger and performance statistics. It holds only
// configuration: all run state lives inside Run, so one Simulator may
// serve concurrent runs.
type Simulator struct {
	cfg        Config
	feeRate    decimal.Decimal
	slippage   decimal.Decimal
	stopLoss   decimal.Decimal
	takeProfit decimal.Decimal
}

func NewSimulator(cfg Config) *Simulator {
	return &Simulator{
		cfg:        cfg,
		feeRate:    decimal.NewFromFloat(cfg.CommissionRate),
		slippage:   decimal.NewFromFloat(cfg.SlippageRate),
		stopLoss:   decimal.NewFromFloat(cfg.StopLossPct),
		takeProfit: decimal.NewFromFloat(cfg.TakeProfitPct),
	}
}

// Run executes one simulation. Inputs are validated before any state is
// touched, and no bar beyond the one being processed is ever read. The run
// always ends flat: a position still open after the last bar is force-closed
// at that bar's close. Identical inputs produce identical results.
func (s *Simulator) Run(ctx context.Context, bars []model.Bar, signals []model.Signal) (*model.BacktestResult, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateInputs(bars, signals); err != nil {
		return nil, err
	}

	run := &simRun{
		sim:    s,
		cash:   s.cfg.InitialCapital,
		ledger: NewLedger(),
		curve:  make([]model.EquityPoint, 0, len(bars)),
	}

	for i, bar := range bars {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		run.step(bar, signals[i])
	}

	if run.pos.state == positionOpen {
		last := bars[len(bars)-1]
		run.closePosition(last.Timestamp, last.Close, model.ExitEndOfData)
		run.curve[len(run.curve)-1].Equity = run.cash
	}

	trades := run.ledger.All()
	m := ComputeMetrics(run.curve, trades, s.cfg.InitialCapital, s.cfg.BarsPerYear)

	return &model.BacktestResult{
		InitialCapital: s.cfg.InitialCapital,
		FinalEquity:    run.cash,
		TotalReturnPct: m.TotalReturnPct,
		SharpeRatio:    m.SharpeRatio,
		SortinoRatio:   m.SortinoRatio,
		MaxDrawdownPct: m.MaxDrawdownPct,
		CalmarRatio:    m.CalmarRatio,
		NumTrades:      len(trades),
		WinRatePct:     m.WinRatePct,
		ProfitFactor:   m.ProfitFactor,
		EquityCurve:    run.curve,
		Trades:         trades,
	}, nil
}

// simRun carries the mutable state of a single run.
type simRun struct {
	sim    *Simulator
	cash   decimal.Decimal
	pos    position
	ledger *Ledger
	curve  []model.EquityPoint
}

func (r *simRun) step(bar model.Bar, sig model.Signal) {
	// Exits settle before entries; at most one exit per bar.
	if r.pos.state == positionOpen {
		if price, reason, ok := r.exitTrigger(bar, sig); ok {
			r.closePosition(bar.Timestamp, price, reason)
		}
	}
	if r.pos.state == positionFlat && sig == model.SignalBuy {
		r.openPosition(bar)
	}

	equity := r.cash
	if r.pos.state == positionOpen {
		equity = r.cash.Add(r.pos.quantity.Mul(bar.Close))
	}
	r.curve = append(r.curve, model.EquityPoint{Timestamp: bar.Timestamp, Equity: equity})
}

// exitTrigger decides whether the open position leaves on this bar.
// Stop-loss is evaluated before take-profit when a bar's range spans both
// levels; a sell signal only fires when neither protective level did.
func (r *simRun) exitTrigger(bar model.Bar, sig model.Signal) (decimal.Decimal, model.ExitReason, bool) {
	if r.sim.stopLoss.IsPositive() {
		stop := r.pos.entryPrice.Mul(one.Sub(r.sim.stopLoss))
		if bar.Low.LessThanOrEqual(stop) {
			return stop, model.ExitStopLoss, true
		}
	}
	if r.sim.takeProfit.IsPositive() {
		target := r.pos.entryPrice.Mul(one.Add(r.sim.takeProfit))
		if bar.High.GreaterThanOrEqual(target) {
			return target, model.ExitTakeProfit, true
		}
	}
	if sig == model.SignalSell {
		return bar.Close.Mul(one.Sub(r.sim.slippage)), model.ExitSignal, true
	}
	return decimal.Decimal{}, "", false
}

func (r *simRun) openPosition(bar model.Bar) {
	price := bar.Close.Mul(one.Add(r.sim.slippage))
	if !price.IsPositive() {
		return
	}
	qty := r.cash.Div(price).Floor()
	if qty.LessThanOrEqual(decimal.Zero) {
		// Insufficient capital is a no-op, not an error.
		return
	}
	cost := price.Mul(qty)
	fee := cost.Mul(r.sim.feeRate)
	r.cash = r.cash.Sub(cost).Sub(fee)
	r.pos.open(bar.Timestamp, price, qty, fee)
}

func (r *simRun) closePosition(ts time.Time, exitPrice decimal.Decimal, reason model.ExitReason) {
	proceeds := exitPrice.Mul(r.pos.quantity)
	exitFee := proceeds.Mul(r.sim.feeRate)
	pnl := exitPrice.Sub(r.pos.entryPrice).Mul(r.pos.quantity).Sub(r.pos.entryFee).Sub(exitFee)
	r.cash = r.cash.Add(proceeds).Sub(exitFee)

	costBasis := r.pos.entryPrice.Mul(r.pos.quantity)
	returnPct, _ := pnl.Div(costBasis).Float64()

	r.ledger.Append(model.Trade{
		EntryTime:  r.pos.entryTime,
		EntryPrice: r.pos.entryPrice,
		ExitTime:   ts,
		ExitPrice:  exitPrice,
		Side:       r.pos.side,
		Quantity:   r.pos.quantity,
		Commission: r.pos.entryFee.Add(exitFee),
		PnL:        pnl,
		ReturnPct:  returnPct * 100,
		ExitReason: reason,
	})
	r.pos.close()
}

func validateInputs(bars []model.Bar, signals []model.Signal) error {
	if len(bars) == 0 || len(signals) == 0 {
		return fmt.Errorf("%w: %d bars, %d signals", ErrEmptyInput, len(bars), len(signals))
	}
	if len(bars) != len(signals) {
		return fmt.Errorf("%w: %d bars, %d signals", ErrLengthMismatch, len(bars), len(signals))
	}
	if err := validateBars(bars); err != nil {
		return err
	}
	for i, sig := range signals {
		if !sig.Valid() {
			return fmt.Errorf("%w: %q at index %d", ErrInvalidSignal, sig, i)
		}
	}
	return nil
}

func validateBars(bars []model.Bar) error {
	for i := 1; i < len(bars); i++ {
		if !bars[i].Timestamp.After(bars[i-1].Timestamp) {
			return fmt.Errorf("%w: bar %d (%s) not after bar %d (%s)",
				ErrNonMonotonicTimestamps, i, bars[i].Timestamp.Format(time.RFC3339),
				i-1, bars[i-1].Timestamp.Format(time.RFC3339))
		}
	}
	return nil
}
