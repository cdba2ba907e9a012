package engine

import (
	"math"

	"github.com/learn2codblog/AITradingLab-sub000/internal/model"

	"github.com/shopspring/decimal"
)

// Metrics holds the statistics derived from one equity curve and trade
// list. Pointer fields are nil when the statistic is undefined for the
// run, never coerced to zero.
type Metrics struct {
	TotalReturnPct float64
	MaxDrawdownPct float64
	SharpeRatio    *float64
	SortinoRatio   *float64
	CalmarRatio    *float64
	WinRatePct     *float64
	ProfitFactor   *float64
}

// ComputeMetrics is pure: no side effects, nothing mutated.
func ComputeMetrics(curve []model.EquityPoint, trades []model.Trade, initialCapital decimal.Decimal, barsPerYear float64) Metrics {
	var m Metrics
	if len(curve) == 0 || !initialCapital.IsPositive() {
		return m
	}

	final := curve[len(curve)-1].Equity
	totalReturn, _ := final.Sub(initialCapital).Div(initialCapital).Float64()
	m.TotalReturnPct = totalReturn * 100

	returns := barReturns(curve)
	m.SharpeRatio = sharpe(returns, barsPerYear)
	m.SortinoRatio = sortino(returns, barsPerYear)
	m.MaxDrawdownPct = maxDrawdown(curve)
	if m.MaxDrawdownPct != 0 {
		m.CalmarRatio = fptr(m.TotalReturnPct / m.MaxDrawdownPct)
	}
	m.WinRatePct, m.ProfitFactor = tradeStats(trades)
	return m
}

func barReturns(curve []model.EquityPoint) []float64 {
	returns := make([]float64, 0, len(curve)-1)
	for i := 1; i < len(curve); i++ {
		prev := curve[i-1].Equity
		if prev.IsZero() {
			continue
		}
		r, _ := curve[i].Equity.Div(prev).Sub(one).Float64()
		returns = append(returns, r)
	}
	return returns
}

func sharpe(returns []float64, barsPerYear float64) *float64 {
	if len(returns) < 2 {
		return nil
	}
	sd := stdev(returns)
	if sd == 0 {
		return nil
	}
	return fptr(mean(returns) / sd * math.Sqrt(barsPerYear))
}

// sortino divides by the deviation of the negative returns only.
func sortino(returns []float64, barsPerYear float64) *float64 {
	if len(returns) < 2 {
		return nil
	}
	negatives := make([]float64, 0)
	for _, r := range returns {
		if r < 0 {
			negatives = append(negatives, r)
		}
	}
	if len(negatives) == 0 {
		return nil
	}
	sd := stdev(negatives)
	if sd == 0 {
		return nil
	}
	return fptr(mean(returns) / sd * math.Sqrt(barsPerYear))
}

func maxDrawdown(curve []model.EquityPoint) float64 {
	peak := curve[0].Equity
	maxDD := decimal.Zero
	for _, p := range curve {
		if p.Equity.GreaterThan(peak) {
			peak = p.Equity
		}
		if !peak.IsPositive() {
			continue
		}
		dd := peak.Sub(p.Equity).Div(peak)
		if dd.GreaterThan(maxDD) {
			maxDD = dd
		}
	}
	if maxDD.GreaterThan(one) {
		maxDD = one
	}
	out, _ := maxDD.Float64()
	return out * 100
}

func tradeStats(trades []model.Trade) (winRate, profitFactor *float64) {
	if len(trades) == 0 {
		return nil, nil
	}
	wins := 0
	grossWin := decimal.Zero
	grossLoss := decimal.Zero
	for _, t := range trades {
		if t.PnL.IsPositive() {
			wins++
			grossWin = grossWin.Add(t.PnL)
		} else if t.PnL.IsNegative() {
			grossLoss = grossLoss.Add(t.PnL.Abs())
		}
	}
	winRate = fptr(float64(wins) / float64(len(trades)) * 100)
	if grossLoss.IsPositive() {
		pf, _ := grossWin.Div(grossLoss).Float64()
		profitFactor = fptr(pf)
	}
	return winRate, profitFactor
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stdev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	var sumSq float64
	for _, x := range xs {
		d := x - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(xs)))
}

func fptr(v float64) *float64 {
	return &v
}
