package strategy

import (
	"github.com/learn2codblog/AITradingLab-sub000/internal/model"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// RSIStrategy buys oversold bars and sells overbought ones.
type RSIStrategy struct {
	period     int
	oversold   decimal.Decimal
	overbought decimal.Decimal
	prices     []decimal.Decimal
}

func NewRSIStrategy(period int, oversold, overbought float64) *RSIStrategy {
	return &RSIStrategy{
		period:     period,
		oversold:   decimal.NewFromFloat(oversold),
		overbought: decimal.NewFromFloat(overbought),
		prices:     make([]decimal.Decimal, 0),
	}
}

func (s *RSIStrategy) Name() string {
	return "rsi"
}

func (s *RSIStrategy) OnBar(bar model.Bar) model.Signal {
	s.prices = append(s.prices, bar.Close)
	if len(s.prices) > s.period+1 {
		s.prices = s.prices[1:]
	}

	if len(s.prices) < s.period+1 {
		return model.SignalHold
	}

	rsi := s.calculateRSI()
	if rsi.LessThan(s.oversold) {
		return model.SignalBuy
	}
	if rsi.GreaterThan(s.overbought) {
		return model.SignalSell
	}
	return model.SignalHold
}

func (s *RSIStrategy) calculateRSI() decimal.Decimal {
	gains := decimal.Zero
	losses := decimal.Zero
	for i := 1; i < len(s.prices); i++ {
		change := s.prices[i].Sub(s.prices[i-1])
		if change.IsPositive() {
			gains = gains.Add(change)
		} else {
			losses = losses.Add(change.Abs())
		}
	}

	if losses.IsZero() {
		return hundred
	}

	rs := gains.Div(losses)
	return hundred.Sub(hundred.Div(one.Add(rs)))
}
