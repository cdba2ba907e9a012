package strategy

import (
	"github.com/learn2codblog/AITradingLab-sub000/internal/model"

	"github.com/shopspring/decimal"
)

type MAStrategy struct {
	shortPeriod int
	longPeriod  int
	prices      []decimal.Decimal
}

func NewMAStrategy(short, long int) *MAStrategy {
	return &MAStrategy{
		shortPeriod: short,
		longPeriod:  long,
		prices:      make([]decimal.Decimal, 0),
	}
}

func (s *MAStrategy) Name() string {
	return "ma"
}

func (s *MAStrategy) OnData(price decimal.Decimal) {
	s.prices = append(s.prices, price)
	if len(s.prices) > s.longPeriod+1 {
		s.prices = s.prices[1:]
	}
}

func (s *MAStrategy) OnBar(bar model.Bar) model.Signal {
	s.OnData(bar.Close)

	if len(s.prices) < s.longPeriod {
		return model.SignalHold
	}

	shortMA := s.calculateMA(s.shortPeriod)
	longMA := s.calculateMA(s.longPeriod)

	// Simple comparison logic: stay long while the short MA leads
	if shortMA.GreaterThan(longMA) {
		return model.SignalBuy
	} else if shortMA.LessThan(longMA) {
		return model.SignalSell
	}

	return model.SignalHold
}

func (s *MAStrategy) calculateMA(period int) decimal.Decimal {
	sum := decimal.Zero
	data := s.prices[len(s.prices)-period:]
	for _, p := range data {
		sum = sum.Add(p)
	}
	return sum.Div(decimal.NewFromInt(int64(period)))
}
