package strategy

import (
	"sync"

	"github.com/learn2codblog/AITradingLab-sub000/internal/model"

	"github.com/shopspring/decimal"
)

// MACrossStrategy signals only on the crossover events themselves.
type MACrossStrategy struct {
	mu          sync.Mutex
	bars        []model.Bar
	shortPeriod int
	longPeriod  int
	lastSignal  model.Signal
}

func NewMACrossStrategy(shortPeriod, longPeriod int) *MACrossStrategy {
	return &MACrossStrategy{
		shortPeriod: shortPeriod,
		longPeriod:  longPeriod,
		bars:        make([]model.Bar, 0),
		lastSignal:  model.SignalHold,
	}
}

func (s *MACrossStrategy) Name() string {
	return "ma_cross"
}

func (s *MACrossStrategy) OnBar(bar model.Bar) model.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bars = append(s.bars, bar)
	if len(s.bars) > s.longPeriod+1 {
		s.bars = s.bars[1:]
	}

	if len(s.bars) < s.longPeriod+1 {
		return model.SignalHold
	}

	shortMA := s.calculateMA(s.shortPeriod, 0)
	longMA := s.calculateMA(s.longPeriod, 0)
	prevShortMA := s.calculateMA(s.shortPeriod, 1)
	prevLongMA := s.calculateMA(s.longPeriod, 1)

	// Golden Cross
	if prevShortMA.LessThanOrEqual(prevLongMA) && shortMA.GreaterThan(longMA) {
		s.lastSignal = model.SignalBuy
		return model.SignalBuy
	}
	// Death Cross
	if prevShortMA.GreaterThanOrEqual(prevLongMA) && shortMA.LessThan(longMA) {
		s.lastSignal = model.SignalSell
		return model.SignalSell
	}

	return model.SignalHold
}

func (s *MACrossStrategy) calculateMA(period int, offset int) decimal.Decimal {
	sum := decimal.Zero
	end := len(s.bars) - offset
	start := end - period
	for i := start; i < end; i++ {
		sum = sum.Add(s.bars[i].Close)
	}
	return sum.Div(decimal.NewFromInt(int64(period)))
}
