package strategy

import (
	"github.com/learn2codblog/AITradingLab-sub000/internal/model"
)

// Strategy turns bars into per-bar signals. OnBar is fed bars in sequence
// order and sees nothing past the bar it is given.
type Strategy interface {
	Name() string
	OnBar(bar model.Bar) model.Signal
}

// Signals replays bars through a strategy and collects one signal per bar.
func Signals(s Strategy, bars []model.Bar) []model.Signal {
	signals := make([]model.Signal, len(bars))
	for i, bar := range bars {
		signals[i] = s.OnBar(bar)
	}
	return signals
}
