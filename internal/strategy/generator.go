package strategy

import (
	"fmt"

	"github.com/learn2codblog/AITradingLab-sub000/internal/model"
)

// CarryForward adapts a per-bar strategy to walk-forward signal
// generation: each call builds a fresh strategy from the factory, warms it
// on the training bars alone, then emits the trained stance on the first
// test bar and holds for the rest of the window. Fresh state per call
// keeps concurrent folds independent.
type CarryForward struct {
	name    string
	factory func() Strategy
}

func NewCarryForward(name string, factory func() Strategy) *CarryForward {
	return &CarryForward{
		name:    name,
		factory: factory,
	}
}

func (g *CarryForward) Name() string {
	return g.name
}

func (g *CarryForward) Generate(train []model.Bar, horizon int) ([]model.Signal, error) {
	if horizon <= 0 {
		return nil, fmt.Errorf("invalid horizon: %d", horizon)
	}

	strat := g.factory()
	stance := model.SignalHold
	for _, bar := range train {
		stance = strat.OnBar(bar)
	}

	signals := make([]model.Signal, horizon)
	signals[0] = stance
	for i := 1; i < horizon; i++ {
		signals[i] = model.SignalHold
	}
	return signals, nil
}
