package engine

import (
	"context"
	"testing"
	"time"

	"github.com/learn2codblog/AITradingLab-sub000/internal/model"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
)

// spyGenerator records the window it was handed on every call.
type spyGenerator struct {
	windows []struct {
		first time.Time
		last  time.Time
		count int
	}
}

func (g *spyGenerator) Name() string { return "spy" }

func (g *spyGenerator) Generate(train []model.Bar, horizon int) ([]model.Signal, error) {
	g.windows = append(g.windows, struct {
		first time.Time
		last  time.Time
		count int
	}{
		first: train[0].Timestamp,
		last:  train[len(train)-1].Timestamp,
		count: len(train),
	})
	signals := holdSignals(horizon)
	signals[0] = model.SignalBuy
	return signals, nil
}

func TestWalkForwardProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("fold count follows floor((n-train)/test)", prop.ForAll(
		func(train, test, extra int) bool {
			n := train + test + extra
			bars := generateBars(walkCloses(n))
			wf := NewWalkForward(frictionlessConfig(10000), WalkForwardConfig{TrainBars: train, TestBars: test, Workers: 1}, zap.NewNop())
			report, err := wf.Run(context.Background(), bars, buyAndHoldGenerator())
			if err != nil {
				return false
			}
			return len(report.Folds) == (n-train)/test
		},
		gen.IntRange(10, 60),
		gen.IntRange(5, 30),
		gen.IntRange(0, 150),
	))

	properties.Property("generators never see bars at or past their test window", prop.ForAll(
		func(train, test, extra int) bool {
			n := train + test + extra
			bars := generateBars(walkCloses(n))
			spy := &spyGenerator{}
			wf := NewWalkForward(frictionlessConfig(10000), WalkForwardConfig{TrainBars: train, TestBars: test, Workers: 1}, zap.NewNop())
			report, err := wf.Run(context.Background(), bars, spy)
			if err != nil {
				return false
			}
			if len(spy.windows) != len(report.Folds) {
				return false
			}
			for k, w := range spy.windows {
				if w.count != train {
					return false
				}
				testStart := k*test + train
				if !w.first.Equal(bars[k*test].Timestamp) {
					return false
				}
				if !w.last.Before(bars[testStart].Timestamp) {
					return false
				}
			}
			return true
		},
		gen.IntRange(10, 60),
		gen.IntRange(5, 30),
		gen.IntRange(0, 150),
	))

	properties.Property("fold windows are adjacent and stride by the test size", prop.ForAll(
		func(train, test, extra int) bool {
			n := train + test + extra
			bars := generateBars(walkCloses(n))
			wf := NewWalkForward(frictionlessConfig(10000), WalkForwardConfig{TrainBars: train, TestBars: test, Workers: 1}, zap.NewNop())
			report, err := wf.Run(context.Background(), bars, buyAndHoldGenerator())
			if err != nil {
				return false
			}
			for k, fold := range report.Folds {
				if fold.TrainRange.Start != k*test || fold.TrainRange.End != k*test+train {
					return false
				}
				if fold.TestRange.Start != fold.TrainRange.End {
					return false
				}
				if fold.TestRange.End != fold.TestRange.Start+test {
					return false
				}
				if fold.TestRange.End > n {
					return false
				}
			}
			return true
		},
		gen.IntRange(10, 60),
		gen.IntRange(5, 30),
		gen.IntRange(0, 150),
	))

	properties.TestingRun(t)
}
