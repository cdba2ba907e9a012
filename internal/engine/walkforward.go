package engine

import (
	"context"
	"fmt"

	"github.com/learn2codblog/AITradingLab-sub000/internal/model"

	"go.uber.org/zap"
)

// SignalGenerator produces signals for a test window of the given length
// from the training bars alone. The runner hands it nothing but the train
// slice; not reaching past it is the generator's side of the contract.
type SignalGenerator interface {
	Name() string
	Generate(train []model.Bar, horizon int) ([]model.Signal, error)
}

// WalkForwardConfig sizes the rolling windows. Workers caps how many folds
// are simulated concurrently; values below 2 run folds sequentially.
type WalkForwardConfig struct {
	TrainBars int
	TestBars  int
	Workers   int
}

func (c WalkForwardConfig) Validate() error {
	if c.TrainBars <= 0 {
		return fmt.Errorf("%w: train bars must be positive, got %d", ErrInvalidConfig, c.TrainBars)
	}
	if c.TestBars <= 0 {
		return fmt.Errorf("%w: test bars must be positive, got %d", ErrInvalidConfig, c.TestBars)
	}
	return nil
}

// WalkForward partitions history into rolling train/test folds and runs
// the simulator on each test window with signals generated from its train
// window only.
type WalkForward struct {
	simCfg Config
	cfg    WalkForwardConfig
	logger *zap.Logger
}

func NewWalkForward(simCfg Config, cfg WalkForwardConfig, logger *zap.Logger) *WalkForward {
	return &WalkForward{
		simCfg: simCfg,
		cfg:    cfg,
		logger: logger,
	}
}

// Run validates everything up front, then produces floor((N-T)/S) folds
// with adjacent half-open windows: fold k trains on [k*S, k*S+T) and tests
// on [k*S+T, k*S+T+S). Fold results do not depend on execution order.
func (w *WalkForward) Run(ctx context.Context, bars []model.Bar, gen SignalGenerator) (*model.WalkForwardReport, error) {
	if err := w.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := w.simCfg.Validate(); err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: no bars", ErrEmptyInput)
	}
	if err := validateBars(bars); err != nil {
		return nil, err
	}

	train, test := w.cfg.TrainBars, w.cfg.TestBars
	if len(bars) < train+test {
		return nil, fmt.Errorf("%w: have %d bars, need at least %d (train %d + test %d)",
			ErrInsufficientData, len(bars), train+test, train, test)
	}

	numFolds := (len(bars) - train) / test
	w.logger.Info("starting walk-forward run",
		zap.String("generator", gen.Name()),
		zap.Int("bars", len(bars)),
		zap.Int("train_bars", train),
		zap.Int("test_bars", test),
		zap.Int("folds", numFolds),
	)

	runFold := func(ctx context.Context, k int) (*model.Fold, error) {
		fold, err := w.runFold(ctx, bars, gen, k)
		if err != nil {
			return nil, &FoldError{Fold: k, Err: err}
		}
		return fold, nil
	}

	var folds []*model.Fold
	var err error
	if w.cfg.Workers > 1 && numFolds > 1 {
		pool := NewWorkerPool(w.cfg.Workers, w.logger)
		folds, err = pool.Run(ctx, numFolds, runFold)
	} else {
		folds, err = w.runSequential(ctx, numFolds, runFold)
	}
	if err != nil {
		return nil, err
	}

	report := &model.WalkForwardReport{
		StrategyName: gen.Name(),
		Folds:        make([]model.Fold, numFolds),
		Summary:      summarize(folds),
	}
	for k, f := range folds {
		report.Folds[k] = *f
	}
	return report, nil
}

func (w *WalkForward) runSequential(ctx context.Context, numFolds int, run FoldRunner) ([]*model.Fold, error) {
	folds := make([]*model.Fold, numFolds)
	for k := 0; k < numFolds; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fold, err := run(ctx, k)
		if err != nil {
			return nil, err
		}
		folds[k] = fold
	}
	return folds, nil
}

func (w *WalkForward) runFold(ctx context.Context, bars []model.Bar, gen SignalGenerator, k int) (*model.Fold, error) {
	trainStart := k * w.cfg.TestBars
	trainEnd := trainStart + w.cfg.TrainBars
	testStart := trainEnd
	testEnd := testStart + w.cfg.TestBars

	// The generator sees the train window and nothing past it.
	train := bars[trainStart:trainEnd:trainEnd]
	signals, err := gen.Generate(train, w.cfg.TestBars)
	if err != nil {
		return nil, err
	}
	if len(signals) != w.cfg.TestBars {
		return nil, fmt.Errorf("%w: generator returned %d signals for %d test bars",
			ErrLengthMismatch, len(signals), w.cfg.TestBars)
	}

	sim := NewSimulator(w.simCfg)
	result, err := sim.Run(ctx, bars[testStart:testEnd], signals)
	if err != nil {
		return nil, err
	}
	result.StrategyName = gen.Name()

	w.logger.Debug("fold complete",
		zap.Int("fold", k),
		zap.Int("test_start", testStart),
		zap.Int("test_end", testEnd),
		zap.Int("trades", result.NumTrades),
	)

	return &model.Fold{
		Index:      k,
		TrainRange: model.BarRange{Start: trainStart, End: trainEnd},
		TestRange:  model.BarRange{Start: testStart, End: testEnd},
		Result:     result,
	}, nil
}

// summarize aggregates across folds, skipping undefined values instead of
// counting them as zero.
func summarize(folds []*model.Fold) model.WalkForwardSummary {
	s := model.WalkForwardSummary{NumFolds: len(folds)}
	sharpes := make([]float64, 0, len(folds))
	rets := make([]float64, 0, len(folds))
	for _, f := range folds {
		if f.Result.SharpeRatio != nil {
			sharpes = append(sharpes, *f.Result.SharpeRatio)
		}
		rets = append(rets, f.Result.TotalReturnPct)
	}
	s.MeanSharpe, s.StdevSharpe = meanStdev(sharpes)
	s.MeanReturnPct, s.StdevReturnPct = meanStdev(rets)
	return s
}

func meanStdev(xs []float64) (*float64, *float64) {
	if len(xs) == 0 {
		return nil, nil
	}
	m := fptr(mean(xs))
	if len(xs) < 2 {
		return m, nil
	}
	return m, fptr(stdev(xs))
}
