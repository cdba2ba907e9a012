package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/learn2codblog/AITradingLab-sub000/internal/config"
	"github.com/learn2codblog/AITradingLab-sub000/internal/engine"
	"github.com/learn2codblog/AITradingLab-sub000/internal/infrastructure"
	"github.com/learn2codblog/AITradingLab-sub000/internal/model"
	"github.com/learn2codblog/AITradingLab-sub000/internal/processor"
	"github.com/learn2codblog/AITradingLab-sub000/internal/strategy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Handler struct {
	cfg    *config.Config
	logger *zap.Logger
}

func NewHandler(cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		cfg:    cfg,
		logger: logger,
	}
}

// engineOverrides are the per-request engine knobs shared by both run
// endpoints; absent fields fall back to the server configuration.
type engineOverrides struct {
	InitialCapital decimal.Decimal `json:"initial_capital"`
	CommissionRate *float64        `json:"commission_rate"`
	SlippageRate   *float64        `json:"slippage_rate"`
	StopLossPct    *float64        `json:"stop_loss_pct"`
	TakeProfitPct  *float64        `json:"take_profit_pct"`
	BarsPerYear    *float64        `json:"bars_per_year"`
}

func (h *Handler) engineConfig(o engineOverrides) engine.Config {
	cfg := engine.Config{
		InitialCapital: decimal.NewFromFloat(h.cfg.InitialCapital),
		CommissionRate: h.cfg.CommissionRate,
		SlippageRate:   h.cfg.SlippageRate,
		BarsPerYear:    h.cfg.BarsPerYear,
	}
	if !o.InitialCapital.IsZero() {
		cfg.InitialCapital = o.InitialCapital
	}
	if o.CommissionRate != nil {
		cfg.CommissionRate = *o.CommissionRate
	}
	if o.SlippageRate != nil {
		cfg.SlippageRate = *o.SlippageRate
	}
	if o.StopLossPct != nil {
		cfg.StopLossPct = *o.StopLossPct
	}
	if o.TakeProfitPct != nil {
		cfg.TakeProfitPct = *o.TakeProfitPct
	}
	if o.BarsPerYear != nil {
		cfg.BarsPerYear = *o.BarsPerYear
	}
	return cfg
}

// RunBacktest simulates one (bars, signals) pair. Signals come either
// inline or from a named strategy replayed over the bars.
func (h *Handler) RunBacktest(c *gin.Context) {
	var req struct {
		engineOverrides
		Bars           []model.Bar            `json:"bars" binding:"required"`
		Signals        []model.Signal         `json:"signals"`
		StrategyType   string                 `json:"strategy_type"`
		StrategyParams map[string]interface{} `json:"strategy_params"`
		Resample       int                    `json:"resample"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hasSignals := len(req.Signals) > 0
	hasStrategy := req.StrategyType != ""
	if hasSignals == hasStrategy {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide exactly one of signals or strategy_type"})
		return
	}

	bars := req.Bars
	if req.Resample > 1 {
		// Inline signals are aligned to the submitted bars and cannot
		// survive a change of granularity.
		if hasSignals {
			c.JSON(http.StatusBadRequest, gin.H{"error": "resample requires strategy_type, inline signals cannot be realigned"})
			return
		}
		bars = processor.Resample(bars, req.Resample)
	}

	signals := req.Signals
	name := ""
	if hasStrategy {
		strat, err := strategy.NewStrategy(req.StrategyType, req.StrategyParams)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		signals = strategy.Signals(strat, bars)
		name = strat.Name()
	}

	runID := uuid.New().String()
	sim := engine.NewSimulator(h.engineConfig(req.engineOverrides))

	start := time.Now()
	result, err := sim.Run(c.Request.Context(), bars, signals)
	if err != nil {
		infrastructure.BacktestRuns.WithLabelValues("error").Inc()
		h.logger.Error("backtest failed", zap.String("run_id", runID), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "run_id": runID})
		return
	}
	result.StrategyName = name

	infrastructure.BacktestRuns.WithLabelValues("ok").Inc()
	infrastructure.BacktestDuration.WithLabelValues(durationLabel(name)).Observe(time.Since(start).Seconds())
	for _, t := range result.Trades {
		infrastructure.TradesSimulated.WithLabelValues(string(t.ExitReason)).Inc()
	}

	h.logger.Info("backtest complete",
		zap.String("run_id", runID),
		zap.Int("bars", len(bars)),
		zap.Int("trades", result.NumTrades),
	)

	c.JSON(http.StatusOK, gin.H{"run_id": runID, "result": result})
}

// RunWalkForward partitions the submitted bars into rolling train/test
// folds and simulates each fold with signals from the named strategy.
func (h *Handler) RunWalkForward(c *gin.Context) {
	var req struct {
		engineOverrides
		Bars           []model.Bar            `json:"bars" binding:"required"`
		StrategyType   string                 `json:"strategy_type" binding:"required"`
		StrategyParams map[string]interface{} `json:"strategy_params"`
		TrainBars      int                    `json:"train_bars"`
		TestBars       int                    `json:"test_bars"`
		Workers        int                    `json:"workers"`
		Resample       int                    `json:"resample"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bars := req.Bars
	if req.Resample > 1 {
		bars = processor.Resample(bars, req.Resample)
	}

	// Reject a bad strategy config before any fold starts.
	if _, err := strategy.NewStrategy(req.StrategyType, req.StrategyParams); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	gen := strategy.NewCarryForward(req.StrategyType, func() strategy.Strategy {
		s, _ := strategy.NewStrategy(req.StrategyType, req.StrategyParams)
		return s
	})

	wfCfg := engine.WalkForwardConfig{
		TrainBars: h.cfg.TrainBars,
		TestBars:  h.cfg.TestBars,
		Workers:   h.cfg.WalkForwardWorkers,
	}
	if req.TrainBars > 0 {
		wfCfg.TrainBars = req.TrainBars
	}
	if req.TestBars > 0 {
		wfCfg.TestBars = req.TestBars
	}
	if req.Workers > 0 {
		wfCfg.Workers = req.Workers
	}

	runID := uuid.New().String()
	wf := engine.NewWalkForward(h.engineConfig(req.engineOverrides), wfCfg, h.logger)

	start := time.Now()
	report, err := wf.Run(c.Request.Context(), bars, gen)
	if err != nil {
		infrastructure.WalkForwardRuns.WithLabelValues("error").Inc()
		var foldErr *engine.FoldError
		if errors.As(err, &foldErr) {
			h.logger.Error("walk-forward fold failed",
				zap.String("run_id", runID), zap.Int("fold", foldErr.Fold), zap.Error(err))
		} else {
			h.logger.Error("walk-forward failed", zap.String("run_id", runID), zap.Error(err))
		}
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "run_id": runID})
		return
	}

	infrastructure.WalkForwardRuns.WithLabelValues("ok").Inc()
	infrastructure.FoldsExecuted.Add(float64(report.Summary.NumFolds))
	infrastructure.BacktestDuration.WithLabelValues(req.StrategyType).Observe(time.Since(start).Seconds())

	h.logger.Info("walk-forward complete",
		zap.String("run_id", runID),
		zap.Int("bars", len(bars)),
		zap.Int("folds", report.Summary.NumFolds),
	)

	c.JSON(http.StatusOK, gin.H{"run_id": runID, "report": report})
}

// ListStrategies returns the strategy types the factory can build.
func (h *Handler) ListStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategies": strategy.Types()})
}

// statusFor maps engine validation failures to 400 and everything else,
// including an aborted request context, to 500.
func statusFor(err error) int {
	for _, target := range []error{
		engine.ErrLengthMismatch,
		engine.ErrEmptyInput,
		engine.ErrNonMonotonicTimestamps,
		engine.ErrInvalidConfig,
		engine.ErrInvalidSignal,
		engine.ErrInsufficientData,
	} {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func durationLabel(name string) string {
	if name == "" {
		return "inline"
	}
	return name
}
