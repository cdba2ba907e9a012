package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BacktestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "backtest_duration_seconds",
		Help: "Duration of backtest simulation runs",
	}, []string{"strategy"})

	BacktestRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backtest_runs_total",
		Help: "Total number of backtest runs",
	}, []string{"status"})

	WalkForwardRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "walkforward_runs_total",
		Help: "Total number of walk-forward runs",
	}, []string{"status"})

	FoldsExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "walkforward_folds_total",
		Help: "Total number of walk-forward folds executed",
	})

	TradesSimulated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trades_simulated_total",
		Help: "Total number of simulated trades",
	}, []string{"exit_reason"})
)
