package engine

import (
	"github.com/learn2codblog/AITradingLab-sub000/internal/model"
)

// Ledger is the append-only record of closed trades for one run. Only the
// simulator writes to it; All hands out a copy so recorded trades cannot
// be mutated after the run returns.
type Ledger struct {
	trades []model.Trade
}

func NewLedger() *Ledger {
	return &Ledger{trades: make([]model.Trade, 0)}
}

func (l *Ledger) Append(t model.Trade) {
	l.trades = append(l.trades, t)
}

func (l *Ledger) All() []model.Trade {
	out := make([]model.Trade, len(l.trades))
	copy(out, l.trades)
	return out
}

func (l *Ledger) Count() int {
	return len(l.trades)
}
