package engine

import (
	"time"

	"github.com/learn2codblog/AITradingLab-sub000/internal/model"

	"github.com/shopspring/decimal"
)

type positionState int

const (
	positionFlat positionState = iota
	positionOpen
)

// position is the simulator's holding state. The state discriminant is
// authoritative: entry fields are only meaningful while state is
// positionOpen, and open/close are the only transitions.
type position struct {
	state      positionState
	side       model.Side
	entryTime  time.Time
	entryPrice decimal.Decimal
	quantity   decimal.Decimal
	entryFee   decimal.Decimal
}

func (p *position) open(ts time.Time, price, quantity, fee decimal.Decimal) {
	p.state = positionOpen
	p.side = model.SideLong
	p.entryTime = ts
	p.entryPrice = price
	p.quantity = quantity
	p.entryFee = fee
}

func (p *position) close() {
	*p = position{}
}
