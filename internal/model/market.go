package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bar is one OHLCV observation for a fixed interval.
// Sequences fed to the engine must be strictly increasing in Timestamp.
type Bar struct {
	Open      decimal.Decimal `json:"o"`
	High      decimal.Decimal `json:"h"`
	Low       decimal.Decimal `json:"l"`
	Close     decimal.Decimal `json:"c"`
	Volume    decimal.Decimal `json:"v"`
	Timestamp time.Time       `json:"t"`
}
