package processor

import (
	"github.com/learn2codblog/AITradingLab-sub000/internal/model"
)

// Resample merges each run of factor consecutive bars into one coarser
// bar: first open, last close, extreme high/low, summed volume, stamped
// with the window's first timestamp. A trailing partial window is kept.
// Factors below 2 return the input unchanged.
func Resample(bars []model.Bar, factor int) []model.Bar {
	if factor < 2 || len(bars) == 0 {
		return bars
	}

	out := make([]model.Bar, 0, (len(bars)+factor-1)/factor)
	for start := 0; start < len(bars); start += factor {
		end := start + factor
		if end > len(bars) {
			end = len(bars)
		}

		candle := bars[start]
		for _, bar := range bars[start+1 : end] {
			if bar.High.GreaterThan(candle.High) {
				candle.High = bar.High
			}
			if bar.Low.LessThan(candle.Low) {
				candle.Low = bar.Low
			}
			candle.Close = bar.Close
			candle.Volume = candle.Volume.Add(bar.Volume)
		}
		out = append(out, candle)
	}
	return out
}
