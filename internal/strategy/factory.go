package strategy

import (
	"fmt"
)

// Types lists the strategy names NewStrategy accepts.
func Types() []string {
	return []string{"ma", "ma_cross", "rsi"}
}

func NewStrategy(strategyType string, config map[string]interface{}) (Strategy, error) {
	switch strategyType {
	case "ma":
		short, ok1 := config["short_period"].(float64)
		long, ok2 := config["long_period"].(float64)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("invalid config for ma: need short_period and long_period")
		}
		return NewMAStrategy(int(short), int(long)), nil
	case "ma_cross":
		short, ok1 := config["short_period"].(float64)
		long, ok2 := config["long_period"].(float64)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("invalid config for ma_cross: need short_period and long_period")
		}
		return NewMACrossStrategy(int(short), int(long)), nil
	case "rsi":
		period, ok := config["period"].(float64)
		if !ok {
			return nil, fmt.Errorf("invalid config for rsi: need period")
		}
		oversold, ok := config["oversold"].(float64)
		if !ok {
			oversold = 30
		}
		overbought, ok := config["overbought"].(float64)
		if !ok {
			overbought = 70
		}
		return NewRSIStrategy(int(period), oversold, overbought), nil
	default:
		return nil, fmt.Errorf("unknown strategy type: %s", strategyType)
	}
}
