package strategy

import (
	"testing"

	"github.com/learn2codblog/AITradingLab-sub000/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarryForward_EmitsTrainedStanceThenHolds(t *testing.T) {
	gen := NewCarryForward("ma", func() Strategy { return NewMAStrategy(2, 4) })
	train := barsFromCloses(10, 11, 12, 13, 14, 15)

	signals, err := gen.Generate(train, 5)
	require.NoError(t, err)

	require.Len(t, signals, 5)
	assert.Equal(t, model.SignalBuy, signals[0])
	for i := 1; i < len(signals); i++ {
		assert.Equal(t, model.SignalHold, signals[i], "signal %d", i)
	}
}

func TestCarryForward_FreshStatePerCall(t *testing.T) {
	gen := NewCarryForward("ma", func() Strategy { return NewMAStrategy(2, 4) })

	rising, err := gen.Generate(barsFromCloses(10, 11, 12, 13, 14), 3)
	require.NoError(t, err)
	assert.Equal(t, model.SignalBuy, rising[0])

	// A second call must not inherit the previous window.
	falling, err := gen.Generate(barsFromCloses(14, 13, 12, 11, 10), 3)
	require.NoError(t, err)
	assert.Equal(t, model.SignalSell, falling[0])
}

func TestCarryForward_ShortTrainYieldsHold(t *testing.T) {
	gen := NewCarryForward("ma", func() Strategy { return NewMAStrategy(2, 4) })

	signals, err := gen.Generate(barsFromCloses(10, 11), 4)
	require.NoError(t, err)
	assert.Equal(t, model.SignalHold, signals[0])
}

func TestCarryForward_InvalidHorizon(t *testing.T) {
	gen := NewCarryForward("ma", func() Strategy { return NewMAStrategy(2, 4) })

	_, err := gen.Generate(barsFromCloses(10, 11, 12, 13, 14), 0)
	assert.Error(t, err)
}

func TestCarryForward_Name(t *testing.T) {
	gen := NewCarryForward("rsi", func() Strategy { return NewRSIStrategy(3, 30, 70) })
	assert.Equal(t, "rsi", gen.Name())
}
