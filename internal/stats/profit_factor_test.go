package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfitFactor(t *testing.T) {
	t.Run("Finite", func(t *testing.T) {
		pf := NewProfitFactor(80, -20)
		assert.True(t, pf.Defined())
		assert.InDelta(t, 4.0, pf.Value(), 1e-9)
		assert.InDelta(t, 4.0, pf.Sentinel(), 1e-9)
		assert.Equal(t, "4.00", pf.String())
	})

	t.Run("UndefinedWhenNoLoss", func(t *testing.T) {
		pf := NewProfitFactor(80, 0)
		assert.False(t, pf.Defined())
		assert.Equal(t, float64(999), pf.Sentinel())
		assert.Equal(t, "N/A", pf.String())
	})

	t.Run("ZeroWhenNoActivity", func(t *testing.T) {
		pf := NewProfitFactor(0, 0)
		assert.True(t, pf.Defined())
		assert.Zero(t, pf.Sentinel())
		assert.Equal(t, "0.00", pf.String())
	})

	t.Run("AcceptsNegativeOrAbsoluteLoss", func(t *testing.T) {
		assert.Equal(t, NewProfitFactor(80, -20), NewProfitFactor(80, 20))
	})
}
