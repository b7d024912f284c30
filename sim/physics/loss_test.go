package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLossProbability_BelowThreshold_OnlyBaseRate(t *testing.T) {
	p := LossProbability(10.0, DefaultProfile())
	assert.InDelta(t, 0.001, p, 1e-6)
}

func TestLossProbability_AboveThreshold_HeatingIncreasesLoss(t *testing.T) {
	profile := DefaultProfile()
	low := LossProbability(15.0, profile)
	high := LossProbability(25.0, profile)
	assert.Greater(t, high, low)
}

func TestLossProbability_Formula(t *testing.T) {
	// nvib=25, threshold=18, excess=7: p = 0.001 + 0.005*7 = 0.036
	p := LossProbability(25.0, DefaultProfile())
	assert.InDelta(t, 0.036, p, 1e-6)
}

func TestLossProbability_CapsAtOne(t *testing.T) {
	p := LossProbability(1000.0, DefaultProfile())
	assert.Equal(t, 1.0, p)
}

func TestLossProbability_BoundedZeroOne(t *testing.T) {
	profile := DefaultProfile()
	for _, n := range []float64{-5, 0, 18, 18.0001, 1e6} {
		p := LossProbability(n, profile)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}
