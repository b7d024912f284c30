package physics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeatingIncrement_BasicFormula(t *testing.T) {
	// 10 µm at 0.5 µm/µs = 10 × 0.5 × 0.01 = 0.05
	got := HeatingIncrement(10.0, 0.5, DefaultProfile())
	assert.InDelta(t, 0.05, got, 1e-9)
}

func TestHeatingIncrement_MonotoneInVelocity(t *testing.T) {
	p := DefaultProfile()
	slow := HeatingIncrement(10.0, 0.1, p)
	fast := HeatingIncrement(10.0, 0.5, p)
	assert.Greater(t, fast, slow)
}

func TestHeatingIncrement_MonotoneInDistance(t *testing.T) {
	p := DefaultProfile()
	short := HeatingIncrement(5.0, 0.3, p)
	long := HeatingIncrement(20.0, 0.3, p)
	assert.Greater(t, long, short)
}

func TestHeatingIncrement_NeverNegative(t *testing.T) {
	p := DefaultProfile()
	assert.GreaterOrEqual(t, HeatingIncrement(0, 0, p), 0.0)
	assert.GreaterOrEqual(t, HeatingIncrement(-5, 3, p), 0.0)
}

func TestHeatingIncrement_PropertyMonotoneGrid(t *testing.T) {
	p := DefaultProfile()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		d1 := rng.Float64() * 50
		d2 := d1 + rng.Float64()*10
		v := rng.Float64() * 2
		assert.LessOrEqual(t, HeatingIncrement(d1, v, p), HeatingIncrement(d2, v, p))
	}
}
