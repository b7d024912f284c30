package physics

import (
	"math"
	"math/rand"
)

// DecoderQueue tracks the per-cycle backlog of the external syndrome
// decoder. It is owned by whichever caller advances cycles (the simulator);
// this package only implements the pure update rule.
type DecoderQueue struct {
	Depth float64
}

// Capacity returns the decoder's syndrome-processing capacity at the given
// code distance for one cycle, including a uniform jitter multiplier drawn
// from rng. capacity = C₀·exp(−α·d) · U(jitterMin, jitterMax).
func Capacity(codeDistance int, profile *DeviceProfile, rng *rand.Rand) float64 {
	base := profile.DecoderBaseCapacity * math.Exp(-profile.DecoderDecay*float64(codeDistance))
	jitter := profile.DecoderJitterMin + rng.Float64()*(profile.DecoderJitterMax-profile.DecoderJitterMin)
	return base * jitter
}

// Advance applies one cycle's worth of syndrome arrival (rate 1 per cycle)
// against the decoder's capacity, updates q in place, and returns the
// latency, in milliseconds, implied by the resulting backlog:
//
//	Q ← max(0, Q + 1 − capacity)
//	latency = (Q·window_ms)/capacity  if Q > 0
//	latency = window_ms/capacity      otherwise
func (q *DecoderQueue) Advance(codeDistance int, profile *DeviceProfile, rng *rand.Rand) float64 {
	capacity := Capacity(codeDistance, profile, rng)
	q.Depth = math.Max(0, q.Depth+1-capacity)
	if q.Depth > 0 {
		return (q.Depth * profile.CycleWindowMs) / capacity
	}
	return profile.CycleWindowMs / capacity
}

// CodeDistanceForCycle implements the schedule from spec §4.4: code
// distance grows with cycle index to exercise the point where decoder
// capacity falls below the syndrome generation rate.
func CodeDistanceForCycle(cycle int64) int {
	switch {
	case cycle <= 15:
		return 3
	case cycle <= 30:
		return 5
	default:
		return 7
	}
}

// InstantaneousLatency reports decoder latency using the alternate,
// non-accumulating revision mentioned in spec §9's open question: the
// latency implied by capacity alone, ignoring any queued backlog. It is not
// called anywhere in the simulator loop — the simulator uses the
// queue-accumulation form via DecoderQueue.Advance — but is exposed for
// instrumentation that wants to compare both forms against instrument
// traces.
func InstantaneousLatency(codeDistance int, profile *DeviceProfile, rng *rand.Rand) float64 {
	capacity := Capacity(codeDistance, profile, rng)
	return profile.CycleWindowMs / capacity
}
