package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey uniquely identifies a reproducible simulation, validation, or
// routing run. Two runs with the same SimulationKey and identical inputs
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a caller-supplied seed.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Subsystem names for PartitionedRNG. Each names an independent stochastic
// stream so that, e.g., enabling decoder jitter never perturbs the router's
// random baseline.
const (
	SubsystemSimulatorJitter = "simulator_jitter"
	SubsystemSimulatorLoss   = "simulator_loss"
	SubsystemDecoderQueue    = "decoder_queue"
	SubsystemRouterBaseline  = "router_baseline"
)

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem, derived from a single master seed so a caller only has to pin
// one number to get a byte-identical run.
//
// Derivation: subsystemSeed = masterSeed XOR fnv1a64(subsystemName). This
// makes derivation order-independent: calling ForSubsystem("a") before or
// after ForSubsystem("b") never changes either stream.
//
// Thread-safety: NOT thread-safe. Callers that fan work out across
// goroutines must call ForSubsystem up front and hand the returned
// *rand.Rand to a single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same subsystem name always returns the same *rand.Rand
// instance (cached). Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	derivedSeed := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
