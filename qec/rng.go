package qec

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey identifies a reproducible run. Two runs with the same key and the
// same components MUST draw identical error sequences.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

// SubsystemTrials is the RNG stream used by a single Run. It is seeded with the
// key directly so that --random-seed maps one-to-one onto the error sequence.
const SubsystemTrials = "trials"

// SubsystemProbability returns the stream name for the i-th error probability of a sweep.
func SubsystemProbability(i int) string {
	return fmt.Sprintf("probability_%d", i)
}

// === PartitionedRNG ===

// PartitionedRNG hands out deterministic, isolated generators per subsystem.
//
// Derivation:
//   - SubsystemTrials: key
//   - anything else: key XOR fnv1a64(name)
//
// Not safe for concurrent use. Sweep derives every stream up front and hands each
// goroutine its own *rand.Rand.
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

// ForSubsystem returns the generator for name, creating it on first use.
// Repeated calls with the same name return the same instance.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := int64(p.key)
	if name != SubsystemTrials {
		derivedSeed ^= fnv1a64(name)
	}

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
