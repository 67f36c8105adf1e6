package qec

import (
	"math"
	"math/rand"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 13},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_TrialsUsesSeedDirectly(t *testing.T) {
	prng := NewPartitionedRNG(NewSimulationKey(13))
	ref := rand.New(rand.NewSource(13))
	for i := 0; i < 5; i++ {
		if got, want := prng.ForSubsystem(SubsystemTrials).Float64(), ref.Float64(); got != want {
			t.Fatalf("draw %d: got %v, want %v", i, got, want)
		}
	}
}

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	rng1 := NewPartitionedRNG(NewSimulationKey(13))
	rng2 := NewPartitionedRNG(NewSimulationKey(13))
	name := SubsystemProbability(2)

	for i := 0; i < 3; i++ {
		v1 := rng1.ForSubsystem(name).Float64()
		v2 := rng2.ForSubsystem(name).Float64()
		if v1 != v2 {
			t.Errorf("value %d: got %v and %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// GIVEN two partitioned RNGs from the same key
	rngA := NewPartitionedRNG(NewSimulationKey(13))
	rngB := NewPartitionedRNG(NewSimulationKey(13))

	// WHEN A draws heavily from the trials stream first
	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemTrials).Float64()
	}

	// THEN A's probability_0 stream still starts where B's does
	a := rngA.ForSubsystem(SubsystemProbability(0)).Float64()
	b := rngB.ForSubsystem(SubsystemProbability(0)).Float64()
	if a != b {
		t.Errorf("probability_0 first draw: got %v and %v, want identical", a, b)
	}
}

func TestPartitionedRNG_DistinctSubsystemsDiffer(t *testing.T) {
	prng := NewPartitionedRNG(NewSimulationKey(13))
	a := prng.ForSubsystem(SubsystemProbability(0)).Int63()
	b := prng.ForSubsystem(SubsystemProbability(1)).Int63()
	c := prng.ForSubsystem(SubsystemTrials).Int63()
	if a == b || a == c || b == c {
		t.Errorf("expected distinct first draws, got %d, %d, %d", a, b, c)
	}
}

func TestPartitionedRNG_CachesInstances(t *testing.T) {
	prng := NewPartitionedRNG(NewSimulationKey(1))
	if prng.ForSubsystem("x") != prng.ForSubsystem("x") {
		t.Error("ForSubsystem returned different instances for the same name")
	}
	if prng.Key() != NewSimulationKey(1) {
		t.Errorf("Key() = %d, want 1", prng.Key())
	}
}

func TestSubsystemProbability_Name(t *testing.T) {
	if got := SubsystemProbability(3); got != "probability_3" {
		t.Errorf("SubsystemProbability(3) = %q", got)
	}
}
