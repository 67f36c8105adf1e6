package qec

import (
	"encoding/json"
	"fmt"
	"math/rand"
)

// NKD holds the code parameters: physical qubits N, logical qubits K, distance D.
type NKD struct {
	N int
	K int
	D int
}

// MarshalJSON encodes the parameters as a [n, k, d] triple.
func (p NKD) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{p.N, p.K, p.D})
}

// UnmarshalJSON decodes a [n, k, d] triple.
func (p *NKD) UnmarshalJSON(data []byte) error {
	var triple [3]int
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("parsing n_k_d: %w", err)
	}
	p.N, p.K, p.D = triple[0], triple[1], triple[2]
	return nil
}

func (p NKD) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.N, p.K, p.D)
}

// StabilizerCode describes a stabilizer code by its generators and logical operators.
// Implementations must return fresh slices; callers may modify what they receive.
type StabilizerCode interface {
	// Stabilizers returns the stabilizer generators.
	Stabilizers() []Pauli
	// LogicalXs returns one logical X operator per logical qubit.
	LogicalXs() []Pauli
	// LogicalZs returns one logical Z operator per logical qubit.
	LogicalZs() []Pauli
	// NKD returns the code parameters.
	NKD() NKD
	// Label is a short human-readable name.
	Label() string
}

// Logicals returns the logical X operators followed by the logical Z operators.
func Logicals(code StabilizerCode) []Pauli {
	return append(code.LogicalXs(), code.LogicalZs()...)
}

// Distribution is a single-qubit Pauli channel: the probabilities of I, X, Y and Z.
// No normalisation is enforced; see ErrorModel.ProbabilityDistribution.
type Distribution struct {
	I float64
	X float64
	Y float64
	Z float64
}

// Sum returns P(I)+P(X)+P(Y)+P(Z).
func (d Distribution) Sum() float64 {
	return d.I + d.X + d.Y + d.Z
}

// Sample draws one of 'I', 'X', 'Y', 'Z' using a single rng.Float64() draw.
// Float rounding that leaves the draw above the cumulative total resolves to the
// last category with positive probability.
func (d Distribution) Sample(rng *rand.Rand) byte {
	weights := [4]float64{d.I, d.X, d.Y, d.Z}
	const paulis = "IXYZ"
	u := rng.Float64()
	acc := 0.0
	last := byte('I')
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		last = paulis[i]
		if u < acc {
			return last
		}
	}
	return last
}

// SamplePauli draws an independent single-qubit Pauli from d for each of n qubits.
func SamplePauli(n int, d Distribution, rng *rand.Rand) Pauli {
	p := NewIdentity(n)
	for i := 0; i < n; i++ {
		switch d.Sample(rng) {
		case 'X':
			p.X[i] = 1
		case 'Y':
			p.X[i], p.Z[i] = 1, 1
		case 'Z':
			p.Z[i] = 1
		}
	}
	return p
}

// ErrorModel generates random errors for codes of type C.
//
// Binding the code type as a type parameter means an error model written for one
// code cannot be handed a different code without a compile error. Dynamic binding
// through the registry reports ErrIncompatibleCode instead.
type ErrorModel[C StabilizerCode] interface {
	// ProbabilityDistribution returns the single-qubit channel for physical error
	// probability p. Implementations are not required to validate p.
	ProbabilityDistribution(p float64) Distribution
	// Generate samples an error on code. A nil rng is replaced by a freshly
	// seeded generator; a caller-supplied rng is advanced.
	Generate(code C, p float64, rng *rand.Rand) Pauli
	// Label is a short human-readable name.
	Label() string
}

// Decoder maps a syndrome on codes of type C to a recovery operator.
type Decoder[C StabilizerCode] interface {
	// Decode returns a recovery operator for syndrome.
	Decode(code C, syndrome Syndrome) Pauli
	// Label is a short human-readable name.
	Label() string
}
