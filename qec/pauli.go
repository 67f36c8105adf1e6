package qec

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPauli is returned when a Pauli string contains a character other than I, X, Y, Z.
	ErrInvalidPauli = errors.New("qec: invalid Pauli character")

	// ErrQubitMismatch is returned when two operators act on different numbers of qubits.
	ErrQubitMismatch = errors.New("qec: qubit count mismatch")
)

// Pauli is an n-qubit Pauli operator in binary symplectic form (BSF), ignoring phase.
// Qubit i carries X[i] and Z[i]: I=(0,0), X=(1,0), Z=(0,1), Y=(1,1).
// X and Z always have the same length.
type Pauli struct {
	X []uint8
	Z []uint8
}

// NewIdentity returns the identity operator on n qubits.
func NewIdentity(n int) Pauli {
	return Pauli{X: make([]uint8, n), Z: make([]uint8, n)}
}

// ParsePauli converts a string such as "XZI" into BSF.
func ParsePauli(s string) (Pauli, error) {
	p := NewIdentity(len(s))
	for i, c := range []byte(s) {
		switch c {
		case 'I':
		case 'X':
			p.X[i] = 1
		case 'Y':
			p.X[i], p.Z[i] = 1, 1
		case 'Z':
			p.Z[i] = 1
		default:
			return Pauli{}, fmt.Errorf("%q at position %d: %w", c, i, ErrInvalidPauli)
		}
	}
	return p, nil
}

// MustParsePauli is like ParsePauli but panics on malformed input.
// Intended for package-level constants.
func MustParsePauli(s string) Pauli {
	p, err := ParsePauli(s)
	if err != nil {
		panic(fmt.Sprintf("MustParsePauli(%q): %v", s, err))
	}
	return p
}

// NumQubits returns the number of qubits the operator acts on.
func (p Pauli) NumQubits() int {
	return len(p.X)
}

// Single returns the single-qubit operator on qubit i (0-based).
func (p Pauli) Single(i int) byte {
	switch {
	case p.X[i] == 1 && p.Z[i] == 1:
		return 'Y'
	case p.X[i] == 1:
		return 'X'
	case p.Z[i] == 1:
		return 'Z'
	default:
		return 'I'
	}
}

// String renders the operator as a Pauli string, e.g. "IXZ".
func (p Pauli) String() string {
	var b strings.Builder
	b.Grow(p.NumQubits())
	for i := range p.X {
		b.WriteByte(p.Single(i))
	}
	return b.String()
}

// Weight returns the number of qubits on which the operator acts non-trivially.
func (p Pauli) Weight() int {
	w := 0
	for i := range p.X {
		if p.X[i]|p.Z[i] != 0 {
			w++
		}
	}
	return w
}

// IsIdentity reports whether the operator has weight zero.
func (p Pauli) IsIdentity() bool {
	return p.Weight() == 0
}

// Clone returns a deep copy.
func (p Pauli) Clone() Pauli {
	return Pauli{
		X: append([]uint8(nil), p.X...),
		Z: append([]uint8(nil), p.Z...),
	}
}

// Equal reports whether both operators act identically on every qubit.
func (p Pauli) Equal(other Pauli) bool {
	if p.NumQubits() != other.NumQubits() {
		return false
	}
	for i := range p.X {
		if p.X[i] != other.X[i] || p.Z[i] != other.Z[i] {
			return false
		}
	}
	return true
}

// Mul returns the product p*other up to phase (XOR of the BSF vectors).
func (p Pauli) Mul(other Pauli) (Pauli, error) {
	if p.NumQubits() != other.NumQubits() {
		return Pauli{}, fmt.Errorf("multiply %d-qubit by %d-qubit operator: %w",
			p.NumQubits(), other.NumQubits(), ErrQubitMismatch)
	}
	out := NewIdentity(p.NumQubits())
	for i := range p.X {
		out.X[i] = p.X[i] ^ other.X[i]
		out.Z[i] = p.Z[i] ^ other.Z[i]
	}
	return out, nil
}

// Symplectic returns the binary symplectic product of a and b:
// 0 if the operators commute, 1 if they anticommute.
// Panics if a and b act on different numbers of qubits.
func Symplectic(a, b Pauli) uint8 {
	if a.NumQubits() != b.NumQubits() {
		panic(fmt.Sprintf("Symplectic: %d-qubit and %d-qubit operators", a.NumQubits(), b.NumQubits()))
	}
	var s uint8
	for i := range a.X {
		s ^= (a.X[i] & b.Z[i]) ^ (a.Z[i] & b.X[i])
	}
	return s
}

// ClonePaulis deep-copies a slice of operators.
func ClonePaulis(ps []Pauli) []Pauli {
	out := make([]Pauli, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}
	return out
}

// Syndrome holds one bit per stabilizer generator, in generator order.
type Syndrome []uint8

// String renders the syndrome bits, e.g. "01".
func (s Syndrome) String() string {
	var b strings.Builder
	for _, bit := range s {
		fmt.Fprintf(&b, "%d", bit)
	}
	return b.String()
}

// IsTrivial reports whether every stabilizer measured +1.
func (s Syndrome) IsTrivial() bool {
	for _, bit := range s {
		if bit != 0 {
			return false
		}
	}
	return true
}

// ComputeSyndrome measures each stabilizer against op.
func ComputeSyndrome(op Pauli, stabilizers []Pauli) Syndrome {
	s := make(Syndrome, len(stabilizers))
	for i, stabilizer := range stabilizers {
		s[i] = Symplectic(op, stabilizer)
	}
	return s
}
