package qec

import (
	"math/rand"
)

// repCode is a 2-qubit repetition code used by the qec tests:
// stabilizer ZZ, logical X = XX, logical Z = IZ.
type repCode struct{}

func (repCode) Stabilizers() []Pauli { return []Pauli{MustParsePauli("ZZ")} }
func (repCode) LogicalXs() []Pauli   { return []Pauli{MustParsePauli("XX")} }
func (repCode) LogicalZs() []Pauli   { return []Pauli{MustParsePauli("IZ")} }
func (repCode) NKD() NKD             { return NKD{N: 2, K: 1, D: 1} }
func (repCode) Label() string        { return "2-qubit" }

// otherCode stands in for any code the rep* components were not written for.
type otherCode struct{}

func (otherCode) Stabilizers() []Pauli { return nil }
func (otherCode) LogicalXs() []Pauli   { return []Pauli{MustParsePauli("X")} }
func (otherCode) LogicalZs() []Pauli   { return []Pauli{MustParsePauli("Z")} }
func (otherCode) NKD() NKD             { return NKD{N: 1, K: 1, D: 1} }
func (otherCode) Label() string        { return "other" }

// repFlipModel flips each qubit independently with probability p.
type repFlipModel struct{}

func (repFlipModel) ProbabilityDistribution(p float64) Distribution {
	return Distribution{I: 1 - p, X: p}
}

func (m repFlipModel) Generate(code repCode, p float64, rng *rand.Rand) Pauli {
	return SamplePauli(code.NKD().N, m.ProbabilityDistribution(p), rng)
}

func (repFlipModel) Label() string { return "2-qubit flip" }

// scriptedModel returns errs in order, cycling. Not safe for concurrent use.
type scriptedModel struct {
	errs []Pauli
	next *int
}

func newScriptedModel(errs ...string) scriptedModel {
	m := scriptedModel{next: new(int)}
	for _, e := range errs {
		m.errs = append(m.errs, MustParsePauli(e))
	}
	return m
}

func (scriptedModel) ProbabilityDistribution(p float64) Distribution {
	return Distribution{I: 1 - p, X: p}
}

func (m scriptedModel) Generate(repCode, float64, *rand.Rand) Pauli {
	e := m.errs[*m.next%len(m.errs)]
	*m.next++
	return e.Clone()
}

func (scriptedModel) Label() string { return "scripted" }

// repDecoder corrects syndrome 1 by flipping qubit 1.
type repDecoder struct{}

func (repDecoder) Decode(_ repCode, syndrome Syndrome) Pauli {
	if syndrome[0] == 1 {
		return MustParsePauli("XI")
	}
	return MustParsePauli("II")
}

func (repDecoder) Label() string { return "2-qubit lookup" }

// fixedDecoder ignores the syndrome.
type fixedDecoder struct{ recovery Pauli }

func (d fixedDecoder) Decode(repCode, Syndrome) Pauli { return d.recovery.Clone() }
func (fixedDecoder) Label() string                    { return "fixed" }

const (
	testCodeName       = "test_rep2"
	testErrorModelName = "test_rep2.flip"
	testDecoderName    = "test_rep2.lookup"
	testOtherCodeName  = "test_other"
)

func init() {
	RegisterCode(testCodeName, "2-qubit test code", func() repCode { return repCode{} })
	RegisterErrorModel(testErrorModelName, "2-qubit test flips", func() ErrorModel[repCode] { return repFlipModel{} })
	RegisterDecoder(testDecoderName, "2-qubit test lookup", func() Decoder[repCode] { return repDecoder{} })
	RegisterCode(testOtherCodeName, "incompatible test code", func() otherCode { return otherCode{} })
}

func int64Ptr(v int64) *int64 { return &v }
