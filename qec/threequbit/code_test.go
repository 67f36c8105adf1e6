package threequbit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/qecsim/qecsimext/qec"
)

func pauliStrings(ps []qec.Pauli) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

func TestCode_Operators(t *testing.T) {
	code := Code{}
	tests := []struct {
		name string
		got  []qec.Pauli
		want []string
	}{
		{"stabilizers", code.Stabilizers(), []string{"ZZI", "IZZ"}},
		{"logical xs", code.LogicalXs(), []string{"XXX"}},
		{"logical zs", code.LogicalZs(), []string{"IIZ"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, pauliStrings(tt.got)); diff != "" {
				t.Errorf("operators mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCode_ParametersAndLabel(t *testing.T) {
	code := Code{}
	assert.Equal(t, qec.NKD{N: 3, K: 1, D: 1}, code.NKD())
	assert.Equal(t, "3-qubit", code.Label())
}

func TestCode_StabilizersCommutePairwise(t *testing.T) {
	stabilizers := Code{}.Stabilizers()
	for i := range stabilizers {
		for j := range stabilizers {
			assert.Equal(t, uint8(0), qec.Symplectic(stabilizers[i], stabilizers[j]),
				"%s and %s must commute", stabilizers[i], stabilizers[j])
		}
	}
}

func TestCode_LogicalsCommuteWithStabilizers(t *testing.T) {
	code := Code{}
	for _, logical := range qec.Logicals(code) {
		assert.True(t, qec.ComputeSyndrome(logical, code.Stabilizers()).IsTrivial(),
			"logical %s must commute with every stabilizer", logical)
	}
}

func TestCode_LogicalXAnticommutesWithLogicalZ(t *testing.T) {
	code := Code{}
	assert.Equal(t, uint8(1), qec.Symplectic(code.LogicalXs()[0], code.LogicalZs()[0]))
}

func TestCode_ReturnsCopies(t *testing.T) {
	// GIVEN a caller that mutates the returned stabilizers
	code := Code{}
	s := code.Stabilizers()
	s[0].X[0] = 1
	s[1] = qec.MustParsePauli("XXX")

	// THEN later calls still see the original operators
	assert.Equal(t, []string{"ZZI", "IZZ"}, pauliStrings(code.Stabilizers()))
}
