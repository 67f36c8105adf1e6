package threequbit

import (
	"math/rand"
	"time"

	"github.com/qecsim/qecsimext/qec"
)

// ErrorModelLabel is the label reported by BitFlipErrorModel.
const ErrorModelLabel = "3-qubit bit-flip"

// BitFlipErrorModel applies an X to each qubit of the 3-qubit code independently
// with probability p.
type BitFlipErrorModel struct{}

var _ qec.ErrorModel[Code] = BitFlipErrorModel{}

// ProbabilityDistribution returns (1-p, p, 0, 0).
// p is not range-checked: values outside [0, 1] give an invalid distribution.
// Phase-type errors are deliberately absent.
func (BitFlipErrorModel) ProbabilityDistribution(p float64) qec.Distribution {
	return qec.Distribution{I: 1 - p, X: p, Y: 0, Z: 0}
}

// Generate draws one Pauli per qubit. A nil rng is replaced by a time-seeded one;
// pass a seeded rng for reproducible errors.
func (m BitFlipErrorModel) Generate(code Code, p float64, rng *rand.Rand) qec.Pauli {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return qec.SamplePauli(code.NKD().N, m.ProbabilityDistribution(p), rng)
}

// Label returns "3-qubit bit-flip".
func (BitFlipErrorModel) Label() string {
	return ErrorModelLabel
}
