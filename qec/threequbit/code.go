package threequbit

import (
	"sync"

	"github.com/qecsim/qecsimext/qec"
)

// CodeLabel is the label reported by Code.
const CodeLabel = "3-qubit"

var (
	stabilizers = sync.OnceValue(func() []qec.Pauli {
		return []qec.Pauli{qec.MustParsePauli("ZZI"), qec.MustParsePauli("IZZ")}
	})
	logicalXs = sync.OnceValue(func() []qec.Pauli {
		return []qec.Pauli{qec.MustParsePauli("XXX")}
	})
	logicalZs = sync.OnceValue(func() []qec.Pauli {
		return []qec.Pauli{qec.MustParsePauli("IIZ")}
	})
)

// Code is the 3-qubit bit-flip code with stabilizers ZZI, IZZ,
// logical X = XXX and logical Z = IIZ.
//
// Commutation relations hold by construction and are not checked at run time.
type Code struct{}

var _ qec.StabilizerCode = Code{}

// Stabilizers returns ZZI and IZZ.
func (Code) Stabilizers() []qec.Pauli {
	return qec.ClonePaulis(stabilizers())
}

// LogicalXs returns XXX.
func (Code) LogicalXs() []qec.Pauli {
	return qec.ClonePaulis(logicalXs())
}

// LogicalZs returns IIZ.
func (Code) LogicalZs() []qec.Pauli {
	return qec.ClonePaulis(logicalZs())
}

// NKD returns (3, 1, 1).
func (Code) NKD() qec.NKD {
	return qec.NKD{N: 3, K: 1, D: 1}
}

// Label returns "3-qubit".
func (Code) Label() string {
	return CodeLabel
}
