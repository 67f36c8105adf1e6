// register.go wires the 3-qubit components into the qec registry. Any package that
// imports qec/threequbit (the CLI does) makes them available by name.
package threequbit

import "github.com/qecsim/qecsimext/qec"

// Registry names.
const (
	CodeName       = "ext_3qubit"
	ErrorModelName = "ext_3qubit.bit_flip"
	DecoderName    = "ext_3qubit.lookup"
)

func init() {
	qec.RegisterCode(CodeName, "3-qubit (e.g. plugin code)", func() Code { return Code{} })
	qec.RegisterErrorModel(ErrorModelName, "3-qubit bit-flip (e.g. plugin error model)",
		func() qec.ErrorModel[Code] { return BitFlipErrorModel{} })
	qec.RegisterDecoder(DecoderName, "3-qubit lookup (e.g. plugin decoder)",
		func() qec.Decoder[Code] { return LookupDecoder{} })
}
