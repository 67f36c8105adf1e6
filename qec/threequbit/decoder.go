package threequbit

import (
	"fmt"

	"github.com/qecsim/qecsimext/qec"
)

// DecoderLabel is the label reported by LookupDecoder.
const DecoderLabel = "3-qubit lookup"

// syndromeToRecovery maps each syndrome (ZZI bit, IZZ bit) to the most probable
// bit-flip.
var syndromeToRecovery = map[string]qec.Pauli{
	"00": qec.MustParsePauli("III"),
	"01": qec.MustParsePauli("IIX"),
	"10": qec.MustParsePauli("XII"),
	"11": qec.MustParsePauli("IXI"),
}

// LookupDecoder returns the minimum-weight bit-flip consistent with the syndrome.
type LookupDecoder struct{}

var _ qec.Decoder[Code] = LookupDecoder{}

// Decode looks syndrome up in the 4-entry table. Every 2-bit syndrome is covered;
// anything else cannot come from Code and panics.
func (LookupDecoder) Decode(_ Code, syndrome qec.Syndrome) qec.Pauli {
	recovery, ok := syndromeToRecovery[syndrome.String()]
	if !ok {
		panic(fmt.Sprintf("LookupDecoder.Decode: unmapped syndrome %v", []uint8(syndrome)))
	}
	return recovery.Clone()
}

// Label returns "3-qubit lookup".
func (LookupDecoder) Label() string {
	return DecoderLabel
}
