package threequbit_test

import (
	"fmt"

	"github.com/qecsim/qecsimext/qec"
	"github.com/qecsim/qecsimext/qec/threequbit"
)

func ExampleLookupDecoder_Decode() {
	code := threequbit.Code{}
	bitFlip := qec.MustParsePauli("IXI")
	syndrome := qec.ComputeSyndrome(bitFlip, code.Stabilizers())
	recovery := threequbit.LookupDecoder{}.Decode(code, syndrome)
	fmt.Println(syndrome, recovery)
	// Output: 11 IXI
}

func ExampleBitFlipErrorModel_ProbabilityDistribution() {
	d := threequbit.BitFlipErrorModel{}.ProbabilityDistribution(0.25)
	fmt.Println(d.I, d.X, d.Y, d.Z)
	// Output: 0.75 0.25 0 0
}
