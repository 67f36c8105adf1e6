// Package threequbit implements the 3-qubit bit-flip repetition code as a set of
// plugin components: the code itself, a bit-flip error model and a syndrome
// lookup decoder.
//
// The code corrects any single bit-flip but no phase-flip. Importing the package
// registers the components with qec under the names ext_3qubit,
// ext_3qubit.bit_flip and ext_3qubit.lookup.
package threequbit
