// Package qec provides the host side of a stabilizer-code Monte Carlo simulator:
// Pauli operators in binary symplectic form, the capability contracts that codes,
// error models and decoders implement, a named registry of those components, and
// the seeded runner that ties them together.
//
// # Reading Guide
//
//   - pauli.go: Pauli operators, symplectic product, syndromes
//   - model.go: StabilizerCode, ErrorModel[C], Decoder[C]
//   - run.go: RunOnce and Run, the error → syndrome → recovery → check loop
//   - sweep.go: concurrent runs over several error probabilities
//
// # Extension Points
//
// Components live in sub-packages and register themselves from init():
//   - qec/threequbit/: 3-qubit bit-flip code, bit-flip error model, lookup decoder
//
// Error models and decoders are parameterised by the code type they accept, so a
// mismatch is a compile error when the types are known statically. The registry
// erases the parameter for the CLI and checks it once, at bind time.
package qec
