// Package trace records per-trial outcomes of a Monte Carlo run for offline inspection.
// It stores plain data only and does not import qec, so the runner can depend on it.
package trace

// TrialRecord captures one trial: the sampled error, the measured syndrome, the
// decoder's recovery and whether the recovered state was logically correct.
// Operators are stored as Pauli strings (e.g. "IXI"), syndromes as bit strings (e.g. "01").
type TrialRecord struct {
	Index    int
	Error    string
	Syndrome string
	Recovery string
	Success  bool
}
