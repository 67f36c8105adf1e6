package trace

// TraceSummary aggregates statistics from a TrialTrace.
type TraceSummary struct {
	TotalTrials          int
	SuccessCount         int
	FailureCount         int
	FailureRate          float64
	SyndromeDistribution map[string]int // syndrome bits → count of trials
	FailingErrors        map[string]int // error Pauli → count of failed trials
}

// Summarize computes aggregate statistics from a TrialTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t *TrialTrace) *TraceSummary {
	summary := &TraceSummary{
		SyndromeDistribution: make(map[string]int),
		FailingErrors:        make(map[string]int),
	}
	if t == nil {
		return summary
	}

	summary.TotalTrials = len(t.Records)
	for _, r := range t.Records {
		summary.SyndromeDistribution[r.Syndrome]++
		if r.Success {
			summary.SuccessCount++
		} else {
			summary.FailureCount++
			summary.FailingErrors[r.Error]++
		}
	}
	if summary.TotalTrials > 0 {
		summary.FailureRate = float64(summary.FailureCount) / float64(summary.TotalTrials)
	}
	return summary
}
