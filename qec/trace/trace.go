package trace

// TraceLevel controls the verbosity of trial tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTrials records every trial.
	TraceLevelTrials TraceLevel = "trials"
)

var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelTrials: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TrialTrace collects trial records for a single run at one error probability.
// Not safe for concurrent use; give each run its own trace.
type TrialTrace struct {
	Probability float64
	Records     []TrialRecord
}

// NewTrialTrace creates an empty trace for error probability p.
func NewTrialTrace(p float64) *TrialTrace {
	return &TrialTrace{
		Probability: p,
		Records:     make([]TrialRecord, 0),
	}
}

// Record appends a trial record.
func (t *TrialTrace) Record(record TrialRecord) {
	t.Records = append(t.Records, record)
}
