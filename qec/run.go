package qec

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/qecsim/qecsimext/qec/trace"
)

var (
	// ErrInvalidProbability is returned when an error probability lies outside [0, 1].
	ErrInvalidProbability = errors.New("qec: error probability must be in [0, 1]")

	// ErrInvalidRunOptions is returned for negative run limits or unsupported option combinations.
	ErrInvalidRunOptions = errors.New("qec: invalid run options")
)

// RunOptions bounds a Monte Carlo run.
// A run stops as soon as MaxRuns trials have been run or MaxFailures logical
// failures have been seen, whichever comes first. Zero means "no limit"; when both
// are zero a single trial is run.
type RunOptions struct {
	MaxRuns     int
	MaxFailures int
	// RandomSeed fixes the error sequence. Nil picks a time-based seed.
	RandomSeed *int64
	// Trace, if non-nil, receives one record per trial. Only honoured by Run;
	// SweepTraced supplies one trace per probability itself.
	Trace *trace.TrialTrace
}

func (o RunOptions) validate() error {
	if o.MaxRuns < 0 {
		return fmt.Errorf("max runs %d must be non-negative: %w", o.MaxRuns, ErrInvalidRunOptions)
	}
	if o.MaxFailures < 0 {
		return fmt.Errorf("max failures %d must be non-negative: %w", o.MaxFailures, ErrInvalidRunOptions)
	}
	return nil
}

// seed returns the configured seed, or a fresh one derived from the wall clock.
func (o RunOptions) seed() int64 {
	if o.RandomSeed != nil {
		return *o.RandomSeed
	}
	s := time.Now().UnixNano()
	logrus.Debugf("No random seed given, using %d", s)
	return s
}

// ValidateProbability checks that p is a usable physical error probability.
func ValidateProbability(p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("error probability %v: %w", p, ErrInvalidProbability)
	}
	return nil
}

// TrialResult is the outcome of a single error-decode-recover cycle.
type TrialResult struct {
	Error    Pauli
	Syndrome Syndrome
	Recovery Pauli
	// LogicalCommutations holds the symplectic product of the recovered operator
	// with each logical (Xs then Zs). Any 1 is a logical failure.
	LogicalCommutations []uint8
	// ReturnedToCodespace is false when recovery*error anticommutes with a stabilizer.
	ReturnedToCodespace bool
	Success             bool
}

// RunOnce samples an error on code, decodes its syndrome and checks whether the
// recovery restores the encoded state.
func RunOnce[C StabilizerCode](code C, errorModel ErrorModel[C], decoder Decoder[C], p float64, rng *rand.Rand) (TrialResult, error) {
	return runTrial(code, errorModel, decoder, p, rng, code.Stabilizers(), Logicals(code))
}

func runTrial[C StabilizerCode](code C, errorModel ErrorModel[C], decoder Decoder[C], p float64, rng *rand.Rand,
	stabilizers, logicals []Pauli) (TrialResult, error) {
	n := code.NKD().N

	errPauli := errorModel.Generate(code, p, rng)
	if errPauli.NumQubits() != n {
		return TrialResult{}, fmt.Errorf("error model %q generated %d-qubit error for %d-qubit code: %w",
			errorModel.Label(), errPauli.NumQubits(), n, ErrQubitMismatch)
	}
	syndrome := ComputeSyndrome(errPauli, stabilizers)

	recovery := decoder.Decode(code, syndrome)
	recovered, err := recovery.Mul(errPauli)
	if err != nil {
		return TrialResult{}, fmt.Errorf("decoder %q recovery: %w", decoder.Label(), err)
	}

	result := TrialResult{
		Error:               errPauli,
		Syndrome:            syndrome,
		Recovery:            recovery,
		ReturnedToCodespace: ComputeSyndrome(recovered, stabilizers).IsTrivial(),
		LogicalCommutations: make([]uint8, len(logicals)),
	}
	if !result.ReturnedToCodespace {
		logrus.Warnf("RECOVERY DOES NOT RETURN TO CODESPACE: error=%s syndrome=%s recovery=%s",
			errPauli, syndrome, recovery)
	}
	commutes := true
	for i, logical := range logicals {
		result.LogicalCommutations[i] = Symplectic(recovered, logical)
		if result.LogicalCommutations[i] != 0 {
			commutes = false
		}
	}
	result.Success = result.ReturnedToCodespace && commutes

	logrus.Debugf("trial: error=%s syndrome=%s recovery=%s success=%t",
		errPauli, syndrome, recovery, result.Success)
	return result, nil
}

// Run executes repeated trials at error probability p and aggregates the outcome.
// The trials draw from the SubsystemTrials stream of opts.RandomSeed, so equal seeds
// reproduce equal results. Cancelling ctx aborts between trials.
func Run[C StabilizerCode](ctx context.Context, code C, errorModel ErrorModel[C], decoder Decoder[C], p float64, opts RunOptions) (*RunData, error) {
	if err := ValidateProbability(p); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	prng := NewPartitionedRNG(NewSimulationKey(opts.seed()))
	logrus.Infof("run: random_seed=%d", prng.Key())
	return run(ctx, code, errorModel, decoder, p, opts, prng.ForSubsystem(SubsystemTrials))
}

func run[C StabilizerCode](ctx context.Context, code C, errorModel ErrorModel[C], decoder Decoder[C], p float64,
	opts RunOptions, rng *rand.Rand) (*RunData, error) {
	maxRuns, maxFailures := opts.MaxRuns, opts.MaxFailures
	if maxRuns == 0 && maxFailures == 0 {
		maxRuns = 1
	}

	logrus.Infof("run: code=%s error_model=%s decoder=%s p=%v max_runs=%d max_failures=%d",
		code.Label(), errorModel.Label(), decoder.Label(), p, maxRuns, maxFailures)

	start := time.Now()
	stabilizers := code.Stabilizers()
	logicals := Logicals(code)
	data := newRunData(code, errorModel.Label(), decoder.Label(), p, len(logicals))
	var weights weightStats

	for (maxRuns == 0 || data.NRun < maxRuns) && (maxFailures == 0 || data.NFail < maxFailures) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := runTrial(code, errorModel, decoder, p, rng, stabilizers, logicals)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", data.NRun, err)
		}

		if opts.Trace != nil {
			opts.Trace.Record(trace.TrialRecord{
				Index:    data.NRun,
				Error:    result.Error.String(),
				Syndrome: result.Syndrome.String(),
				Recovery: result.Recovery.String(),
				Success:  result.Success,
			})
		}

		data.NRun++
		if result.Success {
			data.NSuccess++
		} else {
			data.NFail++
		}
		for i, c := range result.LogicalCommutations {
			data.NLogicalCommutations[i] += int(c)
		}
		weights.add(result.Error.Weight())
	}

	data.finalize(weights, time.Since(start))
	logrus.Infof("run complete: n_run=%d n_fail=%d logical_failure_rate=%.6f",
		data.NRun, data.NFail, data.LogicalFailureRate)
	return data, nil
}
