package qec

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/qecsim/qecsimext/qec/trace"
)

// Sweep runs one Run per error probability concurrently and returns the results in
// input order. Probability i draws from SubsystemProbability(i) of opts.RandomSeed,
// so results do not depend on goroutine scheduling. opts.Trace must be nil; use
// SweepTraced to record trials.
//
// The code, error model and decoder are shared across goroutines and must be
// safe for concurrent use (stateless components are).
func Sweep[C StabilizerCode](ctx context.Context, code C, errorModel ErrorModel[C], decoder Decoder[C], probabilities []float64, opts RunOptions) ([]*RunData, error) {
	return sweep(ctx, code, errorModel, decoder, probabilities, opts, nil)
}

// SweepTraced is Sweep with one TrialTrace per probability, returned in input
// order. Tracing does not change the draws: the results equal Sweep's for the
// same seed.
func SweepTraced[C StabilizerCode](ctx context.Context, code C, errorModel ErrorModel[C], decoder Decoder[C], probabilities []float64, opts RunOptions) ([]*RunData, []*trace.TrialTrace, error) {
	traces := make([]*trace.TrialTrace, len(probabilities))
	for i, p := range probabilities {
		traces[i] = trace.NewTrialTrace(p)
	}
	results, err := sweep(ctx, code, errorModel, decoder, probabilities, opts, traces)
	if err != nil {
		return nil, nil, err
	}
	return results, traces, nil
}

func sweep[C StabilizerCode](ctx context.Context, code C, errorModel ErrorModel[C], decoder Decoder[C], probabilities []float64,
	opts RunOptions, traces []*trace.TrialTrace) ([]*RunData, error) {
	if opts.Trace != nil {
		return nil, fmt.Errorf("sweep cannot share a trial trace: %w", ErrInvalidRunOptions)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	for _, p := range probabilities {
		if err := ValidateProbability(p); err != nil {
			return nil, err
		}
	}

	// PartitionedRNG is single-goroutine; derive every stream before fanning out.
	prng := NewPartitionedRNG(NewSimulationKey(opts.seed()))
	logrus.Infof("sweep: random_seed=%d probabilities=%v", prng.Key(), probabilities)
	rngs := make([]*rand.Rand, len(probabilities))
	for i := range probabilities {
		rngs[i] = prng.ForSubsystem(SubsystemProbability(i))
	}

	results := make([]*RunData, len(probabilities))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, p := range probabilities {
		i, p := i, p // per-iteration copy (go1.21 loop semantics)
		runOpts := opts
		if traces != nil {
			runOpts.Trace = traces[i]
		}
		eg.Go(func() error {
			data, err := run(egCtx, code, errorModel, decoder, p, runOpts, rngs[i])
			if err != nil {
				return fmt.Errorf("error probability %v: %w", p, err)
			}
			results[i] = data
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
