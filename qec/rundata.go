// Aggregates per-trial outcomes of a run into the reported statistics.

package qec

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// RunData is the aggregated result of one run at one error probability.
// JSON keys follow the run data naming used by qecsim so that existing analysis
// scripts can read the output unchanged.
type RunData struct {
	Code                 string  `json:"code"`
	NKD                  NKD     `json:"n_k_d"`
	ErrorModel           string  `json:"error_model"`
	Decoder              string  `json:"decoder"`
	ErrorProbability     float64 `json:"error_probability"`
	NRun                 int     `json:"n_run"`
	NSuccess             int     `json:"n_success"`
	NFail                int     `json:"n_fail"`
	NLogicalCommutations []int   `json:"n_logical_commutations"` // per logical, Xs then Zs
	ErrorWeightTotal     int     `json:"error_weight_total"`
	ErrorWeightPvar      float64 `json:"error_weight_pvar"` // population variance of error weights
	LogicalFailureRate   float64 `json:"logical_failure_rate"`
	PhysicalErrorRate    float64 `json:"physical_error_rate"` // mean error weight / n
	WallTime             float64 `json:"wall_time"`           // seconds
}

func newRunData(code StabilizerCode, errorModel, decoder string, p float64, nLogicals int) *RunData {
	return &RunData{
		Code:                 code.Label(),
		NKD:                  code.NKD(),
		ErrorModel:           errorModel,
		Decoder:              decoder,
		ErrorProbability:     p,
		NLogicalCommutations: make([]int, nLogicals),
	}
}

func (d *RunData) finalize(w weightStats, elapsed time.Duration) {
	d.ErrorWeightTotal = w.total
	d.ErrorWeightPvar = w.pvar()
	if d.NRun > 0 {
		d.LogicalFailureRate = float64(d.NFail) / float64(d.NRun)
		if d.NKD.N > 0 {
			d.PhysicalErrorRate = float64(d.ErrorWeightTotal) / float64(d.NKD.N) / float64(d.NRun)
		}
	}
	d.WallTime = elapsed.Seconds()
}

// Print writes a human-readable summary of the run to w.
func (d *RunData) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Run Data ===")
	fmt.Fprintf(w, "Code                 : %s %s\n", d.Code, d.NKD)
	fmt.Fprintf(w, "Error Model          : %s\n", d.ErrorModel)
	fmt.Fprintf(w, "Decoder              : %s\n", d.Decoder)
	fmt.Fprintf(w, "Error Probability    : %v\n", d.ErrorProbability)
	fmt.Fprintf(w, "Runs                 : %d (success=%d, fail=%d)\n", d.NRun, d.NSuccess, d.NFail)
	fmt.Fprintf(w, "Logical Failure Rate : %.6f\n", d.LogicalFailureRate)
	fmt.Fprintf(w, "Physical Error Rate  : %.6f\n", d.PhysicalErrorRate)
	fmt.Fprintf(w, "Wall Time            : %.3fs\n", d.WallTime)
}

// WriteRunData encodes data as an indented JSON array.
func WriteRunData(w io.Writer, data []*RunData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding run data: %w", err)
	}
	return nil
}

// weightStats accumulates error weights with Welford's online algorithm.
type weightStats struct {
	count int
	total int
	mean  float64
	m2    float64
}

func (s *weightStats) add(weight int) {
	s.count++
	s.total += weight
	x := float64(weight)
	delta := x - s.mean
	s.mean += delta / float64(s.count)
	s.m2 += delta * (x - s.mean)
}

func (s weightStats) pvar() float64 {
	if s.count == 0 {
		return 0
	}
	return s.m2 / float64(s.count)
}
