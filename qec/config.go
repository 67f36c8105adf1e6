package qec

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig describes a run (or sweep) in YAML form, as an alternative to CLI arguments.
//
//	code: ext_3qubit
//	error_model: ext_3qubit.bit_flip
//	decoder: ext_3qubit.lookup
//	error_probabilities: [0.1, 0.2]
//	max_runs: 1000
//	random_seed: 13
type RunConfig struct {
	Code               string    `yaml:"code"`
	ErrorModel         string    `yaml:"error_model"`
	Decoder            string    `yaml:"decoder"`
	ErrorProbabilities []float64 `yaml:"error_probabilities"`
	MaxRuns            int       `yaml:"max_runs"`
	MaxFailures        int       `yaml:"max_failures"`
	RandomSeed         *int64    `yaml:"random_seed"` // nil means "not set"
}

// LoadRunConfig reads and parses a YAML run configuration file.
// Unknown keys are rejected so that typos surface as errors.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var cfg RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &cfg, nil
}

// Validate checks component names against the registry and value ranges.
func (c *RunConfig) Validate() error {
	if !IsRegisteredCode(c.Code) {
		return fmt.Errorf("code %q: %w", c.Code, ErrUnknownComponent)
	}
	if !IsRegisteredErrorModel(c.ErrorModel) {
		return fmt.Errorf("error model %q: %w", c.ErrorModel, ErrUnknownComponent)
	}
	if !IsRegisteredDecoder(c.Decoder) {
		return fmt.Errorf("decoder %q: %w", c.Decoder, ErrUnknownComponent)
	}
	if len(c.ErrorProbabilities) == 0 {
		return fmt.Errorf("at least one error probability is required: %w", ErrInvalidRunOptions)
	}
	for _, p := range c.ErrorProbabilities {
		if err := ValidateProbability(p); err != nil {
			return err
		}
	}
	return c.Options().validate()
}

// Options converts the limits and seed into RunOptions.
func (c *RunConfig) Options() RunOptions {
	return RunOptions{
		MaxRuns:     c.MaxRuns,
		MaxFailures: c.MaxFailures,
		RandomSeed:  c.RandomSeed,
	}
}

// Components builds the configured code and binds the error model and decoder to it.
func (c *RunConfig) Components() (StabilizerCode, ErrorModel[StabilizerCode], Decoder[StabilizerCode], error) {
	code, err := NewCode(c.Code)
	if err != nil {
		return nil, nil, nil, err
	}
	errorModel, err := NewErrorModel(c.ErrorModel, code)
	if err != nil {
		return nil, nil, nil, err
	}
	decoder, err := NewDecoder(c.Decoder, code)
	if err != nil {
		return nil, nil, nil, err
	}
	return code, errorModel, decoder, nil
}
