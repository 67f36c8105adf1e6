package qec

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

var (
	// ErrUnknownComponent is returned when no code, error model or decoder is
	// registered under the requested name.
	ErrUnknownComponent = errors.New("qec: unknown component")

	// ErrIncompatibleCode is returned when an error model or decoder is bound to a
	// code of a type it was not written for.
	ErrIncompatibleCode = errors.New("qec: incompatible code")
)

// Entry describes a registered component for listings and CLI help.
type Entry struct {
	Name        string
	Description string
}

type codeEntry struct {
	description string
	factory     func() StabilizerCode
}

type errorModelEntry struct {
	description string
	bind        func(code StabilizerCode) (ErrorModel[StabilizerCode], error)
}

type decoderEntry struct {
	description string
	bind        func(code StabilizerCode) (Decoder[StabilizerCode], error)
}

// Extension points. Populated from init() in plugin packages (see
// qec/threequbit/register.go) and read-only afterwards.
var (
	codes       = map[string]codeEntry{}
	errorModels = map[string]errorModelEntry{}
	decoders    = map[string]decoderEntry{}
)

// RegisterCode adds a code factory under name. description is the one-line help
// text shown by `qecsimext list`. Panics if name is already taken.
func RegisterCode[C StabilizerCode](name, description string, factory func() C) {
	if _, dup := codes[name]; dup {
		panic(fmt.Sprintf("RegisterCode: duplicate code %q", name))
	}
	codes[name] = codeEntry{
		description: description,
		factory:     func() StabilizerCode { return factory() },
	}
}

// RegisterErrorModel adds an error model factory for codes of type C.
// Panics if name is already taken.
func RegisterErrorModel[C StabilizerCode](name, description string, factory func() ErrorModel[C]) {
	if _, dup := errorModels[name]; dup {
		panic(fmt.Sprintf("RegisterErrorModel: duplicate error model %q", name))
	}
	errorModels[name] = errorModelEntry{
		description: description,
		bind: func(code StabilizerCode) (ErrorModel[StabilizerCode], error) {
			if _, ok := code.(C); !ok {
				return nil, fmt.Errorf("error model %q cannot be used with code %q (%T): %w",
					name, code.Label(), code, ErrIncompatibleCode)
			}
			return erasedErrorModel[C]{model: factory()}, nil
		},
	}
}

// RegisterDecoder adds a decoder factory for codes of type C.
// Panics if name is already taken.
func RegisterDecoder[C StabilizerCode](name, description string, factory func() Decoder[C]) {
	if _, dup := decoders[name]; dup {
		panic(fmt.Sprintf("RegisterDecoder: duplicate decoder %q", name))
	}
	decoders[name] = decoderEntry{
		description: description,
		bind: func(code StabilizerCode) (Decoder[StabilizerCode], error) {
			if _, ok := code.(C); !ok {
				return nil, fmt.Errorf("decoder %q cannot be used with code %q (%T): %w",
					name, code.Label(), code, ErrIncompatibleCode)
			}
			return erasedDecoder[C]{decoder: factory()}, nil
		},
	}
}

// NewCode constructs the code registered under name.
func NewCode(name string) (StabilizerCode, error) {
	entry, ok := codes[name]
	if !ok {
		return nil, fmt.Errorf("code %q: %w", name, ErrUnknownComponent)
	}
	return entry.factory(), nil
}

// NewErrorModel constructs the error model registered under name and binds it to code.
func NewErrorModel(name string, code StabilizerCode) (ErrorModel[StabilizerCode], error) {
	entry, ok := errorModels[name]
	if !ok {
		return nil, fmt.Errorf("error model %q: %w", name, ErrUnknownComponent)
	}
	return entry.bind(code)
}

// NewDecoder constructs the decoder registered under name and binds it to code.
func NewDecoder(name string, code StabilizerCode) (Decoder[StabilizerCode], error) {
	entry, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("decoder %q: %w", name, ErrUnknownComponent)
	}
	return entry.bind(code)
}

// IsRegisteredCode reports whether a code is registered under name.
func IsRegisteredCode(name string) bool {
	_, ok := codes[name]
	return ok
}

// IsRegisteredErrorModel reports whether an error model is registered under name.
func IsRegisteredErrorModel(name string) bool {
	_, ok := errorModels[name]
	return ok
}

// IsRegisteredDecoder reports whether a decoder is registered under name.
func IsRegisteredDecoder(name string) bool {
	_, ok := decoders[name]
	return ok
}

// Codes lists registered codes sorted by name.
func Codes() []Entry {
	out := make([]Entry, 0, len(codes))
	for name, e := range codes {
		out = append(out, Entry{Name: name, Description: e.description})
	}
	return sortEntries(out)
}

// ErrorModels lists registered error models sorted by name.
func ErrorModels() []Entry {
	out := make([]Entry, 0, len(errorModels))
	for name, e := range errorModels {
		out = append(out, Entry{Name: name, Description: e.description})
	}
	return sortEntries(out)
}

// Decoders lists registered decoders sorted by name.
func Decoders() []Entry {
	out := make([]Entry, 0, len(decoders))
	for name, e := range decoders {
		out = append(out, Entry{Name: name, Description: e.description})
	}
	return sortEntries(out)
}

func sortEntries(entries []Entry) []Entry {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// erasedErrorModel adapts an ErrorModel[C] to ErrorModel[StabilizerCode] after
// the bind-time type check.
type erasedErrorModel[C StabilizerCode] struct {
	model ErrorModel[C]
}

func (e erasedErrorModel[C]) ProbabilityDistribution(p float64) Distribution {
	return e.model.ProbabilityDistribution(p)
}

func (e erasedErrorModel[C]) Generate(code StabilizerCode, p float64, rng *rand.Rand) Pauli {
	return e.model.Generate(mustCode[C](code), p, rng)
}

func (e erasedErrorModel[C]) Label() string {
	return e.model.Label()
}

type erasedDecoder[C StabilizerCode] struct {
	decoder Decoder[C]
}

func (e erasedDecoder[C]) Decode(code StabilizerCode, syndrome Syndrome) Pauli {
	return e.decoder.Decode(mustCode[C](code), syndrome)
}

func (e erasedDecoder[C]) Label() string {
	return e.decoder.Label()
}

// mustCode recovers the concrete code type. The registry has already checked the
// bound code, so a failure here means a different code was passed after binding.
func mustCode[C StabilizerCode](code StabilizerCode) C {
	c, ok := code.(C)
	if !ok {
		panic(fmt.Sprintf("component bound to %T used with %T", *new(C), code))
	}
	return c
}
