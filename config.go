package corefsa

// Config controls how Compile builds a Regex: which optimizations run over
// the NFA it constructs, and the limits on the Dfa it keeps and on literal
// extraction.
//
// Example:
//
//	config := corefsa.DefaultConfig()
//	config.Minimize = false // skip Moore's algorithm, keep the raw subset DFA
//	re, err := corefsa.CompileWithConfig(`(a+b)*abb`, config)
type Config struct {
	// UseDFA determines whether Compile runs subset construction up front.
	// When false, Test and Search fall back to the NFA's multi-path
	// simulation, which costs more per byte of input but nothing at compile
	// time.
	// Default: true
	UseDFA bool

	// Minimize runs Moore's partition-refinement algorithm over the subset
	// DFA once it is built. Has no effect when UseDFA is false.
	// Default: true
	Minimize bool

	// MaxDFAStates caps the number of states of the subset DFA. Compile
	// checks it once subset construction has finished and returns an error
	// if the DFA is larger; it bounds the DFA a Regex keeps, not the memory
	// used while building it.
	// Default: 10000
	MaxDFAStates int

	// EnablePrefilter builds a literal prefilter from the pattern's
	// extracted prefix literals for use by Search. When false, Search
	// scans every candidate start position directly against the automaton.
	// Default: true
	EnablePrefilter bool

	// MaxLiterals limits how many literal alternatives the prefix extractor
	// keeps. A concatenation whose literal set grows past it is cut to
	// inexact 4-byte prefixes; if more than MaxLiterals still remain, or a
	// union has more alternatives than that, no prefilter is built.
	// Default: 64
	MaxLiterals int

	// MaxLiteralLen caps the byte length of any single extracted literal.
	// Default: 64
	MaxLiteralLen int
}

// DefaultConfig returns a Config tuned for typical patterns: DFA construction
// and minimization both enabled, a generous but bounded state cap, and
// prefiltering on for Search.
func DefaultConfig() Config {
	return Config{
		UseDFA:          true,
		Minimize:        true,
		MaxDFAStates:    10000,
		EnablePrefilter: true,
		MaxLiterals:     64,
		MaxLiteralLen:   64,
	}
}

// Validate reports whether c's fields are within usable ranges.
//
// Valid ranges:
//   - MaxDFAStates: 1 to 1,000,000 (only checked when UseDFA is true)
//   - MaxLiterals: 1 to 1,000 (only checked when EnablePrefilter is true)
//   - MaxLiteralLen: 1 to 4,096 (only checked when EnablePrefilter is true)
func (c Config) Validate() error {
	if c.UseDFA {
		if c.MaxDFAStates < 1 || c.MaxDFAStates > 1_000_000 {
			return &ConfigError{Field: "MaxDFAStates", Message: "must be between 1 and 1,000,000"}
		}
	}
	if c.EnablePrefilter {
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{Field: "MaxLiterals", Message: "must be between 1 and 1,000"}
		}
		if c.MaxLiteralLen < 1 || c.MaxLiteralLen > 4_096 {
			return &ConfigError{Field: "MaxLiteralLen", Message: "must be between 1 and 4,096"}
		}
	}
	return nil
}

// ConfigError reports an out-of-range Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "corefsa: invalid config: " + e.Field + ": " + e.Message
}
