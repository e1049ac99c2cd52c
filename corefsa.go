// Package corefsa implements a finite-state-automaton based regular
// expression engine over the small algebra of package regexsyn: literal
// symbols, concatenation, union, and Kleene star (plus the two constant
// languages lambda and null).
//
// A pattern compiles to an Nfa via Thompson construction (package nfa),
// optionally determinized and minimized into a Dfa (package dfa). The two
// representations stay interchangeable in both directions: an automaton
// built from a transition-graph file (package graph, in JFLAP or this
// engine's own text format) can be converted back to a regex via the
// generalized-transition-graph state-elimination algorithm (package gtg).
//
// Basic usage:
//
//	re, err := corefsa.Compile(`(a+b)*abb`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.Test("aabb") // true
//
// Loading a hand-authored automaton and recovering its regex:
//
//	re, err := corefsa.FromText(f)
//	fmt.Println(re.ToRegex())
package corefsa

import (
	"io"
	"unicode/utf8"

	"github.com/corefsa/corefsa/dfa"
	"github.com/corefsa/corefsa/gtg"
	"github.com/corefsa/corefsa/graph"
	"github.com/corefsa/corefsa/literal"
	"github.com/corefsa/corefsa/nfa"
	"github.com/corefsa/corefsa/prefilter"
	"github.com/corefsa/corefsa/regexsyn"
)

// Regex is a compiled pattern or loaded automaton. The zero value is not
// usable; construct one with Compile, CompileWithConfig, FromGraph,
// FromJFLAP, or FromText.
//
// Test, TestBacktrack and Search only read the automaton built at
// construction time and are safe for concurrent use. ToRegex reassigns the
// display labels of the Nfa's states, as do NumStates when no Dfa was built
// and String on a Regex built from a graph, so those calls are not safe to
// run concurrently with each other.
type Regex struct {
	source string // original pattern text, or "" when built from a graph
	n      *nfa.Nfa
	d      *dfa.Dfa // nil when Config.UseDFA is false
	pf     prefilter.Prefilter
	config Config
}

// Compile parses pattern and builds a Regex using DefaultConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern is invalid.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("corefsa: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig parses pattern and builds a Regex, applying config to
// control determinization, minimization, and prefiltering.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, &CompileError{Pattern: pattern, Stage: "config", Err: err}
	}

	tree, err := regexsyn.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Stage: "parse", Err: err}
	}

	re := &Regex{source: pattern, n: nfa.Build(tree), config: config}

	if config.UseDFA {
		d := dfa.FromNFA(re.n)
		if d.NumStates() > config.MaxDFAStates {
			return nil, &CompileError{Pattern: pattern, Stage: "determinize", Err: ErrTooManyStates}
		}
		if config.Minimize {
			d = d.Minimize()
		}
		re.d = d
	}

	if config.EnablePrefilter {
		re.pf = buildPrefilter(tree, config)
	}

	return re, nil
}

func buildPrefilter(tree *regexsyn.Tree, config Config) prefilter.Prefilter {
	extractor := literal.New(literal.ExtractorConfig{
		MaxLiterals:       config.MaxLiterals,
		MaxLiteralLen:     config.MaxLiteralLen,
		CrossProductLimit: literal.DefaultConfig().CrossProductLimit,
	})
	// Search takes every prefilter candidate as a match start, so only
	// prefix literals may produce candidates.
	prefixes := extractor.ExtractPrefixes(tree)
	return prefilter.NewBuilder(prefixes, nil).Build()
}

// FromGraph builds a Regex directly from an already-validated deterministic
// transition graph, skipping Thompson construction and subset construction
// entirely. It fails with the same error FromGraph in package dfa returns
// when g is not a valid DFA.
func FromGraph(g *graph.TransitionGraph) (*Regex, error) {
	d, err := dfa.FromGraph(g)
	if err != nil {
		return nil, err
	}
	return &Regex{n: d.ToNFA(), d: d, config: DefaultConfig()}, nil
}

// FromJFLAP loads a transition graph in JFLAP's XML format from r and builds
// a Regex from it.
func FromJFLAP(r io.Reader) (*Regex, error) {
	g, err := graph.LoadJFLAP(r)
	if err != nil {
		return nil, err
	}
	return FromGraph(g)
}

// FromText loads a transition graph in this engine's own text format from r
// (see package graph for the grammar) and builds a Regex from it.
func FromText(r io.Reader) (*Regex, error) {
	g, err := graph.LoadText(r)
	if err != nil {
		return nil, err
	}
	return FromGraph(g)
}

// Test reports whether s is accepted by the automaton in its entirety: the
// whole string, not a substring of it, must match.
func (r *Regex) Test(s string) bool {
	if r.d != nil {
		return r.d.Test(s)
	}
	return r.n.Test(s)
}

// TestBacktrack is like Test but always walks the Nfa with the backtracking
// simulation (package nfa) instead of a Dfa, regardless of Config.UseDFA.
// It exists to cross-check the two acceptance algorithms agree; on patterns
// with heavy backtracking it is exponentially slower than Test.
func (r *Regex) TestBacktrack(s string) bool {
	return r.n.TestBacktrack(s)
}

// ToRegex recovers a regex for the automaton's language via the generalized
// transition graph state-elimination algorithm (package gtg). For a Regex
// built from Compile this is not necessarily textually equal to the source
// pattern, but it is equivalent: every string one accepts, the other does
// too.
func (r *Regex) ToRegex() string {
	return gtg.Synthesize(r.n).String()
}

// NumStates returns the number of states in whichever automaton Test
// actually walks: the Dfa's if Config.UseDFA built one, otherwise the
// reachable states of the underlying Nfa.
func (r *Regex) NumStates() int {
	if r.d != nil {
		return r.d.NumStates()
	}
	return r.n.NumStates()
}

// String returns the pattern text Compile was given, or the result of
// ToRegex for a Regex built from a transition graph.
func (r *Regex) String() string {
	if r.source != "" {
		return r.source
	}
	return r.ToRegex()
}

// Search returns the leftmost match of the automaton's language as a
// substring of haystack, trying successive start positions in byte order
// and, at each one, taking the longest run of the automaton's total
// transition function that ends on a final state. It reports ok=false if no
// start position yields any match.
//
// When a prefilter is available (Config.EnablePrefilter) it is used to skip
// straight to the next position where one of the pattern's extracted
// literals occurs, rather than probing every byte offset; Search still
// verifies every prefilter candidate against the automaton; the returned
// match is always a genuine accepted run, never a bare literal occurrence.
func (r *Regex) Search(haystack []byte) (start, end int, ok bool) {
	pos := 0
	for pos <= len(haystack) {
		candidate := pos
		if r.pf != nil {
			candidate = r.pf.Find(haystack, pos)
			if candidate == -1 {
				return 0, 0, false
			}
		}
		if e, matched := r.longestMatchAt(haystack, candidate); matched {
			return candidate, e, true
		}
		pos = candidate + 1
	}
	return 0, 0, false
}

// longestMatchAt returns the farthest position reachable from start by
// stepping the automaton rune by rune that lands on a final state, or
// ok=false if no prefix starting at start (including the empty one) is
// accepted.
func (r *Regex) longestMatchAt(haystack []byte, start int) (end int, ok bool) {
	if start < 0 || start > len(haystack) {
		return 0, false
	}

	if r.d != nil {
		current := r.d.Initial()
		last, found := -1, false
		if r.d.IsFinal(current) {
			last, found = start, true
		}
		i := start
		for i < len(haystack) {
			c, size := utf8.DecodeRune(haystack[i:])
			current = r.d.Step(current, c)
			i += size
			if r.d.IsFinal(current) {
				last, found = i, true
			}
			if current == r.d.Sink() {
				break
			}
		}
		return last, found
	}

	return r.longestMatchAtNFA(haystack, start)
}

func (r *Regex) longestMatchAtNFA(haystack []byte, start int) (end int, ok bool) {
	last, found := -1, false
	if r.n.Test("") {
		last, found = start, true
	}
	for i := start; i < len(haystack); {
		_, size := utf8.DecodeRune(haystack[i:])
		i += size
		if r.n.Test(string(haystack[start:i])) {
			last, found = i, true
		}
	}
	return last, found
}
