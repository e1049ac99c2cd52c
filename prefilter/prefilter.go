// Package prefilter provides fast candidate filtering for automaton search
// using literal sequences extracted from a pattern.
//
// A prefilter quickly rejects positions in the haystack that cannot possibly
// start a match, so the automaton only runs where a literal actually occurs.
// The package selects a strategy from the shape of the extracted literals:
//
//   - single byte       -> memchrPrefilter  (bytes.IndexByte)
//   - single substring  -> memmemPrefilter  (bytes.Index)
//   - 2 or more literals -> ahoCorasickPrefilter (github.com/coregx/ahocorasick)
//
// Example usage:
//
//	extractor := literal.New(literal.DefaultConfig())
//	prefixes := extractor.ExtractPrefixes(tree)
//
//	builder := prefilter.NewBuilder(prefixes, nil)
//	pf := builder.Build()
//	if pf != nil {
//	    pos := pf.Find(haystack, 0)
//	}
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"
	"github.com/corefsa/corefsa/literal"
)

// Prefilter quickly finds candidate match positions before the automaton
// runs.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start, or -1
	// if none exists. A candidate means one of the prefilter's literals was
	// found there; unless IsComplete is true the caller must still verify the
	// candidate with the full automaton.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate match is itself a full match,
	// letting the caller skip automaton verification entirely.
	IsComplete() bool

	// LiteralLen returns the matched literal's length when IsComplete is
	// true, letting the caller compute match bounds without the automaton.
	// Returns 0 when IsComplete is false or the match length varies.
	LiteralLen() int

	// HeapBytes reports the heap memory this prefilter holds, for profiling.
	HeapBytes() int
}

// MatchFinder is an optional capability for prefilters that can resolve a
// full match span directly, such as a multi-literal automaton that already
// knows which literal it matched.
type MatchFinder interface {
	// FindMatch returns the start and end of the first match at or after
	// start, or (-1, -1) if none exists.
	FindMatch(haystack []byte, start int) (start2, end int)
}

// Builder selects and constructs the best Prefilter for a pair of extracted
// literal sequences.
type Builder struct {
	prefixes *literal.Seq
	suffixes *literal.Seq
}

// NewBuilder returns a Builder over the given prefix and suffix literal
// sequences. Prefixes are preferred, since forward search needs no lookahead;
// suffixes are only consulted when prefixes is empty. Either may be nil.
func NewBuilder(prefixes, suffixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes, suffixes: suffixes}
}

// Build returns the selected Prefilter, or nil if no literal sequence is
// usable for prefiltering.
func (b *Builder) Build() Prefilter {
	return selectPrefilter(b.prefixes, b.suffixes)
}

func selectPrefilter(prefixes, suffixes *literal.Seq) Prefilter {
	seq := prefixes
	if seq.IsEmpty() {
		seq = suffixes
	}
	if seq.IsEmpty() {
		return nil
	}

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if len(lit.Bytes) == 0 {
			return nil
		}
		if len(lit.Bytes) == 1 {
			return newMemchrPrefilter(lit.Bytes[0], lit.Complete)
		}
		return newMemmemPrefilter(lit.Bytes, lit.Complete)
	}

	return newAhoCorasickPrefilter(seq)
}

// memchrPrefilter searches for a single byte literal via bytes.IndexByte.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) Prefilter {
	return &memchrPrefilter{needle: needle, complete: complete}
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := bytes.IndexByte(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

func (p *memchrPrefilter) IsComplete() bool { return p.complete }

func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

func (p *memchrPrefilter) HeapBytes() int { return 0 }

// memmemPrefilter searches for a single multi-byte literal via bytes.Index.
// On hosts that advertise SSE4.2 this delegates straight to bytes.Index,
// whose runtime implementation vectorizes the scan; elsewhere it falls back
// to a scalar first-byte-then-compare loop rather than paying for a call
// into a code path the CPU cannot accelerate.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func newMemmemPrefilter(needle []byte, complete bool) Prefilter {
	needleCopy := make([]byte, len(needle))
	copy(needleCopy, needle)
	return &memmemPrefilter{needle: needleCopy, complete: complete}
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	var idx int
	if hasSSE42 {
		idx = bytes.Index(haystack[start:], p.needle)
	} else {
		idx = scalarIndex(haystack[start:], p.needle)
	}
	if idx == -1 {
		return -1
	}
	return start + idx
}

func scalarIndex(haystack, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	first := needle[0]
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i] != first {
			continue
		}
		if bytes.Equal(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func (p *memmemPrefilter) IsComplete() bool { return p.complete }

func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

func (p *memmemPrefilter) HeapBytes() int { return len(p.needle) }

// ahoCorasickPrefilter searches for any of several literals at once using a
// single Aho-Corasick automaton, so the scan cost stays independent of how
// many literals were extracted (unlike probing each one in turn). It builds
// the automaton once at construction time via ahocorasick.NewBuilder.
type ahoCorasickPrefilter struct {
	auto *ahocorasick.Automaton
}

func newAhoCorasickPrefilter(seq *literal.Seq) Prefilter {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{auto: auto}
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	s, _ := p.findMatch(haystack, start)
	return s
}

// findMatch delegates straight to the automaton's own Find, which already
// returns the earliest match at or after start as absolute offsets into
// haystack.
func (p *ahoCorasickPrefilter) findMatch(haystack []byte, start int) (int, int) {
	if start < 0 || start > len(haystack) {
		return -1, -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}

func (p *ahoCorasickPrefilter) FindMatch(haystack []byte, start int) (int, int) {
	return p.findMatch(haystack, start)
}

// IsComplete is always false: a hit only confirms a literal occurred, not
// that the surrounding automaton also matches there.
func (p *ahoCorasickPrefilter) IsComplete() bool { return false }

func (p *ahoCorasickPrefilter) LiteralLen() int { return 0 }

func (p *ahoCorasickPrefilter) HeapBytes() int { return 0 }
