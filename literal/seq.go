// Package literal holds the literal byte sequences a pattern's prefix/suffix
// extraction produces (extractor.go) and the operations package
// prefilter needs to turn them into a candidate-filtering strategy: cross
// products across concatenation boundaries, truncation once a sequence gets
// too wide to stay useful, deduplication, and longest-common-prefix/suffix
// for collapsing a sequence down to a single probe literal.
package literal

import (
	"bytes"
	"sort"
)

// Literal is one concrete byte string a match could start (or end) with.
// Complete is true when the literal is the whole match, not just a prefix or
// suffix of it — a prefilter can only skip automaton verification entirely
// when Complete is true.
type Literal struct {
	Bytes    []byte
	Complete bool
}

func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

func (l Literal) Len() int { return len(l.Bytes) }

func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is an ordered set of alternative literals, e.g. the prefixes "foo" and
// "bar" extracted from the union foo+bar. Len, IsEmpty, IsFinite, Clone,
// Minimize and LongestCommonPrefix/Suffix treat a nil *Seq as empty; the
// other methods need a non-nil one.
type Seq struct {
	literals []Literal
}

func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i. It panics if i is out of range.
func (s *Seq) Get(i int) Literal { return s.literals[i] }

func (s *Seq) IsEmpty() bool { return s == nil || len(s.literals) == 0 }

// IsFinite reports whether the sequence describes a bounded set of strings.
// Every non-empty Seq does; an empty one, having no literals to bound
// anything with, does not.
func (s *Seq) IsFinite() bool { return !s.IsEmpty() }

// Clone deep-copies the sequence, including every literal's byte slice, so
// the caller can mutate the result (Minimize, KeepFirstBytes, ...) without
// disturbing the original.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}
	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		b := make([]byte, len(lit.Bytes))
		copy(b, lit.Bytes)
		cloned[i] = Literal{Bytes: b, Complete: lit.Complete}
	}
	return &Seq{literals: cloned}
}

// Minimize drops every literal that is already covered by a shorter one in
// the sequence: any string containing "foobar" also contains "foo", so once
// "foo" is present "foobar" contributes nothing extra to a prefix filter.
// Sorts shortest-first so each candidate only needs to check against
// already-kept (therefore no-longer, by definition, redundant) literals.
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}
	sort.Slice(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, lit := range s.literals {
		covered := false
		for _, k := range kept {
			if hasPrefix(lit.Bytes, k.Bytes) {
				covered = true
				break
			}
		}
		if !covered {
			kept = append(kept, lit)
		}
	}
	s.literals = kept
}

// LongestCommonPrefix returns the longest byte sequence every literal in s
// begins with, or an empty slice if s is empty or the literals share none.
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}
	prefix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		prefix = sharedPrefix(prefix, lit.Bytes)
		if len(prefix) == 0 {
			return []byte{}
		}
	}
	out := make([]byte, len(prefix))
	copy(out, prefix)
	return out
}

// LongestCommonSuffix returns the longest byte sequence every literal in s
// ends with, or an empty slice if s is empty or the literals share none.
func (s *Seq) LongestCommonSuffix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}
	suffix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		suffix = sharedSuffix(suffix, lit.Bytes)
		if len(suffix) == 0 {
			return []byte{}
		}
	}
	out := make([]byte, len(suffix))
	copy(out, suffix)
	return out
}

// CrossForward extends every literal in s with every literal in other,
// preserving s's order: s={"ag"}, other={"a","c"} becomes {"aga","agc"}. The
// combined literal is Complete only if both halves were — extending a
// prefix can never turn it into a full match unless what follows it is a
// full match of its own remainder.
func (s *Seq) CrossForward(other *Seq) {
	s.literals = crossJoin(s.literals, other.literals, joinAppend)
}

// CrossBackward is CrossForward for the suffix-accumulation direction: every
// literal in other is prepended to every literal in s.
func (s *Seq) CrossBackward(other *Seq) {
	s.literals = crossJoin(s.literals, other.literals, joinPrepend)
}

type joinOrder bool

const (
	joinAppend  joinOrder = false
	joinPrepend joinOrder = true
)

func crossJoin(base, ext []Literal, order joinOrder) []Literal {
	out := make([]Literal, 0, len(base)*len(ext))
	for _, b := range base {
		for _, e := range ext {
			var combined []byte
			if order == joinPrepend {
				combined = concatBytes(e.Bytes, b.Bytes)
			} else {
				combined = concatBytes(b.Bytes, e.Bytes)
			}
			out = append(out, Literal{Bytes: combined, Complete: b.Complete && e.Complete})
		}
	}
	return out
}

func concatBytes(a, b []byte) []byte {
	combined := make([]byte, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	return combined
}

// KeepFirstBytes truncates every literal longer than n to its first n
// bytes, marking it incomplete: a truncated literal can no longer claim to
// be the whole match.
func (s *Seq) KeepFirstBytes(n int) {
	for i := range s.literals {
		if len(s.literals[i].Bytes) > n {
			s.literals[i].Bytes = s.literals[i].Bytes[:n]
			s.literals[i].Complete = false
		}
	}
}

// KeepLastBytes is KeepFirstBytes from the other end: every literal longer
// than n is truncated to its last n bytes and marked incomplete.
func (s *Seq) KeepLastBytes(n int) {
	for i := range s.literals {
		if b := s.literals[i].Bytes; len(b) > n {
			s.literals[i].Bytes = b[len(b)-n:]
			s.literals[i].Complete = false
		}
	}
}

// Dedup removes literals that duplicate an earlier one's bytes and
// completeness, keeping the first occurrence's position.
func (s *Seq) Dedup() {
	seen := make(map[string]bool, len(s.literals))
	kept := make([]Literal, 0, len(s.literals))
	for _, lit := range s.literals {
		key := string(lit.Bytes)
		if lit.Complete {
			key += "\x00complete"
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, lit)
	}
	s.literals = kept
}

func hasPrefix(s, prefix []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	return bytes.Equal(s[:len(prefix)], prefix)
}

func sharedPrefix(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}

func sharedSuffix(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[len(a)-1-i] != b[len(b)-1-i] {
			if i == 0 {
				return nil
			}
			return a[len(a)-i:]
		}
	}
	return a[len(a)-n:]
}
