package literal

import (
	"github.com/corefsa/corefsa/regexsyn"
)

// ExtractorConfig configures literal extraction limits.
//
// These limits prevent excessive extraction from complex patterns:
//   - MaxLiterals: prevents memory bloat from alternations like (a+b+c+d+...)
//   - MaxLiteralLen: prevents extracting very long literals that hurt cache locality
type ExtractorConfig struct {
	// MaxLiterals limits the maximum number of literals to extract.
	MaxLiterals int

	// MaxLiteralLen limits the maximum length of each extracted literal.
	MaxLiteralLen int

	// CrossProductLimit bounds the number of intermediate literals allowed
	// while walking a concatenation chain; a run of many small unions (e.g.
	// (a+b)(c+d)(e+f)...) would otherwise multiply out combinatorially.
	CrossProductLimit int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:       64,
		MaxLiteralLen:     64,
		CrossProductLimit: 250,
	}
}

// Extractor extracts literal sequences from a regex algebraic tree, for use
// as a prefilter ahead of the automaton: a candidate string that cannot
// contain any extracted literal cannot match, so the automaton only needs to
// run on candidates the prefilter passes.
//
// KindCat is walked left-to-right, accumulating a cross product of the
// literals seen so far; KindUnion contributes every alternative; KindStar,
// being variable-length, breaks the accumulation and marks what came before
// it inexact (still a required prefix, but no longer the whole match).
type Extractor struct {
	config ExtractorConfig
}

// New creates a new Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes extracts prefix literals: literals that must appear at the
// start of any string the tree matches. Returns an empty Seq if no prefix
// requirement can be established (e.g. the tree starts with a star).
func (e *Extractor) ExtractPrefixes(t *regexsyn.Tree) *Seq {
	return e.extractPrefixes(t, 0)
}

func (e *Extractor) extractPrefixes(t *regexsyn.Tree, depth int) *Seq {
	if depth > 100 {
		return NewSeq()
	}

	switch t.Kind() {
	case regexsyn.KindChar:
		return NewSeq(NewLiteral(e.clampLen([]byte(string(t.Char()))), true))

	case regexsyn.KindLambda:
		return NewSeq(NewLiteral([]byte{}, true))

	case regexsyn.KindNull:
		return NewSeq()

	case regexsyn.KindUnion:
		return e.unionOf(t, depth, e.extractPrefixes)

	case regexsyn.KindCat:
		return e.extractPrefixesCat(t, depth)

	case regexsyn.KindStar:
		// a* can match zero repetitions, so nothing is guaranteed at the
		// start.
		return NewSeq()

	default:
		return NewSeq()
	}
}

// extractPrefixesCat walks a chain of KindCat nodes down its right spine
// (Parse builds left-leaning chains, whose nested left operands are handled
// by the recursive call), extending the accumulated literal set operand by
// operand until an operand contributes no exact literal or the accumulation
// limits are hit. A chain whose first operand contributes nothing yields an
// empty Seq.
func (e *Extractor) extractPrefixesCat(t *regexsyn.Tree, depth int) *Seq {
	acc := NewSeq(NewLiteral([]byte{}, true))
	node := t
	for {
		var operand *regexsyn.Tree
		var rest *regexsyn.Tree
		if node.Kind() == regexsyn.KindCat {
			operand, rest = node.Left(), node.Right()
		} else {
			operand, rest = node, nil
		}

		if !e.hasAnyExact(acc) {
			break
		}

		contribution := e.extractPrefixes(operand, depth+1)
		if contribution.IsEmpty() {
			if node == t {
				return NewSeq()
			}
			e.markAllInexact(acc)
			break
		}
		acc.CrossForward(contribution)
		if acc.Len() > e.config.CrossProductLimit || acc.Len() > e.config.MaxLiterals {
			acc.KeepFirstBytes(4)
			e.markAllInexact(acc)
			acc.Dedup()
			if acc.Len() > e.config.MaxLiterals {
				return NewSeq()
			}
			break
		}
		e.clampAll(acc)

		// Once an operand stops contributing an exact (complete) literal,
		// whatever operands follow it no longer extend a guaranteed prefix.
		if !e.allExact(contribution) {
			break
		}

		if rest == nil {
			break
		}
		node = rest
	}
	return acc
}

// ExtractSuffixes extracts suffix literals: literals that must appear at the
// end of any string the tree matches. Mirrors ExtractPrefixes but walks the
// KindCat chain from the right.
func (e *Extractor) ExtractSuffixes(t *regexsyn.Tree) *Seq {
	return e.extractSuffixes(t, 0)
}

func (e *Extractor) extractSuffixes(t *regexsyn.Tree, depth int) *Seq {
	if depth > 100 {
		return NewSeq()
	}

	switch t.Kind() {
	case regexsyn.KindChar:
		return NewSeq(NewLiteral(e.clampLen([]byte(string(t.Char()))), true))

	case regexsyn.KindLambda:
		return NewSeq(NewLiteral([]byte{}, true))

	case regexsyn.KindNull:
		return NewSeq()

	case regexsyn.KindUnion:
		return e.unionOf(t, depth, e.extractSuffixes)

	case regexsyn.KindCat:
		return e.extractSuffixesCat(t, depth)

	case regexsyn.KindStar:
		return NewSeq()

	default:
		return NewSeq()
	}
}

func (e *Extractor) extractSuffixesCat(t *regexsyn.Tree, depth int) *Seq {
	// Flatten the right-leaning Cat chain into operand order, then walk it
	// back to front, mirroring extractPrefixesCat's forward walk.
	var operands []*regexsyn.Tree
	node := t
	for node.Kind() == regexsyn.KindCat {
		operands = append(operands, node.Left())
		node = node.Right()
	}
	operands = append(operands, node)

	acc := NewSeq(NewLiteral([]byte{}, true))
	for i := len(operands) - 1; i >= 0; i-- {
		if !e.hasAnyExact(acc) {
			break
		}
		contribution := e.extractSuffixes(operands[i], depth+1)
		if contribution.IsEmpty() {
			if i == len(operands)-1 {
				return NewSeq()
			}
			e.markAllInexact(acc)
			break
		}
		acc.CrossBackward(contribution)
		if acc.Len() > e.config.CrossProductLimit || acc.Len() > e.config.MaxLiterals {
			acc.KeepLastBytes(4)
			e.markAllInexact(acc)
			acc.Dedup()
			if acc.Len() > e.config.MaxLiterals {
				return NewSeq()
			}
			break
		}
		e.clampAll(acc)
		if !e.allExact(contribution) {
			break
		}
	}
	return acc
}

// ExtractInner returns the first literal found anywhere in the tree,
// regardless of position, useful for patterns whose match is unbounded on
// both ends (e.g. (a+b)*err(a+b)*). The result is always marked inexact: an
// inner literal is necessary but not sufficient.
func (e *Extractor) ExtractInner(t *regexsyn.Tree) *Seq {
	return e.extractInner(t, 0)
}

func (e *Extractor) extractInner(t *regexsyn.Tree, depth int) *Seq {
	if depth > 100 {
		return NewSeq()
	}

	switch t.Kind() {
	case regexsyn.KindChar:
		return NewSeq(NewLiteral(e.clampLen([]byte(string(t.Char()))), false))

	case regexsyn.KindUnion:
		return e.unionOf(t, depth, e.extractInner)

	case regexsyn.KindCat:
		if seq := e.extractInner(t.Left(), depth+1); !seq.IsEmpty() {
			return seq
		}
		return e.extractInner(t.Right(), depth+1)

	case regexsyn.KindStar:
		return e.extractInner(t.Child(), depth+1)

	default:
		return NewSeq()
	}
}

// unionOf extracts literals from both operands of a KindUnion node via fn
// and concatenates them; if either branch contributes nothing, the whole
// union contributes nothing, since that branch could match without any
// extracted literal present. The same holds when the two branches together
// have more than MaxLiterals literals: a truncated set would miss strings
// that start with a dropped one.
func (e *Extractor) unionOf(t *regexsyn.Tree, depth int, fn func(*regexsyn.Tree, int) *Seq) *Seq {
	left := fn(t.Left(), depth+1)
	if left.IsEmpty() {
		return NewSeq()
	}
	right := fn(t.Right(), depth+1)
	if right.IsEmpty() {
		return NewSeq()
	}
	lits := append(append([]Literal{}, left.literals...), right.literals...)
	if len(lits) > e.config.MaxLiterals {
		return NewSeq()
	}
	return NewSeq(lits...)
}

func (e *Extractor) hasAnyExact(s *Seq) bool {
	for i := 0; i < s.Len(); i++ {
		if s.Get(i).Complete {
			return true
		}
	}
	return false
}

func (e *Extractor) allExact(s *Seq) bool {
	for i := 0; i < s.Len(); i++ {
		if !s.Get(i).Complete {
			return false
		}
	}
	return true
}

func (e *Extractor) markAllInexact(s *Seq) {
	for i := range s.literals {
		s.literals[i].Complete = false
	}
}

func (e *Extractor) clampLen(b []byte) []byte {
	if len(b) > e.config.MaxLiteralLen {
		return b[:e.config.MaxLiteralLen]
	}
	return b
}

func (e *Extractor) clampAll(s *Seq) {
	for i := range s.literals {
		if len(s.literals[i].Bytes) > e.config.MaxLiteralLen {
			s.literals[i].Bytes = s.literals[i].Bytes[:e.config.MaxLiteralLen]
			s.literals[i].Complete = false
		}
	}
}
