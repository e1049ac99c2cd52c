// Package regexsyn implements the regex algebraic tree, its parser, and the
// bottom-up simplifier described in the engine's core design: precedence
// parsing produces a Tree, and Simplify rewrites it to a normal form that the
// NFA builder and the GTG regex synthesizer both rely on.
package regexsyn

import (
	"fmt"

	"github.com/corefsa/corefsa/alphabet"
)

// Kind tags the variant a Tree node represents. Tree is a tagged-union sum
// type rather than an interface hierarchy: the Kind selects which of the
// node's fields are meaningful, mirroring how the automaton packages tag
// their own state records.
type Kind uint8

const (
	// KindChar matches a single literal symbol (Char holds it).
	KindChar Kind = iota
	// KindLambda matches only the empty string.
	KindLambda
	// KindNull matches no string at all.
	KindNull
	// KindStar is the Kleene closure of Child.
	KindStar
	// KindCat is concatenation of Left then Right.
	KindCat
	// KindUnion is alternation between Left and Right.
	KindUnion
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindChar:
		return "Char"
	case KindLambda:
		return "Lambda"
	case KindNull:
		return "Null"
	case KindStar:
		return "Star"
	case KindCat:
		return "Cat"
	case KindUnion:
		return "Union"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Tree is a node in the regex algebraic tree. Only the fields relevant to
// Kind are populated: Char for KindChar, Child for KindStar, Left/Right for
// KindCat and KindUnion. Trees are immutable once constructed; Simplify and
// the GTG synthesizer build new trees rather than mutating in place.
type Tree struct {
	kind  Kind
	char  rune
	child *Tree
	left  *Tree
	right *Tree
}

// Singletons for the two zero-arity leaves that carry no data. Lambda and
// Null each denote a single language, so every call returns the same node;
// this also makes pointer-equality a valid fast path for Equal.
var (
	lambdaNode = &Tree{kind: KindLambda}
	nullNode   = &Tree{kind: KindNull}
)

// NewChar returns a leaf matching the single symbol c.
func NewChar(c rune) *Tree {
	return &Tree{kind: KindChar, char: c}
}

// Lambda returns the leaf matching only the empty string.
func Lambda() *Tree { return lambdaNode }

// Null returns the leaf matching no string.
func Null() *Tree { return nullNode }

// NewStar returns the Kleene closure of child.
func NewStar(child *Tree) *Tree {
	return &Tree{kind: KindStar, child: child}
}

// NewCat returns the concatenation of left then right.
func NewCat(left, right *Tree) *Tree {
	return &Tree{kind: KindCat, left: left, right: right}
}

// NewUnion returns the alternation of left and right.
func NewUnion(left, right *Tree) *Tree {
	return &Tree{kind: KindUnion, left: left, right: right}
}

// NewLeaf builds a leaf node from a rune that may be an ordinary character or
// one of the two reserved symbols (alphabet.LambdaChar, alphabet.NullChar).
func NewLeaf(c rune) *Tree {
	switch c {
	case alphabet.LambdaChar:
		return Lambda()
	case alphabet.NullChar:
		return Null()
	default:
		return NewChar(c)
	}
}

// Kind reports which variant the node is.
func (t *Tree) Kind() Kind { return t.kind }

// Char returns the literal symbol for a KindChar node. It is meaningless on
// any other kind.
func (t *Tree) Char() rune { return t.char }

// Child returns the operand of a KindStar node.
func (t *Tree) Child() *Tree { return t.child }

// Left returns the left operand of a KindCat or KindUnion node.
func (t *Tree) Left() *Tree { return t.left }

// Right returns the right operand of a KindCat or KindUnion node.
func (t *Tree) Right() *Tree { return t.right }

// UnionAll builds the union of every tree in nodes, left-associatively, using
// Null as the identity element for an empty list. This mirrors how the GTG
// synthesizer (package gtg) combines loop labels and parallel edge labels.
func UnionAll(nodes []*Tree) *Tree {
	result := Null()
	for _, n := range nodes {
		result = NewUnion(result, n)
	}
	return result
}
