package regexsyn

import (
	"github.com/corefsa/corefsa/alphabet"
	"github.com/corefsa/corefsa/fsaerr"
)

// opKind distinguishes the three regex operators by precedence. Star binds
// tightest, then concatenation, then union.
type opKind uint8

const (
	opUnion opKind = iota
	opCat
	opStar
)

func (k opKind) priority() int {
	switch k {
	case opUnion:
		return 1
	case opCat:
		return 2
	default:
		return 3
	}
}

// stackEntry is either a *Tree operand or an opKind operator, pushed onto the
// parser's shunting-yard-style stack. Exactly one of tree/isOp is meaningful.
type stackEntry struct {
	tree *Tree
	op   opKind
	isOp bool
}

// parser turns a flat regex string into a Tree by precedence climbing: each
// new token folds the stack while the operator on top binds at least as
// tightly as what comes next, mirroring a single shift-reduce pass with
// explicit adjacent-operand concatenation.
type parser struct {
	src        []rune
	pos        int
	insideParen bool
	stack      []stackEntry
}

// Parse builds a regex Tree from s and simplifies it to normal form. The
// grammar is documented alongside the package: characters outside
// alphabet.LambdaChar/NullChar/operators are literal symbols, '(' / ')' group
// sub-expressions, '*' is postfix, '+' is infix union, and concatenation is
// implicit juxtaposition.
func Parse(s string) (*Tree, error) {
	p := &parser{src: []rune(s)}
	tree, err := p.parse()
	if err != nil {
		return nil, err
	}
	return Simplify(tree), nil
}

func (p *parser) empty() bool { return p.pos == len(p.src) }

func (p *parser) next() (rune, bool) {
	if p.empty() {
		return 0, false
	}
	c := p.src[p.pos]
	p.pos++
	return c, true
}

func (p *parser) peek() (rune, bool) {
	if p.empty() {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) top() *stackEntry {
	if len(p.stack) == 0 {
		return nil
	}
	return &p.stack[len(p.stack)-1]
}

func (p *parser) push(e stackEntry) { p.stack = append(p.stack, e) }

func (p *parser) pop() stackEntry {
	e := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return e
}

// nextOp reports the operator that the token following the current position
// implies, for precedence comparison. A ')' or end of input implies none; an
// ordinary character or '(' implies an intervening concatenation.
func (p *parser) nextOp() (opKind, bool) {
	c, ok := p.peek()
	if !ok || c == alphabet.RParen {
		return 0, false
	}
	switch c {
	case alphabet.UnionOp:
		return opUnion, true
	case alphabet.StarOp:
		return opStar, true
	default:
		return opCat, true
	}
}

// pushImpliedCat inserts a Cat operator when the stack top is already an
// operand, so that adjacent operands without an explicit operator between
// them (e.g. "ab") are concatenated.
func (p *parser) pushImpliedCat() {
	if top := p.top(); top != nil && !top.isOp {
		p.push(stackEntry{op: opCat, isOp: true})
	}
}

// pushOperator handles an operator character read from the input: '+' and
// implicit cat defer to pushNode's precedence fold via the operator stack,
// while '*' applies immediately to the operand beneath it.
func (p *parser) pushOperator(c rune) error {
	top := p.top()
	if top == nil || top.isOp {
		return &fsaerr.ParseError{Kind: fsaerr.ErrMissingOperand, Pos: p.pos - 1, Msg: "operator with no preceding operand"}
	}
	if c == alphabet.UnionOp {
		p.push(stackEntry{op: opUnion, isOp: true})
		return nil
	}
	// star operator: applies to the operand currently on top
	operand := p.pop()
	return p.pushNode(NewStar(operand.tree))
}

// pushNode pushes a parsed operand, first folding any pending operator on the
// stack whose priority is at least as high as what follows, so that e.g.
// "a+b" doesn't wait for "b" to be followed by a lower-priority operator
// before reducing.
func (p *parser) pushNode(node *Tree) error {
	p.pushImpliedCat()

	prevTop := p.top()
	nextOp, hasNext := p.nextOp()
	if prevTop != nil && prevTop.isOp && (!hasNext || prevTop.op.priority() >= nextOp.priority()) {
		prevOpEntry := p.pop()
		leftEntry := p.pop()
		switch prevOpEntry.op {
		case opCat:
			return p.pushNode(NewCat(leftEntry.tree, node))
		case opUnion:
			return p.pushNode(NewUnion(leftEntry.tree, node))
		}
	}
	p.push(stackEntry{tree: node})
	return nil
}

// result pops and validates the final parse stack: exactly one operand, no
// leftover operator, nothing left beneath it.
func (p *parser) result() (*Tree, error) {
	if len(p.stack) == 0 {
		return nil, &fsaerr.ParseError{Kind: fsaerr.ErrEmptyExpression, Pos: p.pos, Msg: "empty expression"}
	}
	top := p.pop()
	if top.isOp || len(p.stack) != 0 {
		return nil, &fsaerr.ParseError{Kind: fsaerr.ErrResidualOperator, Pos: p.pos, Msg: "malformed expression"}
	}
	return top.tree, nil
}

// parse consumes the parser's remaining input, recursing into a fresh
// operator/operand stack for each parenthesized group.
func (p *parser) parse() (*Tree, error) {
	for !p.empty() {
		c, _ := p.next()
		switch c {
		case alphabet.LParen:
			p.pushImpliedCat()
			sub := &parser{src: p.src, pos: p.pos, insideParen: true}
			tree, err := sub.parse()
			if err != nil {
				return nil, err
			}
			p.pos = sub.pos
			if err := p.pushNode(tree); err != nil {
				return nil, err
			}
		case alphabet.RParen:
			if !p.insideParen {
				return nil, &fsaerr.ParseError{Kind: fsaerr.ErrUnmatchedParen, Pos: p.pos - 1, Msg: "unmatched closing parenthesis"}
			}
			return p.result()
		case alphabet.UnionOp, alphabet.StarOp:
			if err := p.pushOperator(c); err != nil {
				return nil, err
			}
		case alphabet.CatOp:
			// explicit concatenation marker: same effect as two atoms
			// simply being adjacent, so just force the implied-cat push
			// now instead of waiting for the next operand.
			p.pushImpliedCat()
		default:
			if err := p.pushNode(NewLeaf(c)); err != nil {
				return nil, err
			}
		}
	}
	if p.insideParen {
		return nil, &fsaerr.ParseError{Kind: fsaerr.ErrUnmatchedParen, Pos: p.pos, Msg: "missing closing parenthesis"}
	}
	return p.result()
}
