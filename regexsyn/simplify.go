package regexsyn

// Simplify rewrites t bottom-up to the normal form described in the regex
// tree invariants: nested stars collapse, Lambda/Null absorb or annihilate
// under Cat and Star, Null is Union's identity, and duplicate Union operands
// collapse to one. The rewrites are confluent, so a single bottom-up pass
// reaches the fixpoint; no further simplification pass is needed.
func Simplify(t *Tree) *Tree {
	return simplify(t, false)
}

// simplify carries descendantOfStar, the "inside a star" context flag from
// the design: a Lambda operand of a Union directly beneath a Star is
// redundant, because the enclosing star already supplies the empty string.
func simplify(t *Tree, descendantOfStar bool) *Tree {
	switch t.Kind() {
	case KindChar, KindLambda, KindNull:
		return t

	case KindStar:
		child := simplify(t.Child(), true)
		if child.Kind() == KindLambda || child.Kind() == KindNull {
			return Lambda()
		}
		if child.Kind() == KindStar {
			// A child that simplified to a star, e.g. ^a* to a*, collapses
			// into this one.
			child = child.Child()
		}
		if descendantOfStar {
			// Star(Star(x)) collapses: the caller (itself a Star) will wrap
			// this result again, so returning the unwrapped child here is
			// exactly the collapse.
			return child
		}
		return NewStar(child)

	case KindCat:
		// Cat is not itself a star-repeated sub-language, even when it
		// occurs under a Star: only Union's "drop the Lambda branch"
		// rewrite cares about that context, so Cat resets the flag for its
		// own operands.
		left := simplify(t.Left(), false)
		right := simplify(t.Right(), false)
		if left.Kind() == KindNull || right.Kind() == KindNull {
			return Null()
		}
		if left.Kind() == KindLambda {
			return right
		}
		if right.Kind() == KindLambda {
			return left
		}
		return NewCat(left, right)

	case KindUnion:
		left := simplify(t.Left(), descendantOfStar)
		right := simplify(t.Right(), descendantOfStar)
		if left.Kind() == KindNull {
			return right
		}
		if right.Kind() == KindNull {
			return left
		}
		if left.Equal(right) {
			return left
		}
		if descendantOfStar {
			if left.Kind() == KindLambda {
				return right
			}
			if right.Kind() == KindLambda {
				return left
			}
		}
		return NewUnion(left, right)

	default:
		return t
	}
}
