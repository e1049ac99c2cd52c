package nfa

import (
	"github.com/corefsa/corefsa/alphabet"
	"github.com/corefsa/corefsa/regexsyn"
)

// fragment is a partially-built automaton piece: a start state and the set
// of states that accept once the fragment's own sub-language is satisfied.
// Build assembles the whole Nfa by combining fragments the way the regex
// tree combines sub-expressions, splicing (merging) states wherever the
// tree invariants guarantee it's safe instead of adding a lambda transition.
type fragment struct {
	start  StateID
	finals map[StateID]struct{}
}

// Build compiles a regex tree into an Nfa via Thompson construction, merging
// states wherever doing so avoids an unnecessary lambda transition: a
// concatenation reuses the left fragment's single dangling final state as
// the right fragment's initial state when nothing else points at it, a star
// loops a dangling final state directly back into its own initial state,
// and a union merges initial states that have no incoming transitions of
// their own.
func Build(tree *regexsyn.Tree) *Nfa {
	n := newNfa()
	frag := n.compile(tree)
	n.initial = frag.start
	n.finals = frag.finals
	return n
}

func (n *Nfa) compile(tree *regexsyn.Tree) fragment {
	switch tree.Kind() {
	case regexsyn.KindChar:
		return n.compileLeaf(tree.Char())
	case regexsyn.KindLambda:
		return n.compileLambda()
	case regexsyn.KindNull:
		return n.compileNull()
	case regexsyn.KindCat:
		return n.compileCat(tree)
	case regexsyn.KindUnion:
		return n.compileUnion(tree)
	case regexsyn.KindStar:
		return n.compileStar(tree)
	default:
		panic("nfa: unknown regex tree kind")
	}
}

// compileLeaf builds the two-state fragment init --char--> final.
func (n *Nfa) compileLeaf(char rune) fragment {
	init := n.addState()
	final := n.addState()
	n.addEdge(init, char, final)
	return fragment{start: init, finals: oneOf(final)}
}

// compileLambda builds the single-state fragment that accepts only the
// empty string: its one state is both initial and final.
func (n *Nfa) compileLambda() fragment {
	init := n.addState()
	return fragment{start: init, finals: oneOf(init)}
}

// compileNull builds the two-state fragment with no transition at all,
// accepting nothing.
func (n *Nfa) compileNull() fragment {
	init := n.addState()
	final := n.addState()
	return fragment{start: init, finals: oneOf(final)}
}

// compileCat splices left's dangling final state directly into right's
// initial state whenever that's safe, avoiding the extra lambda transition a
// naive construction would need.
func (n *Nfa) compileCat(tree *regexsyn.Tree) fragment {
	left := n.compile(tree.Left())
	right := n.compile(tree.Right())

	var toMerge []StateID
	if len(left.finals) == 1 && !n.singleFinalBlocksMerge(left, right) {
		for f := range left.finals {
			toMerge = append(toMerge, f)
		}
	} else {
		for f := range left.finals {
			if n.state(f).HasOutgoing() {
				detached := n.addState()
				n.addEdge(f, alphabet.LambdaChar, detached)
				toMerge = append(toMerge, detached)
			} else {
				toMerge = append(toMerge, f)
			}
		}
	}

	mergedInit := false
	for _, f := range toMerge {
		n.merge(right.start, f)
		if f == left.start {
			mergedInit = true
		}
	}

	result := fragment{finals: right.finals}
	if mergedInit {
		result.start = right.start
	} else {
		result.start = left.start
	}
	return result
}

// singleFinalBlocksMerge reports whether left's single final state must NOT
// be merged directly into right's initial state: that merge is unsafe when
// right's initial state already has other incoming transitions (merging
// would wrongly fold those paths together) and left's final state has
// outgoing transitions of its own to preserve.
func (n *Nfa) singleFinalBlocksMerge(left, right fragment) bool {
	var onlyFinal StateID
	for f := range left.finals {
		onlyFinal = f
	}
	return n.state(right.start).HasIncoming() && n.state(onlyFinal).HasOutgoing()
}

// compileUnion builds both operands, gives each an isolated initial state
// if its own initial state already has incoming transitions, then merges
// the two initial states together so the union starts from one place.
func (n *Nfa) compileUnion(tree *regexsyn.Tree) fragment {
	left := n.compile(tree.Left())
	right := n.compile(tree.Right())

	left.start = n.isolateInitial(left.start)
	right.start = n.isolateInitial(right.start)

	finals := make(map[StateID]struct{}, len(left.finals)+len(right.finals))
	for f := range left.finals {
		finals[f] = struct{}{}
	}
	rightWasFinal := false
	for f := range right.finals {
		if f == right.start {
			rightWasFinal = true
			continue
		}
		finals[f] = struct{}{}
	}

	n.merge(left.start, right.start)
	if rightWasFinal {
		finals[left.start] = struct{}{}
	}

	n.mergeMergeableFinals(finals, left.start)
	return fragment{start: left.start, finals: finals}
}

// isolateInitial returns a state guaranteed to have no incoming transitions:
// start itself if it already qualifies, or a fresh state with a single
// lambda edge into start otherwise.
func (n *Nfa) isolateInitial(start StateID) StateID {
	if !n.state(start).HasIncoming() {
		return start
	}
	fresh := n.addState()
	n.addEdge(fresh, alphabet.LambdaChar, start)
	return fresh
}

// compileStar builds the child fragment, then routes its dangling final
// states back to its own initial state (merging where that state has no
// outgoing transitions of its own to preserve) and marks that initial state
// final, since the star always accepts the empty string.
func (n *Nfa) compileStar(tree *regexsyn.Tree) fragment {
	child := n.compile(tree.Child())

	start := n.isolateInitial(child.start)
	for f := range child.finals {
		if n.state(f).HasOutgoing() {
			n.addEdge(f, alphabet.LambdaChar, start)
		} else {
			n.merge(start, f)
		}
	}
	finals := oneOf(start)
	return fragment{start: start, finals: finals}
}

// mergeMergeableFinals collapses every final state in finals that is not
// the automaton's initial state and has no outgoing transitions into a
// single survivor, shrinking the state count the way the construction
// periodically compacts dangling accept states produced by union.
func (n *Nfa) mergeMergeableFinals(finals map[StateID]struct{}, init StateID) {
	var mergeable []StateID
	for f := range finals {
		if f != init && !n.state(f).HasOutgoing() {
			mergeable = append(mergeable, f)
		}
	}
	if len(mergeable) < 2 {
		return
	}
	survivor := mergeable[0]
	for _, f := range mergeable[1:] {
		n.merge(survivor, f)
		delete(finals, f)
	}
}

func oneOf(id StateID) map[StateID]struct{} {
	return map[StateID]struct{}{id: {}}
}
