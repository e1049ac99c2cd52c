package nfa

import "github.com/corefsa/corefsa/alphabet"

// Test reports whether s is in the language accepted by n, using the
// multi-path simulation: the automaton tracks the lambda-closed set of all
// states it could currently be in, steps every symbol of s through
// FindAllReachable, and accepts if any state in the final set is final. This
// explores every path at once rather than one at a time, so it never needs
// cycle detection.
//
// A string consisting solely of the lambda symbol is treated as the empty
// string, per alphabet.NormalizeTestInput; every other occurrence of it is an
// ordinary character the automaton has no transition for.
func (n *Nfa) Test(s string) bool {
	s = alphabet.NormalizeTestInput(s)
	current := LambdaClosure(n, map[StateID]struct{}{n.initial: {}})
	for _, c := range s {
		if len(current) == 0 {
			return false
		}
		current = FindAllReachable(n, current, c)
	}
	return anyFinal(n, current)
}

// TestBacktrack reports whether s is in the language accepted by n, using
// depth-first backtracking over individual transitions: from each state it
// tries every lambda transition before consuming the next input symbol, and
// only backtracks past a non-lambda step when every path from it fails. A
// (state, input position) pair already visited earlier in the same call is
// refused a second time, which is what keeps a lambda cycle from recursing
// forever.
//
// A string consisting solely of the lambda symbol is treated as the empty
// string, per alphabet.NormalizeTestInput.
func (n *Nfa) TestBacktrack(s string) bool {
	runes := []rune(alphabet.NormalizeTestInput(s))
	visited := make(map[StateID]map[int]struct{})
	return n.backtrack(runes, 0, n.initial, visited)
}

func (n *Nfa) backtrack(s []rune, index int, state StateID, visited map[StateID]map[int]struct{}) bool {
	seen := visited[state]
	if seen == nil {
		seen = make(map[int]struct{})
		visited[state] = seen
	}
	if _, already := seen[index]; already {
		return false
	}
	seen[index] = struct{}{}

	if index == len(s) && n.IsFinal(state) {
		return true
	}

	for next := range n.state(state).Out(alphabet.LambdaChar) {
		if n.backtrack(s, index, next, visited) {
			return true
		}
	}

	if index == len(s) {
		return false
	}

	for next := range n.state(state).Out(s[index]) {
		if n.backtrack(s, index+1, next, visited) {
			return true
		}
	}

	return false
}
