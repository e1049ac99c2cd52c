package nfa

import (
	"github.com/corefsa/corefsa/alphabet"
	"github.com/corefsa/corefsa/internal/sparse"
)

// FindAllReachable returns the lambda-closure of the char-successors of the
// lambda-closure of from: first reach every state lambda-reachable from the
// frontier, step once on char, then close over lambda again. char is always
// treated as an ordinary symbol to step on, including alphabet.LambdaChar
// itself — callers that want the plain lambda-closure of a frontier without
// stepping on anything should call LambdaClosure directly instead.
func FindAllReachable(n *Nfa, from map[StateID]struct{}, char rune) map[StateID]struct{} {
	closed := lambdaClosure(n, from)
	stepped := make(map[StateID]struct{})
	for id := range closed {
		for target := range n.state(id).Out(char) {
			stepped[target] = struct{}{}
		}
	}
	return lambdaClosure(n, stepped)
}

// LambdaClosure returns every state reachable from frontier by zero or more
// lambda transitions, including frontier itself, without stepping on any
// input symbol. This is what the initial state of a simulation or subset
// construction closes over before any input is consumed.
func LambdaClosure(n *Nfa, frontier map[StateID]struct{}) map[StateID]struct{} {
	return lambdaClosure(n, frontier)
}

// lambdaClosure returns every state reachable from the frontier by zero or
// more lambda transitions, including the frontier itself. The visited set is
// tracked in a sparse.SparseSet, sized to the automaton's state arena, since
// every closure this package computes is bounded by that universe and the
// DFS below touches only a handful of entries per step.
func lambdaClosure(n *Nfa, frontier map[StateID]struct{}) map[StateID]struct{} {
	visited := sparse.NewSparseSet(uint32(len(n.states)))
	stack := make([]StateID, 0, len(frontier))
	for id := range frontier {
		visited.Insert(uint32(id))
		stack = append(stack, id)
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for target := range n.state(id).Out(alphabet.LambdaChar) {
			if !visited.Contains(uint32(target)) {
				visited.Insert(uint32(target))
				stack = append(stack, target)
			}
		}
	}
	closed := make(map[StateID]struct{}, visited.Size())
	for _, v := range visited.Values() {
		closed[StateID(v)] = struct{}{}
	}
	return closed
}

// anyFinal reports whether any state in the set is one of the automaton's
// accepting states.
func anyFinal(n *Nfa, states map[StateID]struct{}) bool {
	for id := range states {
		if n.IsFinal(id) {
			return true
		}
	}
	return false
}
