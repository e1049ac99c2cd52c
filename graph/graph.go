// Package graph implements the transition-graph record type shared by the
// text loader and the JFLAP XML loader: a labeled directed multigraph with
// one designated initial state and a set of final states, used both as the
// on-disk form of an automaton and as validated input to package dfa's
// FromGraph.
package graph

import (
	"github.com/corefsa/corefsa/alphabet"
	"github.com/corefsa/corefsa/fsaerr"
)

// TransitionGraph is a directed multigraph of string-labeled states. States
// are referenced by index into Labels; Out holds each state's transitions
// keyed by symbol (the reserved lambda symbol included), onto the list of
// destination indices for that symbol.
type TransitionGraph struct {
	Labels  []string
	index   map[string]int
	Initial int
	Final   map[int]bool
	Out     []map[rune][]int
}

// New returns an empty TransitionGraph with no states.
func New() *TransitionGraph {
	return &TransitionGraph{
		index:   make(map[string]int),
		Initial: -1,
		Final:   make(map[int]bool),
	}
}

// AddState adds a new state with the given label and returns its index. The
// label must be unique; a duplicate is reported by Validate rather than
// here, so that loaders can report every problem with a file in one pass
// instead of stopping at the first one.
func (g *TransitionGraph) AddState(label string) int {
	idx := len(g.Labels)
	g.Labels = append(g.Labels, label)
	if _, dup := g.index[label]; !dup {
		g.index[label] = idx
	}
	g.Out = append(g.Out, make(map[rune][]int))
	return idx
}

// StateIndex returns the index of the state with the given label, and
// whether it exists.
func (g *TransitionGraph) StateIndex(label string) (int, bool) {
	idx, ok := g.index[label]
	return idx, ok
}

// SetInitial marks idx as the initial state.
func (g *TransitionGraph) SetInitial(idx int) { g.Initial = idx }

// AddFinal marks idx as an accepting state.
func (g *TransitionGraph) AddFinal(idx int) { g.Final[idx] = true }

// AddTransition adds a transition from src to dst on char.
func (g *TransitionGraph) AddTransition(src int, char rune, dst int) {
	g.Out[src][char] = append(g.Out[src][char], dst)
}

// Validate checks the structural invariants a transition graph must satisfy
// before it can be used: exactly one initial state, no duplicate labels,
// and every transition referencing a state that actually exists.
func (g *TransitionGraph) Validate() error {
	if g.Initial < 0 {
		return &fsaerr.GraphError{Err: fsaerr.ErrMissingInitial}
	}
	if len(g.index) != len(g.Labels) {
		return &fsaerr.GraphError{Err: fsaerr.ErrMissingLabel}
	}
	for src, transitions := range g.Out {
		for _, dests := range transitions {
			for _, dst := range dests {
				if dst < 0 || dst >= len(g.Labels) {
					return &fsaerr.GraphError{Err: fsaerr.ErrUndefinedState, Label: g.Labels[src]}
				}
			}
		}
	}
	return nil
}

// IsDFA reports whether the graph already satisfies determinism: no lambda
// transitions, and never more than one destination for the same symbol out
// of the same state. It does not require totality; a state may simply lack
// a transition for a given symbol.
func (g *TransitionGraph) IsDFA() bool {
	for _, transitions := range g.Out {
		for char, dests := range transitions {
			if char == alphabet.LambdaChar {
				return false
			}
			if len(dests) > 1 {
				return false
			}
		}
	}
	return true
}
