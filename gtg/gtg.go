// Package gtg synthesizes a regex from an automaton via the generalized
// transition graph (GTG) state-elimination algorithm: every automaton state
// except a single initial and single final node is removed one at a time,
// each removal rerouting the eliminated state's incoming/outgoing edges
// through a new edge labeled with the regex for the paths it used to carry.
//
// The GTG overlay lives entirely in this package rather than on nfa.State:
// it is a transient structure built once per synthesis call and discarded
// afterward, so the core Nfa type carries no fields only this algorithm
// needs. States are addressed by a signed int key instead of nfa.StateID so
// that the two synthetic nodes (a fresh initial with no incoming edges, a
// fresh final with no outgoing edges) can use reserved negative keys without
// colliding with any reachable nfa.StateID.
package gtg

import (
	"github.com/corefsa/corefsa/nfa"
	"github.com/corefsa/corefsa/regexsyn"
)

const (
	newInitKey = -1
	newFinalKey = -2
)

// edge is one (label, endpoint) pair in the overlay: an out-edge's endpoint
// is the destination state, an in-edge's endpoint is the source state.
type edge struct {
	label *regexsyn.Tree
	other int
}

type overlayState struct {
	out []edge
	in  []edge
}

// Synthesize returns a regex tree accepting exactly the language n accepts.
// The tree is already in Simplify's normal form.
func Synthesize(n *nfa.Nfa) *regexsyn.Tree {
	states := make(map[int]*overlayState)
	reachable := n.StateList()

	for _, id := range reachable {
		st := n.State(id)
		for _, c := range st.OutSymbols() {
			label := regexsyn.NewLeaf(c)
			for dst := range st.Out(c) {
				addEdge(states, int(id), int(dst), label)
			}
		}
	}
	addEdge(states, newInitKey, int(n.Initial()), regexsyn.Lambda())
	for id := range n.FinalStates() {
		addEdge(states, int(id), newFinalKey, regexsyn.Lambda())
	}

	for _, id := range reachable {
		suppress(states, int(id))
	}

	init := states[newInitKey]
	var labels []*regexsyn.Tree
	if init != nil {
		for _, e := range init.out {
			labels = append(labels, e.label)
		}
	}
	return regexsyn.Simplify(regexsyn.UnionAll(labels))
}

func get(states map[int]*overlayState, id int) *overlayState {
	s, ok := states[id]
	if !ok {
		s = &overlayState{}
		states[id] = s
	}
	return s
}

func addEdge(states map[int]*overlayState, src, dst int, label *regexsyn.Tree) {
	get(states, src).out = append(get(states, src).out, edge{label: label, other: dst})
	get(states, dst).in = append(get(states, dst).in, edge{label: label, other: src})
}

// suppress eliminates state id: every non-loop (in, out) pair is replaced by
// a single direct edge labeled in-loop*-out, where loop is the union of
// every label on a self-loop at id, then id's edges are detached from its
// neighbors. Ported from the suppress() method of the original FSA/GTG
// state class.
func suppress(states map[int]*overlayState, id int) {
	self := get(states, id)

	var loops []*regexsyn.Tree
	var nonLoopsOut []edge
	for _, e := range self.out {
		if e.other == id {
			loops = append(loops, e.label)
		} else {
			nonLoopsOut = append(nonLoopsOut, e)
		}
	}
	var nonLoopsIn []edge
	for _, e := range self.in {
		if e.other != id {
			nonLoopsIn = append(nonLoopsIn, e)
		}
	}

	loopNode := regexsyn.NewStar(regexsyn.UnionAll(loops))
	for _, out := range nonLoopsOut {
		for _, in := range nonLoopsIn {
			combined := regexsyn.NewCat(regexsyn.NewCat(in.label, loopNode), out.label)
			addEdge(states, in.other, out.other, combined)
		}
	}

	for _, out := range nonLoopsOut {
		removeEdge(get(states, out.other), id, false)
	}
	for _, in := range nonLoopsIn {
		removeEdge(get(states, in.other), id, true)
	}
	delete(states, id)
}

// removeEdge strips every edge to/from other out of s's out list (fromOut
// true) or in list (fromOut false).
func removeEdge(s *overlayState, other int, fromOut bool) {
	if fromOut {
		kept := s.out[:0]
		for _, e := range s.out {
			if e.other != other {
				kept = append(kept, e)
			}
		}
		s.out = kept
		return
	}
	kept := s.in[:0]
	for _, e := range s.in {
		if e.other != other {
			kept = append(kept, e)
		}
	}
	s.in = kept
}
