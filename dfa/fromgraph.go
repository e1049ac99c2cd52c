package dfa

import (
	"sort"

	"github.com/corefsa/corefsa/fsaerr"
	"github.com/corefsa/corefsa/graph"
)

// FromGraph builds a Dfa directly from a validated transition graph, without
// going through subset construction: g must already be deterministic (see
// graph.TransitionGraph.IsDFA), since a graph with lambda transitions or
// ambiguous symbols has no single transition function to copy.
func FromGraph(g *graph.TransitionGraph) (*Dfa, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !g.IsDFA() {
		return nil, &fsaerr.GraphError{Err: fsaerr.ErrNotADFA}
	}

	alphaSet := make(map[rune]struct{})
	for _, transitions := range g.Out {
		for char := range transitions {
			alphaSet[char] = struct{}{}
		}
	}
	alpha := make([]rune, 0, len(alphaSet))
	for c := range alphaSet {
		alpha = append(alpha, c)
	}
	sort.Slice(alpha, func(i, j int) bool { return alpha[i] < alpha[j] })

	d := &Dfa{alphabet: alpha}

	sinkID := StateID(len(d.states))
	d.states = append(d.states, state{label: "sink", next: make(map[rune]StateID, len(alpha))})
	for _, c := range alpha {
		d.states[sinkID].next[c] = sinkID
	}
	d.sink = sinkID

	// g's own state indices become Dfa StateIDs shifted by one slot for the
	// sink, so every graph state maps to exactly one Dfa state.
	offset := StateID(1)
	for i, label := range g.Labels {
		next := make(map[rune]StateID, len(alpha))
		for _, c := range alpha {
			next[c] = d.sink
		}
		d.states = append(d.states, state{label: label, final: g.Final[i], next: next})
	}

	for i, transitions := range g.Out {
		for char, dests := range transitions {
			if len(dests) == 0 {
				continue
			}
			d.states[offset+StateID(i)].next[char] = offset + StateID(dests[0])
		}
	}

	d.initial = offset + StateID(g.Initial)
	return d, nil
}
