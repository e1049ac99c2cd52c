package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/corefsa/corefsa/nfa"
)

// FromNFA builds a Dfa accepting the same language as n via subset
// construction. Each Dfa state corresponds to a lambda-closed set of Nfa
// states; the construction discovers these sets breadth-first, starting
// from the lambda-closure of n's initial state, stepping every pending
// subset on every alphabet symbol via nfa.FindAllReachable, and stopping
// once every subset reached has itself been expanded. Subsets are keyed by
// their sorted StateID sequence so that two expansions that land on the
// same set of Nfa states are recognized as the same Dfa state rather than
// built twice; the all-empty subset is folded into a single well-defined
// sink state even if no transition ever produces it, so Step is always
// total.
func FromNFA(n *nfa.Nfa) *Dfa {
	alpha := n.Alphabet()
	sort.Slice(alpha, func(i, j int) bool { return alpha[i] < alpha[j] })

	d := &Dfa{}
	d.alphabet = alpha
	subsetKey := make(map[string]StateID)
	var pending []map[nfa.StateID]struct{}

	// The sink is added first and its own id is known before its self-loop
	// transitions are wired, rather than relying on any zero-value default.
	sinkID := StateID(len(d.states))
	d.states = append(d.states, state{label: "", next: make(map[rune]StateID, len(alpha))})
	for _, c := range alpha {
		d.states[sinkID].next[c] = sinkID
	}
	d.sink = sinkID
	subsetKey[subsetKeyOf(nil)] = sinkID

	initial := nfa.LambdaClosure(n, map[nfa.StateID]struct{}{n.Initial(): {}})
	initKey := subsetKeyOf(initial)
	if existing, ok := subsetKey[initKey]; ok {
		d.initial = existing
	} else {
		d.initial = d.addState(initial)
		subsetKey[initKey] = d.initial
		pending = append(pending, initial)
	}
	d.states[d.initial].final = anyFinalNFA(n, initial)

	for len(pending) > 0 {
		subset := pending[0]
		pending = pending[1:]
		id := subsetKey[subsetKeyOf(subset)]

		for _, c := range alpha {
			target := nfa.FindAllReachable(n, subset, c)
			key := subsetKeyOf(target)
			targetID, ok := subsetKey[key]
			if !ok {
				targetID = d.addState(target)
				d.states[targetID].final = anyFinalNFA(n, target)
				subsetKey[key] = targetID
				pending = append(pending, target)
			}
			d.states[id].next[c] = targetID
		}
	}

	d.labelStates()
	return d
}

func (d *Dfa) addState(_ map[nfa.StateID]struct{}) StateID {
	id := StateID(len(d.states))
	next := make(map[rune]StateID, len(d.alphabet))
	for _, c := range d.alphabet {
		next[c] = d.sink
	}
	d.states = append(d.states, state{next: next})
	return id
}

func (d *Dfa) labelStates() {
	for i := range d.states {
		d.states[i].label = strconv.Itoa(i)
	}
}

func anyFinalNFA(n *nfa.Nfa, subset map[nfa.StateID]struct{}) bool {
	for id := range subset {
		if n.IsFinal(id) {
			return true
		}
	}
	return false
}

func subsetKeyOf(subset map[nfa.StateID]struct{}) string {
	ids := make([]int, 0, len(subset))
	for id := range subset {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}
