package dfa

import "github.com/corefsa/corefsa/nfa"

// ToNFA returns an Nfa accepting exactly the language d accepts, with one
// Nfa state per Dfa state (the sink included, since it may be the
// destination of a live transition even though it is never itself final)
// and no lambda transitions at all: a Dfa's transition function is already a
// valid (deterministic) Nfa transition relation. This lets the GTG regex
// synthesizer (package gtg) run over an automaton built via FromGraph or
// FromNFA+Minimize alike.
func (d *Dfa) ToNFA() *nfa.Nfa {
	return nfa.FromTransitionFunc(len(d.states), int(d.initial), d.finalSet(), func(id, symbol int) int {
		return int(d.Step(StateID(id), d.alphabet[symbol]))
	}, d.alphabet)
}

func (d *Dfa) finalSet() []int {
	var finals []int
	for i := range d.states {
		if d.states[i].final {
			finals = append(finals, i)
		}
	}
	return finals
}
