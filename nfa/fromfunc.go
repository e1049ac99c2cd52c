package nfa

// FromTransitionFunc builds an Nfa with numStates states, labeled 0..numStates-1,
// whose transitions are exactly step(id, symbolIndex) for each id and each
// index into alphabet. It exists so any total transition function over a
// fixed alphabet — a Dfa's Step chief among them — can be lifted into an Nfa
// and handed to algorithms that only know how to walk Nfa transitions, such
// as the GTG regex synthesizer (package gtg).
func FromTransitionFunc(numStates, initial int, finals []int, step func(id, symbolIndex int) int, alphabet []rune) *Nfa {
	n := newNfa()
	for i := 0; i < numStates; i++ {
		n.addState()
	}
	n.initial = StateID(initial)
	for _, f := range finals {
		n.finals[StateID(f)] = struct{}{}
	}
	for id := 0; id < numStates; id++ {
		for symIdx, c := range alphabet {
			dst := step(id, symIdx)
			n.addEdge(StateID(id), c, StateID(dst))
		}
	}
	return n
}
