// Package dfa implements the deterministic finite automaton: subset
// construction from an Nfa, partition-refinement minimization, and a total
// transition function simulation.
package dfa

import (
	"fmt"

	"github.com/corefsa/corefsa/alphabet"
)

// StateID indexes a state within the arena of the Dfa that owns it.
type StateID uint32

// InvalidState is the sentinel for "no such state".
const InvalidState StateID = 0xFFFFFFFF

// Dfa is a deterministic automaton over a fixed alphabet. Unlike Nfa, every
// state has exactly one transition per alphabet symbol: Dfa.Step never
// needs to consider more than one candidate, and an unreachable combination
// (symbol, state) is represented explicitly as a transition to the sink
// state rather than left undefined.
type Dfa struct {
	alphabet []rune
	states   []state
	initial  StateID
	// sink is the well-defined non-final trap state every dead transition
	// routes to; it has a self-loop on every alphabet symbol.
	sink StateID
}

type state struct {
	label string
	final bool
	// next maps each alphabet symbol to its single destination. Always has
	// exactly len(alphabet) entries after construction completes.
	next map[rune]StateID
}

// Initial returns the automaton's single initial state.
func (d *Dfa) Initial() StateID { return d.initial }

// Sink returns the automaton's dead (non-accepting, closed) trap state.
func (d *Dfa) Sink() StateID { return d.sink }

// IsFinal reports whether id is an accepting state.
func (d *Dfa) IsFinal(id StateID) bool {
	return int(id) < len(d.states) && d.states[id].final
}

// Label returns the display label assigned to id.
func (d *Dfa) Label(id StateID) string {
	if int(id) >= len(d.states) {
		return ""
	}
	return d.states[id].label
}

// Alphabet returns the automaton's fixed input alphabet, excluding lambda.
func (d *Dfa) Alphabet() []rune {
	out := make([]rune, len(d.alphabet))
	copy(out, d.alphabet)
	return out
}

// NumStates returns the number of states in the automaton, including the
// sink.
func (d *Dfa) NumStates() int { return len(d.states) }

// Step returns the single destination state for a transition from id on
// char. If char is outside the automaton's alphabet, Step returns the sink.
func (d *Dfa) Step(id StateID, char rune) StateID {
	if int(id) >= len(d.states) {
		return d.sink
	}
	if next, ok := d.states[id].next[char]; ok {
		return next
	}
	return d.sink
}

// Test reports whether s is accepted by the automaton: walk the total
// transition function one symbol at a time from the initial state and
// check whether the state reached at the end is final.
//
// A string consisting solely of the lambda symbol is treated as the empty
// string, per alphabet.NormalizeTestInput; every other occurrence of it is
// an ordinary character, and since a Dfa's alphabet never contains the
// lambda symbol (it is reserved for Nfa epsilon edges collapsed away by
// determinization), stepping on it always lands on the sink.
func (d *Dfa) Test(s string) bool {
	s = alphabet.NormalizeTestInput(s)
	current := d.initial
	for _, c := range s {
		current = d.Step(current, c)
	}
	return d.IsFinal(current)
}

func (d *Dfa) String() string {
	return fmt.Sprintf("Dfa{states: %d, alphabet: %d symbols}", len(d.states), len(d.alphabet))
}
