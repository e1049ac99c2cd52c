package dfa

import (
	"strconv"
	"strings"
)

// Minimize returns a new Dfa with as few states as possible that accepts
// the same language as d, via partition refinement (Moore's algorithm):
// states start split into two blocks, final and non-final, then a block
// splits further whenever two of its states route some alphabet symbol
// into different blocks of the current partition. Refinement repeats,
// always using the previous round's block assignment to decide the next
// one, until a round produces no more blocks than the last: at that point
// every two states remaining in the same block are indistinguishable by
// any string, which is exactly the minimality condition.
func (d *Dfa) Minimize() *Dfa {
	block := make([]int, len(d.states))
	for i, s := range d.states {
		if s.final {
			block[i] = 1
		}
	}
	numBlocks := 2

	for {
		next := make([]int, len(d.states))
		ids := make(map[string]int)
		for i := range d.states {
			sig := d.signature(StateID(i), block)
			id, ok := ids[sig]
			if !ok {
				id = len(ids)
				ids[sig] = id
			}
			next[i] = id
		}
		if len(ids) == numBlocks {
			block = next
			break
		}
		numBlocks = len(ids)
		block = next
	}

	return d.rebuildFromBlocks(block, numBlocks)
}

// signature encodes, for comparing two states under the current partition,
// the state's own block plus the block reached on each alphabet symbol in a
// fixed order, so two states get equal signatures iff the current partition
// cannot yet distinguish them.
func (d *Dfa) signature(id StateID, block []int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(block[id]))
	for _, c := range d.alphabet {
		b.WriteByte('|')
		target := d.states[id].next[c]
		b.WriteString(strconv.Itoa(block[target]))
	}
	return b.String()
}

func (d *Dfa) rebuildFromBlocks(block []int, numBlocks int) *Dfa {
	min := &Dfa{alphabet: d.alphabet}
	min.states = make([]state, numBlocks)
	for b := range min.states {
		min.states[b].next = make(map[rune]StateID, len(d.alphabet))
	}

	representative := make([]StateID, numBlocks)
	seen := make([]bool, numBlocks)
	for i := range d.states {
		b := block[i]
		if !seen[b] {
			seen[b] = true
			representative[b] = StateID(i)
		}
		if d.states[i].final {
			min.states[b].final = true
		}
	}

	for b, rep := range representative {
		for _, c := range d.alphabet {
			target := d.states[rep].next[c]
			min.states[b].next[c] = StateID(block[target])
		}
	}

	min.initial = StateID(block[d.initial])
	min.sink = StateID(block[d.sink])
	min.labelStates()
	return min
}
