package graph

import (
	"bufio"
	"io"
	"strings"

	"github.com/corefsa/corefsa/fsaerr"
)

const (
	labelChar   = '@'
	commentChar = '#'
	startChar   = '!'
	finalChar   = '*'
)

// LoadText reads the line-oriented transition-graph format: blank lines and
// lines starting with '#' are ignored, "@LABEL" begins a new state and
// makes it current, "!" marks the current state initial, "*" marks it
// final, and any other line is "CHAR DEST1 DEST2 ...", adding a transition
// from the current state to each destination label on CHAR.
func LoadText(r io.Reader) (*TransitionGraph, error) {
	g := New()
	pending := make(map[string][]pendingTransition)
	var current string
	haveCurrent := false
	sawInitial := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == commentChar {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		first := fields[0]
		switch first[0] {
		case labelChar:
			if len(first) < 2 {
				return nil, &fsaerr.GraphError{Err: fsaerr.ErrMissingLabel}
			}
			label := first[1:]
			current = label
			haveCurrent = true
			g.AddState(label)
		case startChar:
			if !haveCurrent {
				return nil, &fsaerr.GraphError{Err: fsaerr.ErrMissingLabel}
			}
			if sawInitial {
				return nil, &fsaerr.GraphError{Err: fsaerr.ErrMultipleInitial, Label: current}
			}
			idx, _ := g.StateIndex(current)
			g.SetInitial(idx)
			sawInitial = true
		case finalChar:
			if !haveCurrent {
				return nil, &fsaerr.GraphError{Err: fsaerr.ErrMissingLabel}
			}
			idx, _ := g.StateIndex(current)
			g.AddFinal(idx)
		default:
			if !haveCurrent {
				return nil, &fsaerr.GraphError{Err: fsaerr.ErrMissingLabel}
			}
			char := []rune(first)[0]
			for _, dest := range fields[1:] {
				pending[current] = append(pending[current], pendingTransition{char: char, dest: dest})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &fsaerr.IOError{Op: "load", Err: err}
	}
	if !sawInitial {
		return nil, &fsaerr.GraphError{Err: fsaerr.ErrMissingInitial}
	}

	for label, transitions := range pending {
		srcIdx, ok := g.StateIndex(label)
		if !ok {
			return nil, &fsaerr.GraphError{Err: fsaerr.ErrUndefinedState, Label: label}
		}
		for _, t := range transitions {
			dstIdx, ok := g.StateIndex(t.dest)
			if !ok {
				return nil, &fsaerr.GraphError{Err: fsaerr.ErrUndefinedState, Label: t.dest}
			}
			g.AddTransition(srcIdx, t.char, dstIdx)
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

type pendingTransition struct {
	char rune
	dest string
}

// SaveText writes g back out in the text format LoadText reads, listing
// each state's label, initial/final markers, then one line per outgoing
// symbol with every destination label that symbol reaches.
func SaveText(w io.Writer, g *TransitionGraph) error {
	bw := bufio.NewWriter(w)
	for idx, label := range g.Labels {
		if _, err := bw.WriteString(string(labelChar) + label + "\n"); err != nil {
			return &fsaerr.IOError{Op: "save", Err: err}
		}
		if idx == g.Initial {
			if _, err := bw.WriteString(string(startChar) + "\n"); err != nil {
				return &fsaerr.IOError{Op: "save", Err: err}
			}
		}
		if g.Final[idx] {
			if _, err := bw.WriteString(string(finalChar) + "\n"); err != nil {
				return &fsaerr.IOError{Op: "save", Err: err}
			}
		}
		for char, dests := range g.Out[idx] {
			line := string(char) + ":"
			for _, d := range dests {
				line += " " + g.Labels[d]
			}
			if _, err := bw.WriteString(line + "\n"); err != nil {
				return &fsaerr.IOError{Op: "save", Err: err}
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return &fsaerr.IOError{Op: "save", Err: err}
		}
	}
	return bw.Flush()
}
