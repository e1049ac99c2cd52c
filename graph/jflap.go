package graph

import (
	"encoding/xml"
	"io"

	"github.com/corefsa/corefsa/alphabet"
	"github.com/corefsa/corefsa/fsaerr"
)

type jflapStructure struct {
	XMLName  xml.Name    `xml:"structure"`
	Type     string      `xml:"type"`
	Automaton jflapAutomaton `xml:"automaton"`
}

type jflapAutomaton struct {
	States      []jflapState      `xml:"state"`
	Transitions []jflapTransition `xml:"transition"`
}

type jflapState struct {
	ID      string   `xml:"id,attr"`
	Name    string   `xml:"name,attr"`
	Initial *struct{} `xml:"initial"`
	Final   *struct{} `xml:"final"`
}

type jflapTransition struct {
	From string  `xml:"from"`
	To   string  `xml:"to"`
	Read *string `xml:"read"`
}

// LoadJFLAP reads a JFLAP automaton XML document: each <state> becomes a
// graph state named by its "name" attribute, an empty or missing <read> on
// a <transition> denotes the reserved lambda symbol, and <initial>/<final>
// child elements mark the corresponding graph state.
func LoadJFLAP(r io.Reader) (*TransitionGraph, error) {
	var doc jflapStructure
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &fsaerr.IOError{Op: "load jflap", Err: err}
	}

	g := New()
	byID := make(map[string]int)
	sawInitial := false

	for _, st := range doc.Automaton.States {
		idx := g.AddState(st.Name)
		byID[st.ID] = idx
		if st.Initial != nil {
			if sawInitial {
				return nil, &fsaerr.GraphError{Err: fsaerr.ErrMultipleInitial, Label: st.Name}
			}
			g.SetInitial(idx)
			sawInitial = true
		}
		if st.Final != nil {
			g.AddFinal(idx)
		}
	}
	if !sawInitial {
		return nil, &fsaerr.GraphError{Err: fsaerr.ErrMissingInitial}
	}

	for _, t := range doc.Automaton.Transitions {
		src, ok := byID[t.From]
		if !ok {
			return nil, &fsaerr.GraphError{Err: fsaerr.ErrUndefinedState, Label: t.From}
		}
		dst, ok := byID[t.To]
		if !ok {
			return nil, &fsaerr.GraphError{Err: fsaerr.ErrUndefinedState, Label: t.To}
		}
		char := alphabet.LambdaChar
		if t.Read != nil && *t.Read != "" {
			char = []rune(*t.Read)[0]
		}
		g.AddTransition(src, char, dst)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// SaveJFLAP writes g as a JFLAP automaton XML document, the inverse of
// LoadJFLAP: a lambda transition is written with an empty <read/>.
func SaveJFLAP(w io.Writer, g *TransitionGraph) error {
	doc := jflapStructure{Type: "fa"}
	for idx, label := range g.Labels {
		st := jflapState{ID: itoa(idx), Name: label}
		if idx == g.Initial {
			st.Initial = &struct{}{}
		}
		if g.Final[idx] {
			st.Final = &struct{}{}
		}
		doc.Automaton.States = append(doc.Automaton.States, st)
	}
	for src, transitions := range g.Out {
		for char, dests := range transitions {
			for _, dst := range dests {
				read := string(char)
				if char == alphabet.LambdaChar {
					read = ""
				}
				doc.Automaton.Transitions = append(doc.Automaton.Transitions, jflapTransition{
					From: itoa(src),
					To:   itoa(dst),
					Read: &read,
				})
			}
		}
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return &fsaerr.IOError{Op: "save jflap", Err: err}
	}
	return nil
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}
