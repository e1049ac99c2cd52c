package dfa

import (
	"testing"

	"github.com/corefsa/corefsa/nfa"
	"github.com/corefsa/corefsa/regexsyn"
)

func buildDfa(t *testing.T, regex string) *Dfa {
	t.Helper()
	tree, err := regexsyn.Parse(regex)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", regex, err)
	}
	return FromNFA(nfa.Build(tree))
}

func TestDfaTestAgreesWithNfa(t *testing.T) {
	regex := "(a+b)*abb"
	tree, err := regexsyn.Parse(regex)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	n := nfa.Build(tree)
	d := FromNFA(n)

	cases := []string{"abb", "aabb", "babb", "ababb", "", "a", "ab", "abbb"}
	for _, s := range cases {
		if got, want := d.Test(s), n.Test(s); got != want {
			t.Errorf("Test(%q) = %v, want %v (nfa)", s, got, want)
		}
	}
}

func TestDfaStepDefaultsToSink(t *testing.T) {
	d := buildDfa(t, "a")
	id := d.Step(d.Initial(), 'z')
	if id != d.Sink() {
		t.Errorf("Step on out-of-alphabet symbol should land on the sink")
	}
}

func TestDfaSinkIsClosed(t *testing.T) {
	d := buildDfa(t, "a")
	sink := d.Sink()
	for _, c := range d.Alphabet() {
		if d.Step(sink, c) != sink {
			t.Errorf("sink should self-loop on every alphabet symbol")
		}
	}
	if d.IsFinal(sink) {
		t.Errorf("sink should never be final")
	}
}

func TestDfaTestLambdaInputIsEmptyString(t *testing.T) {
	d := buildDfa(t, "^")
	if !d.Test("^") {
		t.Errorf("Test(%q) on the lambda pattern should accept, same as Test(\"\")", "^")
	}
}

func TestDfaTestEmbeddedLambdaIsOrdinaryCharacter(t *testing.T) {
	d := buildDfa(t, "ab")
	if d.Test("a^b") {
		t.Errorf("Test(%q) should reject: embedded '^' is not a no-op", "a^b")
	}
}

func TestDfaTotalTransitionFunction(t *testing.T) {
	d := buildDfa(t, "a*b")
	for id := StateID(0); int(id) < d.NumStates(); id++ {
		for _, c := range d.Alphabet() {
			if dest := d.Step(id, c); int(dest) >= d.NumStates() {
				t.Errorf("Step(%d, %q) returned out-of-range state %d", id, c, dest)
			}
		}
	}
}
