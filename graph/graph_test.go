package graph

import "testing"

func buildContains11() *TransitionGraph {
	g := New()
	q0 := g.AddState("q0")
	q1 := g.AddState("q1")
	q2 := g.AddState("q2")
	g.SetInitial(q0)
	g.AddFinal(q2)
	g.AddTransition(q0, '0', q0)
	g.AddTransition(q0, '1', q1)
	g.AddTransition(q1, '0', q0)
	g.AddTransition(q1, '1', q2)
	g.AddTransition(q2, '0', q2)
	g.AddTransition(q2, '1', q2)
	return g
}

func TestValidateRequiresInitial(t *testing.T) {
	g := New()
	g.AddState("q0")
	if err := g.Validate(); err == nil {
		t.Fatal("Validate should fail without an initial state")
	}
}

func TestValidateAccepts(t *testing.T) {
	g := buildContains11()
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestIsDFATrue(t *testing.T) {
	g := buildContains11()
	if !g.IsDFA() {
		t.Errorf("contains-11 graph should be deterministic")
	}
}

func TestIsDFAFalseOnMultipleDestinations(t *testing.T) {
	g := New()
	a := g.AddState("a")
	b := g.AddState("b")
	c := g.AddState("c")
	g.SetInitial(a)
	g.AddFinal(c)
	g.AddTransition(a, '0', b)
	g.AddTransition(a, '0', c)
	if g.IsDFA() {
		t.Errorf("graph with two destinations for the same symbol should not be a dfa")
	}
}

func TestIsDFAFalseOnLambda(t *testing.T) {
	g := New()
	a := g.AddState("a")
	b := g.AddState("b")
	g.SetInitial(a)
	g.AddFinal(b)
	g.AddTransition(a, '^', b)
	if g.IsDFA() {
		t.Errorf("graph with a lambda transition should not be a dfa")
	}
}
