package literal

import (
	"testing"

	"github.com/corefsa/corefsa/regexsyn"
)

func parseTree(t *testing.T, pattern string) *regexsyn.Tree {
	t.Helper()
	tree, err := regexsyn.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	return tree
}

func checkLiterals(t *testing.T, seq *Seq, expected []string) {
	t.Helper()
	if seq.Len() != len(expected) {
		t.Errorf("expected %d literals, got %d", len(expected), seq.Len())
		for i := 0; i < seq.Len(); i++ {
			t.Logf("  got: %q", string(seq.Get(i).Bytes))
		}
		return
	}
	got := make(map[string]bool, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		got[string(seq.Get(i).Bytes)] = true
	}
	for _, want := range expected {
		if !got[want] {
			t.Errorf("expected literal %q not found among results", want)
		}
	}
}

func TestExtractPrefixesLiteral(t *testing.T) {
	tests := []struct {
		pattern  string
		expected []string
	}{
		{"a", []string{"a"}},
		{"ab", []string{"ab"}},
		{"abc", []string{"abc"}},
	}
	e := New(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			seq := e.ExtractPrefixes(parseTree(t, tt.pattern))
			checkLiterals(t, seq, tt.expected)
		})
	}
}

func TestExtractPrefixesConcatStopsAtStar(t *testing.T) {
	e := New(DefaultConfig())
	seq := e.ExtractPrefixes(parseTree(t, "helloa*world"))
	checkLiterals(t, seq, []string{"hello"})
}

func TestExtractPrefixesUnion(t *testing.T) {
	e := New(DefaultConfig())
	seq := e.ExtractPrefixes(parseTree(t, "(foo+bar)"))
	checkLiterals(t, seq, []string{"foo", "bar"})
}

func TestExtractPrefixesStarYieldsEmpty(t *testing.T) {
	e := New(DefaultConfig())
	for _, pattern := range []string{"a*", "(ab)*", "a*bc"} {
		seq := e.ExtractPrefixes(parseTree(t, pattern))
		if pattern == "a*bc" {
			// the star operand contributes nothing, so the whole concat chain
			// stops at the first operand
			if !seq.IsEmpty() {
				t.Errorf("%q: expected empty prefix set, got %v", pattern, seq)
			}
			continue
		}
		if !seq.IsEmpty() {
			t.Errorf("%q: expected empty prefix set, got %v", pattern, seq)
		}
	}
}

func TestExtractPrefixesNullYieldsEmpty(t *testing.T) {
	e := New(DefaultConfig())
	seq := e.ExtractPrefixes(parseTree(t, "~"))
	if !seq.IsEmpty() {
		t.Errorf("null language should contribute no prefix literal")
	}
}

func TestExtractSuffixesLiteral(t *testing.T) {
	e := New(DefaultConfig())
	seq := e.ExtractSuffixes(parseTree(t, "helloworld"))
	checkLiterals(t, seq, []string{"helloworld"})
}

func TestExtractSuffixesStopsAtStar(t *testing.T) {
	e := New(DefaultConfig())
	seq := e.ExtractSuffixes(parseTree(t, "helloa*world"))
	checkLiterals(t, seq, []string{"world"})
}

func TestExtractSuffixesUnion(t *testing.T) {
	e := New(DefaultConfig())
	seq := e.ExtractSuffixes(parseTree(t, "(foo+bar)"))
	checkLiterals(t, seq, []string{"foo", "bar"})
}

func TestExtractInnerFindsFirstLiteral(t *testing.T) {
	e := New(DefaultConfig())
	seq := e.ExtractInner(parseTree(t, "a*errora*"))
	checkLiterals(t, seq, []string{"error"})
	if seq.Get(0).Complete {
		t.Errorf("inner literal should be marked inexact")
	}
}

func TestExtractInnerUnion(t *testing.T) {
	e := New(DefaultConfig())
	seq := e.ExtractInner(parseTree(t, "a*(foo+bar)a*"))
	checkLiterals(t, seq, []string{"foo", "bar"})
}

func TestExtractorConfigMaxLiterals(t *testing.T) {
	config := DefaultConfig()
	config.MaxLiterals = 2
	e := New(config)
	seq := e.ExtractPrefixes(parseTree(t, "(a+(b+(c+(d+e))))"))
	if seq.Len() > 2 {
		t.Errorf("expected at most 2 literals, got %d", seq.Len())
	}
}

func TestExtractorConfigMaxLiteralLen(t *testing.T) {
	config := DefaultConfig()
	config.MaxLiteralLen = 3
	e := New(config)
	seq := e.ExtractPrefixes(parseTree(t, "abcdef"))
	if seq.Len() != 1 {
		t.Fatalf("expected 1 literal, got %d", seq.Len())
	}
	if len(seq.Get(0).Bytes) != 3 {
		t.Errorf("expected literal truncated to 3 bytes, got %q", seq.Get(0).Bytes)
	}
}

func TestExtractPrefixesRecursionLimit(t *testing.T) {
	// Build a deeply right-nested Cat chain directly, well past the
	// extractor's depth guard (100), and confirm it returns rather than
	// recursing unbounded.
	tree := regexsyn.NewChar('a')
	for i := 0; i < 150; i++ {
		tree = regexsyn.NewCat(regexsyn.NewChar('a'), tree)
	}
	e := New(DefaultConfig())
	_ = e.ExtractPrefixes(tree)
}

func TestExtractPrefixesUnicode(t *testing.T) {
	e := New(DefaultConfig())
	seq := e.ExtractPrefixes(parseTree(t, "日本語"))
	checkLiterals(t, seq, []string{"日本語"})
}
