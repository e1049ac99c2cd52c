package prefilter

import (
	"testing"

	"github.com/corefsa/corefsa/literal"
)

func seqOf(lits ...string) *literal.Seq {
	ls := make([]literal.Literal, len(lits))
	for i, s := range lits {
		ls[i] = literal.NewLiteral([]byte(s), true)
	}
	return literal.NewSeq(ls...)
}

func TestBuilderNoLiteralsYieldsNil(t *testing.T) {
	b := NewBuilder(literal.NewSeq(), literal.NewSeq())
	if pf := b.Build(); pf != nil {
		t.Fatalf("expected nil prefilter, got %v", pf)
	}
}

func TestBuilderSingleByteUsesMemchr(t *testing.T) {
	b := NewBuilder(seqOf("a"), nil)
	pf := b.Build()
	if _, ok := pf.(*memchrPrefilter); !ok {
		t.Fatalf("expected *memchrPrefilter, got %T", pf)
	}
}

func TestBuilderSingleSubstringUsesMemmem(t *testing.T) {
	b := NewBuilder(seqOf("hello"), nil)
	pf := b.Build()
	if _, ok := pf.(*memmemPrefilter); !ok {
		t.Fatalf("expected *memmemPrefilter, got %T", pf)
	}
}

func TestBuilderMultipleLiteralsUsesAhoCorasick(t *testing.T) {
	b := NewBuilder(seqOf("foo", "bar", "baz"), nil)
	pf := b.Build()
	if _, ok := pf.(*ahoCorasickPrefilter); !ok {
		t.Fatalf("expected *ahoCorasickPrefilter, got %T", pf)
	}
}

func TestBuilderPrefersPrefixesOverSuffixes(t *testing.T) {
	b := NewBuilder(seqOf("pre"), seqOf("suf"))
	pf := b.Build()
	mm, ok := pf.(*memmemPrefilter)
	if !ok {
		t.Fatalf("expected *memmemPrefilter, got %T", pf)
	}
	if string(mm.needle) != "pre" {
		t.Errorf("expected prefix literal to win, got %q", mm.needle)
	}
}

func TestBuilderFallsBackToSuffixes(t *testing.T) {
	b := NewBuilder(literal.NewSeq(), seqOf("suf"))
	pf := b.Build()
	mm, ok := pf.(*memmemPrefilter)
	if !ok {
		t.Fatalf("expected *memmemPrefilter, got %T", pf)
	}
	if string(mm.needle) != "suf" {
		t.Errorf("expected suffix literal, got %q", mm.needle)
	}
}

func TestMemchrFind(t *testing.T) {
	pf := newMemchrPrefilter('x', true)
	haystack := []byte("abcxdef")
	if pos := pf.Find(haystack, 0); pos != 3 {
		t.Errorf("Find = %d, want 3", pos)
	}
	if pos := pf.Find(haystack, 4); pos != -1 {
		t.Errorf("Find past the only occurrence = %d, want -1", pos)
	}
	if pf.LiteralLen() != 1 {
		t.Errorf("LiteralLen = %d, want 1", pf.LiteralLen())
	}
}

func TestMemchrOutOfBounds(t *testing.T) {
	pf := newMemchrPrefilter('x', true)
	if pos := pf.Find([]byte("abc"), 10); pos != -1 {
		t.Errorf("Find with start past haystack = %d, want -1", pos)
	}
	if pos := pf.Find([]byte("abc"), -1); pos != -1 {
		t.Errorf("Find with negative start = %d, want -1", pos)
	}
}

func TestMemmemFind(t *testing.T) {
	pf := newMemmemPrefilter([]byte("needle"), true)
	haystack := []byte("haystack with a needle in it")
	pos := pf.Find(haystack, 0)
	want := 16
	if pos != want {
		t.Errorf("Find = %d, want %d", pos, want)
	}
	if pf.LiteralLen() != len("needle") {
		t.Errorf("LiteralLen = %d, want %d", pf.LiteralLen(), len("needle"))
	}
}

func TestMemmemFindAbsentNeedle(t *testing.T) {
	pf := newMemmemPrefilter([]byte("zzz"), true)
	if pos := pf.Find([]byte("abcdef"), 0); pos != -1 {
		t.Errorf("Find = %d, want -1", pos)
	}
}

func TestMemmemScalarFallbackMatchesStdlib(t *testing.T) {
	haystack := []byte("the quick brown fox jumps over the lazy dog")
	needle := []byte("lazy")
	got := scalarIndex(haystack, needle)
	want := 35
	if got != want {
		t.Errorf("scalarIndex = %d, want %d", got, want)
	}
	if scalarIndex(haystack, []byte("absent")) != -1 {
		t.Errorf("scalarIndex should return -1 for an absent needle")
	}
}

func TestAhoCorasickFindsEarliestLiteral(t *testing.T) {
	pf := newAhoCorasickPrefilter(seqOf("bar", "foo"))
	haystack := []byte("xxbarxxfooxx")
	pos := pf.Find(haystack, 0)
	if pos != 2 {
		t.Errorf("Find = %d, want 2", pos)
	}
}

func TestAhoCorasickFindMatchReturnsSpan(t *testing.T) {
	pf := newAhoCorasickPrefilter(seqOf("foo", "foobar")).(*ahoCorasickPrefilter)
	start, end := pf.FindMatch([]byte("xxfoobarxx"), 0)
	if start != 2 {
		t.Errorf("start = %d, want 2", start)
	}
	if end <= start {
		t.Errorf("end = %d, want > start (%d)", end, start)
	}
}

func TestAhoCorasickNoHit(t *testing.T) {
	pf := newAhoCorasickPrefilter(seqOf("foo", "bar"))
	if pos := pf.Find([]byte("xyz"), 0); pos != -1 {
		t.Errorf("Find = %d, want -1", pos)
	}
}

func TestAhoCorasickIsNeverComplete(t *testing.T) {
	pf := newAhoCorasickPrefilter(seqOf("foo", "bar"))
	if pf.IsComplete() {
		t.Errorf("ahoCorasickPrefilter should never claim completeness")
	}
}
