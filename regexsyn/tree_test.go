package regexsyn

import "testing"

func TestNewLeaf(t *testing.T) {
	cases := []struct {
		in   rune
		want Kind
	}{
		{'a', KindChar},
		{'^', KindLambda},
		{'~', KindNull},
	}
	for _, c := range cases {
		if got := NewLeaf(c.in).Kind(); got != c.want {
			t.Errorf("NewLeaf(%q).Kind() = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLambdaNullSingletons(t *testing.T) {
	if Lambda() != Lambda() {
		t.Errorf("Lambda() should return the same node every call")
	}
	if Null() != Null() {
		t.Errorf("Null() should return the same node every call")
	}
}

func TestUnionAllEmpty(t *testing.T) {
	if got := UnionAll(nil); got.Kind() != KindNull {
		t.Errorf("UnionAll(nil).Kind() = %v, want KindNull", got.Kind())
	}
}

func TestUnionAllSingle(t *testing.T) {
	a := NewChar('a')
	got := UnionAll([]*Tree{a})
	if got.Kind() != KindUnion {
		t.Fatalf("UnionAll([a]).Kind() = %v, want KindUnion", got.Kind())
	}
	if got.Left().Kind() != KindNull || got.Right() != a {
		t.Errorf("UnionAll([a]) = Union(Null, a), got Union(%v, %v)", got.Left().Kind(), got.Right())
	}
}

func TestKindString(t *testing.T) {
	kinds := []Kind{KindChar, KindLambda, KindNull, KindStar, KindCat, KindUnion}
	for _, k := range kinds {
		if k.String() == "" {
			t.Errorf("Kind(%d).String() is empty", k)
		}
	}
}
