package regexsyn

import (
	"errors"
	"testing"

	"github.com/corefsa/corefsa/fsaerr"
)

func mustParse(t *testing.T, s string) *Tree {
	t.Helper()
	tree, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", s, err)
	}
	return tree
}

func TestParseConcatenation(t *testing.T) {
	tree := mustParse(t, "ab")
	if tree.Kind() != KindCat {
		t.Fatalf("Parse(%q).Kind() = %v, want KindCat", "ab", tree.Kind())
	}
	if tree.Left().Char() != 'a' || tree.Right().Char() != 'b' {
		t.Errorf("Parse(%q) = Cat(%v, %v), want Cat(a, b)", "ab", tree.Left(), tree.Right())
	}
}

func TestParseExplicitConcatenation(t *testing.T) {
	implicit := mustParse(t, "ab")
	explicit := mustParse(t, "a.b")
	if !implicit.Equal(explicit) {
		t.Errorf("Parse(%q) = %v, want same tree as Parse(%q) = %v", "a.b", explicit, "ab", implicit)
	}
}

func TestParseUnion(t *testing.T) {
	tree := mustParse(t, "a+b")
	if tree.Kind() != KindUnion {
		t.Fatalf("Parse(%q).Kind() = %v, want KindUnion", "a+b", tree.Kind())
	}
}

func TestParseStar(t *testing.T) {
	tree := mustParse(t, "a*")
	if tree.Kind() != KindStar {
		t.Fatalf("Parse(%q).Kind() = %v, want KindStar", "a*", tree.Kind())
	}
}

func TestParsePrecedence(t *testing.T) {
	// a+bc should parse as a + (b.c), since cat binds tighter than union
	tree := mustParse(t, "a+bc")
	if tree.Kind() != KindUnion {
		t.Fatalf("Parse(%q).Kind() = %v, want KindUnion", "a+bc", tree.Kind())
	}
	if tree.Left().Char() != 'a' {
		t.Errorf("left operand = %v, want Char(a)", tree.Left())
	}
	if tree.Right().Kind() != KindCat {
		t.Errorf("right operand = %v, want Cat(b, c)", tree.Right().Kind())
	}
}

func TestParseStarBindsTighterThanCat(t *testing.T) {
	// ab* should parse as a.(b*)
	tree := mustParse(t, "ab*")
	if tree.Kind() != KindCat {
		t.Fatalf("Parse(%q).Kind() = %v, want KindCat", "ab*", tree.Kind())
	}
	if tree.Left().Char() != 'a' {
		t.Errorf("left = %v, want Char(a)", tree.Left())
	}
	if tree.Right().Kind() != KindStar {
		t.Errorf("right = %v, want Star", tree.Right().Kind())
	}
}

func TestParseParenGrouping(t *testing.T) {
	// (a+b)*abb from the worked example
	tree := mustParse(t, "(a+b)*abb")
	if tree.Kind() != KindCat {
		t.Fatalf("Parse(%q).Kind() = %v, want KindCat", "(a+b)*abb", tree.Kind())
	}
}

func TestParseLambdaAndNull(t *testing.T) {
	tree := mustParse(t, "^")
	if tree.Kind() != KindLambda {
		t.Errorf("Parse(^).Kind() = %v, want KindLambda", tree.Kind())
	}
	tree = mustParse(t, "~")
	if tree.Kind() != KindNull {
		t.Errorf("Parse(~).Kind() = %v, want KindNull", tree.Kind())
	}
}

func TestParseEmptyExpression(t *testing.T) {
	_, err := Parse("")
	if err == nil {
		t.Fatal("Parse(\"\") should fail")
	}
	var perr *fsaerr.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *fsaerr.ParseError", err)
	}
	if perr.Kind != fsaerr.ErrEmptyExpression {
		t.Errorf("Kind = %v, want ErrEmptyExpression", perr.Kind)
	}
}

func TestParseUnmatchedParen(t *testing.T) {
	_, err := Parse("(ab")
	if err == nil {
		t.Fatal("Parse(\"(ab\") should fail")
	}
	var perr *fsaerr.ParseError
	if !errors.As(err, &perr) || perr.Kind != fsaerr.ErrUnmatchedParen {
		t.Errorf("error = %v, want ErrUnmatchedParen", err)
	}
}

func TestParseUnexpectedClosingParen(t *testing.T) {
	_, err := Parse("ab)")
	if err == nil {
		t.Fatal("Parse(\"ab)\") should fail")
	}
	var perr *fsaerr.ParseError
	if !errors.As(err, &perr) || perr.Kind != fsaerr.ErrUnmatchedParen {
		t.Errorf("error = %v, want ErrUnmatchedParen", err)
	}
}

func TestParseMissingOperand(t *testing.T) {
	_, err := Parse("+a")
	if err == nil {
		t.Fatal("Parse(\"+a\") should fail")
	}
	var perr *fsaerr.ParseError
	if !errors.As(err, &perr) || perr.Kind != fsaerr.ErrMissingOperand {
		t.Errorf("error = %v, want ErrMissingOperand", err)
	}
}

func TestParseNestedParens(t *testing.T) {
	tree, err := Parse("((a+b)+(c+d))*")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if tree.Kind() != KindStar {
		t.Errorf("Kind() = %v, want KindStar", tree.Kind())
	}
}
