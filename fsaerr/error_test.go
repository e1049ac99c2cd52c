package fsaerr

import (
	"errors"
	"testing"
)

func TestGraphErrorUnwrap(t *testing.T) {
	err := &GraphError{Err: ErrMissingInitial, Line: 3}
	if !errors.Is(err, ErrMissingInitial) {
		t.Errorf("errors.Is should find wrapped sentinel")
	}
	if err.Error() == "" {
		t.Errorf("Error() should not be empty")
	}
}

func TestParseErrorKindString(t *testing.T) {
	cases := []ParseErrorKind{ErrEmptyExpression, ErrMissingOperand, ErrUnmatchedParen, ErrResidualOperator}
	for _, k := range cases {
		if k.String() == "" {
			t.Errorf("ParseErrorKind(%d).String() is empty", k)
		}
	}
}

func TestIOErrorUnwrap(t *testing.T) {
	base := errors.New("disk full")
	err := &IOError{Op: "load", Err: base}
	if !errors.Is(err, base) {
		t.Errorf("errors.Is should find wrapped base error")
	}
}
