package calc

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"42", 42},
		{"3.5", 3.5},
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"2*3+1", 7},
		{"10-4-3", 3},
		{"12/4/3", 1},
		{"10%4", 2},
		{"-4+2", -2},
		{"--4", 4},
		{"-(1+2)", -3},
		{"((7))", 7},
		{"abs(-3)", 3},
		{"sqrt(9)", 3},
		{"min(3, 5)", 3},
		{"max(3, 5)", 5},
		{"min(1+1, 5)*2", 4},
		{"max(min(4, 2), 1)", 2},
		{"pi*0+1", 1},
		{"1 /* inline */ + 2", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseConstants(t *testing.T) {
	got, err := Parse("pi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != math.Pi {
		t.Errorf("got %v, want pi", got)
	}

	got, err = Parse("e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != math.E {
		t.Errorf("got %v, want e", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		line    int
		column  int
		message string
	}{
		{"empty input", "", 1, 1, "an expression"},
		{"trailing operator", "1+", 1, 3, "an expression"},
		{"trailing input", "1 2", 1, 3, "end of input"},
		{"unclosed paren", "(1+2", 1, 5, ")"},
		{"unknown name", "foo", 1, 4, "a constant"},
		{"unknown function", "foo(1)", 1, 6, "a function"},
		{"wrong arity", "min(1)", 1, 6, "2 argument(s) to min"},
		{"stray byte", "@", 1, 1, "an expression"},
		{"second line", "1+\n*", 2, 1, "an expression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("error type = %T, want *SyntaxError", err)
			}
			if serr.Pos.Line != tt.line || serr.Pos.Column != tt.column {
				t.Errorf("position = %d:%d, want %d:%d (%v)", serr.Pos.Line, serr.Pos.Column, tt.line, tt.column, serr)
			}
			if !strings.Contains(serr.Message, tt.message) {
				t.Errorf("message %q does not mention %q", serr.Message, tt.message)
			}
		})
	}
}

func TestParseTokensWithoutEOFToken(t *testing.T) {
	tokens := Tokenize("1+2")
	got, err := ParseTokens(tokens[:len(tokens)-1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("got %v, want 3", got)
	}
}
