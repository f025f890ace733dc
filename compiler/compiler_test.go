package compiler

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		pattern string
		want    []Token
	}{
		{"a.b", []Token{
			{Kind: Alphabet, Ch: 'a'},
			{Kind: Concat},
			{Kind: Alphabet, Ch: 'b'},
		}},
		{"(a|b)*", []Token{
			{Kind: LParen},
			{Kind: Alphabet, Ch: 'a'},
			{Kind: Union},
			{Kind: Alphabet, Ch: 'b'},
			{Kind: RParen},
			{Kind: Closure},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := Tokenize(tt.pattern)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.pattern, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeUnsupportedCharacter(t *testing.T) {
	_, err := Tokenize("a.1")
	if err == nil {
		t.Fatal("expected error for unsupported character")
	}
	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Pos != 2 {
		t.Errorf("Pos = %d, want 2", synErr.Pos)
	}
}

// TestToPostfix checks a table of known infix-to-postfix conversions.
func TestToPostfix(t *testing.T) {
	tests := []struct {
		pattern string
		postfix string
	}{
		{"a.b", "ab."},
		{"(a.b)", "ab."},
		{"a.(b.b)+.a", "abb.+.a."},
		{"a.(a|b)*.b", "aab|*.b."},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			toks, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", tt.pattern, err)
			}
			got := Format(toks)
			if got != tt.postfix {
				t.Errorf("Compile(%q) = %q, want %q", tt.pattern, got, tt.postfix)
			}
		})
	}
}

func TestTokenizeEmptyPattern(t *testing.T) {
	_, err := Tokenize("")
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Tokenize(\"\") error = %v, want ErrMalformedInput", err)
	}
}

func TestToPostfixUnbalancedParens(t *testing.T) {
	tests := []string{
		"a.b)",
		"(a.b",
		"((a.b)",
	}
	for _, p := range tests {
		t.Run(p, func(t *testing.T) {
			_, err := Compile(p)
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("Compile(%q) error = %v, want ErrMalformedInput", p, err)
			}
			var postfixErr *PostfixError
			if !errors.As(err, &postfixErr) {
				t.Errorf("Compile(%q) error = %T, want *PostfixError", p, err)
			}
		})
	}
}

// TestPostfixWellFormed checks that for every valid pattern, scanning
// the postfix output left to right never drops the running stack depth
// below 1 after any symbol, and the final depth is exactly 1.
func TestPostfixWellFormed(t *testing.T) {
	patterns := []string{
		"a",
		"a.b",
		"a.b.c",
		"a|b",
		"a.(a|b)*.b",
		"a.(b.b)+.a",
		"a.b?",
		"(((((a)))))",
	}

	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			toks, err := Compile(p)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", p, err)
			}
			depth := 0
			for _, tok := range toks {
				switch {
				case tok.Kind == Alphabet:
					depth++
				case tok.Kind == Union || tok.Kind == Concat:
					depth-- // pops 2, pushes 1
				default:
					// unary operator: pops 1, pushes 1, depth unchanged
				}
				if depth < 1 {
					t.Fatalf("%q: stack depth dropped to %d mid-program", p, depth)
				}
			}
			if depth != 1 {
				t.Errorf("%q: final stack depth = %d, want 1", p, depth)
			}
		})
	}
}

// TestDeeplyNestedParens checks that deep parenthesis nesting (well
// beyond any realistic pattern) compiles without overflow.
func TestDeeplyNestedParens(t *testing.T) {
	const depth = 150
	pattern := ""
	for i := 0; i < depth; i++ {
		pattern += "("
	}
	pattern += "a"
	for i := 0; i < depth; i++ {
		pattern += ")"
	}

	toks, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(deeply nested) error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != Alphabet {
		t.Errorf("Compile(deeply nested) = %v, want single Alphabet token", toks)
	}
}

func FuzzToPostfix(f *testing.F) {
	seeds := []string{"a.b", "a.(a|b)*.b", "a.(b.b)+.a", "a.b?", "(a.b)", "a)", "(a"}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, pattern string) {
		toks, err := Compile(pattern)
		if err != nil {
			return
		}
		depth := 0
		for _, tok := range toks {
			switch tok.Kind {
			case Alphabet:
				depth++
			case Union, Concat:
				depth--
			}
			if depth < 0 {
				t.Fatalf("%q: stack depth went negative", pattern)
			}
		}
		if depth != 1 && len(toks) > 0 {
			t.Fatalf("%q: final depth = %d, want 1", pattern, depth)
		}
	})
}
