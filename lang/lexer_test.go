package lang

import (
	"errors"
	"testing"
)

func TestTokenize_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenKind
	}{
		{
			name:  "declaration",
			input: `x = 1;`,
			want: []TokenKind{
				TokenIdentifier, TokenEQ, TokenInt, TokenSemicolon, TokenEOF,
			},
		},
		{
			name:  "punctuation",
			input: `[ ] ( ) { } = ; ,`,
			want: []TokenKind{
				TokenLeftBracket, TokenRightBracket,
				TokenLeftParen, TokenRightParen,
				TokenLeftCurly, TokenRightCurly,
				TokenEQ, TokenSemicolon, TokenComma, TokenEOF,
			},
		},
		{
			name:  "literals",
			input: `42 3.14 true false "hi" word`,
			want: []TokenKind{
				TokenInt, TokenDouble, TokenBool, TokenBool,
				TokenString, TokenIdentifier, TokenEOF,
			},
		},
		{
			name:  "negative numbers",
			input: `-3 -0.5`,
			want:  []TokenKind{TokenInt, TokenDouble, TokenEOF},
		},
		{
			name:  "empty input",
			input: ``,
			want:  []TokenKind{TokenEOF},
		},
		{
			name:  "comments contribute no tokens",
			input: "// line\n/* block\nstill block */ x",
			want:  []TokenKind{TokenIdentifier, TokenEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := tokenize([]byte(tt.input))
			if err != nil {
				t.Fatalf("tokenize error: %v", err)
			}

			if len(toks) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d", len(tt.want), len(toks))
			}

			for i, kind := range tt.want {
				if toks[i].Kind != kind {
					t.Errorf("token %d: expected %s, got %s",
						i, kind, toks[i].Kind)
				}
			}
		})
	}
}

func TestTokenize_Strings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: `"hello"`, want: "hello"},
		{name: "empty", input: `""`, want: ""},
		{name: "newline escape", input: `"a\nb"`, want: "a\nb"},
		{name: "tab escape", input: `"a\tb"`, want: "a\tb"},
		{name: "quote escape", input: `"say \"hi\""`, want: `say "hi"`},
		{name: "single quote escape", input: `"don\'t"`, want: "don't"},
		{name: "backslash escape", input: `"a\\b"`, want: `a\b`},
		{
			name:  "unknown escape passes through",
			input: `"a\zb"`,
			want:  `a\zb`,
		},
		{name: "spaces kept", input: `"a b  c"`, want: "a b  c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := tokenize([]byte(tt.input))
			if err != nil {
				t.Fatalf("tokenize error: %v", err)
			}

			if toks[0].Kind != TokenString {
				t.Fatalf("expected string token, got %s", toks[0].Kind)
			}

			if toks[0].Text != tt.want {
				t.Errorf("expected %q, got %q", tt.want, toks[0].Text)
			}
		})
	}
}

func TestTokenize_Positions(t *testing.T) {
	toks, err := tokenize([]byte("x = 1;\n  y = 2.5;"))
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	tests := []struct {
		text   string
		line   int
		column int
	}{
		{"x", 1, 1},
		{"=", 1, 3},
		{"1", 1, 5},
		{";", 1, 6},
		{"y", 2, 3},
		{"=", 2, 5},
		{"2.5", 2, 7},
		{";", 2, 10},
	}

	for i, tt := range tests {
		tok := toks[i]
		if tok.Text != tt.text || tok.Line != tt.line || tok.Column != tt.column {
			t.Errorf("token %d: expected %q at %d:%d, got %q at %d:%d",
				i, tt.text, tt.line, tt.column,
				tok.Text, tok.Line, tok.Column)
		}
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   ErrorKind
		line   int
		column int
	}{
		{
			name:   "two decimal points",
			input:  "x = 1.2.3;",
			kind:   ErrorUnknownToken,
			line:   1,
			column: 5,
		},
		{
			name:   "stray slash",
			input:  "x = / 1;",
			kind:   ErrorUnknownToken,
			line:   1,
			column: 5,
		},
		{
			name:   "unterminated string",
			input:  "x = \"abc",
			kind:   ErrorUnterminatedString,
			line:   1,
			column: 5,
		},
		{
			name:   "unterminated block comment",
			input:  "x = 1; /* trailing",
			kind:   ErrorUnterminatedComment,
			line:   1,
			column: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokenize([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error, got none")
			}

			var lerr *Error
			if !errors.As(err, &lerr) {
				t.Fatalf("expected *Error, got %T", err)
			}

			if lerr.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, lerr.Kind)
			}

			if lerr.Line != tt.line || lerr.Column != tt.column {
				t.Errorf("expected position %d:%d, got %d:%d",
					tt.line, tt.column, lerr.Line, lerr.Column)
			}
		})
	}
}
