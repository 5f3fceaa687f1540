package lang

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Render(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "positioned",
			err:  newError(ErrorUnknownToken, 3, 7, "unknown token `/`"),
			want: "unknown token `/` at line:3, column:7",
		},
		{
			name: "unpositioned",
			err:  newError(ErrorNotFound, 0, 0, "variable `x` not found"),
			want: "variable `x` not found",
		},
		{
			name: "wrapped",
			err: wrapError(ErrorOpenFile, errors.New("permission denied"),
				"failed to open `a.cfg`"),
			want: "failed to open `a.cfg`: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := wrapError(ErrorOpenFile, cause, "failed to read input")

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the wrapped cause")
	}
}

func TestError_KindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ErrorNone, "none"},
		{ErrorOpenFile, "open file"},
		{ErrorFileTooLarge, "file too large"},
		{ErrorUnknownToken, "unknown token"},
		{ErrorUnexpectedToken, "unexpected token"},
		{ErrorUnterminatedString, "unterminated string"},
		{ErrorUnterminatedComment, "unterminated comment"},
		{ErrorRedefinition, "variable redefinition"},
		{ErrorNotFound, "variable not found"},
		{ErrorWrongType, "variable wrong type"},
		{ErrorParse, "variable parse"},
		{ErrorOutOfRange, "index out of range"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, expected %q",
				tt.kind, got, tt.want)
		}
	}
}

func TestError_Annotate(t *testing.T) {
	const src = "x = ;"

	toks, err := tokenize([]byte(src))
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	_, perr := parse(toks)
	if perr == nil {
		t.Fatal("expected error, got none")
	}

	got := lines(perr.Annotate(src))
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(got),
			strings.Join(got, "\n"))
	}

	if !strings.Contains(got[0], "line:1, column:5") {
		t.Errorf("missing position in %q", got[0])
	}

	if got[1] != "  1 | x = ;" {
		t.Errorf("unexpected source line %q", got[1])
	}

	// The caret must sit under the offending `;`.
	if got[2] != "          ^" {
		t.Errorf("unexpected caret line %q", got[2])
	}
}

func TestError_AnnotateWithoutPosition(t *testing.T) {
	err := newError(ErrorNotFound, 0, 0, "variable `x` not found")

	if got := err.Annotate("a = 1;"); got != err.Error() {
		t.Errorf("expected plain rendering, got %q", got)
	}
}

func lines(s string) []string { return strings.Split(s, "\n") }
