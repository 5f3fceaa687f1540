package lang

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, src string) *Variable {
	t.Helper()

	toks, err := tokenize([]byte(src))
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	root, err := parse(toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	return root
}

func TestParse_Scalars(t *testing.T) {
	root := mustParse(t, `
		count = 42;
		offset = -3;
		zero = 0;
		ratio = 0.5;
		pi = 3.14;
		on = true;
		off = false;
		name = "widget";
	`)

	tests := []struct {
		name string
		kind Type
		raw  string
	}{
		{"count", TypeInt, "42"},
		{"offset", TypeInt, "-3"},
		{"zero", TypeInt, "0"},
		{"ratio", TypeDouble, "0.5"},
		{"pi", TypeDouble, "3.14"},
		{"on", TypeBool, "true"},
		{"off", TypeBool, "false"},
		{"name", TypeString, "widget"},
	}

	if root.Len() != len(tests) {
		t.Fatalf("expected %d variables, got %d", len(tests), root.Len())
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := root.TypeOf(tt.name); got != tt.kind {
				t.Errorf("expected type %s, got %s", tt.kind, got)
			}

			v, err := root.Lookup(tt.name)
			if err != nil {
				t.Fatalf("lookup error: %v", err)
			}

			if v.Raw() != tt.raw {
				t.Errorf("expected raw %q, got %q", tt.raw, v.Raw())
			}
		})
	}
}

func TestParse_StringConcatenation(t *testing.T) {
	root := mustParse(t, `
		greeting = "hello, " "world";
		parts = ("a" "b", "c");
	`)

	if got := root.String("greeting"); got != "hello, world" {
		t.Errorf("expected %q, got %q", "hello, world", got)
	}

	lst := root.List("parts")
	if lst == nil || lst.Len() != 2 {
		t.Fatalf("expected list of 2 elements, got %v", lst)
	}

	if got := lst.StringAt(0); got != "ab" {
		t.Errorf("expected %q, got %q", "ab", got)
	}
}

func TestParse_Arrays(t *testing.T) {
	root := mustParse(t, `
		ints = [1, 2, 3];
		empty = [];
		nested = [[1], [2, 3]];
		structs = [{ a = 1; }, { a = 2; }];
	`)

	ints := root.Array("ints")
	if ints == nil || ints.Len() != 3 {
		t.Fatalf("expected array of 3 elements, got %v", ints)
	}

	for i, want := range []int{1, 2, 3} {
		if got := ints.IntAt(i); got != want {
			t.Errorf("element %d: expected %d, got %d", i, want, got)
		}
	}

	if empty := root.Array("empty"); empty == nil || empty.Len() != 0 {
		t.Errorf("expected empty array, got %v", empty)
	}

	nested := root.Array("nested")
	if nested == nil || nested.Len() != 2 {
		t.Fatalf("expected nested array of 2 elements, got %v", nested)
	}

	inner := nested.ArrayAt(1)
	if inner == nil || inner.Len() != 2 || inner.IntAt(1) != 3 {
		t.Errorf("unexpected inner array: %v", inner)
	}

	structs := root.Array("structs")
	if structs == nil || structs.Len() != 2 {
		t.Fatalf("expected struct array of 2 elements, got %v", structs)
	}

	if got := structs.StructAt(1).Int("a"); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestParse_Lists(t *testing.T) {
	root := mustParse(t, `mixed = (1, "two", 3.0, true, [4], { x = 5; });`)

	lst := root.List("mixed")
	if lst == nil {
		t.Fatal("list not found")
	}

	want := []Type{
		TypeInt, TypeString, TypeDouble, TypeBool, TypeArray, TypeStruct,
	}

	if lst.Len() != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), lst.Len())
	}

	for i, kind := range want {
		if got := lst.TypeAt(i); got != kind {
			t.Errorf("element %d: expected %s, got %s", i, kind, got)
		}
	}

	if got := lst.StructAt(5).Int("x"); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}

func TestParse_Structs(t *testing.T) {
	root := mustParse(t, `
		server = {
			host = "localhost";
			port = 8080;
			tls = {
				enabled = false;
			};
		};
	`)

	server := root.Struct("server")
	if server == nil {
		t.Fatal("struct not found")
	}

	if got := server.String("host"); got != "localhost" {
		t.Errorf("expected %q, got %q", "localhost", got)
	}

	if got := server.Int("port"); got != 8080 {
		t.Errorf("expected 8080, got %d", got)
	}

	if server.Struct("tls").Bool("enabled") {
		t.Error("expected enabled = false")
	}

	if got := server.NameAt(2); got != "tls" {
		t.Errorf("expected member name %q, got %q", "tls", got)
	}
}

func TestParse_Comments(t *testing.T) {
	root := mustParse(t, `
		// leading comment
		a = 1; // trailing comment
		/* block
		   comment */
		b = /* inline */ 2;
	`)

	if root.Len() != 2 {
		t.Fatalf("expected 2 variables, got %d", root.Len())
	}

	if root.Int("a") != 1 || root.Int("b") != 2 {
		t.Errorf("unexpected values: a=%d b=%d", root.Int("a"), root.Int("b"))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   ErrorKind
		line   int
		column int
	}{
		{
			name:   "missing value",
			input:  `x = ;`,
			kind:   ErrorUnexpectedToken,
			line:   1,
			column: 5,
		},
		{
			name:   "missing equals",
			input:  `x 1;`,
			kind:   ErrorUnexpectedToken,
			line:   1,
			column: 3,
		},
		{
			name:   "missing semicolon",
			input:  `x = 1`,
			kind:   ErrorUnexpectedToken,
			line:   1,
			column: 6,
		},
		{
			name:   "value without name",
			input:  `42;`,
			kind:   ErrorUnexpectedToken,
			line:   1,
			column: 1,
		},
		{
			name:   "unmatched close",
			input:  `}`,
			kind:   ErrorUnexpectedToken,
			line:   1,
			column: 1,
		},
		{
			name:   "unclosed struct at end of input",
			input:  `s = { a = 1;`,
			kind:   ErrorUnexpectedToken,
			line:   1,
			column: 13,
		},
		{
			name:   "mixed array element types",
			input:  `arr = [1, "x"];`,
			kind:   ErrorUnexpectedToken,
			line:   1,
			column: 11,
		},
		{
			name:   "mixed array aggregate types",
			input:  `arr = [[1], (2)];`,
			kind:   ErrorUnexpectedToken,
			line:   1,
			column: 13,
		},
		{
			name:   "scalar after aggregate element",
			input:  `arr = [[1], 2];`,
			kind:   ErrorUnexpectedToken,
			line:   1,
			column: 13,
		},
		{
			name:   "redefined top-level variable",
			input:  "x = 1;\nx = 2;",
			kind:   ErrorRedefinition,
			line:   2,
			column: 1,
		},
		{
			name:   "redefined struct member",
			input:  `s = { a = 1; a = 2; };`,
			kind:   ErrorRedefinition,
			line:   1,
			column: 14,
		},
		{
			name:   "declaration inside array",
			input:  `arr = [x = 1];`,
			kind:   ErrorUnexpectedToken,
			line:   1,
			column: 8,
		},
		{
			name:   "bare element inside struct",
			input:  `s = { 1 };`,
			kind:   ErrorUnexpectedToken,
			line:   1,
			column: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, lexErr := tokenize([]byte(tt.input))
			if lexErr != nil {
				t.Fatalf("tokenize error: %v", lexErr)
			}

			_, err := parse(toks)
			if err == nil {
				t.Fatal("expected error, got none")
			}

			if err.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, err.Kind)
			}

			if err.Line != tt.line || err.Column != tt.column {
				t.Errorf("expected position %d:%d, got %d:%d",
					tt.line, tt.column, err.Line, err.Column)
			}
		})
	}
}

func TestParse_RedefinitionNamesContext(t *testing.T) {
	toks, lexErr := tokenize([]byte(`s = { a = 1; a = 2; };`))
	if lexErr != nil {
		t.Fatalf("tokenize error: %v", lexErr)
	}

	_, err := parse(toks)
	if err == nil {
		t.Fatal("expected error, got none")
	}

	var lerr *Error
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *Error, got %T", err)
	}

	const want = "redefined variable `a` inside `s`"
	if lerr.Message() != want {
		t.Errorf("expected message %q, got %q", want, lerr.Message())
	}
}

func TestParse_ElementsAreUnnamed(t *testing.T) {
	root := mustParse(t, `arr = [1, 2];`)

	arr := root.Array("arr")
	for child := range arr.All() {
		if child.Name() != "" {
			t.Errorf("expected unnamed element, got %q", child.Name())
		}
	}

	if got := arr.NameAt(0); got != "" {
		t.Errorf("expected empty name, got %q", got)
	}
}
