package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.cfg")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestCheck_ValidDocument(t *testing.T) {
	path := writeSource(t, `
		port = 8080;
		server = { host = "localhost"; };
	`)

	check := &Check{File: path}
	if err := check.Run(context.Background()); err != nil {
		t.Errorf("expected success, got %v", err)
	}
}

func TestCheck_SyntaxError(t *testing.T) {
	path := writeSource(t, `port = ;`)

	check := &Check{File: path}

	err := check.Run(context.Background())
	if err == nil {
		t.Fatal("expected error, got none")
	}

	// The diagnostic carries the annotated source line.
	if !strings.Contains(err.Error(), "port = ;") {
		t.Errorf("expected source line in error, got %q", err)
	}
}

func TestCheck_Assertions(t *testing.T) {
	path := writeSource(t, `
		port = 8080;
		debug = false;
		server = { host = "localhost"; };
	`)

	tests := []struct {
		name   string
		assert []string
		wantOK bool
	}{
		{
			name:   "holds",
			assert: []string{"port > 1024"},
			wantOK: true,
		},
		{
			name:   "multiple hold",
			assert: []string{"port > 1024", "!debug", `server.host != ""`},
			wantOK: true,
		},
		{
			name:   "fails",
			assert: []string{"port < 1024"},
			wantOK: false,
		},
		{
			name:   "second of two fails",
			assert: []string{"port > 1024", "debug"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := &Check{File: path, Assert: tt.assert}

			err := check.Run(context.Background())
			if tt.wantOK && err != nil {
				t.Errorf("expected success, got %v", err)
			}

			if !tt.wantOK {
				if err == nil {
					t.Fatal("expected error, got none")
				}

				if !strings.Contains(err.Error(), "assertion failed") {
					t.Errorf("expected assertion failure, got %q", err)
				}
			}
		})
	}
}

func TestCheck_MalformedAssertion(t *testing.T) {
	path := writeSource(t, `port = 8080;`)

	check := &Check{File: path, Assert: []string{"port >"}}

	err := check.Run(context.Background())
	if err == nil {
		t.Fatal("expected error, got none")
	}

	if !strings.Contains(err.Error(), "failed to compile assertion") {
		t.Errorf("expected compile failure, got %q", err)
	}
}
