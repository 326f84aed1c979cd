package application

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/content"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\n"

func TestRunReturnsErrorWithNonExistingFile(t *testing.T) {
	cfg := config.Config{Filename: filepath.Join(t.TempDir(), "does-not-exist.txt"), CaseSensitive: true}

	err := New(cfg, zaptest.NewLogger(t), WithOutput(&bytes.Buffer{})).Run()
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist to be wrapped, got %v", err)
	}
}

func TestRunReturnsOkWithExistingFile(t *testing.T) {
	cfg := config.Config{Filename: writeTempFile(t, "foobar"), CaseSensitive: true}

	var out bytes.Buffer
	if err := New(cfg, zaptest.NewLogger(t), WithOutput(&out)).Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got := out.String(); got != "foobar\n" {
		t.Fatalf("expected every line for empty query, got %q", got)
	}
}

func TestRunWritesMatches(t *testing.T) {
	path := writeTempFile(t, poem)

	tests := []struct {
		name          string
		query         string
		caseSensitive bool
		want          string
	}{
		{name: "CaseSensitive", query: "duct", caseSensitive: true, want: "safe, fast, productive.\n"},
		{name: "CaseInsensitive", query: "rUsT", caseSensitive: false, want: "Rust:\nTrust me.\n"},
		{name: "NoMatches", query: "absent", caseSensitive: true, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Config{Query: tc.query, Filename: path, CaseSensitive: tc.caseSensitive}

			var out bytes.Buffer
			if err := New(cfg, zaptest.NewLogger(t), WithOutput(&out)).Run(); err != nil {
				t.Fatalf("Run returned error: %v", err)
			}
			if got := out.String(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRunInvalidEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.dat")
	if err := os.WriteFile(path, []byte{0xc3, 0x28}, 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	err := New(config.Config{Filename: path}, zaptest.NewLogger(t), WithOutput(&bytes.Buffer{})).Run()
	if !errors.Is(err, ErrIO) || !errors.Is(err, content.ErrInvalidEncoding) {
		t.Fatalf("expected ErrIO wrapping ErrInvalidEncoding, got %v", err)
	}
}

func TestRunUsesInjectedReader(t *testing.T) {
	reader := stubReader{text: "alpha\nbeta\n"}
	cfg := config.Config{Query: "beta", Filename: "ignored", CaseSensitive: true}

	var out bytes.Buffer
	if err := New(cfg, zaptest.NewLogger(t), WithReader(reader), WithOutput(&out)).Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got := out.String(); got != "beta\n" {
		t.Fatalf("expected %q, got %q", "beta\n", got)
	}
}

func TestRunReportsWriteFailure(t *testing.T) {
	reader := stubReader{text: "line\n"}
	cfg := config.Config{Query: "line", Filename: "ignored", CaseSensitive: true}

	err := New(cfg, zaptest.NewLogger(t), WithReader(reader), WithOutput(failingWriter{})).Run()
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

type stubReader struct {
	text string
	err  error
}

func (s stubReader) Read(string) (string, error) {
	return s.text, s.err
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func writeTempFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
