package textfix

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/fix-apostrophes/internal/platform/errors"
)

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

func TestOutputPath(t *testing.T) {
	tests := map[string]string{
		"quote.txt":        "processed_quote.txt",
		"docs/a.txt":       "processed_docs/a.txt",
		"/tmp/a.txt":       "processed_/tmp/a.txt",
		"":                 "processed_",
		"processed_x.txt":  "processed_processed_x.txt",
		"./relative/b.md":  "processed_./relative/b.md",
		"name with spaces": "processed_name with spaces",
	}
	for in, want := range tests {
		if got := OutputPath(in); got != want {
			t.Fatalf("OutputPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFixApostrophesSingleLine(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "quote.txt", "Itâ€™s a test")

	out, err := FixApostrophes(context.Background(), "quote.txt")
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	if out != "processed_quote.txt" {
		t.Fatalf("expected processed_quote.txt, got %q", out)
	}
	if got := readFile(t, out); got != "It's a test" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestFixFileMultiLine(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "multi.txt", "Donâ€™t stop\nNo change here\nâ€™leading\n")

	res, err := FixFile(context.Background(), "multi.txt")
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	if res.Lines != 3 || res.Replacements != 2 {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.InputPath != "multi.txt" || res.OutputPath != "processed_multi.txt" {
		t.Fatalf("unexpected paths %+v", res)
	}
	want := "Don't stop\nNo change here\n'leading\n"
	got := readFile(t, res.OutputPath)
	if got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 3 {
		t.Fatalf("line count changed: %q", got)
	}
}

func TestFixFileWithoutMarkerIsByteIdentical(t *testing.T) {
	t.Chdir(t.TempDir())
	content := "plain ascii\r\nünïcödé ’ “quotes”\n\n\tlast line without newline"
	writeFile(t, "clean.txt", content)

	res, err := FixFile(context.Background(), "clean.txt")
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	if res.Replacements != 0 {
		t.Fatalf("expected no replacements, got %d", res.Replacements)
	}
	if !bytes.Equal([]byte(readFile(t, res.OutputPath)), []byte(content)) {
		t.Fatal("expected byte-identical output")
	}
}

func TestFixFileEmptyInput(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "empty.txt", "")

	res, err := FixFile(context.Background(), "empty.txt")
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	if res.Lines != 0 {
		t.Fatalf("expected zero lines, got %d", res.Lines)
	}
	if got := readFile(t, res.OutputPath); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestFixFileIsIdempotentAcrossRuns(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "twice.txt", "weâ€™ll see\nâ€™\n")

	first, err := FixApostrophes(context.Background(), "twice.txt")
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	firstContent := readFile(t, first)
	second, err := FixApostrophes(context.Background(), "twice.txt")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first != second {
		t.Fatalf("output path changed: %q -> %q", first, second)
	}
	if got := readFile(t, second); got != firstContent {
		t.Fatalf("output changed between runs: %q -> %q", firstContent, got)
	}
}

func TestFixFileNestedPathPrefixesWholeString(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "docs/a.txt", "Itâ€™s nested")
	if err := os.MkdirAll("processed_docs", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	out, err := FixApostrophes(context.Background(), "docs/a.txt")
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	if out != "processed_docs/a.txt" {
		t.Fatalf("unexpected output path %q", out)
	}
	if got := readFile(t, out); got != "It's nested" {
		t.Fatalf("unexpected output %q", got)
	}
	if _, err := os.Stat(filepath.Join("docs", "processed_a.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected no path-joined output, stat err = %v", err)
	}
}

func TestFixFileNestedPathWithoutOutputDirFails(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "docs/a.txt", "x")

	_, err := FixFile(context.Background(), "docs/a.txt")
	if !errors.IsCode(err, errors.CodeOutputWriteFailed) {
		t.Fatalf("expected %s, got %v", errors.CodeOutputWriteFailed, err)
	}
}

func TestFixFileMissingInputCreatesNoOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := FixApostrophes(context.Background(), "missing.txt")
	if !errors.IsCode(err, errors.CodeInputNotFound) {
		t.Fatalf("expected %s, got %v", errors.CodeInputNotFound, err)
	}
	if _, err := os.Stat("processed_missing.txt"); !os.IsNotExist(err) {
		t.Fatalf("expected no output file, stat err = %v", err)
	}
}

func TestFixFileInvalidUTF8CreatesNoOutput(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "bad.txt", "\xff\xfe")

	_, err := FixFile(context.Background(), "bad.txt")
	if !errors.IsCode(err, errors.CodeInputNotUTF8) {
		t.Fatalf("expected %s, got %v", errors.CodeInputNotUTF8, err)
	}
	if _, err := os.Stat("processed_bad.txt"); !os.IsNotExist(err) {
		t.Fatalf("expected no output file, stat err = %v", err)
	}
}

func TestFixFileEmptyPathIsNotFound(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := FixFile(context.Background(), "")
	if !errors.IsCode(err, errors.CodeInputNotFound) {
		t.Fatalf("expected %s, got %v", errors.CodeInputNotFound, err)
	}
	if _, err := os.Stat(OutputPrefix); !os.IsNotExist(err) {
		t.Fatalf("expected no output file, stat err = %v", err)
	}
}
