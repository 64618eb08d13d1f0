package textfix

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/louisbranch/fix-apostrophes/internal/platform/errors"
)

// Document is the decoded content of one text file.
//
// Each line keeps its own terminator, so concatenating Lines reproduces the
// file exactly. An empty file has no lines.
type Document struct {
	SourcePath string
	Lines      []string
}

// NewDocument splits text into lines after each '\n'.
func NewDocument(sourcePath, text string) *Document {
	return &Document{SourcePath: sourcePath, Lines: splitLines(text)}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Load reads the whole file at path and decodes it as UTF-8.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := errors.CodeInputUnreadable
		if os.IsNotExist(err) {
			code = errors.CodeInputNotFound
		}
		return nil, errors.WrapWithMetadata(code, "read input", map[string]string{"path": path}, err)
	}
	if offset := invalidUTF8Offset(data); offset >= 0 {
		return nil, errors.WrapWithMetadata(errors.CodeInputNotUTF8, "decode input as utf-8", map[string]string{
			"path":   path,
			"offset": strconv.Itoa(offset),
		}, nil)
	}
	return NewDocument(path, string(data)), nil
}

// invalidUTF8Offset returns the offset of the first invalid byte, or -1.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// Fix returns a copy of d with every Marker replaced in every line, along with
// the total number of replacements. d is left unchanged.
func (d *Document) Fix() (*Document, int) {
	fixed := &Document{SourcePath: d.SourcePath}
	if len(d.Lines) > 0 {
		fixed.Lines = make([]string, len(d.Lines))
	}
	total := 0
	for i, line := range d.Lines {
		var n int
		fixed.Lines[i], n = FixLine(line)
		total += n
	}
	return fixed, total
}

// Bytes joins the lines back into file content.
func (d *Document) Bytes() []byte {
	var b strings.Builder
	for _, line := range d.Lines {
		b.WriteString(line)
	}
	return []byte(b.String())
}

// Write creates or truncates path and writes doc to it.
func Write(path string, doc *Document) error {
	if err := os.WriteFile(path, doc.Bytes(), 0o644); err != nil {
		return errors.WrapWithMetadata(errors.CodeOutputWriteFailed, "write output", map[string]string{"path": path}, err)
	}
	return nil
}
