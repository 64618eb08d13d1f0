package textfix

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Apostrophe is the straight ASCII apostrophe, U+0027.
const Apostrophe = "'"

// Marker is U+2019 encoded as UTF-8 and decoded back as Windows-1252: "â€™".
var Marker = misdecode('\u2019')

// misdecode returns the text produced when the UTF-8 bytes of r are read as
// Windows-1252.
func misdecode(r rune) string {
	s, err := charmap.Windows1252.NewDecoder().String(string(r))
	if err != nil {
		panic(fmt.Sprintf("textfix: decode %U as windows-1252: %v", r, err))
	}
	return s
}

// FixLine replaces every Marker in line with Apostrophe and reports how many
// were replaced. Nothing else in line is touched.
func FixLine(line string) (string, int) {
	n := strings.Count(line, Marker)
	if n == 0 {
		return line, 0
	}
	return strings.ReplaceAll(line, Marker, Apostrophe), n
}
