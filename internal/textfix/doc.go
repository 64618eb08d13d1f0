// Package textfix rewrites text files whose right single quotation marks were
// mangled by a UTF-8/Windows-1252 mismatch.
//
// A file is loaded whole into a Document, every occurrence of Marker is
// replaced with a straight apostrophe, and the result is written next to the
// input under OutputPath. Line terminators are never normalized, so the output
// differs from the input only where the marker appeared.
package textfix
