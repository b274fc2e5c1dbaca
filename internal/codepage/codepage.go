package codepage

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encode transcodes s to its Windows-1252 single-byte form. Runes without a
// Windows-1252 mapping become the encoding's substitution byte, so the
// output is deterministic for any input. The digest is computed over these
// bytes, which keeps signatures stable across platforms regardless of how
// the source runtime represented its strings.
func Encode(s string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	out, _, err := transform.Bytes(enc, []byte(s))
	if err != nil {
		// ReplaceUnsupported never reports unmappable runes; hash the raw
		// bytes rather than fail signature generation.
		return []byte(s)
	}
	return out
}
