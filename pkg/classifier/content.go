package classifier

import (
	"bytes"
	"unicode/utf8"
)

// ContentReader supplies file bytes for Phases 2-4. The engine treats it as
// an opaque capability so tests and embedders can substitute their own.
type ContentReader func(path string) ([]byte, error)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeContent turns raw file bytes into a string the analyzers can work
// with. Undecodable bytes are dropped rather than failing: a decode problem
// must never prevent classification.
func decodeContent(b []byte) string {
	b = bytes.TrimPrefix(b, utf8BOM)
	if !utf8.Valid(b) {
		b = bytes.ToValidUTF8(b, nil)
	}
	return string(b)
}
