package chunking

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var typographyReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
)

// NormalizeDocument composes the document to NFC and replaces smart quotes and
// en/em dashes with their ASCII forms. Chunk offsets are always relative to the
// normalized text.
func NormalizeDocument(document string) string {
	return typographyReplacer.Replace(norm.NFC.String(document))
}
