package extract

import "strings"

// Normalize collapses every maximal run of whitespace in text into a single
// space and trims leading and trailing space. Empty input yields empty
// output; the operation is idempotent.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
