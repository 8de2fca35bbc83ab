package aggregate

import (
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Collator orders display strings the way a Spanish reader expects. A Collator
// keeps internal buffers and must not be shared between goroutines.
type Collator struct {
	c *collate.Collator
}

func NewCollator() *Collator {
	return &Collator{c: collate.New(language.Spanish)}
}

// Compare falls back to byte order when the collation considers two strings
// equal, so sorting stays deterministic.
func (c *Collator) Compare(a, b string) int {
	if r := c.c.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// CompareKeys compares tuples of display keys left to right.
func (c *Collator) CompareKeys(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if r := c.Compare(a[i], b[i]); r != 0 {
			return r
		}
	}
	return len(a) - len(b)
}

// Normalize folds a free-text name into the form used for soft joins:
// upper case, diacritics stripped, surrounding space trimmed.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(strings.ToUpper(out))
}
