package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

var accentFold = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u",
	"Ü", "u", "Ñ", "n",
)

// FoldAccents maps Spanish diacritics to their plain ASCII letter.
func FoldAccents(s string) string {
	return accentFold.Replace(s)
}

// NormalizeHeader canonicalizes a table header cell for keyword matching:
// trimmed, lowercased, accents folded, inner whitespace collapsed to one space.
func NormalizeHeader(s string) string {
	s = strings.ToLower(FoldAccents(s))
	s = strings.Trim(s, " \n\t")
	return whitespaceRegex.ReplaceAllString(s, " ")
}

// MatchKeyword reports whether the normalized header matches any of the
// given keywords. Keywords are expected in normalized form already.
func MatchKeyword(header string, keywords []string) bool {
	header = NormalizeHeader(header)
	for _, k := range keywords {
		if strings.Contains(header, k) {
			return true
		}
	}
	return false
}
