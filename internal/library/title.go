package library

import (
	"strings"
	"unicode"
)

// StripSeriesTitle removes a redundant leading series title from a chapter's
// display name, e.g. "My Series - Chapter 12" with series "My Series"
// becomes "Chapter 12".
//
// Both strings are scanned in lockstep. Matching characters
// (case-insensitive) advance both sides. On a mismatch, a structural
// character (neither alphanumeric nor whitespace) advances only its own
// side, which lets a title like "My Series!" line up with
// "My Series - Chapter 1". A mismatch between two content characters means
// the names genuinely diverge, and the original name is returned untouched.
//
// Callers must keep the pre-strip name when the result is empty; an empty
// display name is never produced.
func StripSeriesTitle(chapterName, seriesTitle string) string {
	cn := []rune(chapterName)
	st := []rune(seriesTitle)

	i, j := 0, 0
	for i < len(cn) && j < len(st) {
		if unicode.ToLower(cn[i]) == unicode.ToLower(st[j]) {
			i++
			j++
			continue
		}
		cnStructural := isStructural(cn[i])
		stStructural := isStructural(st[j])
		if !cnStructural && !stStructural {
			return chapterName
		}
		if cnStructural {
			i++
		}
		if stStructural {
			j++
		}
	}

	return strings.TrimLeft(string(cn[i:]), " -_,:")
}

func isStructural(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}
