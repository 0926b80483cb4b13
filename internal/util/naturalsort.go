package util

import (
	"regexp"
	"strconv"
	"strings"
)

var tokenizer = regexp.MustCompile(`(\d+|\D+)`)

type naturalToken struct {
	str   string
	num   int
	isNum bool
}

func tokenize(s string) []naturalToken {
	parts := tokenizer.FindAllString(s, -1)
	tokens := make([]naturalToken, len(parts))
	for i, p := range parts {
		num, err := strconv.Atoi(p)
		if err == nil {
			tokens[i] = naturalToken{num: num, isNum: true}
		} else {
			tokens[i] = naturalToken{str: strings.ToLower(p), isNum: false}
		}
	}
	return tokens
}

// NaturalCompare compares two strings in natural, case-insensitive order:
// embedded numeric runs compare by value rather than character by character.
// Returns -1, 0 or 1.
func NaturalCompare(s1, s2 string) int {
	t1 := tokenize(s1)
	t2 := tokenize(s2)
	minLen := min(len(t1), len(t2))

	for i := 0; i < minLen; i++ {
		// A number sorts before any non-numeric token.
		if t1[i].isNum && !t2[i].isNum {
			return -1
		}
		if !t1[i].isNum && t2[i].isNum {
			return 1
		}

		if t1[i].isNum {
			if t1[i].num != t2[i].num {
				if t1[i].num < t2[i].num {
					return -1
				}
				return 1
			}
		} else {
			if t1[i].str != t2[i].str {
				if t1[i].str < t2[i].str {
					return -1
				}
				return 1
			}
		}
	}

	// All shared tokens equal; the shorter string comes first.
	switch {
	case len(t1) < len(t2):
		return -1
	case len(t1) > len(t2):
		return 1
	}
	return 0
}

// NaturalSortLess reports whether s1 sorts before s2 in natural order.
func NaturalSortLess(s1, s2 string) bool {
	return NaturalCompare(s1, s2) < 0
}
