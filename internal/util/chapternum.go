package util

import (
	"regexp"
	"strconv"
	"strings"
)

// Chapter number extraction is a pure function of the chapter name plus its
// series title for context. The catalog injects it into the discovery
// pipeline instead of calling it directly, so alternative recognizers can be
// swapped in for tests.

var (
	// Volume and season markers whose numbers must not be mistaken for
	// chapter numbers.
	volumeMarker = regexp.MustCompile(`(?i)\b(?:v|ver|vol|version|volume|season|s)[\s._-]{0,2}\d+(?:\.\d+)?`)
	// An explicit chapter marker wins over any other number in the name.
	chapterMarker = regexp.MustCompile(`(?i)\b(?:chapter|chap|ch)\.?[\s._-]*(\d+(?:\.\d+)?)`)
	numberRun     = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParseChapterNumber extracts the numeric chapter value from a chapter name.
// The series title is removed first so numbers embedded in it do not leak
// into the result. Returns -1 when no number can be found.
func ParseChapterNumber(seriesTitle, chapterName string) float64 {
	name := strings.ToLower(chapterName)
	if title := strings.ToLower(strings.TrimSpace(seriesTitle)); title != "" {
		name = strings.ReplaceAll(name, title, "")
	}
	// Decimal commas are common in scanlation names.
	name = strings.ReplaceAll(name, ",", ".")

	if m := chapterMarker.FindStringSubmatch(name); m != nil {
		return parseFloatOrFallback(m[1])
	}

	// No explicit marker: take the last number run that is not a volume or
	// season reference.
	cleaned := volumeMarker.ReplaceAllString(name, " ")
	runs := numberRun.FindAllString(cleaned, -1)
	if len(runs) == 0 {
		return -1
	}
	return parseFloatOrFallback(runs[len(runs)-1])
}

func parseFloatOrFallback(s string) float64 {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return -1
	}
	return n
}
