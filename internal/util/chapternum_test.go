package util

import "testing"

func TestParseChapterNumber(t *testing.T) {
	testCases := []struct {
		seriesTitle string
		chapterName string
		expected    float64
	}{
		// Explicit chapter markers win over any other number.
		{"", "Chapter 12", 12},
		{"", "chapter 12.5", 12.5},
		{"", "Ch. 7", 7},
		{"", "ch.5", 5},
		{"", "Chap 003", 3},
		{"", "Vol. 3 Chapter 10", 10},
		{"", "Chapter 5a", 5},
		{"", "Chapter 5b", 5},

		// Decimal commas are normalized to dots.
		{"", "Chapter 12,5", 12.5},

		// Without a marker the last number run wins, after volume and
		// season references are stripped.
		{"", "v2 c10", 10},
		{"", "Season 2 Episode 3", 3},
		{"", "100 punches 101", 101},
		{"", "055", 55},

		// The series title is removed before extraction so its numbers
		// cannot leak into the result.
		{"My Series 2", "My Series 2 - Chapter 5", 5},
		{"My Series 2", "My Series 2 055", 55},

		// No number at all.
		{"", "Oneshot", -1},
		{"", "Vol. 3", -1},
		{"", "Extras", -1},
	}
	for _, tc := range testCases {
		if result := ParseChapterNumber(tc.seriesTitle, tc.chapterName); result != tc.expected {
			t.Errorf("ParseChapterNumber(%q, %q) = %g; want %g",
				tc.seriesTitle, tc.chapterName, result, tc.expected)
		}
	}
}
