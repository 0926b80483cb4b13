package library

import "testing"

func TestStripSeriesTitle(t *testing.T) {
	testCases := []struct {
		chapterName string
		seriesTitle string
		expected    string
	}{
		{"My Series - Chapter 12", "My Series", "Chapter 12"},
		{"My Series Chapter 3", "My Series", "Chapter 3"},
		{"my series - chapter 12", "My Series", "chapter 12"},
		{"My Series: Volume 2", "My Series", "Volume 2"},

		// Structural characters advance only their own side.
		{"My Series - Chapter 1", "My Series!", "Chapter 1"},
		{"[My Series] Chapter 4", "[My Series]", "Chapter 4"},

		// Genuinely diverging names come back untouched.
		{"Chapter 5", "Unrelated Title", "Chapter 5"},
		{"Another Story - Chapter 1", "My Series", "Another Story - Chapter 1"},

		// An exhausted chapter name yields the empty string; the caller is
		// responsible for keeping the pre-strip name in that case.
		{"My Series", "My Series", ""},
		{"My Series - ", "My Series", ""},
	}
	for _, tc := range testCases {
		if result := StripSeriesTitle(tc.chapterName, tc.seriesTitle); result != tc.expected {
			t.Errorf("StripSeriesTitle(%q, %q) = %q; want %q",
				tc.chapterName, tc.seriesTitle, result, tc.expected)
		}
	}
}

func TestStripSeriesTitle_Idempotent(t *testing.T) {
	once := StripSeriesTitle("My Series - Chapter 12", "My Series")
	twice := StripSeriesTitle(once, "My Series")
	if once != twice {
		t.Errorf("Second strip changed the result: %q -> %q", once, twice)
	}
}
