package matcher

import "testing"

func TestMatch(t *testing.T) {
	var testCases = []struct {
		pattern    string
		candidates []string
		matched    bool
	}{
		{"*", []string{"anything"}, true},
		{"*", nil, false},
		{"", []string{"anything"}, false},

		// Exact matches
		{"icon-search", []string{"icon-search"}, true},
		{"system/storage", []string{"system/storage"}, true},

		// Prefix matches with "/"
		{"icon/", []string{"icon-search", "icon/search"}, true},
		{"ico/", []string{"icon-search", "icon/search"}, false},

		// Prefix matches with "-"
		{"icon-", []string{"icon-list"}, true},
		{"printer-", []string{"icon-list"}, false},
	}

	for i, tc := range testCases {
		if got := Match(tc.pattern, tc.candidates...); got != tc.matched {
			t.Fatalf("[%d] Match(%q, %q) = %v; expected %v", i, tc.pattern, tc.candidates, got, tc.matched)
		}
	}
}
