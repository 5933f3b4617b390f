package papertree

import "strings"

// skipWords mark back matter and front matter sections that carry no body
// text worth structuring.
var skipWords = []string{
	"abbreviation",
	"references",
	"acknow",
	"author information",
	"editor information",
	"rights and permissions",
	"copyright information",
	"about this paper",
	"abstract",
	"additional information",
	"ethics",
	"funding",
	"notes",
	"supplementary",
	"about this article",
	"avail",
}

// SkipSection reports whether a section with the given title should be left
// out of the document body. Matching is case-insensitive on substrings.
func SkipSection(title string) bool {
	title = strings.ToLower(title)
	for _, w := range skipWords {
		if strings.Contains(title, w) {
			return true
		}
	}
	return false
}
