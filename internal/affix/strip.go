//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package affix removes the prefix, suffix and infix markers that word lists use to set
// affixes off from a root: "maN-tulak", "tulak-en", "t<um>ulak".
package affix

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	infixes = regexp.MustCompile(`<[^>]*>`)
	hyphens = regexp.MustCompile(`-{2,}`)
)

// Strip - remove every affix marker from a lexeme and report what was removed
func Strip(lexeme string) (string, []string) {
	// "maN-tulak-en" --> "tulak", [maN- -en]
	// "tulak-en" --> "tulak", [-en]
	// "t<um>ulak" --> "tulak", [<um>]
	// "pa-<in>-sakit" --> "sakit", [pa- <in>]
	// "-en" --> "", [-en]

	// a round can expose new markers ("a-b-c-d" --> "b-c"), so keep going until a round finds nothing;
	// every productive round shortens the string, so this terminates
	var removed []string
	root := lexeme
	for {
		next, found := onepass(root)
		if len(found) == 0 {
			break
		}
		removed = append(removed, found...)
		root = next
	}
	return root, removed
}

// onepass - infixes out, then at most one prefix and one suffix; found is in left-to-right order
func onepass(s string) (string, []string) {
	in := infixes.FindAllString(s, -1)
	s = infixes.ReplaceAllString(s, "")

	var pre, suf string
	if strings.Contains(s, "-") && strings.IndexFunc(s, unicode.IsSpace) < 0 {
		// "pa--sakit" is what is left of "pa-<in>-sakit"
		s = hyphens.ReplaceAllString(s, "-")
		parts := strings.Split(s, "-")
		last := len(parts) - 1

		switch {
		case last > 1:
			// the outermost segments are the affixes; whatever is inside is the root
			pre, suf = parts[0]+"-", "-"+parts[last]
			s = strings.Join(parts[1:last], "-")
		case parts[0] == "":
			suf, s = "-"+parts[1], ""
		case parts[1] == "":
			pre, s = parts[0]+"-", ""
		case utf8.RuneCountInString(parts[0]) > utf8.RuneCountInString(parts[1]):
			// "tulak-en": the longer side is the root
			suf, s = "-"+parts[1], parts[0]
		default:
			pre, s = parts[0]+"-", parts[1]
		}
	}

	var found []string
	if pre != "" {
		found = append(found, pre)
	}
	found = append(found, in...)
	if suf != "" {
		found = append(found, suf)
	}
	return s, found
}

// Root - Strip() without the report
func Root(lexeme string) string {
	r, _ := Strip(lexeme)
	return r
}

// HasMarkers - true if Strip() would remove anything
func HasMarkers(lexeme string) bool {
	_, found := onepass(lexeme)
	return len(found) > 0
}
