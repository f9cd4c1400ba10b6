//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"strings"
)

//
// STRINGS and []RUNE
//

const (
	INVISIBLES = "\ufeff\u200b\u200c\u200d\u2060" // BOM and zero-width junk that spreadsheets like to leave behind
)

// Purgechars - drop any of the chars in the bad-string from the check-string
func Purgechars(bad string, checking string) string {
	rb := []rune(bad)
	reducer := make(map[rune]bool, len(rb))
	for _, r := range rb {
		reducer[r] = true
	}

	var stripped []rune
	for _, x := range []rune(checking) {
		if _, skip := reducer[x]; !skip {
			stripped = append(stripped, x)
		}
	}
	s := string(stripped)
	return s
}

// CleanCell - trim a spreadsheet cell and purge the invisibles
func CleanCell(c string) string {
	return strings.TrimSpace(Purgechars(INVISIBLES, c))
}

// SplitList - "a, b,,c" --> [a b c]
func SplitList(s string, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, sep) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
