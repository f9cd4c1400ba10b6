//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package glotto

import (
	"fmt"
	"github.com/e-gun/ReflexDisparity/internal/gen"
	"strings"
)

// Descendants - depth-first walk of the subtree under 'code', the starting node included
func Descendants(r Resolver, code string, leavesonly bool) ([]string, error) {
	// the stack is popped from the end, so siblings come out last-first, just as they always have

	var result []string
	seen := make(map[string]bool)
	stack := []string{code}
	for len(stack) > 0 {
		this := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[this] {
			continue
		}
		seen[this] = true

		l, err := r.Resolve(this)
		if err != nil {
			return nil, err
		}
		if !leavesonly || l.IsLeaf() {
			result = append(result, l.Code)
		}
		stack = append(stack, l.Children...)
	}
	return result, nil
}

// DescendantsOfAll - Descendants() for several starting codes, concatenated
func DescendantsOfAll(r Resolver, codes []string, leavesonly bool) ([]string, error) {
	each := make([][]string, len(codes))
	for i, c := range codes {
		d, err := Descendants(r, c, leavesonly)
		if err != nil {
			return nil, err
		}
		each[i] = d
	}
	return gen.FlattenSlices(each), nil
}

// FormatCodes - "a b c" or, for pasting into python, SQL, R, etc., `"a", "b", "c"`
func FormatCodes(codes []string, quoted bool) string {
	if !quoted {
		return strings.Join(codes, " ")
	}
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = fmt.Sprintf("%q", c)
	}
	return strings.Join(out, ", ")
}
