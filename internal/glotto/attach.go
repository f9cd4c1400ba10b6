//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package glotto

import (
	"fmt"
	"github.com/e-gun/ReflexDisparity/internal/vv"
	"regexp"
	"strings"
)

var (
	isglottocode = regexp.MustCompile(`^` + vv.GLOTTOCODEPATTERN)
)

// CodeColumn - guess which column holds glottocodes by looking at a sample row; the rightmost match, -1 if none
func CodeColumn(rows [][]string) int {
	if len(rows) < 2 {
		return -1
	}
	sample := rows[min(vv.GLOTTOSAMPLEROW, len(rows)-1)]
	col := -1
	for i, cell := range sample {
		// the last match wins: "GlottoCode, ..., ParentCode" picks the later column
		if isglottocode.MatchString(cell) {
			col = i
		}
	}
	return col
}

// Attach - append the classification of each row's languoid as a new final column
func Attach(r Resolver, rows [][]string, notify func(code string)) ([][]string, error) {
	// [ProtoForm Reflex GlottoCode] --> [ProtoForm Reflex GlottoCode Classification]
	// [*tulak tulak taga1269] --> [*tulak tulak taga1269 "Austronesian, Malayo-Polynesian, ..."]

	col := CodeColumn(rows)
	if col < 0 {
		return nil, ErrNoCodeColumn
	}

	width := len(rows[0])
	out := make([][]string, len(rows))
	out[0] = append(append([]string{}, rows[0]...), vv.CLASSIFICATIONHEADER)

	for i, row := range rows[1:] {
		var code string
		if col < len(row) {
			code = strings.TrimSpace(row[col])
		}

		cls := ""
		if code != "" {
			if notify != nil {
				notify(code)
			}
			l, err := r.Resolve(code)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+2, err)
			}
			cls = strings.Join(l.AncestorNames(), ", ")
		}
		padded := append([]string{}, row...)
		for len(padded) < width {
			padded = append(padded, "")
		}
		out[i+1] = append(padded, cls)
	}
	return out, nil
}
