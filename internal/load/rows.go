//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package load

import (
	"fmt"
	"github.com/e-gun/ReflexDisparity/internal/gen"
	"github.com/e-gun/ReflexDisparity/internal/vv"
	"path/filepath"
)

// Row - one line of a reflex sheet
type Row struct {
	Protoform  string
	Reflex     string
	GlottoCode string
	Gloss      string
	Line       int // where it came from; 0 if it did not come from a file
}

// ReadRows - read a reflex sheet from disk
func ReadRows(path string, glosscol string) ([]Row, error) {
	table, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	return ParseRows(table, filepath.Base(path), glosscol)
}

// ParseRows - turn a header + data table into Rows; glosscol == "" means vv.COLGLOSS
func ParseRows(table [][]string, source string, glosscol string) ([]Row, error) {
	const (
		NOHDR = "sheet is empty: no header row"
		NOCOL = "required column '%s' not found in header %v"
		SHORT = "row lacks a value for '%s'"
	)

	if len(table) == 0 {
		return nil, &FormatError{Source: source, Msg: NOHDR}
	}
	if glosscol == "" {
		glosscol = vv.COLGLOSS
	}

	header := make(map[string]int)
	for i, h := range table[0] {
		h = gen.CleanCell(h)
		if _, dup := header[h]; !dup {
			header[h] = i
		}
	}

	idx := make(map[string]int)
	for _, col := range []string{vv.COLPROTOFORM, vv.COLREFLEX, vv.COLGLOTTOCODE} {
		i, ok := header[col]
		if !ok {
			return nil, &FormatError{Source: source, Line: 1, Msg: fmt.Sprintf(NOCOL, col, table[0])}
		}
		idx[col] = i
	}
	gi, hasgloss := header[glosscol]

	cell := func(row []string, i int) (string, bool) {
		if i >= len(row) {
			return "", false
		}
		return gen.CleanCell(row[i]), true
	}

	rows := make([]Row, 0, len(table)-1)
	for n, raw := range table[1:] {
		line := n + 2
		if blank(raw) {
			continue
		}

		var r Row
		var ok bool
		r.Line = line
		if r.Protoform, ok = cell(raw, idx[vv.COLPROTOFORM]); !ok {
			return nil, &FormatError{Source: source, Line: line, Msg: fmt.Sprintf(SHORT, vv.COLPROTOFORM)}
		}
		if r.Reflex, ok = cell(raw, idx[vv.COLREFLEX]); !ok {
			return nil, &FormatError{Source: source, Line: line, Msg: fmt.Sprintf(SHORT, vv.COLREFLEX)}
		}
		r.GlottoCode, _ = cell(raw, idx[vv.COLGLOTTOCODE])
		if hasgloss {
			r.Gloss, _ = cell(raw, gi)
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if gen.CleanCell(c) != "" {
			return false
		}
	}
	return true
}
