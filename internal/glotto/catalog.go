//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package glotto

import (
	"fmt"
	"github.com/e-gun/ReflexDisparity/internal/gen"
	"github.com/e-gun/ReflexDisparity/internal/load"
	"github.com/e-gun/ReflexDisparity/internal/vv"
	"path/filepath"
)

// Catalog - the whole tree, read from a glottolog "languoid.csv" export
type Catalog struct {
	name     map[string]string
	parent   map[string]string
	children map[string][]string
}

// LoadCatalog - read a languoid export from disk
func LoadCatalog(path string) (*Catalog, error) {
	table, err := load.ReadTable(path)
	if err != nil {
		return nil, err
	}
	return NewCatalog(table, filepath.Base(path))
}

// NewCatalog - build a Catalog from a table whose header names the "id", "parent_id" and "name" columns
func NewCatalog(table [][]string, source string) (*Catalog, error) {
	const (
		NOHDR = "languoid table is empty"
		NOCOL = "languoid table lacks a '%s' column"
		SHORT = "languoid row is too short"
	)

	if len(table) == 0 {
		return nil, &load.FormatError{Source: source, Msg: NOHDR}
	}

	idx := map[string]int{vv.COLGLID: -1, vv.COLGLPARENT: -1, vv.COLGLNAME: -1}
	for i, h := range table[0] {
		h = gen.CleanCell(h)
		if j, ok := idx[h]; ok && j < 0 {
			idx[h] = i
		}
	}
	for _, col := range []string{vv.COLGLID, vv.COLGLPARENT, vv.COLGLNAME} {
		if idx[col] < 0 {
			return nil, &load.FormatError{Source: source, Line: 1, Msg: fmt.Sprintf(NOCOL, col)}
		}
	}
	width := max(idx[vv.COLGLID], idx[vv.COLGLPARENT], idx[vv.COLGLNAME]) + 1

	c := &Catalog{
		name:     make(map[string]string, len(table)),
		parent:   make(map[string]string, len(table)),
		children: make(map[string][]string),
	}

	for n, row := range table[1:] {
		if len(row) < width {
			return nil, &load.FormatError{Source: source, Line: n + 2, Msg: SHORT}
		}
		id := gen.CleanCell(row[idx[vv.COLGLID]])
		if id == "" {
			continue
		}
		c.name[id] = gen.CleanCell(row[idx[vv.COLGLNAME]])
		if p := gen.CleanCell(row[idx[vv.COLGLPARENT]]); p != "" {
			c.parent[id] = p
			c.children[p] = append(c.children[p], id)
		}
	}
	return c, nil
}

// Len - how many languoids are known
func (c *Catalog) Len() int {
	return len(c.name)
}

// Resolve - look up one code
func (c *Catalog) Resolve(code string) (Languoid, error) {
	if code == "" {
		return Languoid{}, ErrNoCode
	}
	nm, ok := c.name[code]
	if !ok {
		return Languoid{}, fmt.Errorf("%w: '%s'", ErrUnknownCode, code)
	}

	l := Languoid{
		Code:     code,
		Name:     nm,
		Children: append([]string(nil), c.children[code]...),
	}

	// climb to the top and then flip the list; a malformed export could loop, so stop on a repeat
	seen := map[string]bool{code: true}
	for p, ok := c.parent[code]; ok && !seen[p]; p, ok = c.parent[p] {
		seen[p] = true
		l.Ancestors = append(l.Ancestors, Ref{Code: p, Name: c.name[p]})
	}
	for i, j := 0, len(l.Ancestors)-1; i < j; i, j = i+1, j-1 {
		l.Ancestors[i], l.Ancestors[j] = l.Ancestors[j], l.Ancestors[i]
	}
	return l, nil
}
