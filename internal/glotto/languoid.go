//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package glotto looks things up in the Glottolog classification.
package glotto

import (
	"errors"
)

var (
	ErrNoCode       = errors.New("empty glottocode")
	ErrUnknownCode  = errors.New("glottocode not found")
	ErrNoCodeColumn = errors.New("no glottocodes found in sheet")
)

// Ref - a node in the tree, by code and by name
type Ref struct {
	Code string
	Name string
}

// Languoid - a language, dialect or family together with its place in the tree
type Languoid struct {
	Code      string
	Name      string
	Ancestors []Ref    // top-level family first, immediate parent last
	Children  []string // codes
}

// Resolver - anything that can turn a glottocode into a Languoid
type Resolver interface {
	Resolve(code string) (Languoid, error)
}

// AncestorNames - "Austronesian, Malayo-Polynesian, ..."
func (l Languoid) AncestorNames() []string {
	names := make([]string, len(l.Ancestors))
	for i, a := range l.Ancestors {
		names[i] = a.Name
	}
	return names
}

// IsLeaf - no children
func (l Languoid) IsLeaf() bool {
	return len(l.Children) == 0
}
