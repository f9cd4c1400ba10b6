//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package cog holds the cognate set: one protoform and the reflexes claimed to descend from it.
package cog

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySet    = errors.New("cognate set has no reflexes")
	ErrNoProtoform = errors.New("cognate set needs a protoform")
	ErrLenMismatch = errors.New("reflexes and glottocodes differ in length")
)

// CognateSet - the attested reflexes of one protoform; nothing changes after New()
type CognateSet struct {
	protoform   string
	gloss       string
	reflexes    []string
	glottocodes []string
}

// New - build a set; reflexes[i] and glottocodes[i] come from the same source row
func New(protoform string, gloss string, reflexes []string, glottocodes []string) (*CognateSet, error) {
	if protoform == "" {
		return nil, ErrNoProtoform
	}
	if len(reflexes) != len(glottocodes) {
		return nil, fmt.Errorf("%w: %s has %d reflexes and %d glottocodes", ErrLenMismatch, protoform, len(reflexes), len(glottocodes))
	}
	return &CognateSet{
		protoform:   protoform,
		gloss:       gloss,
		reflexes:    append([]string{}, reflexes...),
		glottocodes: append([]string{}, glottocodes...),
	}, nil
}

func (c *CognateSet) Protoform() string {
	return c.protoform
}

func (c *CognateSet) Gloss() string {
	return c.gloss
}

// Reflexes - a copy, in source row order
func (c *CognateSet) Reflexes() []string {
	return append([]string{}, c.reflexes...)
}

// GlottoCodes - a copy, parallel to Reflexes(); may contain ""
func (c *CognateSet) GlottoCodes() []string {
	return append([]string{}, c.glottocodes...)
}

func (c *CognateSet) NReflexes() int {
	return len(c.reflexes)
}

// DistanceMatrix - recomputed on every call; a nil Measure means Levenshtein
func (c *CognateSet) DistanceMatrix(m Measure) DistanceMatrix {
	return BuildMatrix(c.reflexes, m)
}

// MeanDistance - the sum of all n² cells (self-distances included) divided by n
func (c *CognateSet) MeanDistance(m Measure) (float64, error) {
	// n, not n² and not n(n-1)/2
	n := c.NReflexes()
	if n == 0 {
		return 0, fmt.Errorf("%w: %s", ErrEmptySet, c.protoform)
	}
	return c.DistanceMatrix(m).Sum() / float64(n), nil
}

// Summary - "*tulak ‘bite’: 3 reflexes"
func (c *CognateSet) Summary() string {
	noun := "reflexes"
	if c.NReflexes() == 1 {
		noun = "reflex"
	}
	if c.gloss == "" {
		return fmt.Sprintf("%s: %d %s", c.protoform, c.NReflexes(), noun)
	}
	return fmt.Sprintf("%s ‘%s’: %d %s", c.protoform, c.gloss, c.NReflexes(), noun)
}

// String - Summary() plus the table
func (c *CognateSet) String() string {
	return c.Summary() + "\n" + c.RenderTable(nil)
}
