//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package rpt prints cognate sets for people to read.
package rpt

import (
	"fmt"
	"github.com/e-gun/ReflexDisparity/internal/cog"
	"github.com/e-gun/ReflexDisparity/internal/gen"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
)

// Select - the sets whose protoform is among the selectors, in load order; no selectors means every set
func Select(sets []*cog.CognateSet, selectors []string) []*cog.CognateSet {
	if len(selectors) == 0 {
		return sets
	}
	want := gen.ToSet(selectors)
	var found []*cog.CognateSet
	for _, cs := range sets {
		if _, ok := want[cs.Protoform()]; ok {
			found = append(found, cs)
		}
	}
	return found
}

// Missing - selectors that match no set
func Missing(sets []*cog.CognateSet, selectors []string) []string {
	have := make(map[string]struct{}, len(sets))
	for _, cs := range sets {
		have[cs.Protoform()] = struct{}{}
	}
	var missing []string
	for _, s := range gen.Unique(selectors) {
		if _, ok := have[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}

// Print - the count line and then, for every selected set, its summary and its distance table
func Print(w io.Writer, sets []*cog.CognateSet, selectors []string, m cog.Measure) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "%d cognate sets\n", len(sets)); err != nil {
		return err
	}

	for _, cs := range Select(sets, selectors) {
		if _, err := fmt.Fprintf(w, "\n%s\n%s", cs.Summary(), cs.RenderTable(m)); err != nil {
			return err
		}
	}
	return nil
}
