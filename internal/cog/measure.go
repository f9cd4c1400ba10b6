//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package cog

import (
	"errors"
	"fmt"
	"github.com/agnivade/levenshtein"
	"github.com/e-gun/ReflexDisparity/internal/vv"
	"sort"
	"unicode/utf8"
)

// Measure - any two-string distance; it need not be symmetric and need not be a metric, but it must not go negative
type Measure func(a, b string) float64

var (
	ErrUnknownMeasure = errors.New("unknown distance measure")

	measures = map[string]Measure{
		vv.MEASURELEV:  Levenshtein,
		vv.MEASURENORM: NormalizedLevenshtein,
	}
)

// Levenshtein - edit distance counted in runes, not bytes: "ŋa" vs "na" is 1
func Levenshtein(a, b string) float64 {
	return float64(levenshtein.ComputeDistance(a, b))
}

// NormalizedLevenshtein - Levenshtein divided by the length of the longer form; two empty forms are 0 apart
func NormalizedLevenshtein(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}
	return Levenshtein(a, b) / float64(longest)
}

// MeasureByName - turn a configuration value into a Measure
func MeasureByName(name string) (Measure, error) {
	if m, ok := measures[name]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w: '%s' (known: %v)", ErrUnknownMeasure, name, MeasureNames())
}

// MeasureNames - sorted list of the names MeasureByName() accepts
func MeasureNames() []string {
	names := make([]string, 0, len(measures))
	for k := range measures {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func orDefault(m Measure) Measure {
	if m == nil {
		return Levenshtein
	}
	return m
}
