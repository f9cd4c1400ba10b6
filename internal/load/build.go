//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package load turns reflex sheets into cognate sets.
package load

import (
	"fmt"
	"github.com/e-gun/ReflexDisparity/internal/affix"
	"github.com/e-gun/ReflexDisparity/internal/cog"
	"github.com/e-gun/ReflexDisparity/internal/gen"
	"github.com/e-gun/ReflexDisparity/internal/vv"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	"path/filepath"
)

// Options - how rows become cognate sets
type Options struct {
	ProtoLangs    bool   // keep rows without a glottocode; by default they are taken to be the protoform itself
	StripAffixes  bool   // run every reflex through affix.Strip()
	Normalization string // vv.NORMNFC, vv.NORMNFD, vv.NORMNONE; "" is vv.NORMNONE
	GlossColumn   string // "" is vv.COLGLOSS
}

// Dataset - the cognate sets from one sheet plus some bookkeeping
type Dataset struct {
	ID      string
	Source  string
	Rows    int
	Groups  int      // distinct protoforms seen
	Skipped []string // protoforms whose every row was filtered out
	Sets    []*cog.CognateSet
}

// Load - ReadRows() + Build()
func Load(path string, opts Options) (Dataset, error) {
	rows, err := ReadRows(path, opts.GlossColumn)
	if err != nil {
		return Dataset{}, err
	}

	return build(rows, filepath.Base(path), opts)
}

// Build - group rows by protoform into cognate sets, in the order the protoforms first appear
func Build(rows []Row, opts Options) ([]*cog.CognateSet, error) {
	ds, err := build(rows, "", opts)
	if err != nil {
		return nil, err
	}
	return ds.Sets, nil
}

func build(rows []Row, source string, opts Options) (Dataset, error) {
	const (
		NOPF = "row lacks a protoform"
		NORF = "row for '%s' lacks a reflex"
	)

	normalize, err := normalizer(opts.Normalization)
	if err != nil {
		return Dataset{}, err
	}

	// validate everything before building anything: one bad row sinks the whole load
	for _, r := range rows {
		if r.Protoform == "" {
			return Dataset{}, &FormatError{Source: source, Line: r.Line, Msg: NOPF}
		}
		if r.Reflex == "" {
			return Dataset{}, &FormatError{Source: source, Line: r.Line, Msg: fmt.Sprintf(NORF, r.Protoform)}
		}
	}

	ds := Dataset{
		ID:     uuid.New().String(),
		Source: source,
		Rows:   len(rows),
	}

	groups := gen.GroupBy(rows, func(r Row) string { return normalize(r.Protoform) })
	ds.Groups = len(groups)

	for _, g := range groups {
		protoform := normalize(g[0].Protoform)
		if !opts.ProtoLangs {
			g = withcodes(g)
		}
		if len(g) == 0 {
			ds.Skipped = append(ds.Skipped, protoform)
			continue
		}

		// the first surviving row speaks for the group, even when it has no gloss
		gloss := g[0].Gloss
		reflexes := make([]string, len(g))
		codes := make([]string, len(g))
		for i, r := range g {
			reflexes[i] = normalize(r.Reflex)
			if opts.StripAffixes {
				reflexes[i] = affix.Root(reflexes[i])
			}
			codes[i] = r.GlottoCode
		}

		cs, err := cog.New(protoform, gloss, reflexes, codes)
		if err != nil {
			return Dataset{}, err
		}
		ds.Sets = append(ds.Sets, cs)
	}
	return ds, nil
}

func withcodes(g []Row) []Row {
	var kept []Row
	for _, r := range g {
		if r.GlottoCode != "" {
			kept = append(kept, r)
		}
	}
	return kept
}

// normalizer - map a configuration value onto a unicode normal form
func normalizer(name string) (func(string) string, error) {
	switch name {
	case vv.NORMNFC:
		return norm.NFC.String, nil
	case vv.NORMNFD:
		return norm.NFD.String, nil
	case vv.NORMNONE, "":
		return func(s string) string { return s }, nil
	default:
		return nil, fmt.Errorf("unknown unicode normalization '%s': use %s, %s or %s", name, vv.NORMNFC, vv.NORMNFD, vv.NORMNONE)
	}
}
