//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"
	"github.com/e-gun/ReflexDisparity/internal/cog"
	"github.com/e-gun/ReflexDisparity/internal/lnch"
	"github.com/e-gun/ReflexDisparity/internal/load"
	"github.com/e-gun/ReflexDisparity/internal/rpt"
	"github.com/e-gun/ReflexDisparity/internal/str"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
	"strings"
	"time"
)

// loadsheet - the measure named in the config plus the cognate sets in 'path'
func loadsheet(path string, cfg *str.CurrentConfiguration) (cog.Measure, load.Dataset, error) {
	const (
		MSG1 = "%d rows grouped into %d cognate sets [%s]"
		MSG2 = "%d protoforms had no rows with a glottocode: %s"
	)

	start := time.Now()

	m, err := cog.MeasureByName(cfg.Measure)
	if err != nil {
		return nil, load.Dataset{}, err
	}

	ds, err := load.Load(path, loadoptions(cfg))
	if err != nil {
		return nil, load.Dataset{}, err
	}

	p := message.NewPrinter(language.English)
	lnch.Msg.Timer("A1", p.Sprintf(MSG1, ds.Rows, len(ds.Sets), ds.ID[:8]), start, start)
	if len(ds.Skipped) > 0 {
		lnch.Msg.NOTE(fmt.Sprintf(MSG2, len(ds.Skipped), strings.Join(ds.Skipped, ", ")))
	}
	return m, ds, nil
}

// rundisparity - 'rfx disparity': the count line and then a matrix for every selected set
func rundisparity(w io.Writer, path string, selectors []string, cfg *str.CurrentConfiguration) error {
	const (
		MISS = "no cognate set for '%s'"
	)

	m, ds, err := loadsheet(path, cfg)
	if err != nil {
		return err
	}

	for _, s := range rpt.Missing(ds.Sets, selectors) {
		lnch.Msg.WARN(fmt.Sprintf(MISS, s))
	}
	return rpt.Print(w, ds.Sets, selectors, m)
}

// runrank - 'rfx rank': every set ordered by its mean distance
func runrank(ctx context.Context, w io.Writer, path string, top int, cfg *str.CurrentConfiguration) error {
	m, ds, err := loadsheet(path, cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	rows, err := rpt.Rank(ctx, ds.Sets, m, cfg.WorkerCount)
	if err != nil {
		return err
	}
	lnch.Msg.Timer("B1", fmt.Sprintf("%d sets ranked by %d workers", len(rows), cfg.WorkerCount), start, start)

	return rpt.PrintRank(w, rows, top)
}
