//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"
	"github.com/e-gun/ReflexDisparity/internal/glotto"
	"github.com/e-gun/ReflexDisparity/internal/lnch"
	"github.com/e-gun/ReflexDisparity/internal/load"
	"github.com/e-gun/ReflexDisparity/internal/str"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
	"time"
)

// openresolver - the glottolog export behind the sqlite cache (unless Config.NoCache); call the returned func when done
func openresolver(ctx context.Context, cfg *str.CurrentConfiguration) (glotto.Resolver, func() error, error) {
	const (
		MSG1 = "%s loaded: %d languoids"
		MSG2 = "cache %s holds %d languoids"
		MSG3 = "%d languoids added to %s"
	)

	start := time.Now()
	p := message.NewPrinter(language.English)

	lazy := glotto.NewLazyCatalog(cfg.GlottologCSV, func(c *glotto.Catalog) {
		lnch.Msg.Timer("G1", p.Sprintf(MSG1, cfg.GlottologCSV, c.Len()), start, start)
	})

	if cfg.NoCache {
		return lazy, func() error { return nil }, nil
	}

	path := lnch.CachePath(cfg)
	cache, err := glotto.OpenCache(ctx, path, lazy)
	if err != nil {
		return nil, nil, err
	}
	lnch.Msg.PEEK(p.Sprintf(MSG2, path, cache.Len()))

	done := func() error {
		n, err := cache.Save(ctx)
		if err != nil {
			cache.Close()
			return err
		}
		if n > 0 {
			lnch.Msg.FYI(p.Sprintf(MSG3, n, path))
		}
		return cache.Close()
	}
	return cache, done, nil
}

// runlist - 'rfx list': each code and everything under it
func runlist(ctx context.Context, w io.Writer, codes []string, quoted bool, leavesonly bool, cfg *str.CurrentConfiguration) (err error) {
	r, done, err := openresolver(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if e := done(); err == nil {
			err = e
		}
	}()

	found, err := glotto.DescendantsOfAll(r, codes, leavesonly)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, glotto.FormatCodes(found, quoted))
	return err
}

// runattach - 'rfx attach': copy a sheet and give every row a classification
func runattach(ctx context.Context, in string, out string, verbose bool, cfg *str.CurrentConfiguration) (err error) {
	const (
		MSG1 = "%d rows classified and written to %s"
	)

	start := time.Now()

	rows, err := load.ReadTable(in)
	if err != nil {
		return err
	}

	r, done, err := openresolver(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if e := done(); err == nil {
			err = e
		}
	}()

	var notify func(code string)
	if verbose {
		notify = func(code string) { lnch.Msg.MAND(code) }
	}

	classified, err := glotto.Attach(r, rows, notify)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if err = load.WriteTableQuoted(out, classified); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	lnch.Msg.Timer("C1", p.Sprintf(MSG1, len(classified)-1, out), start, start)
	return nil
}
