//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"cmp"
	"context"
	"github.com/e-gun/ReflexDisparity/internal/cog"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
	"io"
	"strconv"
)

//
// RANKING: low disparity hints at a recent loan; high disparity at an old cognate
//

type RankRow struct {
	Set  *cog.CognateSet
	Mean float64
}

type RankStats struct {
	N      int
	Mean   float64
	StdDev float64
	Median float64
}

// Rank - the mean distance of every set, worked out by up to 'workers' goroutines, sorted low to high; ties keep load order
func Rank(ctx context.Context, sets []*cog.CognateSet, m cog.Measure, workers int) ([]RankRow, error) {
	ranked := make([]RankRow, len(sets))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, cs := range sets {
		i, cs := i, cs
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			mean, err := cs.MeanDistance(m)
			if err != nil {
				return err
			}
			ranked[i] = RankRow{Set: cs, Mean: mean}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(ranked, func(a, b RankRow) int {
		return cmp.Compare(a.Mean, b.Mean)
	})
	return ranked, nil
}

// Stats - summary of the set means; rows must already be sorted by Rank()
func Stats(rows []RankRow) RankStats {
	var st RankStats
	st.N = len(rows)
	if st.N == 0 {
		return st
	}

	means := make([]float64, st.N)
	for i := range rows {
		means[i] = rows[i].Mean
	}

	if st.N == 1 {
		st.Mean = means[0]
		st.Median = means[0]
		return st
	}

	st.Mean, st.StdDev = stat.MeanStdDev(means, nil)
	st.Median = stat.Quantile(0.5, stat.Empirical, means, nil)
	return st
}

// PrintRank - a table of the first 'top' ranked sets (all if top < 1) followed by the summary line
func PrintRank(w io.Writer, rows []RankRow, top int) error {
	const (
		SUMM = "%d sets: mean %.3f; sd %.3f; median %.3f\n"
	)

	st := Stats(rows)
	if top > 0 && top < len(rows) {
		rows = rows[:top]
	}

	tw := cog.PlainTable(w, []string{"protoform", "gloss", "reflexes", "mean"})
	for _, r := range rows {
		tw.Append([]string{
			r.Set.Protoform(),
			r.Set.Gloss(),
			strconv.Itoa(r.Set.NReflexes()),
			strconv.FormatFloat(r.Mean, 'f', 3, 64),
		})
	}
	tw.Render()

	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w, "\n"+SUMM, st.N, st.Mean, st.StdDev, st.Median)
	return err
}
