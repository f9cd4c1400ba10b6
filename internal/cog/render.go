//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package cog

import (
	"github.com/olekukonko/tablewriter"
	"io"
	"math"
	"strconv"
	"strings"
)

// RenderTable - the distance matrix as an aligned text table; reflexes label both the rows and the columns
func (c *CognateSet) RenderTable(m Measure) string {
	return RenderMatrix(c.DistanceMatrix(m))
}

// RenderMatrix - tabulate a DistanceMatrix
func RenderMatrix(d DistanceMatrix) string {
	//        tulak   tulak   tulek
	// -----  ------  ------  ------
	// tulak      0       0       1
	// tulak      0       0       1
	// tulek      1       1       0

	n := d.Size()
	if n == 0 {
		return ""
	}

	var b strings.Builder
	tw := PlainTable(&b, append([]string{""}, d.Labels...))

	align := make([]int, n+1)
	align[0] = tablewriter.ALIGN_LEFT
	for i := 1; i <= n; i++ {
		align[i] = tablewriter.ALIGN_RIGHT
	}
	tw.SetColumnAlignment(align)

	for i := 0; i < n; i++ {
		row := make([]string, n+1)
		row[0] = d.Labels[i]
		for j := 0; j < n; j++ {
			row[j+1] = FormatDistance(d.At(i, j))
		}
		tw.Append(row)
	}
	tw.Render()
	return b.String()
}

// PlainTable - a borderless tablewriter with a dashed rule under the header
func PlainTable(w io.Writer, header []string) *tablewriter.Table {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetBorder(false)
	tw.SetHeaderLine(true)
	tw.SetColumnSeparator(" ")
	tw.SetCenterSeparator(" ")
	tw.SetRowSeparator("-")
	return tw
}

// FormatDistance - whole numbers print as integers, everything else to three places
func FormatDistance(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', 3, 64)
}
