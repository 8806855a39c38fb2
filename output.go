package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Format controls how WriteResults renders MO summaries
type Format struct {
	Compress bool
	Debug    bool
	Decimal  int
}

// Header returns the identifying line for mo, e.g.
// "B3g 22 -2.8417809384721"
func (mo MOResult) Header() string {
	return fmt.Sprintf("%s %d %s", mo.Symmetry, mo.Index,
		strconv.FormatFloat(mo.Energy, 'f', -1, 64))
}

func (r Row) Line(decimal int) string {
	return fmt.Sprintf("%-12s %.*f%%", r.Label, decimal, r.Percent)
}

// WriteResults formats the MOs in res and writes them to w. Each MO
// is a header line followed by one line per row and a blank line, or
// a single line when f.Compress is set.
func WriteResults(w io.Writer, res *Results, f Format) error {
	nw := bufio.NewWriter(w)
	for _, mo := range res.MOs() {
		if f.Compress {
			fmt.Fprint(nw, mo.Header())
			for _, row := range mo.Rows {
				fmt.Fprintf(nw, " %s %.*f", row.Label, f.Decimal, row.Percent)
			}
			fmt.Fprint(nw, "\n")
		} else {
			fmt.Fprintln(nw, mo.Header())
			for _, row := range mo.Rows {
				fmt.Fprintln(nw, row.Line(f.Decimal))
			}
		}
		if f.Debug {
			fmt.Fprintf(nw, "Normalization constant is %.*f\n",
				f.Decimal, mo.NormConst)
			fmt.Fprintf(nw, "sum of coefficient is %.*f\n",
				f.Decimal, mo.CoefSum)
		}
		if !f.Compress {
			fmt.Fprint(nw, "\n")
		}
	}
	return nw.Flush()
}
