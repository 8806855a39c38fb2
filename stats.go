package main

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Row is the percentage contribution of one atom's orbital to an MO
type Row struct {
	Atom    string
	Label   Label
	Percent float64
}

// MOResult is the summary of one electronic eigenvalue block
type MOResult struct {
	Symmetry string
	Index    int
	Energy   float64
	Rows     []Row
	// only set with debugging enabled
	NormConst float64
	CoefSum   float64
}

// Summarize converts the sums in acc into percentages. Rows below
// threshold are dropped and every remaining row is repeated once per
// equivalent atom, since the contribution is shared equally among
// them. Rows are sorted by decreasing percentage, keeping first-seen
// order for ties.
func Summarize(acc *Accum, mol Molecule, threshold float64,
	debug bool) (rows []Row, norm, coefSum float64) {
	if acc.Total == 0 {
		return
	}
	contribs := acc.Contribs()
	raw := make([]float64, 0, len(contribs))
	for _, c := range contribs {
		m := mol.Multiplicity(c.Label.Atom)
		raw = append(raw, c.Sum/float64(m))
		pct := c.Sum * 100 / (acc.Total * float64(m))
		if pct < threshold {
			continue
		}
		for i := 0; i < m; i++ {
			rows = append(rows, Row{
				Atom:    c.Label.Atom,
				Label:   c.Label,
				Percent: pct,
			})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Percent > rows[j].Percent
	})
	if debug {
		norm = acc.Total
		coefSum = floats.Sum(raw) / acc.Total
	}
	return
}

// Results collects MO summaries in the order they are read
type Results struct {
	mos []MOResult
}

func (r *Results) Append(mo MOResult) {
	r.mos = append(r.mos, mo)
}

// SortByEnergy orders the results by increasing orbital energy,
// leaving equal energies in scan order
func (r *Results) SortByEnergy() {
	sort.SliceStable(r.mos, func(i, j int) bool {
		return r.mos[i].Energy < r.mos[j].Energy
	})
}

func (r *Results) MOs() []MOResult { return r.mos }

func (r *Results) Len() int { return len(r.mos) }
