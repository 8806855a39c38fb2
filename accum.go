package main

import "gonum.org/v1/gonum/floats"

// Contrib is the running weighted sum for one composite label
type Contrib struct {
	Label Label
	Sum   float64
}

// Accum collects the weighted squared coefficients of a single MO
type Accum struct {
	Total  float64
	order  []string
	labels map[string]*Contrib
}

func NewAccum() *Accum {
	return &Accum{
		labels: make(map[string]*Contrib),
	}
}

// Add folds one coefficient row into a. coefs are the real and
// imaginary parts of the large and small component amplitudes. The
// squared magnitude is weighted by the number of atoms of lab.Atom in
// mol.
func (a *Accum) Add(lab Label, coefs []string, mol Molecule) {
	vals := toFloat(coefs)
	w := floats.Dot(vals, vals) * float64(mol.Multiplicity(lab.Atom))
	a.Total += w
	key := lab.String()
	c, ok := a.labels[key]
	if !ok {
		c = &Contrib{Label: lab}
		a.labels[key] = c
		a.order = append(a.order, key)
	}
	c.Sum += w
}

// Contribs returns the per-label sums in the order the labels were
// first seen
func (a *Accum) Contribs() []Contrib {
	ret := make([]Contrib, 0, len(a.order))
	for _, k := range a.order {
		ret = append(ret, *a.labels[k])
	}
	return ret
}

func (a *Accum) Len() int { return len(a.order) }
