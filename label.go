package main

import (
	"fmt"
	"strings"
)

// Label is the decoded form of a fused basis function label like
// "B3gCldyz" or "Ag Cu s"
type Label struct {
	Symmetry string
	Atom     string
	Orbital  string
}

// String returns the composite key used to group coefficients
func (l Label) String() string {
	return l.Symmetry + l.Atom + l.Orbital
}

// ResolveLabel splits text into its symmetry, atom, and orbital
// parts. The atom is the longest element symbol (two letters before
// one) at the start of the second uppercase run and must appear in
// mol.
func ResolveLabel(text string, mol Molecule) (lab Label, err error) {
	runs := upperRuns(text)
	if len(runs) < 2 {
		return lab, fmt.Errorf("%w: %q", ErrInvalidAtomType, text)
	}
	lab.Symmetry = strings.TrimSpace(runs[0])
	rest := runs[1]
	switch {
	case len(rest) >= 2 && IsElement(rest[:2]):
		lab.Atom = rest[:2]
	case IsElement(rest[:1]):
		lab.Atom = rest[:1]
	default:
		return lab, fmt.Errorf("%w: %q", ErrInvalidAtomType, rest)
	}
	lab.Orbital = strings.TrimRight(
		strings.TrimLeft(rest[len(lab.Atom):], "0123456789 "), " ")
	if !mol.Has(lab.Atom) {
		return lab, fmt.Errorf("%w: %q (molecule is %s)",
			ErrAtomNotInMoleculeSpec, lab.Atom, mol)
	}
	return
}
