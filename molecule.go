package main

import (
	"fmt"
	"strconv"
	"strings"
)

// ELEMENTS is the set of chemical element symbols through Og
var ELEMENTS = map[string]struct{}{
	"H": {}, "He": {},
	"Li": {}, "Be": {}, "B": {}, "C": {}, "N": {}, "O": {}, "F": {}, "Ne": {},
	"Na": {}, "Mg": {}, "Al": {}, "Si": {}, "P": {}, "S": {}, "Cl": {}, "Ar": {},
	"K": {}, "Ca": {}, "Sc": {}, "Ti": {}, "V": {}, "Cr": {}, "Mn": {}, "Fe": {},
	"Co": {}, "Ni": {}, "Cu": {}, "Zn": {}, "Ga": {}, "Ge": {}, "As": {}, "Se": {},
	"Br": {}, "Kr": {},
	"Rb": {}, "Sr": {}, "Y": {}, "Zr": {}, "Nb": {}, "Mo": {}, "Tc": {}, "Ru": {},
	"Rh": {}, "Pd": {}, "Ag": {}, "Cd": {}, "In": {}, "Sn": {}, "Sb": {}, "Te": {},
	"I": {}, "Xe": {},
	"Cs": {}, "Ba": {}, "La": {}, "Ce": {}, "Pr": {}, "Nd": {}, "Pm": {}, "Sm": {},
	"Eu": {}, "Gd": {}, "Tb": {}, "Dy": {}, "Ho": {}, "Er": {}, "Tm": {}, "Yb": {},
	"Lu": {}, "Hf": {}, "Ta": {}, "W": {}, "Re": {}, "Os": {}, "Ir": {}, "Pt": {},
	"Au": {}, "Hg": {}, "Tl": {}, "Pb": {}, "Bi": {}, "Po": {}, "At": {}, "Rn": {},
	"Fr": {}, "Ra": {}, "Ac": {}, "Th": {}, "Pa": {}, "U": {}, "Np": {}, "Pu": {},
	"Am": {}, "Cm": {}, "Bk": {}, "Cf": {}, "Es": {}, "Fm": {}, "Md": {}, "No": {},
	"Lr": {}, "Rf": {}, "Db": {}, "Sg": {}, "Bh": {}, "Hs": {}, "Mt": {}, "Ds": {},
	"Rg": {}, "Cn": {}, "Nh": {}, "Fl": {}, "Mc": {}, "Lv": {}, "Ts": {}, "Og": {},
}

// IsElement reports whether sym is a chemical element symbol
func IsElement(sym string) bool {
	_, ok := ELEMENTS[sym]
	return ok
}

// Atom is one element of a molecular formula and the number of
// equivalent atoms of that element
type Atom struct {
	Symbol string
	Count  int
}

// Molecule is the ordered list of atom types in a formula like Cu2O
type Molecule []Atom

// Multiplicity returns the count for sym, or 0 if sym is not part of
// m
func (m Molecule) Multiplicity(sym string) int {
	for _, a := range m {
		if a.Symbol == sym {
			return a.Count
		}
	}
	return 0
}

func (m Molecule) Has(sym string) bool {
	return m.Multiplicity(sym) > 0
}

func (m Molecule) String() string {
	var buf strings.Builder
	for _, a := range m {
		buf.WriteString(a.Symbol)
		if a.Count > 1 {
			fmt.Fprintf(&buf, "%d", a.Count)
		}
	}
	return buf.String()
}

// upperRuns splits s into maximal runs that start with an ASCII
// uppercase letter and continue up to the next one. Anything before
// the first uppercase letter is dropped.
func upperRuns(s string) (ret []string) {
	start := -1
	for i := 0; i < len(s); i++ {
		if isUpper(s[i]) {
			if start >= 0 {
				ret = append(ret, s[start:i])
			}
			start = i
		}
	}
	if start >= 0 {
		ret = append(ret, s[start:])
	}
	return
}

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

func isLetter(c byte) bool {
	return isUpper(c) || ('a' <= c && c <= 'z')
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// ParseMolecule converts a formula like "Cu2O" into a Molecule of
// {Cu 2} and {O 1}
func ParseMolecule(formula string) (Molecule, error) {
	formula = strings.TrimSpace(formula)
	if formula == "" {
		return nil, ErrMissingMoleculeSpec
	}
	segs := upperRuns(formula)
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidElementSymbol, formula)
	}
	mol := make(Molecule, 0, len(segs))
	for _, seg := range segs {
		var sym, num strings.Builder
		for i := 0; i < len(seg); i++ {
			switch c := seg[i]; {
			case isLetter(c):
				sym.WriteByte(c)
			case isDigit(c):
				num.WriteByte(c)
			default:
				return nil, fmt.Errorf("%w: %q in %q",
					ErrInvalidElementSymbol, seg, formula)
			}
		}
		if !IsElement(sym.String()) {
			return nil, fmt.Errorf("%w: %q in %q",
				ErrInvalidElementSymbol, seg, formula)
		}
		if mol.Has(sym.String()) {
			return nil, fmt.Errorf("%w: %q in %q",
				ErrDuplicateAtomType, sym.String(), formula)
		}
		count := 1
		if num.Len() > 0 {
			var err error
			count, err = strconv.Atoi(num.String())
			if err != nil || count < 1 {
				return nil, fmt.Errorf("%w: bad count %q in %q",
					ErrInvalidElementSymbol, num.String(), formula)
			}
		}
		mol = append(mol, Atom{Symbol: sym.String(), Count: count})
	}
	return mol, nil
}
