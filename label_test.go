package main

import (
	"errors"
	"testing"
)

func TestResolveLabel(t *testing.T) {
	mol := Molecule{{"Cu", 2}, {"C", 1}, {"Cl", 1}, {"O", 1}}
	tests := []struct {
		in   string
		want Label
		err  error
	}{
		{
			in:   "Ag Cu s",
			want: Label{"Ag", "Cu", "s"},
		},
		{
			in:   "B3gCldyz",
			want: Label{"B3g", "Cl", "dyz"},
		},
		{
			in:   "B3gCu3dxy",
			want: Label{"B3g", "Cu", "dxy"},
		},
		{
			in:   "Ag O  s",
			want: Label{"Ag", "O", "s"},
		},
		{
			in:   "B1u C pz",
			want: Label{"B1u", "C", "pz"},
		},
		{in: "lowercase", err: ErrInvalidAtomType},
		{in: "Ag", err: ErrInvalidAtomType},
		{in: "Ag Qs", err: ErrInvalidAtomType},
		{in: "Ag Zn s", err: ErrAtomNotInMoleculeSpec},
	}
	for _, test := range tests {
		got, err := ResolveLabel(test.in, mol)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: got error %v, wanted %v\n", test.in, err, test.err)
			continue
		}
		if test.err == nil && got != test.want {
			t.Errorf("%q: got %v, wanted %v\n", test.in, got, test.want)
		}
	}
}

// Cu must win over C followed by a "u" orbital
func TestResolveLabelPrefersTwoLetters(t *testing.T) {
	got, err := ResolveLabel("Ag Cus", Molecule{{"C", 1}, {"Cu", 1}})
	if err != nil {
		t.Fatal(err)
	}
	if got.Atom != "Cu" || got.Orbital != "s" {
		t.Errorf("got %v, wanted atom Cu with orbital s\n", got)
	}
}

func TestLabelString(t *testing.T) {
	got := Label{"B3g", "Cl", "dyz"}.String()
	want := "B3gCldyz"
	if got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}
