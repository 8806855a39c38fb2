package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func b3gResults(t *testing.T, debug bool) *Results {
	t.Helper()
	conf := testConfig()
	conf.Debug = debug
	res, err := Scan(strings.NewReader(b3gLog), conf,
		Molecule{{"Cl", 1}, {"F", 1}}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResults(&buf, b3gResults(t, false), Format{Decimal: 5})
	if err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	want := `B3g 22 -2.8417809384721
B3gCldyz     87.50000%
B3gFs        12.50000%

`
	if got != want {
		t.Errorf("got\n%q, wanted\n%q\n", got, want)
	}
}

func TestWriteResultsCompress(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResults(&buf, b3gResults(t, false),
		Format{Compress: true, Decimal: 3})
	if err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	want := "B3g 22 -2.8417809384721 B3gCldyz 87.500 B3gFs 12.500\n"
	if got != want {
		t.Errorf("got\n%q, wanted\n%q\n", got, want)
	}
}

func TestWriteResultsDebug(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResults(&buf, b3gResults(t, true),
		Format{Debug: true, Decimal: 5})
	if err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	want := `B3g 22 -2.8417809384721
B3gCldyz     87.50000%
B3gFs        12.50000%
Normalization constant is 8.00000
sum of coefficient is 1.00000

`
	if got != want {
		t.Errorf("got\n%q, wanted\n%q\n", got, want)
	}
}

func TestRowLine(t *testing.T) {
	got := Row{
		Atom:    "Cu",
		Label:   Label{"Ag", "Cu", "s"},
		Percent: 26.470588235294116,
	}.Line(2)
	want := "AgCus        26.47%"
	if got != want {
		t.Errorf("got %q, wanted %q\n", got, want)
	}
}
