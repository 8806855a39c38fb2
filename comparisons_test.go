package main

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

func compFloat(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func percents(rows []Row) []float64 {
	ret := make([]float64, len(rows))
	for i, r := range rows {
		ret[i] = r.Percent
	}
	return ret
}

func labels(rows []Row) []string {
	ret := make([]string, len(rows))
	for i, r := range rows {
		ret[i] = r.Label.String()
	}
	return ret
}

// amps formats the four amplitudes of a coefficient line
func amps(vals ...float64) []string {
	ret := make([]string, len(vals))
	for i, v := range vals {
		ret[i] = fmt.Sprintf("%.10f", v)
	}
	return ret
}
