package main

import (
	"math"
	"strconv"
	"strings"
)

const (
	// digits after the decimal point in the fixed-width columns of
	// older DIRAC vector prints
	legacyDecimals = 10
)

// Reassemble splits tok into the numbers it contains when
// fixed-width columns ran together without a separating space, as in
// "-0.12345678900.0000000000". Tokens with fewer than two decimal
// points are returned as they are.
func Reassemble(tok string) []string {
	if strings.Count(tok, ".") < 2 {
		return []string{tok}
	}
	ret := make([]string, 0, strings.Count(tok, "."))
	for tok != "" {
		i := strings.IndexByte(tok, '.')
		if i < 0 {
			ret = append(ret, tok)
			break
		}
		end := i + 1 + legacyDecimals
		if end > len(tok) {
			end = len(tok)
		}
		ret = append(ret, tok[:end])
		tok = tok[end:]
	}
	return ret
}

// ReassembleAll applies Reassemble to every field and flattens the
// result
func ReassembleAll(fields []string) []string {
	ret := make([]string, 0, len(fields))
	for _, f := range fields {
		ret = append(ret, Reassemble(f)...)
	}
	return ret
}

// ParseCoef parses s as a float, accepting Fortran D exponents. Any
// string that does not parse counts as zero.
func ParseCoef(s string) float64 {
	v, err := strconv.ParseFloat(strings.Replace(s, "D", "E", -1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// toFloat converts a list of strings to float64 using ParseCoef
func toFloat(strs []string) []float64 {
	ret := make([]float64, len(strs))
	for i, s := range strs {
		ret[i] = ParseCoef(s)
	}
	return ret
}
