package main

import "errors"

// Errors
var (
	ErrMissingMoleculeSpec   = errors.New("molecule formula is required")
	ErrInvalidElementSymbol  = errors.New("invalid element symbol")
	ErrDuplicateAtomType     = errors.New("duplicate atom type in molecule formula")
	ErrInvalidAtomType       = errors.New("unrecognized atom type in coefficient label")
	ErrAtomNotInMoleculeSpec = errors.New("atom type not found in molecule formula")
	ErrBadEigenvalueHeader   = errors.New("malformed electronic eigenvalue header")
	ErrMissingInput          = errors.New("input file is required")
	ErrBadDecimal            = errors.New("decimal places must be between 1 and 15")
	ErrBadThreshold          = errors.New("threshold must be a non-negative number")
)
