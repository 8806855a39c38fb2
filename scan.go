package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// longest line accepted from the output file
const maxLine = 1 << 20

// State is the position of a Scanner within the vector print section
type State int

const (
	WaitingForSectionStart State = iota
	WaitingForEigenvalueHeader
	ReadingCoefficients
)

func (s State) String() string {
	return [...]string{
		"WaitingForSectionStart",
		"WaitingForEigenvalueHeader",
		"ReadingCoefficients",
	}[s]
}

// Scanner walks the lines of a DIRAC output file and collects the MO
// coefficient summaries from its vector print section
type Scanner struct {
	State State

	conf    Config
	mol     Molecule
	logger  *zap.Logger
	results *Results

	// symmetry from the last Fermion ircop line
	symmetry string
	// header of the open eigenvalue block and its sums
	cur MOResult
	acc *Accum

	line int
}

func NewScanner(conf Config, mol Molecule, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		State:   WaitingForSectionStart,
		conf:    conf,
		mol:     mol,
		logger:  logger,
		results: new(Results),
	}
}

// Results returns the MO summaries collected so far
func (s *Scanner) Results() *Results { return s.results }

// Step feeds a single line to s. done is true once the end of the
// vector print section has been reached.
func (s *Scanner) Step(line string) (done bool, err error) {
	s.line++
	fields := strings.Fields(line)
	if s.State == WaitingForSectionStart {
		if len(fields) >= 3 && fields[1] == "Vector" && fields[2] == "print" {
			s.logger.Debug("found vector print section",
				zap.Int("line", s.line))
			s.State = WaitingForEigenvalueHeader
		}
		return false, nil
	}
	if len(fields) >= 5 && fields[1] == "Mulliken" && fields[2] == "population" {
		s.finish("Mulliken population")
		return true, nil
	}
	switch s.State {
	case WaitingForEigenvalueHeader:
		err = s.header(fields)
	case ReadingCoefficients:
		switch n := len(fields); {
		case n == 0:
			s.closeBlock()
		case n >= 5 && n <= 9:
			err = s.coef(fields)
		}
	}
	if err != nil {
		return false, fmt.Errorf("line %d: %w", s.line, err)
	}
	return false, nil
}

// Scan feeds every line of seq to s until the vector print section
// ends or seq is exhausted
func (s *Scanner) Scan(seq iter.Seq[string]) error {
	for line := range seq {
		done, err := s.Step(line)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	s.finish("end of input")
	return nil
}

func (s *Scanner) header(fields []string) error {
	switch {
	case len(fields) == 3 && fields[0] == "Fermion" && fields[1] == "ircop":
		s.symmetry = fields[2]
	case len(fields) >= 4 && fields[1] == "Electronic" &&
		fields[2] == "eigenvalue" && strings.Contains(fields[3], "no."):
		idx, energy, err := parseEigenvalue(fields)
		if err != nil {
			return err
		}
		s.cur = MOResult{
			Symmetry: s.symmetry,
			Index:    idx,
			Energy:   energy,
		}
		s.acc = NewAccum()
		s.State = ReadingCoefficients
	}
	return nil
}

// parseEigenvalue extracts the index and energy from a line like
//
//	* Electronic eigenvalue no. 22: -2.8417809384721
//
// where the index may also be fused to the "no." as in "no.122:"
func parseEigenvalue(fields []string) (idx int, energy float64, err error) {
	tok := fields[3]
	num := tok[strings.Index(tok, "no.")+len("no."):]
	num = strings.TrimSuffix(num, ":")
	if num == "" && len(fields) > 4 {
		num = strings.TrimSuffix(fields[4], ":")
	}
	idx, err = strconv.Atoi(num)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad index %q",
			ErrBadEigenvalueHeader, num)
	}
	last := fields[len(fields)-1]
	energy, err = strconv.ParseFloat(last, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad energy %q",
			ErrBadEigenvalueHeader, last)
	}
	return idx, energy, nil
}

// coef handles a line like
//
//	1  L Ag Cu s      0.0000134258  0.0000000000  0.0000000000  0.0000000000
func (s *Scanner) coef(fields []string) error {
	toks := ReassembleAll(fields)
	// index, component, at least one label field, four amplitudes
	if len(toks) < 7 {
		return fmt.Errorf("%w: %q", ErrInvalidAtomType,
			strings.Join(fields, " "))
	}
	text := strings.Join(toks[2:len(toks)-4], " ")
	lab, err := ResolveLabel(text, s.mol)
	if err != nil {
		return err
	}
	s.acc.Add(lab, toks[len(toks)-4:], s.mol)
	return nil
}

func (s *Scanner) closeBlock() {
	s.cur.Rows, s.cur.NormConst, s.cur.CoefSum = Summarize(
		s.acc, s.mol, s.conf.Threshold, s.conf.Debug,
	)
	s.logger.Debug("summarized MO",
		zap.String("symmetry", s.cur.Symmetry),
		zap.Int("index", s.cur.Index),
		zap.Float64("energy", s.cur.Energy),
		zap.Int("labels", s.acc.Len()),
		zap.Int("rows", len(s.cur.Rows)),
	)
	s.results.Append(s.cur)
	s.cur = MOResult{}
	s.acc = nil
	s.State = WaitingForEigenvalueHeader
}

// finish ends the scan. A block still being read has not been closed
// by a blank line and is dropped.
func (s *Scanner) finish(reason string) {
	if s.State == ReadingCoefficients {
		s.logger.Debug("dropping unterminated MO block",
			zap.String("symmetry", s.cur.Symmetry),
			zap.Int("index", s.cur.Index),
			zap.String("reason", reason),
		)
		s.acc = nil
	}
	s.logger.Debug("scan finished",
		zap.String("reason", reason),
		zap.Int("lines", s.line),
		zap.Int("mos", s.results.Len()),
	)
}

// Lines returns a sequence over the lines of r and a function
// reporting any read error once the sequence is done
func Lines(r io.Reader) (iter.Seq[string], func() error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	seq := func(yield func(string) bool) {
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}
	return seq, scanner.Err
}

// Scan reads a DIRAC output file from r and returns the summaries of
// its MOs, sorted by energy unless conf.NoSort is set
func Scan(r io.Reader, conf Config, mol Molecule,
	logger *zap.Logger) (*Results, error) {
	seq, readErr := Lines(r)
	s := NewScanner(conf, mol, logger)
	if err := s.Scan(seq); err != nil {
		return nil, err
	}
	if err := readErr(); err != nil {
		return nil, err
	}
	if s.State == WaitingForSectionStart {
		s.logger.Warn("no vector print section found")
	}
	res := s.Results()
	if !conf.NoSort {
		res.SortByEnergy()
	}
	return res, nil
}
