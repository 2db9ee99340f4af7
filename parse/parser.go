package parse

import (
	"strconv"
	"strings"

	"github.com/optimtab/lintab/field"
	"github.com/optimtab/lintab/simplex"
)

// Task parses a whole problem statement: one restriction or objective
// per non-blank line. See the package documentation for the grammar.
func Task(src string) (simplex.Task[field.Rat], error) {
	var (
		out       simplex.Task[field.Rat]
		hasTarget bool
	)

	lines := strings.Split(src, "\n")
	seen := 0
	for _, raw := range lines {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" {
			continue
		}
		seen++

		r, rerr := parseRestriction(line)
		if rerr == nil {
			out.Restrictions = append(out.Restrictions, r)
			continue
		}
		obj, oerr := parseObjective(line)
		if oerr == nil {
			out.Objective = obj
			hasTarget = true
			continue
		}

		return simplex.Task[field.Rat]{}, &CompositeError{Line: line, Restriction: rerr, Objective: oerr}
	}

	if seen == 0 {
		return simplex.Task[field.Rat]{}, ErrEndOfInput
	}
	if !hasTarget {
		return simplex.Task[field.Rat]{}, ErrNoTarget
	}

	return out, nil
}

// scanner is a byte cursor over one line. All productions below skip
// insignificant whitespace themselves.
type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) skip() {
	for !s.eof() && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t') {
		s.pos++
	}
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}

	return s.src[s.pos]
}

// accept consumes tok if it is next (after whitespace), reporting
// whether it did.
func (s *scanner) accept(tok string) bool {
	s.skip()
	if strings.HasPrefix(s.src[s.pos:], tok) {
		s.pos += len(tok)

		return true
	}

	return false
}

// digits consumes a maximal run of decimal digits.
func (s *scanner) digits() (string, bool) {
	start := s.pos
	for !s.eof() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}

	return s.src[start:s.pos], s.pos > start
}

// number scans [sign] digits ["." [digits]] and parses it exactly.
func (s *scanner) number() (field.Rat, error) {
	s.skip()
	start := s.pos
	if s.peek() == '+' || s.peek() == '-' {
		s.pos++
	}
	if _, ok := s.digits(); !ok {
		s.pos = start
		if s.eof() {
			return field.Rat{}, ErrEndOfInput
		}

		return field.Rat{}, ErrNotANumber
	}
	if s.peek() == '.' {
		s.pos++
		s.digits() // fractional digits are optional after the dot
	}

	r, err := field.ParseRat(s.src[start:s.pos])
	if err != nil {
		return field.Rat{}, ErrNotANumber
	}

	return r, nil
}

// term scans [sign] [number] ["*"] "x" digits. A sign with no number
// reads as ±1.
func (s *scanner) term() (simplex.Term[field.Rat], error) {
	s.skip()
	neg := false
	switch s.peek() {
	case '-':
		neg = true
		s.pos++
	case '+':
		s.pos++
	}
	s.skip()

	coef := field.RatFromInt(1)
	if c := s.peek(); c >= '0' && c <= '9' {
		var err error
		if coef, err = s.number(); err != nil {
			return simplex.Term[field.Rat]{}, err
		}
		s.accept("*")
	}

	if !s.accept("x") && !s.accept("X") {
		if s.eof() {
			return simplex.Term[field.Rat]{}, ErrEndOfInput
		}

		return simplex.Term[field.Rat]{}, ErrNotANumber
	}
	digits, ok := s.digits()
	if !ok {
		if s.eof() {
			return simplex.Term[field.Rat]{}, ErrEndOfInput
		}

		return simplex.Term[field.Rat]{}, ErrNotANumber
	}
	index, err := strconv.Atoi(digits)
	if err != nil {
		return simplex.Term[field.Rat]{}, ErrNotANumber
	}

	if neg {
		coef = coef.Neg()
	}

	return simplex.Term[field.Rat]{Coef: coef, Index: index}, nil
}

// terms scans term (("+" | "-") term)*. A "-" is left in place for the
// next term to consume as its sign; "->"-style continuations roll the
// cursor back and end the list.
func (s *scanner) terms() ([]simplex.Term[field.Rat], error) {
	first, err := s.term()
	if err != nil {
		return nil, err
	}
	out := []simplex.Term[field.Rat]{first}

	for {
		s.skip()
		save := s.pos
		switch {
		case s.accept("+"):
			t, err := s.term()
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		case s.peek() == '-':
			t, err := s.term()
			if err != nil {
				s.pos = save

				return out, nil
			}
			out = append(out, t)
		default:
			return out, nil
		}
	}
}

// relation scans one of <=, ==, >=.
func (s *scanner) relation() (simplex.Relation, error) {
	switch {
	case s.accept("<="):
		return simplex.LessEq, nil
	case s.accept("=="):
		return simplex.Equal, nil
	case s.accept(">="):
		return simplex.GreaterEq, nil
	case s.eof():
		return 0, ErrEndOfInput
	default:
		return 0, ErrUnexpectedRelation
	}
}

// parseRestriction matches "terms relation number" covering the whole
// line.
func parseRestriction(line string) (simplex.Restriction[field.Rat], error) {
	s := &scanner{src: line}

	terms, err := s.terms()
	if err != nil {
		return simplex.Restriction[field.Rat]{}, err
	}
	rel, err := s.relation()
	if err != nil {
		return simplex.Restriction[field.Rat]{}, err
	}
	rhs, err := s.number()
	if err != nil {
		return simplex.Restriction[field.Rat]{}, err
	}
	s.skip()
	if !s.eof() {
		return simplex.Restriction[field.Rat]{}, ErrUnexpectedRelation
	}

	return simplex.Restriction[field.Rat]{Terms: terms, Relation: rel, RHS: rhs}, nil
}

// parseObjective matches `z = terms -> max|min`; anything after the
// goal keyword is ignored.
func parseObjective(line string) (simplex.Objective[field.Rat], error) {
	s := &scanner{src: line}

	if !s.accept("z") && !s.accept("Z") {
		return simplex.Objective[field.Rat]{}, ErrNoTarget
	}
	if !s.accept("=") {
		return simplex.Objective[field.Rat]{}, ErrNoTarget
	}
	terms, err := s.terms()
	if err != nil {
		return simplex.Objective[field.Rat]{}, err
	}
	if !s.accept("->") {
		if s.eof() {
			return simplex.Objective[field.Rat]{}, ErrEndOfInput
		}

		return simplex.Objective[field.Rat]{}, ErrNoTarget
	}

	var goal simplex.Goal
	switch {
	case s.accept("max"), s.accept("MAX"), s.accept("Max"):
		goal = simplex.Maximize
	case s.accept("min"), s.accept("MIN"), s.accept("Min"):
		goal = simplex.Minimize
	default:
		return simplex.Objective[field.Rat]{}, ErrNoTarget
	}

	return simplex.Objective[field.Rat]{Terms: terms, Goal: goal}, nil
}
