package simplex

import "github.com/optimtab/lintab/field"

// Solver is the pivot engine. It exclusively owns one dense
// (m+1)×(n+1) buffer — restriction rows with their rhs, the negated
// objective row last — plus the basis array basis[r] = column basic in
// row r. Solve consumes the instance; it cannot be reused.
type Solver[F field.Value[F]] struct {
	contents *grid[F]
	basis    []int
	aim      Goal
	consumed bool
}

// NewSolver builds a Solver from an already-assembled tableau:
// contents must be rectangular with at least one restriction row and
// one variable column, the last row being the negated objective. The
// starting basis is derived from the zero entries of the objective
// row, one per restriction row; any other count is ErrShapeMismatch.
//
// Most callers go through Solve / the method-specific constructors
// instead; NewSolver is the escape hatch for tableaus produced
// elsewhere.
func NewSolver[F field.Value[F]](contents [][]F, aim Goal) (*Solver[F], error) {
	if len(contents) < 2 || len(contents[0]) < 2 {
		return nil, ErrEmptyProblem
	}
	m, width := len(contents)-1, len(contents[0])

	g := newGrid[F](m+1, width)
	for i, row := range contents {
		if len(row) != width {
			return nil, ErrShapeMismatch
		}
		copy(g.row(i), row)
	}

	basis, err := initialBasis(g.row(m), m)
	if err != nil {
		return nil, err
	}

	return &Solver[F]{contents: g, basis: basis, aim: aim}, nil
}

// m and n report restriction-row and variable-column counts.
func (s *Solver[F]) m() int { return s.contents.rows() - 1 }
func (s *Solver[F]) n() int { return s.contents.cols() - 1 }

// zAt reads the objective row entry for column j (rhs excluded by the
// callers' loops).
func (s *Solver[F]) zAt(j int) F { return s.contents.at(s.m(), j) }

// bAt reads the rhs of restriction row i.
func (s *Solver[F]) bAt(i int) F { return s.contents.at(i, s.n()) }

// isOptimal applies the uniform sign test enabled by the pre-negated
// objective row: Minimize is optimal when every z entry is ≤ 0,
// Maximize when every z entry is ≥ 0.
func (s *Solver[F]) isOptimal() bool {
	var zero F
	for j := 0; j < s.n(); j++ {
		c := s.zAt(j).Cmp(zero)
		if s.aim == Minimize && c > 0 {
			return false
		}
		if s.aim == Maximize && c < 0 {
			return false
		}
	}

	return true
}

// pivotColumn picks the entering column: for Minimize the largest
// strictly positive z entry, for Maximize the smallest strictly
// negative one. Ties break toward the smallest column index, keeping
// runs deterministic. ErrNoSolutions when no candidate exists.
func (s *Solver[F]) pivotColumn() (int, error) {
	var zero F
	best := -1
	var bestVal F
	for j := 0; j < s.n(); j++ {
		v := s.zAt(j)
		switch s.aim {
		case Minimize:
			if v.Cmp(zero) > 0 && (best < 0 || v.Cmp(bestVal) > 0) {
				best, bestVal = j, v
			}
		case Maximize:
			if v.Cmp(zero) < 0 && (best < 0 || v.Cmp(bestVal) < 0) {
				best, bestVal = j, v
			}
		}
	}
	if best < 0 {
		return 0, ErrNoSolutions
	}

	return best, nil
}

// pivotRow runs the min-ratio test on the chosen column: among rows
// with a non-zero entry, the smallest strictly positive b/a ratio
// wins, preserving rhs non-negativity after the pivot. Ties break
// toward the smallest row index. ErrNoLimit when no ratio qualifies —
// the objective is unbounded along this column.
func (s *Solver[F]) pivotRow(col int) (int, error) {
	var zero F
	best := -1
	var bestRatio F
	for i := 0; i < s.m(); i++ {
		a := s.contents.at(i, col)
		if a.IsZero() {
			continue
		}
		ratio := s.bAt(i).Div(a)
		if ratio.Cmp(zero) <= 0 {
			continue
		}
		if best < 0 || ratio.Cmp(bestRatio) < 0 {
			best, bestRatio = i, ratio
		}
	}
	if best < 0 {
		return 0, ErrNoLimit
	}

	return best, nil
}

// pivotAt performs one Gauss–Jordan elimination around (row, col): the
// pivot row is normalized by the pivot value, every other row
// (objective row included) has its pivot-column entry zeroed by a
// scaled subtraction, and the basis records the swap. After the call
// the basis columns again form an identity sub-matrix.
//
// Complexity: O(m·n).
func (s *Solver[F]) pivotAt(row, col int) {
	s.contents.divRow(row, s.contents.at(row, col))
	for i := 0; i <= s.m(); i++ {
		if i == row {
			continue
		}
		k := s.contents.at(i, col)
		if k.IsZero() {
			continue
		}
		s.contents.subScaledRow(i, row, k)
	}
	s.basis[row] = col
}

// iterate selects the pivot and eliminates around it.
func (s *Solver[F]) iterate() error {
	col, err := s.pivotColumn()
	if err != nil {
		return err
	}
	row, err := s.pivotRow(col)
	if err != nil {
		return err
	}
	s.pivotAt(row, col)

	return nil
}

// run loops iterate until the optimality test holds or a pivot
// failure propagates. Failures are terminal: no retries, no partial
// solutions. Degeneracy can in principle cycle; no anti-cycling rule
// is applied.
func (s *Solver[F]) run() error {
	for !s.isOptimal() {
		if err := s.iterate(); err != nil {
			return err
		}
	}

	return nil
}

// Solve drives the engine to optimality and extracts the Solution,
// consuming the Solver. A second call returns ErrSolverConsumed.
func (s *Solver[F]) Solve() (*Solution[F], error) {
	if s.consumed {
		return nil, ErrSolverConsumed
	}
	s.consumed = true

	if err := s.run(); err != nil {
		return nil, err
	}

	return s.extract(), nil
}

// extract reads the final tableau into an independent Solution: the
// (column, value) pair per basis row plus a copy of the final
// objective row.
func (s *Solver[F]) extract() *Solution[F] {
	basics := make([]BasicVar[F], s.m())
	for i, col := range s.basis {
		basics[i] = BasicVar[F]{Column: col, Value: s.bAt(i)}
	}
	objective := append([]F(nil), s.contents.row(s.m())...)

	return &Solution[F]{basics: basics, objective: objective}
}
