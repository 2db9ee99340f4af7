package simplex

import "github.com/optimtab/lintab/field"

// parts is the pre-concatenation view of a tableau: the structural
// matrix A (m×n), the right-hand-side vector b (m, all ≥ 0 after
// canonicalization) and the objective vector z (n+1 entries, the
// objective constant trailing). Strategy-specific augmentation mutates
// parts before they are concatenated into the solver's single buffer.
type parts[F field.Value[F]] struct {
	a *grid[F]
	b []F
	z []F
}

// assemble scatters the canonical task into dense parts. Duplicate
// terms for one variable within a row accumulate.
//
// Complexity: O(m·n) for the zero fill plus O(total terms).
func (ct CanonicalTask[F]) assemble() parts[F] {
	m, n := len(ct.task.Restrictions), ct.maxIndex

	p := parts[F]{
		a: newGrid[F](m, n),
		b: make([]F, m),
		z: make([]F, n+1),
	}
	for i, r := range ct.task.Restrictions {
		for _, t := range r.Terms {
			col := t.Index - 1
			p.a.set(i, col, p.a.at(i, col).Add(t.Coef))
		}
		p.b[i] = r.RHS
	}
	for _, t := range ct.task.Objective.Terms {
		p.z[t.Index-1] = p.z[t.Index-1].Add(t.Coef)
	}
	p.z[n] = ct.task.Objective.Const

	return p
}

// addPenaltyRow folds the Big-M penalty row into z: per structural
// column the column sum over A, and the sum over b for the trailing
// constant, each lifted into the penalty slot. The sign follows the
// aim — added for Maximize, subtracted for Minimize — so that in both
// directions the penalty prices every still-implicit artificial
// variable out of the basis.
func addPenaltyRow(p *parts[field.BigM], goal Goal) {
	fold := func(z, tax field.BigM) field.BigM {
		if goal == Maximize {
			return z.Add(tax.IntoPenalty())
		}

		return z.Sub(tax.IntoPenalty())
	}

	for j := 0; j < p.a.cols(); j++ {
		var sum field.BigM
		for i := 0; i < p.a.rows(); i++ {
			sum = sum.Add(p.a.at(i, j))
		}
		p.z[j] = fold(p.z[j], sum)
	}

	var sumB field.BigM
	for _, v := range p.b {
		sumB = sumB.Add(v)
	}
	p.z[len(p.z)-1] = fold(p.z[len(p.z)-1], sumB)
}

// addBasis appends an m×m identity block of artificial columns to A
// and m zero-cost entries to z, keeping the objective constant as the
// last z element.
func (p *parts[F]) addBasis() {
	m, n := p.a.rows(), p.a.cols()

	wide := newGrid[F](m, n+m)
	var zero F
	one := zero.One()
	for i := 0; i < m; i++ {
		copy(wide.row(i)[:n], p.a.row(i))
		wide.set(i, n+i, one)
	}
	p.a = wide

	z := make([]F, n+m+1)
	copy(z, p.z[:n])
	z[n+m] = p.z[n]
	p.z = z
}

// invertZ negates every z entry, establishing the tableau sign
// convention the optimality test relies on.
func (p *parts[F]) invertZ() {
	for i := range p.z {
		p.z[i] = p.z[i].Neg()
	}
}

// contents stacks [A|b] with z as the last row into one owned buffer.
func (p *parts[F]) contents() (*grid[F], error) {
	m, n := p.a.rows(), p.a.cols()
	if len(p.b) != m || len(p.z) != n+1 {
		return nil, ErrShapeMismatch
	}

	g := newGrid[F](m+1, n+1)
	for i := 0; i < m; i++ {
		copy(g.row(i)[:n], p.a.row(i))
		g.set(i, n, p.b[i])
	}
	copy(g.row(m), p.z)

	return g, nil
}

// initialBasis seeds the basis with the columns whose z entry is
// exactly zero — the columns (slacks or artificials) that already form
// an implicit identity and are feasible without pivoting. Exactly one
// such column per restriction row must exist; any other count is an
// assembly inconsistency.
func initialBasis[F field.Value[F]](z []F, m int) ([]int, error) {
	basis := make([]int, 0, m)
	for j := 0; j < len(z)-1; j++ {
		if z[j].IsZero() {
			basis = append(basis, j)
		}
	}
	if len(basis) != m {
		return nil, ErrShapeMismatch
	}

	return basis, nil
}

// solverFromParts concatenates augmented parts and derives the
// implicit starting basis.
func solverFromParts[F field.Value[F]](p parts[F], aim Goal) (*Solver[F], error) {
	g, err := p.contents()
	if err != nil {
		return nil, err
	}
	basis, err := initialBasis(p.z, p.a.rows())
	if err != nil {
		return nil, err
	}

	return &Solver[F]{contents: g, basis: basis, aim: aim}, nil
}
