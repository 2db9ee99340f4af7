package simplex

import "github.com/optimtab/lintab/field"

// solveTwoPhase runs the two-phase method over plain field values.
//
// Phase 1 minimizes w = Σ artificials. The w row is stored already
// reduced against the artificial basis: per structural column the
// column sum of A, zero for artificial columns, and Σb as the stored
// constant (so the stored constant tracks the current w, and reaches
// zero exactly when the restriction system is consistent).
//
// Between the phases every artificial still basic — necessarily at
// value zero — is pivoted onto any structural column with a non-zero
// entry in its row; a row offering no such column is redundant and is
// dropped. Artificial columns are then discarded entirely, the real
// objective row is installed (negated, tableau convention) and reduced
// against the surviving basis, and phase 2 reuses the engine untouched.
//
// Complexity: two simplex runs plus O(m·n) bookkeeping in between.
func solveTwoPhase[F field.Value[F]](ct CanonicalTask[F]) (*Solution[F], error) {
	p := ct.assemble()
	m, n := p.a.rows(), p.a.cols()

	realZ := append([]F(nil), p.z...)

	// Phase-1 tableau: [A|I|b] with the reduced w row last.
	p.addBasis()
	w := make([]F, n+m+1)
	for j := 0; j < n; j++ {
		var sum F
		for i := 0; i < m; i++ {
			sum = sum.Add(p.a.at(i, j))
		}
		w[j] = sum
	}
	var sumB F
	for _, v := range p.b {
		sumB = sumB.Add(v)
	}
	w[n+m] = sumB
	p.z = w

	g, err := p.contents()
	if err != nil {
		return nil, err
	}
	basis := make([]int, m)
	for i := range basis {
		basis[i] = n + i
	}

	s1 := &Solver[F]{contents: g, basis: basis, aim: Minimize}
	if err = s1.run(); err != nil {
		return nil, err
	}
	// A positive phase-1 optimum means no feasible point exists.
	if !s1.contents.at(m, n+m).IsZero() {
		return nil, ErrNoSolutions
	}

	// Drive out degenerate basic artificials; rows that offer no
	// structural pivot are redundant restrictions and are dropped.
	keep := make([]int, 0, m)
	for r := 0; r < m; r++ {
		if s1.basis[r] >= n {
			for j := 0; j < n; j++ {
				if !s1.contents.at(r, j).IsZero() {
					s1.pivotAt(r, j)
					break
				}
			}
		}
		if s1.basis[r] < n {
			keep = append(keep, r)
		}
	}

	// Phase-2 tableau: structural columns and rhs only, real objective
	// row reduced against the surviving basis.
	mk := len(keep)
	if mk == 0 {
		return nil, ErrEmptyProblem
	}
	g2 := newGrid[F](mk+1, n+1)
	basis2 := make([]int, mk)
	for newRow, r := range keep {
		copy(g2.row(newRow)[:n], s1.contents.row(r)[:n])
		g2.set(newRow, n, s1.contents.at(r, n+m))
		basis2[newRow] = s1.basis[r]
	}
	for j := range realZ {
		realZ[j] = realZ[j].Neg()
	}
	copy(g2.row(mk), realZ)
	for newRow, col := range basis2 {
		if k := g2.at(mk, col); !k.IsZero() {
			g2.subScaledRow(mk, newRow, k)
		}
	}

	s2 := &Solver[F]{contents: g2, basis: basis2, aim: ct.task.Objective.Goal}

	return s2.Solve()
}
