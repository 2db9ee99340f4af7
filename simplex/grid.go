package simplex

import "github.com/optimtab/lintab/field"

// grid is a row-major dense 2D buffer of field values. It is the
// single owned allocation behind a Solver: sized once at assembly
// time, mutated in place during pivoting, never resized.
//
// Memory: O(r·c) in one flat slice for cache friendliness.
type grid[F field.Value[F]] struct {
	r, c int
	data []F // flat backing storage, length == r*c
}

// newGrid returns an r×c grid of field zeros. Callers validate
// dimensions; r, c < 1 is a programmer error here.
func newGrid[F field.Value[F]](rows, cols int) *grid[F] {
	return &grid[F]{r: rows, c: cols, data: make([]F, rows*cols)}
}

// rows and cols report the grid shape.
func (g *grid[F]) rows() int { return g.r }
func (g *grid[F]) cols() int { return g.c }

// at returns the element at (row, col). Bounds are the caller's
// contract; the flat index makes violations panic immediately.
func (g *grid[F]) at(row, col int) F { return g.data[row*g.c+col] }

// set stores v at (row, col).
func (g *grid[F]) set(row, col int, v F) { g.data[row*g.c+col] = v }

// row returns a mutable view of one row: row-major storage makes every
// row a contiguous sub-slice of the backing array.
func (g *grid[F]) row(row int) []F { return g.data[row*g.c : (row+1)*g.c] }

// divRow divides every element of the row by v in place. Used to
// normalize a pivot row; v is the pivot element and is never zero.
func (g *grid[F]) divRow(row int, v F) {
	r := g.row(row)
	for i := range r {
		r[i] = r[i].Div(v)
	}
}

// subScaledRow subtracts k × row src from row dst in place
// (dst ≠ src). This is the Gauss–Jordan elimination step.
func (g *grid[F]) subScaledRow(dst, src int, k F) {
	d, s := g.row(dst), g.row(src)
	for i := range d {
		d[i] = d[i].Sub(k.Mul(s[i]))
	}
}
