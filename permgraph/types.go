// Package permgraph treats square 0/1 matrices as graphs over the integer
// vertices 0..n-1 and answers the connectivity questions needed to pick
// generators and layout loops of a finite group.
//
// A right-multiplication permutation matrix has exactly one 1 per row; the
// union of several such matrices, symmetrized, is the undirected Cayley
// graph of the chosen generators.
package permgraph

import "errors"

// Sentinel errors for permgraph operations.
var (
	// ErrEmptyMatrix indicates a matrix with no rows.
	ErrEmptyMatrix = errors.New("permgraph: matrix must have at least one row")
	// ErrNonSquare indicates a row whose length differs from the row count.
	ErrNonSquare = errors.New("permgraph: matrix is not square")
	// ErrDimensionMismatch indicates matrices of different sizes in one union.
	ErrDimensionMismatch = errors.New("permgraph: dimension mismatch")
	// ErrNoMatrices indicates an empty union.
	ErrNoMatrices = errors.New("permgraph: no matrices supplied")
)

// Matrix is a square adjacency matrix; any non-zero cell m[i][j] is an edge i→j.
type Matrix [][]int

// Edge is a directed edge From→To.
type Edge struct {
	From, To int
}

// Size returns the number of vertices (rows).
func (m Matrix) Size() int { return len(m) }

// Validate checks that m is non-empty and square.
func (m Matrix) Validate() error {
	if len(m) == 0 {
		return ErrEmptyMatrix
	}
	for _, row := range m {
		if len(row) != len(m) {
			return ErrNonSquare
		}
	}

	return nil
}

// Edges lists every non-zero cell as an edge, in row-major order.
func (m Matrix) Edges() []Edge {
	var out []Edge
	for i, row := range m {
		for j, v := range row {
			if v != 0 {
				out = append(out, Edge{From: i, To: j})
			}
		}
	}

	return out
}
