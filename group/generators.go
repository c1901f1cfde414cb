package group

import (
	"fmt"

	"github.com/katalvlaran/kdgroup/permgraph"
)

// FindGenerators picks generators greedily: columns 1, 2, … are appended
// in increasing order and the search stops at the first prefix whose
// symmetrized union graph connects all Size() indices.
//
// There is no search over subsets; the result depends only on index order.
// A one-element group needs no generator and yields an empty slice.
//
// Returns ErrEmptyTable, ErrDisconnected if even the full column set does
// not connect the table, or a permgraph error for a malformed table.
func FindGenerators(t Table) ([]Generator, error) {
	n := len(t)
	if n == 0 {
		return nil, ErrEmptyTable
	}
	if n == 1 {
		return nil, nil
	}

	var (
		gens     []Generator
		matrices []permgraph.Matrix
	)
	for col := 1; col < n; col++ {
		ex, err := RightMultiplication(t, col)
		if err != nil {
			return nil, err
		}
		gens = append(gens, Generator{Column: col, Edges: ex})
		matrices = append(matrices, ex)

		union, err := permgraph.Union(matrices...)
		if err != nil {
			return nil, err
		}
		ok, err := permgraph.Connected(union)
		if err != nil {
			return nil, err
		}
		if ok {
			return gens, nil
		}
	}

	return nil, ErrDisconnected
}

// FindLoops partitions the vertices of the first generator's own
// permutation graph into its connected components.
//
// Every component must have exactly LoopSize vertices; any other size
// means the order is outside what the layout supports and yields
// ErrUnsupportedOrder. Components list their vertices ascending and are
// ordered by their smallest vertex.
func FindLoops(first permgraph.Matrix) ([][]int, error) {
	comps, err := permgraph.Components(first)
	if err != nil {
		return nil, err
	}
	for k, comp := range comps {
		if len(comp) != LoopSize {
			return nil, fmt.Errorf("component %d has %d vertices, want %d: %w", k, len(comp), LoopSize, ErrUnsupportedOrder)
		}
	}

	return comps, nil
}

// RotateLoops returns a copy of loops where loop k is cyclically rolled by
// step*k positions. Rolling by s moves element p to position (p+s) mod len,
// so step = -1 pulls every later loop one more position to the front.
// The direction is a layout choice and has no algebraic meaning.
func RotateLoops(loops [][]int, step int) [][]int {
	out := make([][]int, len(loops))
	for k, loop := range loops {
		out[k] = roll(loop, step*k)
	}

	return out
}

// roll shifts the elements of x right by s positions with wrap-around.
func roll(x []int, s int) []int {
	n := len(x)
	out := make([]int, n)
	if n == 0 {
		return out
	}
	s = ((s % n) + n) % n
	for p, v := range x {
		out[(p+s)%n] = v
	}

	return out
}
