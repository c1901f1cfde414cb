package permgraph

import (
	"fmt"
	"sort"
)

// Union returns the symmetrized sum of ms: cell [i][j] counts the edges
// i→j and j→i over all matrices. The result is the undirected multigraph
// of the combined generators.
//
// Errors: ErrNoMatrices, ErrEmptyMatrix, ErrNonSquare, ErrDimensionMismatch.
func Union(ms ...Matrix) (Matrix, error) {
	if len(ms) == 0 {
		return nil, ErrNoMatrices
	}
	n := len(ms[0])
	out := make(Matrix, n)
	for i := range out {
		out[i] = make([]int, n)
	}
	for k, m := range ms {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("matrix %d: %w", k, err)
		}
		if len(m) != n {
			return nil, fmt.Errorf("matrix %d has size %d, want %d: %w", k, len(m), n, ErrDimensionMismatch)
		}
		for i, row := range m {
			for j, v := range row {
				out[i][j] += v
				out[j][i] += v
			}
		}
	}

	return out, nil
}

// Components finds the connected components of m, reading every non-zero
// m[i][j] as an undirected edge between i and j. Each component lists its
// vertices in ascending order and components are ordered by their smallest
// vertex, so the result is deterministic.
//
// Time:   O(n²) for the adjacency scan.
// Memory: O(n) for visited flags and the queue.
func Components(m Matrix) ([][]int, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	n := len(m)
	seen := make([]bool, n)
	var comps [][]int

	for v0 := 0; v0 < n; v0++ {
		if seen[v0] {
			continue
		}
		// BFS to collect component
		queue := []int{v0}
		seen[v0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for w := 0; w < n; w++ {
				if seen[w] || (m[u][w] == 0 && m[w][u] == 0) {
					continue
				}
				seen[w] = true
				queue = append(queue, w)
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	// v0 scans in ascending order, so comps is already sorted by minimum vertex.

	return comps, nil
}

// Connected reports whether m has exactly one connected component.
func Connected(m Matrix) (bool, error) {
	comps, err := Components(m)
	if err != nil {
		return false, err
	}

	return len(comps) == 1, nil
}
