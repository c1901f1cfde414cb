package permgraph_test

import (
	"testing"

	"github.com/katalvlaran/kdgroup/permgraph"
	"github.com/stretchr/testify/require"
)

// cycle returns the permutation matrix of the cycle over vertices (in order).
func cycle(n int, vertices ...int) permgraph.Matrix {
	m := make(permgraph.Matrix, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	for k, v := range vertices {
		m[v][vertices[(k+1)%len(vertices)]] = 1
	}

	return m
}

// TestValidate covers empty and ragged matrices.
func TestValidate(t *testing.T) {
	require.ErrorIs(t, permgraph.Matrix{}.Validate(), permgraph.ErrEmptyMatrix)
	require.ErrorIs(t, permgraph.Matrix{{0, 1}, {1}}.Validate(), permgraph.ErrNonSquare)
	require.NoError(t, cycle(3, 0, 1, 2).Validate())
}

// TestComponentsTwoCycles splits two interleaved 4-cycles.
func TestComponentsTwoCycles(t *testing.T) {
	m := cycle(8, 0, 1, 4, 5)
	other := cycle(8, 2, 7, 6, 3)
	for i := range m {
		for j := range m[i] {
			m[i][j] += other[i][j]
		}
	}

	comps, err := permgraph.Components(m)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 4, 5}, {2, 3, 6, 7}}, comps)

	ok, err := permgraph.Connected(m)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestComponentsDirectionIgnored treats a single directed edge as undirected.
func TestComponentsDirectionIgnored(t *testing.T) {
	m := permgraph.Matrix{
		{0, 0, 0},
		{0, 0, 0},
		{1, 0, 0},
	}
	comps, err := permgraph.Components(m)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 2}, {1}}, comps)
}

// TestUnionConnects joins two partial cycles into one component.
func TestUnionConnects(t *testing.T) {
	a := cycle(4, 0, 1)
	b := cycle(4, 1, 2, 3)

	u, err := permgraph.Union(a, b)
	require.NoError(t, err)
	// symmetrized: every edge appears both ways
	for i := range u {
		for j := range u {
			require.Equal(t, u[i][j], u[j][i])
		}
	}
	ok, err := permgraph.Connected(u)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestUnionErrors covers empty input and size mismatch.
func TestUnionErrors(t *testing.T) {
	_, err := permgraph.Union()
	require.ErrorIs(t, err, permgraph.ErrNoMatrices)

	_, err = permgraph.Union(cycle(4, 0, 1), cycle(3, 0, 1))
	require.ErrorIs(t, err, permgraph.ErrDimensionMismatch)

	_, err = permgraph.Union(permgraph.Matrix{{0, 1}, {1}})
	require.ErrorIs(t, err, permgraph.ErrNonSquare)
}

// TestEdgesRowMajor lists edges in row-major order.
func TestEdgesRowMajor(t *testing.T) {
	edges := cycle(3, 0, 2, 1).Edges()
	require.Equal(t, []permgraph.Edge{{From: 0, To: 2}, {From: 1, To: 0}, {From: 2, To: 1}}, edges)
}
