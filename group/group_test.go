// Package group_test contains unit tests for the group derivation.
package group_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/kdgroup/algebra"
	"github.com/katalvlaran/kdgroup/group"
	"github.com/katalvlaran/kdgroup/permgraph"
	"github.com/stretchr/testify/require"
)

// tableFor builds members and the group table for order with default options.
func tableFor(t *testing.T, order int, opts ...group.Option) ([]algebra.Element, group.Table) {
	t.Helper()
	basis, err := algebra.Basis(order)
	require.NoError(t, err)
	members := group.Members(basis)
	table, err := group.BuildTable(algebra.NewMultiplier(), members, opts...)
	require.NoError(t, err)

	return members, table
}

// TestMembersLength checks len(members) == 2·2^n for n in 0..3.
func TestMembersLength(t *testing.T) {
	for order := 0; order <= 3; order++ {
		basis, err := algebra.Basis(order)
		require.NoError(t, err)
		require.Len(t, group.Members(basis), 2*(1<<order))
	}
}

// TestIndexRoundTrip verifies Index(members[k]) == k and the ±M relation.
func TestIndexRoundTrip(t *testing.T) {
	for order := 0; order <= 4; order++ {
		basis, err := algebra.Basis(order)
		require.NoError(t, err)
		members := group.Members(basis)
		half := len(basis)
		for k, x := range members {
			idx, err := group.Index(x)
			require.NoError(t, err)
			require.Equal(t, k, idx)
			if k < half {
				neg, err := group.Index(x.Neg())
				require.NoError(t, err)
				require.Equal(t, idx+half, neg)
			}
		}
		one, err := group.Index(members[0])
		require.NoError(t, err)
		require.Zero(t, one)
	}
}

// TestIndexNotUnit rejects zero, mixed and scaled elements.
func TestIndexNotUnit(t *testing.T) {
	zero, err := algebra.NewPair(algebra.Scalar(0), algebra.Scalar(0))
	require.NoError(t, err)
	mixed, err := algebra.NewPair(algebra.Scalar(1), algebra.Scalar(1))
	require.NoError(t, err)
	scaled, err := algebra.NewPair(algebra.Scalar(0), algebra.Scalar(2))
	require.NoError(t, err)

	for _, x := range []algebra.Element{zero, mixed, scaled, algebra.Scalar(0.5)} {
		_, err := group.Index(x)
		require.ErrorIs(t, err, group.ErrNotUnit, "element %v", x)
	}
}

// TestTableIsLatinSquare checks identity row/column and permutation rows
// and columns for orders 0..3.
func TestTableIsLatinSquare(t *testing.T) {
	for order := 0; order <= 3; order++ {
		_, table := tableFor(t, order)
		n := 2 * (1 << order)
		require.Equal(t, n, table.Size())
		require.NoError(t, table.Validate())
		for i := 0; i < n; i++ {
			require.Equal(t, i, table[0][i], "identity row, order %d", order)
			require.Equal(t, i, table[i][0], "identity column, order %d", order)
		}
	}
}

// TestComplexTable matches the cyclic group of order 4 over [1, i, −1, −i].
func TestComplexTable(t *testing.T) {
	_, table := tableFor(t, 1)
	want := group.Table{
		{0, 1, 2, 3},
		{1, 2, 3, 0},
		{2, 3, 0, 1},
		{3, 0, 1, 2},
	}
	require.Equal(t, want, table)
}

// TestQuaternionTable checks i·j = k and j·i = −k in index form.
func TestQuaternionTable(t *testing.T) {
	_, table := tableFor(t, 2)
	require.Equal(t, 3, table[1][2]) // i·j = k
	require.Equal(t, 7, table[2][1]) // j·i = −k
	require.Equal(t, 4, table[1][1]) // i·i = −1
	require.Equal(t, 0, table[5][1]) // −i·i = 1
}

// TestValidateDetectsBadTable covers empty, ragged and repeated rows.
func TestValidateDetectsBadTable(t *testing.T) {
	require.ErrorIs(t, group.Table{}.Validate(), group.ErrEmptyTable)
	require.ErrorIs(t, group.Table{{0, 1}, {1}}.Validate(), group.ErrNotPermutation)
	require.ErrorIs(t, group.Table{{0, 1}, {1, 1}}.Validate(), group.ErrNotPermutation)
	require.ErrorIs(t, group.Table{{0, 1}, {0, 1}}.Validate(), group.ErrNotPermutation)
	require.ErrorIs(t, group.Table{{0, 5}, {1, 0}}.Validate(), group.ErrNotPermutation)
}

// TestBuildTableParallelAndPlain gives the same table with workers and without cache.
func TestBuildTableParallelAndPlain(t *testing.T) {
	members, serial := tableFor(t, 3)

	parallel, err := group.BuildTable(algebra.NewMultiplier(), members, group.WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, serial, parallel)

	plain, err := group.BuildTable(algebra.NewMultiplier(algebra.WithMemoization(false)), members)
	require.NoError(t, err)
	require.Equal(t, serial, plain)
}

// TestBuildTableErrors covers bad options, empty input and cancellation.
func TestBuildTableErrors(t *testing.T) {
	m := algebra.NewMultiplier()
	basis, err := algebra.Basis(1)
	require.NoError(t, err)
	members := group.Members(basis)

	_, err = group.BuildTable(m, members, group.WithWorkers(0))
	require.ErrorIs(t, err, group.ErrOptionViolation)

	_, err = group.BuildTable(m, nil)
	require.ErrorIs(t, err, group.ErrEmptyTable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = group.BuildTable(m, members, group.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	// a non-unit member leaves the index space
	two, err := algebra.NewPair(algebra.Scalar(2), algebra.Scalar(0))
	require.NoError(t, err)
	_, err = group.BuildTable(m, []algebra.Element{two})
	require.ErrorIs(t, err, group.ErrNotUnit)
}

// TestRightMultiplication builds the edge matrix of i in the complex group.
func TestRightMultiplication(t *testing.T) {
	_, table := tableFor(t, 1)
	ex, err := group.RightMultiplication(table, 1)
	require.NoError(t, err)
	want := permgraph.Matrix{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{1, 0, 0, 0},
	}
	require.Equal(t, want, ex)

	_, err = group.RightMultiplication(table, 4)
	require.ErrorIs(t, err, group.ErrColumnOutOfRange)
	_, err = group.RightMultiplication(group.Table{}, 0)
	require.ErrorIs(t, err, group.ErrEmptyTable)
}

// TestFindGeneratorsComplex: i alone connects {1, i, −1, −i}.
func TestFindGeneratorsComplex(t *testing.T) {
	_, table := tableFor(t, 1)
	gens, err := group.FindGenerators(table)
	require.NoError(t, err)
	require.Len(t, gens, 1)

	ex, err := group.RightMultiplication(table, 1)
	require.NoError(t, err)
	require.Equal(t, 1, gens[0].Column)
	require.Equal(t, ex, gens[0].Edges)
}

// TestFindGeneratorsHigherOrders checks the greedy prefix and connectivity.
func TestFindGeneratorsHigherOrders(t *testing.T) {
	_, quaternions := tableFor(t, 2)
	gens, err := group.FindGenerators(quaternions)
	require.NoError(t, err)
	require.Len(t, gens, 2) // i and j

	for order := 0; order <= 3; order++ {
		_, table := tableFor(t, order)
		gens, err := group.FindGenerators(table)
		require.NoError(t, err)
		require.NotEmpty(t, gens)

		matrices := make([]permgraph.Matrix, len(gens))
		for k, g := range gens {
			require.Equal(t, k+1, g.Column, "columns are a prefix from 1")
			matrices[k] = g.Edges
		}
		union, err := permgraph.Union(matrices...)
		require.NoError(t, err)
		ok, err := permgraph.Connected(union)
		require.NoError(t, err)
		require.True(t, ok)

		// minimal prefix: dropping the last generator disconnects
		if len(matrices) > 1 {
			shorter, err := permgraph.Union(matrices[:len(matrices)-1]...)
			require.NoError(t, err)
			ok, err := permgraph.Connected(shorter)
			require.NoError(t, err)
			require.False(t, ok)
		}
	}
}

// TestFindGeneratorsDisconnected covers a table whose columns never connect.
func TestFindGeneratorsDisconnected(t *testing.T) {
	// two copies of Z2 side by side: {0,1} and {2,3} never meet
	table := group.Table{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{2, 3, 2, 3},
		{3, 2, 3, 2},
	}
	_, err := group.FindGenerators(table)
	require.ErrorIs(t, err, group.ErrDisconnected)

	_, err = group.FindGenerators(group.Table{})
	require.ErrorIs(t, err, group.ErrEmptyTable)
}

// TestFindLoops checks 4-element loops for orders 1..3 and the order-0 fault.
func TestFindLoops(t *testing.T) {
	loopsFor := func(order int) ([][]int, error) {
		_, table := tableFor(t, order)
		gens, err := group.FindGenerators(table)
		require.NoError(t, err)

		return group.FindLoops(gens[0].Edges)
	}

	loops, err := loopsFor(1)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2, 3}}, loops)

	loops, err = loopsFor(2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 4, 5}, {2, 3, 6, 7}}, loops)

	loops, err = loopsFor(3)
	require.NoError(t, err)
	require.Len(t, loops, 4)
	seen := make(map[int]bool)
	for _, loop := range loops {
		require.Len(t, loop, group.LoopSize)
		for _, v := range loop {
			require.False(t, seen[v])
			seen[v] = true
		}
	}
	require.Len(t, seen, 16)

	_, err = loopsFor(0)
	require.ErrorIs(t, err, group.ErrUnsupportedOrder)
}

// TestRotateLoops rolls loop k by step·k positions.
func TestRotateLoops(t *testing.T) {
	loops := [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}}

	left := group.RotateLoops(loops, -1)
	require.Equal(t, [][]int{{0, 1, 2, 3}, {5, 6, 7, 4}, {10, 11, 8, 9}}, left)

	right := group.RotateLoops(loops, 1)
	require.Equal(t, [][]int{{0, 1, 2, 3}, {7, 4, 5, 6}, {10, 11, 8, 9}}, right)

	// input untouched
	require.Equal(t, []int{4, 5, 6, 7}, loops[1])
}
