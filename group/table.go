package group

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kdgroup/algebra"
	"github.com/katalvlaran/kdgroup/permgraph"
)

// BuildTable computes G[i][j] = Index(members[i]·members[j]) using m.
//
// Rows are independent; with WithWorkers(n > 1) they are computed by n
// goroutines sharing m's cache. The context from WithContext is checked
// before every row.
//
// Returns ErrOptionViolation for bad options, ErrEmptyTable for no members,
// ErrNotUnit or algebra.ErrShapeMismatch if a product leaves the unit set,
// or the context error on cancellation.
func BuildTable(m *algebra.Multiplier, members []algebra.Element, opts ...Option) (Table, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, ErrEmptyTable
	}

	table := make(Table, len(members))
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for i := range members {
		i := i
		g.Go(func() error {
			row, err := buildRow(ctx, m, members, i)
			if err != nil {
				return err
			}
			table[i] = row // each goroutine owns one slot

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return table, nil
}

// buildRow computes row i of the table.
func buildRow(ctx context.Context, m *algebra.Multiplier, members []algebra.Element, i int) ([]int, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	row := make([]int, len(members))
	for j, y := range members {
		z, err := m.Mul(members[i], y)
		if err != nil {
			return nil, fmt.Errorf("group: product (%d,%d): %w", i, j, err)
		}
		idx, err := Index(z)
		if err != nil {
			return nil, fmt.Errorf("group: product (%d,%d): %w", i, j, err)
		}
		row[j] = idx
	}

	return row, nil
}

// RightMultiplication returns the permutation matrix of "right-multiply by
// member col": row k has a single 1 at column t[k][col].
// Returns ErrEmptyTable or ErrColumnOutOfRange.
func RightMultiplication(t Table, col int) (permgraph.Matrix, error) {
	n := len(t)
	if n == 0 {
		return nil, ErrEmptyTable
	}
	if col < 0 || col >= n {
		return nil, fmt.Errorf("column %d of %d: %w", col, n, ErrColumnOutOfRange)
	}

	ex := make(permgraph.Matrix, n)
	for k, row := range t {
		if len(row) != n || row[col] < 0 || row[col] >= n {
			return nil, fmt.Errorf("row %d: %w", k, ErrNotPermutation)
		}
		ex[k] = make([]int, n)
		ex[k][row[col]] = 1
	}

	return ex, nil
}
