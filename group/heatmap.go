package group

import (
	"fmt"

	"github.com/katalvlaran/kdgroup/algebra"
)

// SignedTable returns the basis product table with every product replaced
// by a signed, 1-based basis number: Z[i][j] = k+1 when
// basis[i]·basis[j] = basis[k], and −(k+1) when it equals −basis[k].
//
// The values range over ±1..±len(basis), which is what a diverging
// heatmap colours; the sign carries the orientation that Table folds
// into the upper half of the index range.
func SignedTable(m *algebra.Multiplier, basis []algebra.Element) ([][]int, error) {
	if len(basis) == 0 {
		return nil, ErrEmptyTable
	}
	products, err := algebra.ProductTable(m, basis)
	if err != nil {
		return nil, err
	}

	half := len(basis)
	z := make([][]int, len(products))
	for i, row := range products {
		z[i] = make([]int, len(row))
		for j, p := range row {
			idx, err := Index(p)
			if err != nil {
				return nil, fmt.Errorf("group: product (%d,%d): %w", i, j, err)
			}
			if idx < half {
				z[i][j] = idx + 1
			} else {
				z[i][j] = -(idx - half + 1)
			}
		}
	}

	return z, nil
}
