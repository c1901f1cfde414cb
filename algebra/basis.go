// SPDX-License-Identifier: MIT

// Package algebra - basis doubling.

package algebra

import "fmt"

// ExpandBasis builds the basis of the next algebra from basis.
//
// The result has length 2*len(basis): first (x, 0) for every x, then (0, x)
// for every x, where 0 is ZeroLike(basis[0]). This ordering is what makes
// index 0 the real unit and index len(basis) the new imaginary unit, and
// every downstream index and name depends on it.
//
// Errors:
//   - ErrEmptyBasis if basis has no elements.
//   - ErrShapeMismatch if basis mixes orders.
func ExpandBasis(basis []Element) ([]Element, error) {
	if len(basis) == 0 {
		return nil, ErrEmptyBasis
	}
	zero := basis[0].ZeroLike()
	order := basis[0].Order()

	out := make([]Element, 0, 2*len(basis))
	for i, x := range basis {
		if x.Order() != order {
			return nil, fmt.Errorf("basis[%d] has order %d, want %d: %w", i, x.Order(), order, ErrShapeMismatch)
		}
		out = append(out, pairOf(x, zero))
	}
	for _, x := range basis {
		out = append(out, pairOf(zero, x))
	}

	return out, nil
}

// Basis returns the standard basis after order doubling steps applied to
// the real basis [1]: order 0 → [1], order 1 → [1, i], order 2 → [1, i, j, k].
// Returns ErrNegativeOrder if order < 0.
func Basis(order int) ([]Element, error) {
	if order < 0 {
		return nil, fmt.Errorf("order %d: %w", order, ErrNegativeOrder)
	}
	basis := []Element{Scalar(1)}
	for n := 0; n < order; n++ {
		next, err := ExpandBasis(basis)
		if err != nil {
			return nil, err
		}
		basis = next
	}

	return basis, nil
}

// ProductTable returns the basis multiplication table: cell [i][j] holds
// basis[i]·basis[j]. It is meant for inspection of small algebras.
func ProductTable(m *Multiplier, basis []Element) ([][]Element, error) {
	table := make([][]Element, len(basis))
	for i, x := range basis {
		row := make([]Element, len(basis))
		for j, y := range basis {
			z, err := m.Mul(x, y)
			if err != nil {
				return nil, fmt.Errorf("product (%d,%d): %w", i, j, err)
			}
			row[j] = z
		}
		table[i] = row
	}

	return table, nil
}
