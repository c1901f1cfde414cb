// SPDX-License-Identifier: MIT

// Package algebra - componentwise operations on Element.
//
// Purpose:
//   - Conjugation, negation, addition, subtraction and structural equality.
//   - Flattening to the coordinate vector and canonical keys for caching.
//
// Complexity quicksheet:
//   - Every operation here walks the tree once: O(2^order).

package algebra

import (
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "("
	_fmtClose = ")"
	_fmtSep   = ", "
)

// Conj returns the conjugate of x.
// Leaves are self-conjugate; conj((a,b)) = (conj(a), −b).
func (x Element) Conj() Element {
	if x.node == nil {
		return x
	}

	return pairOf(x.node.a.Conj(), x.node.b.Neg())
}

// Neg returns −x, negating every coefficient.
func (x Element) Neg() Element {
	if x.node == nil {
		return Scalar(-x.real)
	}

	return pairOf(x.node.a.Neg(), x.node.b.Neg())
}

// Add returns x + y.
// Returns ErrShapeMismatch if x and y have different orders.
func (x Element) Add(y Element) (Element, error) {
	if x.Order() != y.Order() {
		return Element{}, ErrShapeMismatch
	}

	return x.combine(y, add), nil
}

// Sub returns x − y.
// Returns ErrShapeMismatch if x and y have different orders.
func (x Element) Sub(y Element) (Element, error) {
	if x.Order() != y.Order() {
		return Element{}, ErrShapeMismatch
	}

	return x.combine(y, sub), nil
}

// combine applies op leafwise; shapes are already checked by the caller.
func (x Element) combine(y Element, op func(p, q float64) float64) Element {
	if x.node == nil {
		return Scalar(op(x.real, y.real))
	}

	return pairOf(x.node.a.combine(y.node.a, op), x.node.b.combine(y.node.b, op))
}

// Equal reports whether x and y have the same shape and coefficients.
func (x Element) Equal(y Element) bool {
	if x.Order() != y.Order() {
		return false
	}
	if x.node == nil {
		return x.real == y.real
	}

	return x.node.a.Equal(y.node.a) && x.node.b.Equal(y.node.b)
}

// ZeroLike returns the additive identity with the same shape as x.
func (x Element) ZeroLike() Element {
	if x.node == nil {
		return Scalar(0)
	}
	z := x.node.a.ZeroLike()

	return pairOf(z, z)
}

// Flatten returns the coefficients of x in depth-first order
// (a-subtree before b-subtree). The result has length Terms().
func (x Element) Flatten() []float64 {
	out := make([]float64, 0, x.Terms())

	return x.appendLeaves(out)
}

func (x Element) appendLeaves(dst []float64) []float64 {
	if x.node == nil {
		return append(dst, x.real)
	}
	dst = x.node.a.appendLeaves(dst)

	return x.node.b.appendLeaves(dst)
}

// Key returns a canonical string identifying the value of x.
// Equal elements have equal keys; −0 and +0 map to the same key.
func (x Element) Key() string {
	coeffs := x.Flatten()
	var sb strings.Builder
	sb.Grow(len(coeffs) * 17)
	for i, v := range coeffs {
		if i > 0 {
			sb.WriteByte(',')
		}
		if v == 0 {
			v = 0 // drop the sign of −0
		}
		sb.WriteString(strconv.FormatUint(math.Float64bits(v), 16))
	}

	return sb.String()
}

// String formats x as the tuple of its coefficients, e.g. "(0, 1, 0, 0)".
// Leaves format as a bare number.
func (x Element) String() string {
	if x.node == nil {
		return formatCoeff(x.real)
	}
	coeffs := x.Flatten()
	parts := make([]string, len(coeffs))
	for i, v := range coeffs {
		parts[i] = formatCoeff(v)
	}

	return _fmtOpen + strings.Join(parts, _fmtSep) + _fmtClose
}

func formatCoeff(v float64) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
